// okc-gpg is a transparent gpg front end backed by the OpenKeychain
// app.  It binds a loopback listener, wakes the app with the bound
// port, relays streams over the app's callback connections, and exits
// with the status the app reports.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/okc-agents/okgpg/config"
	"github.com/okc-agents/okgpg/internal/core"
	"github.com/okc-agents/okgpg/internal/launch"
	"github.com/okc-agents/okgpg/util"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run exists so deferred cleanup — the log flush above all — executes
// before the exit status is set; os.Exit in main would skip it.
func run(args []string) int {
	cfg, err := config.FromEnv(args)
	if err != nil {
		// The logging sink is configured from cfg, so it isn't up
		// yet; fall back to a bare stderr line.
		fmt.Fprintf(os.Stderr, "okc-gpg: %v\n", err)
		return 1
	}

	logger, flush := util.NewLogger(cfg.LogLevel, cfg.LogNoColor)
	defer flush() //nolint:errcheck

	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	p := &core.Proxy{
		Launcher: newLauncher(cfg),
		Logger:   logger,
		Args:     cfg.Args,
	}
	if err := p.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("session failed")
		return 1
	}
	return 0
}

// newLauncher picks the development override when OKGPG_LAUNCHER is
// set, the Android broadcast otherwise.
func newLauncher(cfg *config.Config) launch.Launcher {
	if cfg.LauncherCmd != "" {
		return &launch.Command{Shell: cfg.LauncherCmd}
	}
	return &launch.Broadcast{
		Component: cfg.Component,
		PortExtra: cfg.PortExtra,
		ArgsExtra: cfg.ArgsExtra,
	}
}
