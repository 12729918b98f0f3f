// Package launch starts the companion app and hands it the proxy
// port.  The app cannot be called directly: it is woken by an Android
// broadcast (or, for development, an arbitrary command) and connects
// back to the listener on its own schedule.
package launch

import (
	"context"
	"encoding/base64"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/okc-agents/okgpg/internal/errors"
)

// Launcher wakes the app, telling it which loopback port to connect
// back to.  encodedArgs is the EncodeArgs result, or "" when the
// invocation carried no arguments (in which case none are sent).
type Launcher interface {
	Launch(ctx context.Context, port int, encodedArgs string) error
}

// EncodeArgs encodes each argument with standard base64 and joins
// them with commas, the form the app expects in its args extra.
// An empty argument list encodes to "".
func EncodeArgs(args []string) string {
	if len(args) == 0 {
		return ""
	}
	enc := make([]string, len(args))
	for i, a := range args {
		enc[i] = base64.StdEncoding.EncodeToString([]byte(a))
	}
	return strings.Join(enc, ",")
}

// ── Android broadcast ────────────────────────────────────────────────

// Broadcast is the production Launcher: it fires "am broadcast" at
// the app's proxy receiver with the port (and encoded args) as
// extras.
type Broadcast struct {
	Component string // receiver component, package/.Class
	PortExtra string // int extra carrying the proxy port
	ArgsExtra string // string-array extra carrying the encoded args
}

// Launch runs the broadcast and waits for am to return.  A spawn
// failure or non-zero exit is a LaunchError.
func (b *Broadcast) Launch(ctx context.Context, port int, encodedArgs string) error {
	cmd := b.command(ctx, port, encodedArgs)
	if err := cmd.Run(); err != nil {
		return &errors.LaunchError{Cmd: strings.Join(cmd.Args, " "), Err: err}
	}
	return nil
}

func (b *Broadcast) command(ctx context.Context, port int, encodedArgs string) *exec.Cmd {
	args := []string{
		"broadcast",
		"-n", b.Component,
		"--ei", b.PortExtra, strconv.Itoa(port),
	}
	if encodedArgs != "" {
		args = append(args, "--esa", b.ArgsExtra, encodedArgs)
	}
	// am chatters on stdout; none of it is useful here, and stdout
	// belongs to the relay anyway.  exec.Cmd discards both streams
	// when left nil.
	return exec.CommandContext(ctx, "am", args...)
}

// ── Development override ─────────────────────────────────────────────

// Command runs an arbitrary shell command as the launcher, for
// driving the proxy off-device (see the OKGPG_LAUNCHER variable).
// The port and encoded args are exported to the command's
// environment.  The command is started and left to run concurrently
// with the proxy, mirroring how the broadcast merely wakes the app.
type Command struct {
	Shell string // run via /bin/sh -c
}

// Environment variables exported to the launcher command.
const (
	EnvProxyPort = "OKGPG_PROXY_PORT"
	EnvGpgArgs   = "OKGPG_GPG_ARGS"
)

// Launch starts the command without waiting for it to finish.
func (c *Command) Launch(ctx context.Context, port int, encodedArgs string) error {
	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", c.Shell)
	cmd.Env = append(os.Environ(),
		EnvProxyPort+"="+strconv.Itoa(port),
		EnvGpgArgs+"="+encodedArgs,
	)
	if err := cmd.Start(); err != nil {
		return &errors.LaunchError{Cmd: c.Shell, Err: err}
	}
	go cmd.Wait() //nolint:errcheck // reap; the proxy outcome does not depend on it
	return nil
}
