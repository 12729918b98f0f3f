// Package util provides low-level helpers shared by all other packages.
package util

import (
	"bufio"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// NewLogger builds the process-wide logging sink: levelled zerolog
// output over buffered stderr.  Human-readable console format when
// stderr is a terminal, JSON lines otherwise.
//
// The returned flush func must run on every exit path so no
// diagnostic is lost; binaries defer it inside a run() helper rather
// than around os.Exit, which would skip deferred calls.
func NewLogger(level zerolog.Level, noColor bool) (zerolog.Logger, func() error) {
	tty := term.IsTerminal(int(os.Stderr.Fd()))
	return newLogger(os.Stderr, tty, level, noColor)
}

func newLogger(w io.Writer, tty bool, level zerolog.Level, noColor bool) (zerolog.Logger, func() error) {
	buf := bufio.NewWriter(w)
	var out io.Writer = buf
	if tty {
		out = zerolog.ConsoleWriter{
			Out:        buf,
			TimeFormat: time.Kitchen,
			NoColor:    noColor,
		}
	}
	// Handlers log concurrently; SyncWriter serialises writes into
	// the shared buffer.
	logger := zerolog.New(zerolog.SyncWriter(out)).
		Level(level).
		With().Timestamp().
		Logger()
	return logger, buf.Flush
}
