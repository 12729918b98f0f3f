// Package core owns the rendezvous listener.  It binds the loopback
// port, wakes the app through the launcher, and serves the app's
// callback connections until one of them decides the process outcome.
package core

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/rs/zerolog"

	"github.com/okc-agents/okgpg/internal/capability"
	"github.com/okc-agents/okgpg/internal/launch"
	"github.com/okc-agents/okgpg/internal/protocol"
	"github.com/okc-agents/okgpg/internal/session"
)

// Proxy is the single operational mode of okc-gpg: listen, launch,
// then serve connections until a terminal outcome.
//
// The outcome is owned here and set at most once: the first handler
// to finish a control session or hit any error wins, and remaining
// connections are abandoned when Run returns (the deferred listener
// close takes the process down with it).  Handlers themselves only
// return errors; they never terminate anything.
type Proxy struct {
	Launcher launch.Launcher
	Logger   zerolog.Logger
	Args     []string // passthrough arguments for the app

	// ListenAddr defaults to an ephemeral loopback port.
	ListenAddr string

	// Stdin/Stdout default to os.Stdin/os.Stdout when nil; tests
	// substitute buffers.
	Stdin  io.Reader
	Stdout io.Writer

	done chan error
}

func (p *Proxy) stdin() io.Reader {
	if p.Stdin != nil {
		return p.Stdin
	}
	return os.Stdin
}

func (p *Proxy) stdout() io.Writer {
	if p.Stdout != nil {
		return p.Stdout
	}
	return os.Stdout
}

func (p *Proxy) listenAddr() string {
	if p.ListenAddr != "" {
		return p.ListenAddr
	}
	return "127.0.0.1:0"
}

// Run blocks until the app reports success (nil), any connection or
// the launcher fails (the error), or ctx is cancelled.
func (p *Proxy) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", p.listenAddr())
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer ln.Close()

	port := ln.Addr().(*net.TCPAddr).Port
	p.Logger.Info().Int("port", port).Msg("listening for app connections")

	if err := p.Launcher.Launch(ctx, port, launch.EncodeArgs(p.Args)); err != nil {
		return err
	}
	p.Logger.Info().Msg("launch signal sent, waiting for app to connect")

	p.done = make(chan error, 1)
	go p.acceptLoop(ctx, ln)

	select {
	case err := <-p.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Proxy) acceptLoop(ctx context.Context, ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			// The listener closes when Run returns or ctx is
			// cancelled; only report failures beyond that.
			select {
			case <-ctx.Done():
			default:
				p.finish(fmt.Errorf("accept: %w", err))
			}
			return
		}
		p.Logger.Debug().Msg("new incoming connection")
		go p.serveConn(ctx, conn)
	}
}

// finish records the process outcome.  The first caller wins; later
// results are discarded, never awaited.
func (p *Proxy) finish(err error) {
	select {
	case p.done <- err:
	default:
	}
}

func (p *Proxy) serveConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	logger := p.Logger.With().Str("remote", conn.RemoteAddr().String()).Logger()
	logger.Debug().Msg("connection accepted")

	sess := session.New(conn, p.stdin(), p.stdout(), logger)
	terminal, err := p.dispatch(ctx, sess)
	switch {
	case err != nil:
		p.finish(err)
	case terminal:
		p.finish(nil)
	}
}

// dispatch reads the connection-type tag and runs the matching
// capability.  terminal reports whether a nil result decides the
// process outcome; only a completed control session does.
func (p *Proxy) dispatch(ctx context.Context, sess *session.Session) (terminal bool, err error) {
	t, err := protocol.ReadConnType(sess.Conn)
	if err != nil {
		return false, err
	}
	sess.Logger.Debug().Stringer("type", t).Msg("connection classified")

	var handler capability.Capability
	switch t {
	case protocol.ConnControl:
		handler = &capability.Control{}
	case protocol.ConnInput:
		handler = &capability.Input{}
	default:
		handler = &capability.Output{}
	}
	return t == protocol.ConnControl, handler.Handle(ctx, sess)
}
