// Package session represents a single app connection, binding the
// network stream with local I/O endpoints and a scoped logger.
//
// Sessions decouple capabilities from concrete I/O sources — a
// capability doesn't need to know whether "-" means os.Stdin or a
// test buffer, it just uses the session's endpoints.
package session

import (
	"io"
	"net"

	"github.com/rs/zerolog"
)

// Session encapsulates the runtime context for a single connection.
// Capabilities operate on sessions rather than raw connections,
// enabling clean testing and I/O substitution.
type Session struct {
	Conn   net.Conn
	Stdin  io.Reader
	Stdout io.Writer
	Logger zerolog.Logger
}

// New creates a Session bound to the given connection and I/O pair.
func New(conn net.Conn, stdin io.Reader, stdout io.Writer, logger zerolog.Logger) *Session {
	return &Session{
		Conn:   conn,
		Stdin:  stdin,
		Stdout: stdout,
		Logger: logger,
	}
}
