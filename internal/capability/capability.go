// Package capability defines what happens over an accepted app
// connection.  Each Capability implements the grammar of one
// connection type (control, input relay, output relay) and operates
// on a Session rather than a raw net.Conn, which keeps handlers
// testable and decoupled from the listener.
package capability

import (
	"context"

	"github.com/okc-agents/okgpg/internal/session"
)

// Capability handles a single app connection to completion.  Handle
// blocks until the connection's grammar is exhausted or fails; every
// returned error is fatal to the whole process.
type Capability interface {
	Handle(ctx context.Context, sess *session.Session) error
}
