package capability

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/okc-agents/okgpg/internal/protocol"
	"github.com/okc-agents/okgpg/internal/session"
	"github.com/okc-agents/okgpg/util"
)

// Input streams a local source into the connection.  The app names
// the source in the leading path frame; "-" selects the session's
// stdin, anything else is opened as a file.
type Input struct{}

// Handle relays the named source to the app and half-closes the
// connection when the source is exhausted.
func (c *Input) Handle(_ context.Context, sess *session.Session) error {
	path, err := protocol.ReadFrame(sess.Conn)
	if err != nil {
		return err
	}
	sess.Logger.Info().Str("path", path).Msg("input connection established")

	var src io.Reader
	if path == "-" {
		sess.Logger.Debug().Msg("reading from stdin")
		src = sess.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open input %q: %w", path, err)
		}
		defer f.Close()
		sess.Logger.Debug().Msg("reading from file")
		src = f
	}

	if _, err := util.Copy(sess.Conn, src); err != nil {
		return fmt.Errorf("relay %q to app: %w", path, err)
	}
	// EOF on our side; tell the app no more bytes are coming while
	// its other connections stay untouched.
	util.CloseWrite(sess.Conn)
	sess.Logger.Info().Msg("input connection finished")
	return nil
}
