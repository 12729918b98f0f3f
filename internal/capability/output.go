package capability

import (
	"context"
	"fmt"
	"os"

	"github.com/okc-agents/okgpg/internal/protocol"
	"github.com/okc-agents/okgpg/internal/session"
	"github.com/okc-agents/okgpg/util"
)

// Output streams the connection into a local sink.  The app names the
// sink in the leading path frame; "-" selects the session's stdout,
// anything else is created (or truncated) as a file.
type Output struct{}

// Handle relays the app's bytes into the named sink until the app
// closes its side of the connection.
func (c *Output) Handle(_ context.Context, sess *session.Session) error {
	path, err := protocol.ReadFrame(sess.Conn)
	if err != nil {
		return err
	}
	sess.Logger.Info().Str("path", path).Msg("output connection established")

	if path == "-" {
		sess.Logger.Debug().Msg("writing to stdout")
		if _, err := util.Copy(sess.Stdout, sess.Conn); err != nil {
			return fmt.Errorf("relay app to stdout: %w", err)
		}
	} else {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output %q: %w", path, err)
		}
		sess.Logger.Debug().Msg("writing to file")
		if _, err := util.Copy(f, sess.Conn); err != nil {
			f.Close() //nolint:errcheck
			return fmt.Errorf("relay app to %q: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close output %q: %w", path, err)
		}
	}
	sess.Logger.Info().Msg("output connection finished")
	return nil
}
