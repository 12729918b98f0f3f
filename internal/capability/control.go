package capability

import (
	"context"

	"github.com/okc-agents/okgpg/internal/errors"
	"github.com/okc-agents/okgpg/internal/protocol"
	"github.com/okc-agents/okgpg/internal/session"
)

// Control consumes the app's warning messages and final status code.
// Grammar: zero or more non-empty frames (warnings), one empty frame,
// one status byte.  Status 0 means the whole operation succeeded and
// the process exits 0 immediately; anything else is a remote failure.
type Control struct{}

// Handle runs the control session to its terminal state.
func (c *Control) Handle(_ context.Context, sess *session.Session) error {
	sess.Logger.Info().Msg("control connection established")
	for {
		msg, err := protocol.ReadFrame(sess.Conn)
		if err != nil {
			return err
		}
		if msg == "" {
			break
		}
		sess.Logger.Debug().Int("length", len(msg)).Msg("new warning message received")
		sess.Logger.Warn().Msg(msg)
	}
	sess.Logger.Debug().Msg("all warnings processed, waiting for status code")
	status, err := protocol.ReadStatus(sess.Conn)
	if err != nil {
		return err
	}
	sess.Logger.Info().Uint8("status_code", status).Msg("control connection finished")
	if status != 0 {
		return &errors.RemoteError{Status: status}
	}
	return nil
}
