// Package protocol implements the wire format the app speaks when it
// connects back to the proxy: a one-byte connection-type tag, then
// length-prefixed UTF-8 frames and raw byte streams as dictated by
// the tag.
package protocol

import (
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/okc-agents/okgpg/internal/errors"
)

// ConnType is the first byte of every inbound connection.  It is read
// exactly once and fixes the grammar for the connection's lifetime.
type ConnType byte

const (
	ConnControl ConnType = 0 // warnings + exit status
	ConnInput   ConnType = 1 // local source → app
	ConnOutput  ConnType = 2 // app → local sink
)

func (t ConnType) String() string {
	switch t {
	case ConnControl:
		return "control"
	case ConnInput:
		return "input"
	case ConnOutput:
		return "output"
	default:
		return fmt.Sprintf("unknown(%d)", byte(t))
	}
}

// MaxFrameLen is the largest payload a frame can carry; the length
// prefix is an unsigned 16-bit integer.
const MaxFrameLen = 1<<16 - 1

// ErrFrameTooLong is returned by WriteFrame for payloads that cannot
// be expressed in the 2-byte length prefix.
var ErrFrameTooLong = errors.New("frame payload exceeds 65535 bytes")

// ReadConnType reads and validates the connection-type tag.  Any
// value outside the known set is a protocol error and the connection
// must be abandoned without running a handler.
func ReadConnType(r io.Reader) (ConnType, error) {
	var tag [1]byte
	if _, err := io.ReadFull(r, tag[:]); err != nil {
		return 0, fmt.Errorf("read connection type: %w", err)
	}
	switch t := ConnType(tag[0]); t {
	case ConnControl, ConnInput, ConnOutput:
		return t, nil
	default:
		return 0, errors.Protocolf("invalid connection type %d", tag[0])
	}
}

// WriteConnType writes the connection-type tag.  Emitter side only;
// the proxy never opens connections itself.
func WriteConnType(w io.Writer, t ConnType) error {
	_, err := w.Write([]byte{byte(t)})
	return err
}

// ReadFrame reads one frame: a big-endian u16 length followed by that
// many bytes of UTF-8.  A declared length of zero is the empty frame
// and is valid.  Short reads surface as I/O errors; a payload that is
// not valid UTF-8 is a protocol error.
func ReadFrame(r io.Reader) (string, error) {
	var lenBuf [2]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return "", fmt.Errorf("read frame length: %w", err)
	}
	n := binary.BigEndian.Uint16(lenBuf[:])
	if n == 0 {
		return "", nil
	}
	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return "", fmt.Errorf("read frame payload: %w", err)
	}
	if !utf8.Valid(payload) {
		return "", errors.Protocolf("frame payload is not valid UTF-8")
	}
	return string(payload), nil
}

// WriteFrame writes one frame.  Payloads longer than MaxFrameLen are
// rejected before anything hits the wire.
func WriteFrame(w io.Writer, s string) error {
	if len(s) > MaxFrameLen {
		return ErrFrameTooLong
	}
	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(s)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return fmt.Errorf("write frame length: %w", err)
	}
	if len(s) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("write frame payload: %w", err)
	}
	return nil
}

// ReadStatus reads the single status byte that ends a control
// session.
func ReadStatus(r io.Reader) (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("read status code: %w", err)
	}
	return b[0], nil
}
