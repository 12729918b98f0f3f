package util

import (
	"io"
	"net"
)

// DefaultBufSize is the standard buffer size for relay I/O (32 KiB).
const DefaultBufSize = 32 * 1024

// Copy moves bytes from src to dst with a pooled buffer until src is
// exhausted.
func Copy(dst io.Writer, src io.Reader) (int64, error) {
	buf := GetBuf()
	defer PutBuf(buf)
	return io.CopyBuffer(dst, src, *buf)
}

// writeCloser is implemented by connections that support half-close
// (notably *net.TCPConn).
type writeCloser interface {
	CloseWrite() error
}

// CloseWrite half-closes conn so the remote sees EOF while its own
// writes still reach us.  Returns false when the connection type has
// no half-close support.
func CloseWrite(conn net.Conn) bool {
	wc, ok := conn.(writeCloser)
	if !ok {
		return false
	}
	wc.CloseWrite() //nolint:errcheck
	return true
}
