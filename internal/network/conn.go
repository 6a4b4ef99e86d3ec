package network

import (
	"io"
	"net"
	"time"
)

// WriteFull writes all of p, retrying short writes that carry no error.
func WriteFull(w io.Writer, p []byte) error {
	for len(p) > 0 {
		n, err := w.Write(p)
		p = p[n:]
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
	}
	return nil
}

// Send writes msg to conn under a write deadline. A zero timeout means no deadline.
func Send(conn net.Conn, msg string, timeout time.Duration) error {
	if timeout > 0 {
		if err := conn.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
			return err
		}
	}
	return WriteFull(conn, []byte(msg))
}
