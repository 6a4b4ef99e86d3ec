package network

import (
	"errors"
	"io"
)

var (
	// ErrClosed reports an orderly end of stream from the peer.
	ErrClosed = errors.New("connection closed by peer")
	// ErrBufferFull reports Fill was called without draining Next first.
	ErrBufferFull = errors.New("line buffer full")
)

// Framer accumulates bytes from one connection and splits them into lines.
// A line ends at the first \r\n, \r or \n. An unterminated span of at least
// maxMessage bytes is returned as a line on its own.
type Framer struct {
	buf        []byte
	n          int // unconsumed bytes at the front of buf
	scanned    int // bytes already searched for a terminator
	maxMessage int
	skipLF     bool // previous line ended in a \r that was the last buffered byte
}

// NewFramer creates a framer with the given buffer capacity and flush threshold.
func NewFramer(size, maxMessage int) *Framer {
	if maxMessage > size {
		maxMessage = size
	}
	return &Framer{
		buf:        make([]byte, size),
		maxMessage: maxMessage,
	}
}

// Fill performs one read into the free tail of the buffer. A zero-byte read at
// end of stream returns ErrClosed; other read errors are returned as is.
func (f *Framer) Fill(r io.Reader) error {
	if f.n == len(f.buf) {
		return ErrBufferFull
	}

	n, err := r.Read(f.buf[f.n:])
	f.n += n
	if n > 0 {
		return nil
	}
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) {
		return ErrClosed
	}
	return err
}

// Next extracts one complete line, if the buffer holds one.
func (f *Framer) Next() (string, bool) {
	if f.skipLF && f.n > 0 {
		f.skipLF = false
		if f.buf[0] == '\n' {
			f.consume(1)
		}
	}

	for i := f.scanned; i < f.n; i++ {
		c := f.buf[i]
		if c != '\r' && c != '\n' {
			continue
		}

		line := string(f.buf[:i])
		used := i + 1
		if c == '\r' {
			if used < f.n {
				if f.buf[used] == '\n' {
					used++
				}
			} else {
				f.skipLF = true
			}
		}
		f.consume(used)
		return line, true
	}
	f.scanned = f.n

	if f.n >= f.maxMessage {
		line := string(f.buf[:f.n])
		f.n = 0
		f.scanned = 0
		return line, true
	}

	return "", false
}

// Buffered returns the number of unconsumed bytes.
func (f *Framer) Buffered() int {
	return f.n
}

// Reset discards everything buffered.
func (f *Framer) Reset() {
	f.n = 0
	f.scanned = 0
	f.skipLF = false
}

func (f *Framer) consume(k int) {
	copy(f.buf, f.buf[k:f.n])
	f.n -= k
	f.scanned = 0
}
