package players

import (
	"bufio"
	"io"
)

type conn struct {
	In  *bufio.Reader
	Out io.Writer
}

func newConn(in io.Reader, out io.Writer) *conn {
	return &conn{In: bufio.NewReader(in), Out: out}
}

// readSignificant returns the next byte that is neither whitespace nor a
// control character
func (c *conn) readSignificant() (byte, error) {
	for {
		b, err := c.In.ReadByte()
		if err != nil {
			return 0, err
		}
		if isSignificant(b) {
			return b, nil
		}
	}
}

// readSignificantN reads n significant bytes
func (c *conn) readSignificantN(n int) ([]byte, error) {
	read := make([]byte, 0, n)
	for len(read) < n {
		b, err := c.readSignificant()
		if err != nil {
			return read, err
		}
		read = append(read, b)
	}
	return read, nil
}

// skipLine drops whatever is left of the current line
func (c *conn) skipLine() {
	for {
		b, err := c.In.ReadByte()
		if err != nil || b == '\n' {
			return
		}
	}
}

func isSignificant(b byte) bool {
	return b > ' ' && b != 0x7f
}
