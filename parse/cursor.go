package parse

import "fmt"

// cursor is a forward-only read position over the input. peek returns 0
// at end of input, so productions can treat the buffer as
// null-terminated and never index out of range.
type cursor struct {
	d   []byte
	off int
}

func (c *cursor) eof() bool {
	return c.off >= len(c.d)
}

func (c *cursor) peek() byte {
	if c.off >= len(c.d) {
		return 0
	}
	return c.d[c.off]
}

func (c *cursor) advance() {
	if c.off < len(c.d) {
		c.off++
	}
}

func (c *cursor) skipSpace() {
	for !c.eof() && isSpace(c.d[c.off]) {
		c.off++
	}
}

func (c *cursor) hasPrefix(s string) bool {
	if len(c.d)-c.off < len(s) {
		return false
	}
	return string(c.d[c.off:c.off+len(s)]) == s
}

func (c *cursor) errAt(err error) error {
	return fmt.Errorf("%w at offset %d", err, c.off)
}

// isSpace matches the C isspace classifier.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
