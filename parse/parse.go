package parse

import (
	"errors"
	"math"

	"github.com/columbus-format/go-columbus/debug"
	"github.com/columbus-format/go-columbus/ir"
)

// Parse reads JSON text into an ir.Node tree. Empty input, or input
// starting with no recognizable value, yields (nil, nil): the top level
// is permissive about absent values. Concrete parse errors carry the
// byte offset of the failure.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	if debug.Parse() {
		debug.Logf("parse %d bytes\n", len(d))
	}
	c := &cursor{d: d}
	node, err := parseValue(c, 0, pOpts)
	if err != nil {
		if errors.Is(err, errUndefined) {
			return nil, nil
		}
		return nil, err
	}
	return node, nil
}

// parseValue tries each production in fixed priority order. A production
// either recognizes its leading character and commits, or reports
// errUndefined so the next one is tried.
func parseValue(c *cursor, depth int, opts *parseOpts) (*ir.Node, error) {
	if depth > opts.maxDepth {
		return nil, c.errAt(ErrMaxDepth)
	}
	c.skipSpace()

	if node, err := parseString(c); !errors.Is(err, errUndefined) {
		return node, err
	}
	if node, err := parseBool(c); !errors.Is(err, errUndefined) {
		return node, err
	}
	if node, err := parseNull(c); !errors.Is(err, errUndefined) {
		return node, err
	}
	if node, err := parseNumber(c); !errors.Is(err, errUndefined) {
		return node, err
	}
	if node, err := parseObject(c, depth, opts); !errors.Is(err, errUndefined) {
		return node, err
	}
	if node, err := parseArray(c, depth, opts); !errors.Is(err, errUndefined) {
		return node, err
	}
	return nil, errUndefined
}

// scanString consumes an opening quote, a verbatim body, and a closing
// quote. Escape sequences are not decoded; a backslash is just another
// body byte.
func scanString(c *cursor) (string, error) {
	c.advance() // opening quote
	start := c.off
	for !c.eof() && c.peek() != '"' {
		c.advance()
	}
	if c.peek() != '"' {
		return "", c.errAt(ErrMissedQuot)
	}
	s := string(c.d[start:c.off])
	c.advance()
	return s, nil
}

func parseString(c *cursor) (*ir.Node, error) {
	if c.peek() != '"' {
		return nil, errUndefined
	}
	s, err := scanString(c)
	if err != nil {
		return nil, err
	}
	return ir.FromString(s), nil
}

func parseBool(c *cursor) (*ir.Node, error) {
	// No boundary check: "truexyz" matches true and leaves xyz
	// unconsumed.
	if c.hasPrefix("true") {
		c.off += len("true")
		return ir.FromBool(true), nil
	}
	if c.hasPrefix("false") {
		c.off += len("false")
		return ir.FromBool(false), nil
	}
	return nil, errUndefined
}

func parseNull(c *cursor) (*ir.Node, error) {
	if c.hasPrefix("null") {
		c.off += len("null")
		return ir.Null(), nil
	}
	return nil, errUndefined
}

// extractInt accumulates a digit run by positional summation.
func extractInt(c *cursor) float64 {
	var n float64
	for isDigit(c.peek()) {
		n = n*10 + float64(c.peek()-'0')
		c.advance()
	}
	return n
}

// extractFrac accumulates a digit run after the decimal point.
func extractFrac(c *cursor) float64 {
	n, f := 0.0, 0.1
	for isDigit(c.peek()) {
		n += float64(c.peek()-'0') * f
		f *= 0.1
		c.advance()
	}
	return n
}

func parseNumber(c *cursor) (*ir.Node, error) {
	b := c.peek()
	if b != '-' && !isDigit(b) {
		return nil, errUndefined
	}
	neg := b == '-'
	if neg {
		c.advance()
	}

	n := extractInt(c)

	if c.peek() == '.' {
		c.advance()
		if !isDigit(c.peek()) {
			return nil, c.errAt(ErrInvalidNumber)
		}
		n += extractFrac(c)
	}

	if c.peek() == 'e' || c.peek() == 'E' {
		c.advance()
		expNeg := c.peek() == '-'
		if expNeg {
			c.advance()
		}
		if !isDigit(c.peek()) {
			return nil, c.errAt(ErrInvalidNumber)
		}
		exp := extractInt(c)
		if expNeg {
			exp = -exp
		}
		n *= math.Pow(10, exp)
	}

	if neg {
		n = -n
	}

	// Round-equality classification: a value whose nearest-integer
	// rounding equals itself is an integer, so 3.0 and 1e2 parse as
	// integers. Values outside the int64 range stay floats.
	if math.Round(n) == n && math.Abs(n) < math.MaxInt64 {
		return ir.FromInt(int64(n)), nil
	}
	return ir.FromFloat(n), nil
}

func parseObject(c *cursor, depth int, opts *parseOpts) (*ir.Node, error) {
	if c.peek() != '{' {
		return nil, errUndefined
	}
	c.advance()
	obj := &ir.Node{Type: ir.ObjectType, Obj: map[string]*ir.Node{}}
	for {
		c.skipSpace()
		// Checked at the top of the entry loop, which also accepts a
		// trailing comma before }.
		if c.peek() == '}' {
			c.advance()
			return obj, nil
		}
		if c.peek() != '"' {
			return nil, c.errAt(ErrMissedQuot)
		}
		key, err := scanString(c)
		if err != nil {
			return nil, err
		}
		c.skipSpace()
		if c.peek() != ':' {
			return nil, c.errAt(ErrMissedColon)
		}
		c.advance()
		val, err := parseValue(c, depth+1, opts)
		if err != nil {
			if errors.Is(err, errUndefined) {
				return nil, c.errAt(ErrMissedComma)
			}
			return nil, err
		}
		// last write wins on duplicate keys
		obj.Obj[key] = val
		c.skipSpace()
		switch c.peek() {
		case '}':
			c.advance()
			return obj, nil
		case ',':
			c.advance()
		default:
			return nil, c.errAt(ErrMissedComma)
		}
	}
}

func parseArray(c *cursor, depth int, opts *parseOpts) (*ir.Node, error) {
	if c.peek() != '[' {
		return nil, errUndefined
	}
	c.advance()
	arr := &ir.Node{Type: ir.ArrayType}
	for {
		c.skipSpace()
		// ] closes an empty array only before any element was pushed;
		// after elements it is handled below, so [1,] fails.
		if len(arr.Values) == 0 && c.peek() == ']' {
			c.advance()
			return arr, nil
		}
		elt, err := parseValue(c, depth+1, opts)
		if err != nil {
			if errors.Is(err, errUndefined) {
				return nil, c.errAt(ErrMissedComma)
			}
			return nil, err
		}
		arr.Values = append(arr.Values, elt)
		c.skipSpace()
		switch c.peek() {
		case ']':
			c.advance()
			return arr, nil
		case ',':
			c.advance()
		default:
			return nil, c.errAt(ErrMissedComma)
		}
	}
}
