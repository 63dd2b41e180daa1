package parse

// DefaultMaxDepth bounds recursion for inputs with pathological nesting.
const DefaultMaxDepth = 10000

type parseOpts struct {
	maxDepth int
}

type ParseOption func(*parseOpts)

// WithMaxDepth caps the nesting depth the parser will descend into
// before failing with ErrMaxDepth. Values < 1 are ignored.
func WithMaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n >= 1 {
			o.maxDepth = n
		}
	}
}
