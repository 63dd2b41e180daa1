package parse

import "errors"

// Parse errors form a closed set. Every concrete error reported by a
// production is one of these, wrapped with the byte offset at which it
// was detected. ErrInvalidString, ErrMissedBracket and ErrMissedBrace
// are reserved: no current production reports them.
var (
	ErrInvalidString = errors.New("invalid string")
	ErrInvalidNumber = errors.New("invalid number")
	ErrMissedColon   = errors.New("missed colon")
	ErrMissedComma   = errors.New("missed comma")
	ErrMissedQuot    = errors.New("missed quote")
	ErrMissedBracket = errors.New("missed bracket")
	ErrMissedBrace   = errors.New("missed brace")
	ErrMaxDepth      = errors.New("max depth exceeded")
)

// errUndefined means a production's leading character did not match, so
// the caller should try the next production. It never escapes Parse.
var errUndefined = errors.New("undefined")
