package ir

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrNoPath = errors.New("no such path")

// GetPath navigates the tree along a dotted path with bracket indices,
// for example "users[0].name". A leading "$" is accepted and ignored.
// Navigation is read-only: missing structure is an error, never
// vivified.
func GetPath(n *Node, path string) (*Node, error) {
	path = strings.TrimPrefix(path, "$")
	res := n
	i := 0
	for i < len(path) {
		switch path[i] {
		case '.':
			i++
		case '[':
			end := strings.IndexByte(path[i:], ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated index in %q", ErrNoPath, path)
			}
			idx, err := strconv.Atoi(path[i+1 : i+end])
			if err != nil {
				return nil, fmt.Errorf("%w: bad index %q", ErrNoPath, path[i+1:i+end])
			}
			if res.Type != ArrayType {
				return nil, fmt.Errorf("%w: expected array at %q, got %s", ErrNoPath, path[:i], res.Type)
			}
			if idx < 0 || idx >= len(res.Values) {
				return nil, fmt.Errorf("%w: index %d out of bounds (len %d)", ErrNoPath, idx, len(res.Values))
			}
			res = res.Values[idx]
			i += end + 1
		default:
			j := i
			for j < len(path) && path[j] != '.' && path[j] != '[' {
				j++
			}
			field := path[i:j]
			if res.Type != ObjectType {
				return nil, fmt.Errorf("%w: expected object at %q, got %s", ErrNoPath, path[:i], res.Type)
			}
			child := res.Obj[field]
			if child == nil {
				return nil, fmt.Errorf("%w: no field %q", ErrNoPath, field)
			}
			res = child
			i = j
		}
	}
	return res, nil
}
