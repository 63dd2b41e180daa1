package ir

import (
	"errors"
	"fmt"
)

var ErrTypeMismatch = errors.New("type mismatch")

func mismatchErr(want, got Type) error {
	return fmt.Errorf("%w: want %s, got %s", ErrTypeMismatch, want, got)
}
