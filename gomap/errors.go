package gomap

import "fmt"

// MarshalError reports a Go value that cannot be represented as a node.
type MarshalError struct {
	Message   string
	FieldPath string
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("gomap: %s at %s", e.Message, e.FieldPath)
	}
	return "gomap: " + e.Message
}
