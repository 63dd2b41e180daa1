// Package gomap converts between Go values and ir.Node trees.
//
// ToIR maps Go scalars, maps with string keys, slices, arrays, pointers
// and structs onto the corresponding node shapes. Struct fields may be
// renamed or skipped with the `columbus` tag:
//
//	type User struct {
//	    Name  string `columbus:"name"`
//	    Email string `columbus:"-"`
//	}
//
// FromIR goes the other way, producing generic Go values
// (map[string]any, []any, int64, float64, string, bool, nil).
package gomap
