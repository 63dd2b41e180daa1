// Package encode renders IR nodes to canonical indented JSON text.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	var buf bytes.Buffer
//	err := encode.Encode(node, &buf)
//
// Objects render one entry per line in sorted key order; arrays render
// on a single line regardless of nesting. Rendering the same tree twice
// yields identical text: the indent level is threaded through the
// recursion, never shared between calls.
//
// # Related Packages
//
//   - github.com/columbus-format/go-columbus/ir - IR representation
//   - github.com/columbus-format/go-columbus/parse - Parse text to IR
package encode
