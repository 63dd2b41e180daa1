// Package ir provides the in-memory representation of JSON documents.
//
// # Overview
//
// A document is a tree of Node values. Each Node holds exactly one shape
// at a time: a scalar (string, integer, float, boolean, null), an array,
// or an object. The shape is given by the Type field; payload fields are
// meaningful only for the matching shape.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// The zero value of Node is an empty object.
//
// # Shape Switching
//
// The indexed mutators At and Key switch the node to the array or object
// shape respectively, discarding the previous payload. This mirrors the
// assignment semantics of the accessors: writing an array index into a
// node currently holding an object clears the object first. TryAsArray
// and TryAsObject are non-destructive probes for callers that must not
// lose data.
//
// # Ownership
//
// Arrays and objects exclusively own their children. Clone deep-copies a
// subtree; there are no back-references and no cycles.
//
// # Thread Safety
//
// Node trees are not thread-safe. Callers accessing one tree from
// multiple goroutines must synchronize or clone per goroutine.
package ir
