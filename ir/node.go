package ir

import (
	"maps"
	"slices"
)

// Node is one JSON value. The Type field selects which payload field is
// live; the others hold their zero values. A zero Node is an empty
// object.
type Node struct {
	Type Type

	String  string
	Bool    bool
	Int64   int64
	Float64 float64

	Values []*Node          // array elements, insertion order
	Obj    map[string]*Node // object entries, iterated in sorted key order
}

// New returns an empty object node.
func New() *Node {
	return &Node{}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntType, Int64: v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: FloatType, Float64: f}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromSlice(elems []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(elems))
	copy(res.Values, elems)
	return res
}

func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType, Obj: make(map[string]*Node, len(m))}
	maps.Copy(res.Obj, m)
	return res
}

// Clone returns a deep copy of the subtree rooted at this node.
func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Type = n.Type
	dst.String = n.String
	dst.Bool = n.Bool
	dst.Int64 = n.Int64
	dst.Float64 = n.Float64
	dst.Values = nil
	dst.Obj = nil
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dst.Values[i] = v.Clone()
		}
	}
	if n.Obj != nil {
		dst.Obj = make(map[string]*Node, len(n.Obj))
		for k, v := range n.Obj {
			dst.Obj[k] = v.Clone()
		}
	}
	return dst
}

// Keys returns the object's keys in sorted order. Objects always iterate
// and serialize in this order.
func (n *Node) Keys() []string {
	if len(n.Obj) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(n.Obj))
}

// Get returns the value at field, or nil when node is not an object or
// the field is absent. Unlike Key it never mutates the node.
func Get(n *Node, field string) *Node {
	if n.Type != ObjectType {
		return nil
	}
	return n.Obj[field]
}

// clear resets every payload field. Callers set Type afterwards.
func (n *Node) clear() {
	n.String = ""
	n.Bool = false
	n.Int64 = 0
	n.Float64 = 0
	n.Values = nil
	n.Obj = nil
}

// At returns the node at array index i, switching this node to the array
// shape if needed. Switching discards the previous payload. The array
// grows with default nodes up to and including i.
func (n *Node) At(i int) *Node {
	if n.Type != ArrayType {
		n.clear()
		n.Type = ArrayType
	}
	for len(n.Values) <= i {
		n.Values = append(n.Values, &Node{})
	}
	return n.Values[i]
}

// Key returns the node at the given object key, switching this node to
// the object shape if needed. Switching discards the previous payload. A
// default node is inserted on first access.
func (n *Node) Key(k string) *Node {
	if n.Type != ObjectType {
		n.clear()
		n.Type = ObjectType
	}
	if n.Obj == nil {
		n.Obj = map[string]*Node{}
	}
	child, ok := n.Obj[k]
	if !ok {
		child = &Node{}
		n.Obj[k] = child
	}
	return child
}

// Insert sets key k to v, overwriting any existing entry. Like Key it
// switches the node to the object shape first.
func (n *Node) Insert(k string, v *Node) {
	if n.Type != ObjectType {
		n.clear()
		n.Type = ObjectType
	}
	if n.Obj == nil {
		n.Obj = map[string]*Node{}
	}
	n.Obj[k] = v
}

// Append adds v to the end of the array, switching the node to the array
// shape first.
func (n *Node) Append(v *Node) {
	if n.Type != ArrayType {
		n.clear()
		n.Type = ArrayType
	}
	n.Values = append(n.Values, v)
}

func (n *Node) SetString(v string) {
	n.clear()
	n.Type = StringType
	n.String = v
}

func (n *Node) SetInt(v int64) {
	n.clear()
	n.Type = IntType
	n.Int64 = v
}

func (n *Node) SetFloat(v float64) {
	n.clear()
	n.Type = FloatType
	n.Float64 = v
}

func (n *Node) SetBool(v bool) {
	n.clear()
	n.Type = BoolType
	n.Bool = v
}

func (n *Node) SetNull() {
	n.clear()
	n.Type = NullType
}

func (n *Node) SetArray(elems ...*Node) {
	n.clear()
	n.Type = ArrayType
	n.Values = elems
}

func (n *Node) SetObject(m map[string]*Node) {
	n.clear()
	n.Type = ObjectType
	n.Obj = make(map[string]*Node, len(m))
	maps.Copy(n.Obj, m)
}

// Visit walks the subtree in document order, calling f before (isPost
// false) and after (isPost true) each node's children. Returning dive
// false from the pre call skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		switch n.Type {
		case ArrayType:
			for _, c := range n.Values {
				if err := c.Visit(f); err != nil {
					return err
				}
			}
		case ObjectType:
			for _, k := range n.Keys() {
				if err := n.Obj[k].Visit(f); err != nil {
					return err
				}
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
