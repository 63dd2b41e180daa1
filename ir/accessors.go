package ir

// Typed accessors. Every accessor fails with ErrTypeMismatch when the
// node's current shape does not match, container shapes included. The
// Is* tests never fail and are the way to guard an accessor.

func (n *Node) StringVal() (string, error) {
	if n.Type != StringType {
		return "", mismatchErr(StringType, n.Type)
	}
	return n.String, nil
}

func (n *Node) IntVal() (int64, error) {
	if n.Type != IntType {
		return 0, mismatchErr(IntType, n.Type)
	}
	return n.Int64, nil
}

func (n *Node) FloatVal() (float64, error) {
	if n.Type != FloatType {
		return 0, mismatchErr(FloatType, n.Type)
	}
	return n.Float64, nil
}

func (n *Node) BoolVal() (bool, error) {
	if n.Type != BoolType {
		return false, mismatchErr(BoolType, n.Type)
	}
	return n.Bool, nil
}

// ArrayVal returns the element slice. Mutating the returned slice
// mutates the node.
func (n *Node) ArrayVal() ([]*Node, error) {
	if n.Type != ArrayType {
		return nil, mismatchErr(ArrayType, n.Type)
	}
	return n.Values, nil
}

// ObjectVal returns the entry map. Mutating the returned map mutates the
// node.
func (n *Node) ObjectVal() (map[string]*Node, error) {
	if n.Type != ObjectType {
		return nil, mismatchErr(ObjectType, n.Type)
	}
	return n.Obj, nil
}

func (n *Node) IsString() bool { return n.Type == StringType }
func (n *Node) IsInt() bool    { return n.Type == IntType }
func (n *Node) IsFloat() bool  { return n.Type == FloatType }
func (n *Node) IsBool() bool   { return n.Type == BoolType }
func (n *Node) IsNull() bool   { return n.Type == NullType }
func (n *Node) IsArray() bool  { return n.Type == ArrayType }
func (n *Node) IsObject() bool { return n.Type == ObjectType }

// TryAsArray is a non-destructive probe: it reports the element slice
// without switching shapes, unlike At.
func (n *Node) TryAsArray() ([]*Node, bool) {
	if n.Type != ArrayType {
		return nil, false
	}
	return n.Values, true
}

// TryAsObject is the object counterpart of TryAsArray.
func (n *Node) TryAsObject() (map[string]*Node, bool) {
	if n.Type != ObjectType {
		return nil, false
	}
	return n.Obj, true
}
