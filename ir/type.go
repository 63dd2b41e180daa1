package ir

import "fmt"

// Type identifies the shape a Node currently holds. The zero value is
// ObjectType, so a zero Node is an empty object.
type Type int

const (
	ObjectType Type = iota
	ArrayType
	StringType
	IntType
	FloatType
	BoolType
	NullType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ObjectType: "Object",
		ArrayType:  "Array",
		StringType: "String",
		IntType:    "Int",
		FloatType:  "Float",
		BoolType:   "Bool",
		NullType:   "Null",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Object": ObjectType,
		"Array":  ArrayType,
		"String": StringType,
		"Int":    IntType,
		"Float":  FloatType,
		"Bool":   BoolType,
		"Null":   NullType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		ObjectType,
		ArrayType,
		StringType,
		IntType,
		FloatType,
		BoolType,
		NullType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}
