package gomap

import "github.com/columbus-format/go-columbus/ir"

// FromIR converts a node tree to generic Go values: map[string]any for
// objects, []any for arrays, int64/float64/string/bool for scalars and
// nil for null.
func FromIR(node *ir.Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.StringType:
		return node.String
	case ir.IntType:
		return node.Int64
	case ir.FloatType:
		return node.Float64
	case ir.BoolType:
		return node.Bool
	case ir.NullType:
		return nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = FromIR(v)
		}
		return res
	case ir.ObjectType:
		res := make(map[string]any, len(node.Obj))
		for k, v := range node.Obj {
			res[k] = FromIR(v)
		}
		return res
	}
	return nil
}
