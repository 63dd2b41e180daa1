package encode

import (
	"io"
	"strconv"
	"strings"

	"github.com/columbus-format/go-columbus/debug"
	"github.com/columbus-format/go-columbus/ir"
)

// EncState carries the encoder configuration. The current indent level
// is not part of it: depth is passed explicitly through the recursion so
// renders of different trees never interfere.
type EncState struct {
	indent string
	depth  int

	Color func(ir.Type, ColorAttr, string) string
}

// Encode renders node to w. A trailing newline is emitted only when the
// render returns to depth 0.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: "\t"}
	for _, opt := range opts {
		opt(es)
	}
	if debug.Encode() {
		debug.Logf("encode %s at depth %d\n", node.Type, es.depth)
	}
	if err := encode(node, w, es.depth, es); err != nil {
		return err
	}
	if es.depth == 0 {
		return writeString(w, "\n")
	}
	return nil
}

func encode(node *ir.Node, w io.Writer, depth int, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, depth, es)
	case ir.ArrayType:
		return encodeArray(node, w, depth, es)
	case ir.StringType:
		// quoted verbatim, symmetric with parsing: no escaping applied
		return writeString(w, applyValueColor(es, ir.StringType, `"`+node.String+`"`))
	case ir.IntType:
		return writeString(w, applyValueColor(es, ir.IntType, strconv.FormatInt(node.Int64, 10)))
	case ir.FloatType:
		return writeString(w, applyValueColor(es, ir.FloatType, strconv.FormatFloat(node.Float64, 'g', -1, 64)))
	case ir.BoolType:
		return writeString(w, applyValueColor(es, ir.BoolType, strconv.FormatBool(node.Bool)))
	case ir.NullType:
		return writeString(w, applyValueColor(es, ir.NullType, "null"))
	default:
		return writeString(w, applyValueColor(es, ir.NullType, "null"))
	}
}

func encodeObject(node *ir.Node, w io.Writer, depth int, es *EncState) error {
	// A nested object opens on its own line under its key.
	if depth != 0 {
		if err := writeString(w, "\n"+indentAt(es, depth)); err != nil {
			return err
		}
	}
	if err := writeString(w, applySepColor(es, ir.ObjectType, "{")+"\n"); err != nil {
		return err
	}
	keys := node.Keys()
	for i, k := range keys {
		if err := writeString(w, indentAt(es, depth+1)); err != nil {
			return err
		}
		field := applyColor(es, ir.ObjectType, FieldColor, `"`+k+`"`)
		if err := writeString(w, field+": "); err != nil {
			return err
		}
		if err := encode(node.Obj[k], w, depth+1, es); err != nil {
			return err
		}
		if i != len(keys)-1 {
			if err := writeString(w, applySepColor(es, ir.ObjectType, ",")); err != nil {
				return err
			}
		}
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	return writeString(w, indentAt(es, depth)+applySepColor(es, ir.ObjectType, "}"))
}

// encodeArray renders on one line regardless of nesting, asymmetric with
// the multi-line object form.
func encodeArray(node *ir.Node, w io.Writer, depth int, es *EncState) error {
	if err := writeString(w, applySepColor(es, ir.ArrayType, "[")); err != nil {
		return err
	}
	for i, elt := range node.Values {
		if err := encode(elt, w, depth, es); err != nil {
			return err
		}
		if i != len(node.Values)-1 {
			if err := writeString(w, applySepColor(es, ir.ArrayType, ", ")); err != nil {
				return err
			}
		}
	}
	return writeString(w, applySepColor(es, ir.ArrayType, "]"))
}

func indentAt(es *EncState, depth int) string {
	return strings.Repeat(es.indent, depth)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func applyValueColor(es *EncState, nodeType ir.Type, v string) string {
	return applyColor(es, nodeType, ValueColor, v)
}

func applySepColor(es *EncState, nodeType ir.Type, v string) string {
	return applyColor(es, nodeType, SepColor, v)
}
