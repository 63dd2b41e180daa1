// Package eval runs expr expressions against node trees.
package eval

import (
	"github.com/columbus-format/go-columbus/gomap"
	"github.com/columbus-format/go-columbus/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Query compiles src and evaluates it with the document bound to "doc".
// The document is presented as generic Go values, so expressions like
// `doc.users[0].name` or `len(doc.items)` work directly.
func Query(node *ir.Node, src string) (any, error) {
	env := map[string]any{
		"doc": gomap.FromIR(node),
	}
	program, err := expr.Compile(src, expr.Env(env))
	if err != nil {
		return nil, err
	}
	return vm.Run(program, env)
}

// QueryNode evaluates src and converts the result back to a node.
func QueryNode(node *ir.Node, src string) (*ir.Node, error) {
	out, err := Query(node, src)
	if err != nil {
		return nil, err
	}
	return gomap.ToIR(out)
}
