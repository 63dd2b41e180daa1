package columbus

import (
	"fmt"

	"github.com/columbus-format/go-columbus/debug"
	"github.com/columbus-format/go-columbus/ir"
	"github.com/columbus-format/go-columbus/parse"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// Patch applies an RFC 6902 patch document to doc. The patch operates on
// the rendered form and the result replaces the tree; on error the
// document is left unchanged.
func (doc *Document) Patch(patchText []byte) error {
	ops, err := jsonpatch.DecodePatch(patchText)
	if err != nil {
		return fmt.Errorf("decoding patch: %w", err)
	}
	if debug.Patch() {
		debug.Logf("patch with %d ops\n", len(ops))
	}
	out, err := ops.Apply(doc.Bytes())
	if err != nil {
		return fmt.Errorf("applying patch: %w", err)
	}
	node, err := parse.Parse(out)
	if err != nil {
		return fmt.Errorf("reparsing patched document: %w", err)
	}
	if node == nil {
		node = ir.New()
	}
	doc.root = node
	return nil
}
