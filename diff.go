package columbus

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a human-readable diff of the canonical renderings of two
// documents. Because renderings are deterministic, equal documents
// always diff empty.
func Diff(from, to *Document) string {
	if from.Equal(to) {
		return ""
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from.String(), to.String(), true)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	return diffCfg.DiffPrettyText(diffs)
}
