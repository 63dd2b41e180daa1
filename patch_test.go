package columbus

import (
	"testing"

	"github.com/columbus-format/go-columbus/ir"
)

func TestPatch(t *testing.T) {
	doc, err := Parse([]byte(`{"name": "alice", "tags": ["x"]}`))
	if err != nil {
		t.Fatal(err)
	}
	patch := []byte(`[
		{"op": "replace", "path": "/name", "value": "bob"},
		{"op": "add", "path": "/tags/-", "value": "y"},
		{"op": "add", "path": "/age", "value": 30}
	]`)
	if err := doc.Patch(patch); err != nil {
		t.Fatal(err)
	}
	if got := ir.Get(doc.Root(), "name").String; got != "bob" {
		t.Fatalf("name = %q", got)
	}
	tags := ir.Get(doc.Root(), "tags")
	if len(tags.Values) != 2 || tags.Values[1].String != "y" {
		t.Fatalf("tags = %+v", tags)
	}
	if got := ir.Get(doc.Root(), "age").Int64; got != 30 {
		t.Fatalf("age = %d", got)
	}
}

func TestPatchBadPatchLeavesDocumentUnchanged(t *testing.T) {
	doc, err := Parse([]byte(`{"a": 1}`))
	if err != nil {
		t.Fatal(err)
	}
	before := doc.String()
	if err := doc.Patch([]byte(`[{"op": "replace", "path": "/missing", "value": 2}]`)); err == nil {
		t.Fatal("expected error for bad patch")
	}
	if doc.String() != before {
		t.Fatal("failed patch mutated the document")
	}
}

func TestPatchRemove(t *testing.T) {
	doc, err := Parse([]byte(`{"a": 1, "b": 2}`))
	if err != nil {
		t.Fatal(err)
	}
	if err := doc.Patch([]byte(`[{"op": "remove", "path": "/a"}]`)); err != nil {
		t.Fatal(err)
	}
	if ir.Get(doc.Root(), "a") != nil {
		t.Fatal("a still present")
	}
	if ir.Get(doc.Root(), "b") == nil {
		t.Fatal("b lost")
	}
}
