package columbus

import (
	"strings"
	"testing"
)

func TestDiffEqualDocuments(t *testing.T) {
	a, err := Parse([]byte(`{"b": 1, "a": 2}`))
	if err != nil {
		t.Fatal(err)
	}
	// same content, different key order in the source text
	b, err := Parse([]byte(`{"a": 2, "b": 1}`))
	if err != nil {
		t.Fatal(err)
	}
	if d := Diff(a, b); d != "" {
		t.Fatalf("equal documents diff non-empty:\n%s", d)
	}
}

func TestDiffChangedValue(t *testing.T) {
	a, err := Parse([]byte(`{"a": 1, "keep": "same"}`))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse([]byte(`{"a": 2, "keep": "same"}`))
	if err != nil {
		t.Fatal(err)
	}
	d := Diff(a, b)
	if d == "" {
		t.Fatal("different documents diff empty")
	}
	if !strings.Contains(d, "1") || !strings.Contains(d, "2") {
		t.Fatalf("diff does not mention changed values:\n%s", d)
	}
}
