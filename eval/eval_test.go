package eval

import (
	"testing"

	"github.com/columbus-format/go-columbus/ir"
	"github.com/columbus-format/go-columbus/parse"
)

func mustParse(t *testing.T, in string) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	return node
}

func TestQuery(t *testing.T) {
	doc := mustParse(t, `{"users": [{"name": "alice"}, {"name": "bob"}], "n": 2}`)

	tests := []struct {
		src  string
		want any
	}{
		{`doc.n`, int64(2)},
		{`doc.users[0].name`, "alice"},
		{`len(doc.users)`, 2},
		{`doc.n == 2`, true},
		{`map(doc.users, .name)`, []any{"alice", "bob"}},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			got, err := Query(doc, tc.src)
			if err != nil {
				t.Fatal(err)
			}
			switch want := tc.want.(type) {
			case []any:
				gotSlice, ok := got.([]any)
				if !ok || len(gotSlice) != len(want) {
					t.Fatalf("got %v, want %v", got, want)
				}
				for i := range want {
					if gotSlice[i] != want[i] {
						t.Fatalf("got %v, want %v", got, want)
					}
				}
			default:
				if got != tc.want {
					t.Fatalf("got %v (%T), want %v (%T)", got, got, tc.want, tc.want)
				}
			}
		})
	}
}

func TestQueryNode(t *testing.T) {
	doc := mustParse(t, `{"xs": [3, 1, 2]}`)
	node, err := QueryNode(doc, `sort(doc.xs)`)
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2), ir.FromInt(3)})
	if !ir.Equal(node, want) {
		t.Fatalf("got %+v, want %+v", node, want)
	}
}

func TestQueryCompileError(t *testing.T) {
	doc := mustParse(t, `{"a": 1}`)
	if _, err := Query(doc, `doc.a +`); err == nil {
		t.Fatal("expected compile error")
	}
}
