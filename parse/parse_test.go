package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/columbus-format/go-columbus/ir"
)

func TestParseOK(t *testing.T) {
	tests := []struct {
		in   string
		want *ir.Node
	}{
		{`null`, ir.Null()},
		{`true`, ir.FromBool(true)},
		{`false`, ir.FromBool(false)},
		{`"hello"`, ir.FromString("hello")},
		{`""`, ir.FromString("")},
		{`22`, ir.FromInt(22)},
		{`-7`, ir.FromInt(-7)},
		{`[]`, ir.FromSlice(nil)},
		{`{}`, ir.FromMap(nil)},
		{`[1, 2, 3]`, ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2), ir.FromInt(3)})},
		{`[[]]`, ir.FromSlice([]*ir.Node{ir.FromSlice(nil)})},
		{
			`["a", [true, null]]`,
			ir.FromSlice([]*ir.Node{
				ir.FromString("a"),
				ir.FromSlice([]*ir.Node{ir.FromBool(true), ir.Null()}),
			}),
		},
		{`{"a": 1}`, ir.FromMap(map[string]*ir.Node{"a": ir.FromInt(1)})},
		{
			`{"a": {"b": 9}, "c": [1, "two"]}`,
			ir.FromMap(map[string]*ir.Node{
				"a": ir.FromMap(map[string]*ir.Node{"b": ir.FromInt(9)}),
				"c": ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("two")}),
			}),
		},
		{
			" \t\n {\n\"k\" : \"v\" \n} ",
			ir.FromMap(map[string]*ir.Node{"k": ir.FromString("v")}),
		},
		// a trailing comma before } is tolerated inside objects
		{`{"a": 1,}`, ir.FromMap(map[string]*ir.Node{"a": ir.FromInt(1)})},
		// escape sequences pass through as literal body bytes
		{`"a\nb"`, ir.FromString(`a\nb`)},
		// literal matching has no boundary check; trailing bytes are
		// simply left unconsumed
		{`truexyz`, ir.FromBool(true)},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse([]byte(tc.in))
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(got, tc.want) {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestParseNumberClassification(t *testing.T) {
	tests := []struct {
		in       string
		wantType ir.Type
		wantInt  int64
		wantFlt  float64
	}{
		{`3`, ir.IntType, 3, 0},
		{`3.0`, ir.IntType, 3, 0},
		{`3.5`, ir.FloatType, 0, 3.5},
		{`-3.5`, ir.FloatType, 0, -3.5},
		{`1e2`, ir.IntType, 100, 0},
		{`1e-2`, ir.FloatType, 0, 0.01},
		{`1.5e1`, ir.IntType, 15, 0},
		{`2.5E-1`, ir.FloatType, 0, 0.25},
		{`0`, ir.IntType, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse([]byte(tc.in))
			if err != nil {
				t.Fatal(err)
			}
			if got.Type != tc.wantType {
				t.Fatalf("type %s, want %s", got.Type, tc.wantType)
			}
			switch tc.wantType {
			case ir.IntType:
				if got.Int64 != tc.wantInt {
					t.Fatalf("int %d, want %d", got.Int64, tc.wantInt)
				}
			case ir.FloatType:
				if got.Float64 != tc.wantFlt {
					t.Fatalf("float %v, want %v", got.Float64, tc.wantFlt)
				}
			}
		})
	}
}

func TestParseDuplicateKeysLastWriteWins(t *testing.T) {
	got, err := Parse([]byte(`{"a": 1, "a": 2}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Keys()) != 1 {
		t.Fatalf("keys %v, want just a", got.Keys())
	}
	v, err := ir.Get(got, "a").IntVal()
	if err != nil {
		t.Fatal(err)
	}
	if v != 2 {
		t.Fatalf("a = %d, want 2", v)
	}
}

func TestParseNoValue(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t", "xyz"} {
		t.Run(in, func(t *testing.T) {
			got, err := Parse([]byte(in))
			if err != nil {
				t.Fatal(err)
			}
			if got != nil {
				t.Fatalf("got %+v, want nil", got)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{`"unterminated`, ErrMissedQuot},
		{`{"a`, ErrMissedQuot},
		{`{1: 2}`, ErrMissedQuot},
		{`{"a" 1}`, ErrMissedColon},
		{`{"a"`, ErrMissedColon},
		{`{"a": 1`, ErrMissedComma},
		{`{"a": 1 "b": 2}`, ErrMissedComma},
		{`{"a":}`, ErrMissedComma},
		{`[1,2,]`, ErrMissedComma},
		{`[1 2]`, ErrMissedComma},
		{`[1,2`, ErrMissedComma},
		{`[`, ErrMissedComma},
		{`5.`, ErrInvalidNumber},
		{`5.x`, ErrInvalidNumber},
		{`1e`, ErrInvalidNumber},
		{`1e-`, ErrInvalidNumber},
		{`[1, 2.]`, ErrInvalidNumber},
		{`{"a": 1e}`, ErrInvalidNumber},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			node, err := Parse([]byte(tc.in))
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
			if node != nil {
				t.Fatalf("failed parse returned node %+v", node)
			}
			if !strings.Contains(err.Error(), "offset") {
				t.Fatalf("error %q carries no offset", err)
			}
		})
	}
}

func TestParseErrorClearsInnermostOnly(t *testing.T) {
	// The failing inner object must not leak partial entries; here the
	// whole parse fails, so nothing at all is observable.
	node, err := Parse([]byte(`{"ok": 1, "bad": {"x" 2}}`))
	if !errors.Is(err, ErrMissedColon) {
		t.Fatalf("got %v, want ErrMissedColon", err)
	}
	if node != nil {
		t.Fatalf("got node %+v", node)
	}
}

func TestParseMaxDepth(t *testing.T) {
	in := strings.Repeat("[", 64) + "1" + strings.Repeat("]", 64)
	if _, err := Parse([]byte(in)); err != nil {
		t.Fatalf("within default cap: %v", err)
	}
	_, err := Parse([]byte(in), WithMaxDepth(8))
	if !errors.Is(err, ErrMaxDepth) {
		t.Fatalf("got %v, want ErrMaxDepth", err)
	}
}
