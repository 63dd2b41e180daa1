package columbus

import (
	"bytes"
	"io"

	"github.com/columbus-format/go-columbus/encode"
	"github.com/columbus-format/go-columbus/ir"
	"github.com/columbus-format/go-columbus/parse"
)

// Document is a thin container around the root node of a tree. The zero
// Document is not usable; construct with New, Parse or Read.
type Document struct {
	root *ir.Node
}

// New returns a document whose root is an empty object.
func New() *Document {
	return &Document{root: ir.New()}
}

// Parse builds a document from JSON text. Input holding no value at all
// leaves the root at its default empty object shape.
func Parse(d []byte, opts ...parse.ParseOption) (*Document, error) {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	doc := New()
	if node != nil {
		doc.root = node
	}
	return doc, nil
}

// Read consumes r fully and parses the contents. The document core never
// opens files; callers supply the reader.
func Read(r io.Reader, opts ...parse.ParseOption) (*Document, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(d, opts...)
}

func (doc *Document) Root() *ir.Node {
	return doc.root
}

// Key forwards to the root node's keyed accessor.
func (doc *Document) Key(k string) *ir.Node {
	return doc.root.Key(k)
}

// At forwards to the root node's indexed accessor.
func (doc *Document) At(i int) *ir.Node {
	return doc.root.At(i)
}

// Write renders the document to w.
func (doc *Document) Write(w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(doc.root, w, opts...)
}

// Bytes returns the canonical rendering, trailing newline included.
func (doc *Document) Bytes() []byte {
	var buf bytes.Buffer
	if err := encode.Encode(doc.root, &buf); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func (doc *Document) String() string {
	return string(doc.Bytes())
}

// Clone deep-copies the document.
func (doc *Document) Clone() *Document {
	return &Document{root: doc.root.Clone()}
}

// Equal reports whether both documents hold trees of the same shape and
// values.
func (doc *Document) Equal(o *Document) bool {
	return ir.Compare(doc.root, o.root) == 0
}
