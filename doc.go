// Package columbus is a JSON value model with a recursive-descent
// parser and a canonical pretty-printer.
//
// A Document wraps the root of an ir.Node tree. Parse a buffer, navigate
// and mutate through typed accessors, and render back to deterministic
// indented text:
//
//	doc, err := columbus.Parse(data)
//	if err != nil {
//	    return err
//	}
//	doc.Key("settings").Key("volume").SetInt(7)
//	err = doc.Write(os.Stdout)
//
// Object keys serialize in sorted order, so re-rendering an unchanged
// tree always yields identical text.
package columbus
