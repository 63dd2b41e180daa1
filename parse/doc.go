// Package parse provides JSON parsing support.
//
// Parse builds the full ir.Node tree for its input before returning; it
// is not a streaming decoder. The accepted grammar is a deliberate
// subset of JSON: string escape sequences are carried through literally
// rather than decoded, and literal matching for true/false/null does not
// check the following character.
package parse
