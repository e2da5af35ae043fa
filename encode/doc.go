// Package encode renders [ir.Node] trees as yamlet text.
//
// # Usage
//
// To write a document to a writer:
//
//	err := encode.Encode(doc, os.Stdout)
//
// Output is shaped by options: [Indent] sets the indent width,
// [FlowLimit] bounds the collections written in one-line flow form, and
// [EncodeColors] turns on ANSI colors:
//
//	err := encode.Encode(doc, os.Stdout, encode.Indent(4), encode.EncodeColors(encode.NewColors()))
//
// [MustString] renders to a trimmed string and panics on error, which
// keeps tests and debug output short.
//
// Encoding inverts parsing for the trees the format can express: parsing
// the output of Encode yields an equal tree. Values the text form cannot
// carry, such as mapping keys containing ':' or '#', are written as they
// are and will read back differently.
//
// # Related Packages
//
// The [ir] package defines the node types. The [parse] package is the
// inverse of this one.
package encode
