// Package ir provides the in-memory representation for yamlet documents.
//
// # Overview
//
// A yamlet document is a tree of nodes. Node is a sealed interface with
// exactly three variants:
//
//   - *Scalar: raw text plus a Style tag (Plain, Literal, Folded)
//   - *Sequence: an ordered list of nodes
//   - *Mapping: key/value pairs in insertion order with unique keys
//
// The variants form a tagged union: a node is exactly one of the three, and
// no further variants can be defined outside this package. Scalars store the
// raw text as written; they carry no type information. Typing is applied on
// demand by the classifier and the typed accessors, never during parsing.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	s := ir.FromString("hello")
//	n := ir.FromInt(42)
//	b := ir.FromBool(true)
//	seq := ir.NewSequence(ir.FromInt(1), ir.FromInt(2))
//	m := ir.NewMapping()
//	m.Set("key", ir.FromString("value"))
//
// # Typed Access
//
// Int, Bool and Float convert a scalar's raw text on demand. They are
// comma-ok, never errors: a non-scalar node, null-like text ("null", "~",
// empty) or unparseable text yields ok == false.
//
//	if v, ok := ir.Int(node); ok {
//	    // v is the scalar's integer value
//	}
//
// AsScalar, AsSequence and AsMapping are the checked variant accessors; they
// return an error when the node is the wrong variant.
//
// # Views and Paths
//
// View is a non-owning, read-only reference into a tree. All View operations
// are total: a lookup miss or a wrong-variant access produces the absent
// view or the caller's default, never an error.
//
//	v := ir.NewView(root)
//	port := v.At("server.ports[0]").IntOr(8080)
//
// Paths use dotted fields with bracketed indexes, e.g. "a.b[1].c", and
// short-circuit to absent on the first missing segment.
//
// # Interoperability
//
// ToAny and FromAny convert between node trees and plain Go values
// (map[string]any, []any, int64, float64, bool, string, nil). ToJSON and
// FromJSON go through the classifier, so numbers, booleans and nulls render
// as JSON numbers, booleans and nulls rather than quoted strings.
//
// # Thread Safety
//
// Nodes are not thread-safe. A View is valid only while the tree it
// references is alive and unmutated.
//
// # Related Packages
//
//   - github.com/yamlet-format/go-yamlet/parse - parses text into node trees
//   - github.com/yamlet-format/go-yamlet/encode - encodes node trees to text
//   - github.com/yamlet-format/go-yamlet/query - expression evaluation over trees
package ir
