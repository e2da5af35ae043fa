// Package yamlet reads and writes documents in yamlet, a small
// indentation-based configuration format. The format keeps YAML's overall
// shape while staying single-document and line-oriented: mappings and
// dash sequences by indentation, literal and folded block scalars with
// chomp indicators, one-line flow collections, comments, and untyped
// scalars that are classified on read rather than at parse time.
//
// # Usage
//
// Parse a document and read values through a view:
//
//	doc, err := yamlet.ParseFile("app.yl")
//	if err != nil {
//		return err
//	}
//	host := doc.View().At("server.host").StrOr("localhost")
//	port := doc.View().At("server.port").IntOr(8080)
//
// Render it back:
//
//	data, err := yamlet.Marshal(doc)
//
// [Diff] compares two documents line by line, [Patch] applies an RFC 6902
// JSON patch, and [Match] and [Trim] work with partial documents as
// patterns.
//
// # Related Packages
//
//   - github.com/yamlet-format/go-yamlet/parse - parse yamlet text
//   - github.com/yamlet-format/go-yamlet/encode - encode IR to text
//   - github.com/yamlet-format/go-yamlet/ir - the node tree and views
//   - github.com/yamlet-format/go-yamlet/query - expressions over documents
package yamlet
