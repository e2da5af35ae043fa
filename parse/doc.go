// Package parse parses yamlet text into IR nodes.
//
// # Usage
//
//	// Parse a document
//	root, err := parse.Parse([]byte("name: alice\nage: 30\n"))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from a string or a stream
//	root, err := parse.ParseString("items:\n  - one\n  - two\n")
//	root, err := parse.ParseReader(f)
//
//	// Parse with options
//	root, err := parse.Parse(data, parse.WithFilename("config.yl"))
//
// The document root is always a mapping. Parse errors wrap this package's
// sentinel errors and carry the line they were found on, so callers can
// classify failures with errors.Is.
//
// # Related Packages
//
//   - github.com/yamlet-format/go-yamlet/ir - IR representation
//   - github.com/yamlet-format/go-yamlet/encode - Encode IR to text
package parse
