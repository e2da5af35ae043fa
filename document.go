package yamlet

import (
	"bytes"
	"fmt"
	"io"
	"os"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/yamlet-format/go-yamlet/debug"
	"github.com/yamlet-format/go-yamlet/encode"
	"github.com/yamlet-format/go-yamlet/ir"
	"github.com/yamlet-format/go-yamlet/parse"
	"github.com/yamlet-format/go-yamlet/textdiff"
)

// Document is a parsed yamlet document. The root is always a mapping.
type Document struct {
	Root *ir.Mapping
}

// Parse parses a document from data.
func Parse(data []byte, opts ...parse.ParseOption) (*Document, error) {
	root, err := parse.Parse(data, opts...)
	if err != nil {
		return nil, err
	}
	return &Document{Root: root}, nil
}

// ParseReader parses a document from r.
func ParseReader(r io.Reader, opts ...parse.ParseOption) (*Document, error) {
	root, err := parse.ParseReader(r, opts...)
	if err != nil {
		return nil, err
	}
	return &Document{Root: root}, nil
}

// ParseFile parses the file at path. Open failures are reported as
// [parse.ErrFile]; parse errors name the path.
func ParseFile(path string, opts ...parse.ParseOption) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", parse.ErrFile, err)
	}
	defer f.Close()
	return ParseReader(f, append([]parse.ParseOption{parse.WithFilename(path)}, opts...)...)
}

// View returns a view of the document root for typed reads.
func (d *Document) View() ir.View {
	return ir.NewView(d.Root)
}

// Encode writes the document to w.
func (d *Document) Encode(w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(d.Root, w, opts...)
}

// Marshal renders the document to bytes.
func Marshal(doc *Document, opts ...encode.EncodeOption) ([]byte, error) {
	var b bytes.Buffer
	if err := encode.Encode(doc.Root, &b, opts...); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Diff renders both documents and returns a line diff of the texts, empty
// when they render identically.
func Diff(a, b *Document, opts ...encode.EncodeOption) (string, error) {
	at, err := Marshal(a, opts...)
	if err != nil {
		return "", err
	}
	bt, err := Marshal(b, opts...)
	if err != nil {
		return "", err
	}
	return textdiff.Lines(string(at), string(bt)), nil
}

// Patch applies an RFC 6902 JSON patch to the document through the JSON
// bridge and returns the patched document. The bridge projects mappings
// to JSON objects, so key order is not preserved; keys come back sorted.
func Patch(doc *Document, patchJSON []byte) (*Document, error) {
	p, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}
	data, err := ir.ToJSON(doc.Root)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("patch: %d ops against %d bytes\n", len(p), len(data))
	}
	patched, err := p.Apply(data)
	if err != nil {
		return nil, fmt.Errorf("apply patch: %w", err)
	}
	n, err := ir.FromJSON(patched)
	if err != nil {
		return nil, err
	}
	m, err := ir.AsMapping(n)
	if err != nil {
		return nil, err
	}
	return &Document{Root: m}, nil
}
