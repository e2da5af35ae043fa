package parse

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yamlet-format/go-yamlet/debug"
	"github.com/yamlet-format/go-yamlet/ir"
)

// Parse parses a complete document held in memory. The document root is
// always a mapping.
func Parse(d []byte, opts ...ParseOption) (*ir.Mapping, error) {
	return ParseReader(bytes.NewReader(d), opts...)
}

// ParseString parses a complete document held in a string.
func ParseString(s string, opts ...ParseOption) (*ir.Mapping, error) {
	return ParseReader(strings.NewReader(s), opts...)
}

// ParseReader parses a document from r, one line at a time. Errors wrap
// one of this package's sentinels and carry a line position.
func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Mapping, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{lines: newLineReader(r), opts: pOpts}
	root, err := p.run()
	if err != nil {
		if pOpts.filename != "" {
			return nil, fmt.Errorf("%s: %w", pOpts.filename, err)
		}
		return nil, err
	}
	return root, nil
}

// frame is one open container on the indentation stack, with the indent
// of the line that opened it. parent, key and index name the slot in the
// enclosing container that holds node, so an empty placeholder can be
// swapped for the other container kind when its first child arrives.
type frame struct {
	node   ir.Node
	indent int
	parent *frame
	key    string
	index  int
}

type parser struct {
	lines *lineReader
	opts  *parseOpts
	stack []*frame

	// lastScalar points at the most recent plain or quoted value so that
	// lines without a colon can continue it. lastScalarIndent is the
	// indent of the entry that produced it; anything indented deeper is
	// an error, since a scalar cannot hold children.
	lastScalar       *ir.Scalar
	lastScalarIndent int
}

func (p *parser) top() *frame { return p.stack[len(p.stack)-1] }

func (p *parser) push(f *frame) {
	p.stack = append(p.stack, f)
	if debug.Parse() {
		debug.Logf("parse: open %v at indent %d (depth %d)\n",
			f.node.Kind(), f.indent, len(p.stack))
	}
}

func (p *parser) run() (*ir.Mapping, error) {
	root := ir.NewMapping()
	p.stack = []*frame{{node: root, indent: -1}}
	for {
		l, err := p.lines.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if l.blank() {
			continue
		}
		for len(p.stack) > 1 && l.indent <= p.top().indent {
			p.stack = p.stack[:len(p.stack)-1]
		}
		if p.lastScalar != nil && l.indent > p.lastScalarIndent {
			return nil, errAt(ErrUnexpectedIndent, Pos{Line: l.num}, "indented line under a scalar value")
		}
		if l.content[0] == '-' {
			err = p.dashItem(l)
		} else {
			err = p.mapEntry(l)
		}
		if err != nil {
			return nil, err
		}
	}
	return root, nil
}

// dashItem handles a "- ..." line. A bare dash opens a mapping item for
// the entries below it; "- key: value" stores a one-entry mapping with
// the value kept verbatim; anything else is a scalar item.
func (p *parser) dashItem(l line) error {
	f := p.top()
	seq, err := p.coerceToSequence(f, l.num)
	if err != nil {
		return err
	}
	rest := strings.Trim(l.content[1:], " \t")
	if rest == "" {
		item := ir.NewMapping()
		seq.Append(item)
		p.push(&frame{node: item, indent: l.indent, parent: f, index: seq.Len() - 1})
		return nil
	}
	if key, val, ok := strings.Cut(rest, ":"); ok {
		key = strings.Trim(key, " \t")
		if key == "" {
			return errAt(ErrEmptyKey, Pos{Line: l.num}, "empty key in sequence item")
		}
		seq.Append(ir.KeyVal(key, ir.FromString(strings.Trim(val, " \t"))))
		return nil
	}
	seq.Append(ir.FromString(rest))
	return nil
}

// mapEntry handles a "key: ..." line. Lines without a colon continue the
// preceding scalar value when there is one.
func (p *parser) mapEntry(l line) error {
	key, value, ok := strings.Cut(l.content, ":")
	if !ok {
		if p.lastScalar != nil {
			p.lastScalar.Value += "\n" + l.content
			return nil
		}
		return errAt(ErrMissingColon, Pos{Line: l.num}, "expected \"key: value\"")
	}
	key = strings.Trim(key, " \t")
	if key == "" {
		return errAt(ErrEmptyKey, Pos{Line: l.num}, "empty mapping key")
	}
	f := p.top()
	m, err := p.coerceToMapping(f, l.num)
	if err != nil {
		return err
	}
	p.lastScalar = nil
	value = strings.Trim(value, " \t")
	if value == "" {
		return p.openChild(f, m, key, l)
	}
	if value[0] == '|' || value[0] == '>' {
		return p.blockScalar(m, key, value, l)
	}
	unq, wasQuoted := unquote(value)
	if !wasQuoted && strings.Contains(unq, ": ") {
		return errAt(ErrAmbiguousColon, Pos{Line: l.num}, "\": \" in unquoted value %q", unq)
	}
	value = strings.Trim(unq, " \t")
	if n := len(value); n > 1 {
		switch {
		case value[0] == '[' && value[n-1] == ']':
			m.Set(key, parseFlowSeq(value[1:n-1]))
			return nil
		case value[0] == '{' && value[n-1] == '}':
			fm, err := parseFlowMap(value[1:n-1], l.num)
			if err != nil {
				return err
			}
			m.Set(key, fm)
			return nil
		}
	}
	s := ir.FromString(value)
	m.Set(key, s)
	p.lastScalar = s
	p.lastScalarIndent = l.indent
	return nil
}

// openChild handles "key:" with nothing after the colon. The next line
// decides whether the child is a sequence or a mapping; at end of input
// the child is an empty mapping.
func (p *parser) openChild(f *frame, m *ir.Mapping, key string, l line) error {
	var child ir.Node = ir.NewMapping()
	peek, err := p.lines.next()
	switch {
	case err == io.EOF:
	case err != nil:
		return err
	default:
		p.lines.unread(peek)
		if strings.HasPrefix(peek.content, "-") {
			child = ir.NewSequence()
		}
	}
	m.Set(key, child)
	p.push(&frame{node: child, indent: l.indent, parent: f, key: key})
	return nil
}

// blockScalar handles "key: |" and "key: >" headers. A '-' or '+'
// directly after the indicator selects the chomp; any further characters
// on the header line are ignored.
func (p *parser) blockScalar(m *ir.Mapping, key, value string, l line) error {
	style := ir.Literal
	if value[0] == '>' {
		style = ir.Folded
	}
	c := chompClip
	if len(value) > 1 {
		switch value[1] {
		case '-':
			c = chompStrip
		case '+':
			c = chompKeep
		}
	}
	text, err := p.readBlock(l.indent, l.num)
	if err != nil {
		return err
	}
	if debug.Parse() {
		debug.Logf("parse: line %d: block scalar %q, %d bytes\n", l.num, style.Indicator(), len(text))
	}
	if style == ir.Folded {
		text = foldBlock(text)
	}
	m.Set(key, &ir.Scalar{Value: applyChomp(text, c), Style: style})
	return nil
}

// coerceToSequence returns f's node as a sequence, replacing an empty
// mapping placeholder in place. A mapping that already has keys cannot
// become a sequence, and neither can the document root.
func (p *parser) coerceToSequence(f *frame, num int) (*ir.Sequence, error) {
	if seq, ok := f.node.(*ir.Sequence); ok {
		return seq, nil
	}
	if f.parent == nil {
		return nil, errAt(ErrStructure, Pos{Line: num}, "document root must be a mapping")
	}
	if m := f.node.(*ir.Mapping); m.Len() > 0 {
		return nil, errAt(ErrStructure, Pos{Line: num}, "sequence item in a mapping that already has keys")
	}
	seq := ir.NewSequence()
	replaceChild(f, seq)
	f.node = seq
	if debug.Parse() {
		debug.Logf("parse: line %d: empty mapping becomes a sequence\n", num)
	}
	return seq, nil
}

// coerceToMapping is the sequence-to-mapping counterpart. The root never
// needs it, so f always has a parent here.
func (p *parser) coerceToMapping(f *frame, num int) (*ir.Mapping, error) {
	if m, ok := f.node.(*ir.Mapping); ok {
		return m, nil
	}
	if seq := f.node.(*ir.Sequence); seq.Len() > 0 {
		return nil, errAt(ErrStructure, Pos{Line: num}, "mapping key in a sequence that already has items")
	}
	m := ir.NewMapping()
	replaceChild(f, m)
	f.node = m
	if debug.Parse() {
		debug.Logf("parse: line %d: empty sequence becomes a mapping\n", num)
	}
	return m, nil
}

func replaceChild(f *frame, n ir.Node) {
	switch pn := f.parent.node.(type) {
	case *ir.Mapping:
		pn.Set(f.key, n)
	case *ir.Sequence:
		pn.Items[f.index] = n
	default:
		panic("impossible parent kind")
	}
}
