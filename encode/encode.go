package encode

import (
	"io"
	"strings"

	"github.com/yamlet-format/go-yamlet/ir"
)

type EncState struct {
	line, col     int
	depth, indent int
	flowLimit     int

	Color func(ir.Class, ColorAttr, string) string
}

// Encode writes node as yamlet text. The document root is always written
// in block form so the result parses back; nested collections may take
// the one-line flow form when small enough.
func Encode(node ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent:    2,
		flowLimit: 5,
	}
	for _, opt := range opts {
		opt(es)
	}
	var err error
	if m, ok := node.(*ir.Mapping); ok {
		err = encodeEntries(m, w, es)
	} else {
		err = encode(node, w, es)
	}
	if err != nil {
		return err
	}
	return writeString(w, "\n")
}

// Helper functions for writing

func writeNL(w io.Writer, es *EncState) error {
	if es.line == 0 && es.col == 0 {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	if err := writeString(w, "\n"+indentString); err != nil {
		return err
	}
	es.line++
	es.col = len(indentString)
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, cl ir.Class, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(cl, attr, v)
}

func writeSep(w io.Writer, es *EncState, sep string) error {
	es.col += len(sep)
	return writeString(w, applyColor(es, ir.ClassString, SepColor, sep))
}

// Main encode function

func encode(node ir.Node, w io.Writer, es *EncState) error {
	switch n := node.(type) {
	case *ir.Scalar:
		return encodeScalar(n, w, es)
	case *ir.Sequence:
		return encodeSequence(n, w, es)
	case *ir.Mapping:
		return encodeMapping(n, w, es)
	default:
		panic("kind")
	}
}

// Mapping encoding

func encodeMapping(m *ir.Mapping, w io.Writer, es *EncState) error {
	if flowableMapping(m, es) {
		return writeFlowMapping(m, w, es)
	}
	return encodeEntries(m, w, es)
}

func encodeEntries(m *ir.Mapping, w io.Writer, es *EncState) error {
	for i, key := range m.Keys {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, key, es); err != nil {
			return err
		}
		if err := encodeValue(m.Values[i], w, es); err != nil {
			return err
		}
	}
	return nil
}

func writeField(w io.Writer, f string, es *EncState) error {
	es.col += len(f) + 1
	f = applyColor(es, ir.ClassString, FieldColor, f)
	sep := applyColor(es, ir.ClassString, SepColor, ":")
	return writeString(w, f+sep)
}

// encodeValue writes what follows "key:". Scalars with newlines, and
// scalars that would read back as flow collections, take a block header;
// small all-scalar collections take flow form; everything else opens an
// indented block on the next line.
func encodeValue(node ir.Node, w io.Writer, es *EncState) error {
	switch n := node.(type) {
	case *ir.Scalar:
		if blockForm(n.Value) {
			if err := writeString(w, " "); err != nil {
				return err
			}
			es.col++
			return writeBlockScalar(n, w, es)
		}
		v := quoteScalar(n.Value)
		es.col += 1 + len(v)
		return writeString(w, " "+applyColor(es, ir.Classify(n.Value), ValueColor, v))
	case *ir.Sequence:
		if flowableSequence(n, es) {
			if err := writeString(w, " "); err != nil {
				return err
			}
			es.col++
			return writeFlowSequence(n, w, es)
		}
		es.depth++
		err := encodeSeqItems(n, w, es)
		es.depth--
		return err
	case *ir.Mapping:
		if flowableMapping(n, es) {
			if err := writeString(w, " "); err != nil {
				return err
			}
			es.col++
			return writeFlowMapping(n, w, es)
		}
		es.depth++
		err := encodeEntries(n, w, es)
		es.depth--
		return err
	default:
		panic("kind")
	}
}

// Sequence encoding

func encodeSequence(s *ir.Sequence, w io.Writer, es *EncState) error {
	if flowableSequence(s, es) {
		return writeFlowSequence(s, w, es)
	}
	return encodeSeqItems(s, w, es)
}

func encodeSeqItems(s *ir.Sequence, w io.Writer, es *EncState) error {
	for _, item := range s.Items {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeSep(w, es, "-"); err != nil {
			return err
		}
		if err := writeString(w, " "); err != nil {
			return err
		}
		es.col++
		if err := encodeItem(item, w, es); err != nil {
			return err
		}
	}
	return nil
}

// encodeItem writes what follows "- ". The parser keeps item text raw,
// so scalars and single-key entries are written verbatim; anything the
// item line cannot carry opens an indented block on the next line. Flow
// form never appears here, as item text is not flow-parsed on the way
// back in.
func encodeItem(node ir.Node, w io.Writer, es *EncState) error {
	switch n := node.(type) {
	case *ir.Scalar:
		v := n.Value
		if v == "" || strings.Contains(v, "\n") {
			v = quote(v)
		}
		es.col += len(v)
		return writeString(w, applyColor(es, ir.Classify(n.Value), ValueColor, v))
	case *ir.Sequence:
		es.depth++
		err := encodeSeqItems(n, w, es)
		es.depth--
		return err
	case *ir.Mapping:
		if key, val, ok := inlineEntry(n); ok {
			if err := writeField(w, key, es); err != nil {
				return err
			}
			if val == "" {
				return nil
			}
			es.col += 1 + len(val)
			return writeString(w, " "+applyColor(es, ir.Classify(val), ValueColor, val))
		}
		es.depth++
		err := encodeEntries(n, w, es)
		es.depth--
		return err
	default:
		panic("kind")
	}
}

// inlineEntry reports whether m is a single-entry mapping whose entry can
// sit on the dash line as "- key: value". The item line is cut at its
// first colon on the way back in, so the key must be colon-free.
func inlineEntry(m *ir.Mapping) (string, string, bool) {
	if m.Len() != 1 {
		return "", "", false
	}
	key := m.Keys[0]
	if key == "" || strings.ContainsAny(key, ":\n") {
		return "", "", false
	}
	s, ok := m.Values[0].(*ir.Scalar)
	if !ok || strings.Contains(s.Value, "\n") {
		return "", "", false
	}
	return key, s.Value, true
}

// Scalar encoding

func encodeScalar(s *ir.Scalar, w io.Writer, es *EncState) error {
	if err := writeNL(w, es); err != nil {
		return err
	}
	if blockForm(s.Value) {
		return writeBlockScalar(s, w, es)
	}
	v := quoteScalar(s.Value)
	es.col += len(v)
	return writeString(w, applyColor(es, ir.Classify(s.Value), ValueColor, v))
}

// blockForm reports whether a scalar value must be written under a block
// header. Newlines have no inline spelling, and text shaped like a flow
// collection would be flow-parsed on the way back in, quoted or not. A
// block needs at least one nonblank body line to parse, so all-blank
// values stay inline.
func blockForm(v string) bool {
	if !strings.Contains(v, "\n") && !flowShaped(v) {
		return false
	}
	for _, ln := range strings.Split(strings.TrimSuffix(v, "\n"), "\n") {
		if strings.Trim(ln, " \t") != "" {
			return true
		}
	}
	return false
}

func flowShaped(v string) bool {
	t := strings.Trim(v, " \t")
	if len(t) < 2 {
		return false
	}
	return t[0] == '[' && t[len(t)-1] == ']' || t[0] == '{' && t[len(t)-1] == '}'
}

// writeBlockScalar writes a "|" or ">" header with its chomp suffix and
// the body lines one level deeper. A folded header is only used when
// folding the body back yields the value exactly; otherwise the style
// falls back to literal, which keeps the content.
func writeBlockScalar(s *ir.Scalar, w io.Writer, es *EncState) error {
	folded := s.Style == ir.Folded && foldRoundTrips(s.Value)
	h := blockHeader(s.Value, folded)
	es.col += len(h)
	if err := writeString(w, applyColor(es, ir.ClassString, HeaderColor, h)); err != nil {
		return err
	}
	return writeBlockBody(blockLines(s.Value, folded), w, es)
}

// blockHeader picks the chomp suffix from the value's trailing newlines,
// so parsing the block restores them exactly.
func blockHeader(v string, folded bool) string {
	h := "|"
	if folded {
		h = ">"
	}
	switch {
	case !strings.HasSuffix(v, "\n"):
		h += "-"
	case strings.HasSuffix(v, "\n\n"):
		h += "+"
	}
	return h
}

// foldRoundTrips reports whether folding reverses the blank-line
// interleave blockLines produces. Folding eats trailing whitespace, blank
// runs, and any newlines past the first trailing one, so values with
// those cannot use a folded header.
func foldRoundTrips(v string) bool {
	if strings.HasSuffix(v, "\n\n") {
		return false
	}
	for _, ln := range strings.Split(strings.TrimSuffix(v, "\n"), "\n") {
		if ln == "" || strings.TrimRight(ln, " \t") != ln {
			return false
		}
	}
	return true
}

// blockLines returns the body lines under a block header. Folded bodies
// get a blank separator line wherever the text has a newline, so folding
// them back restores the newline.
func blockLines(v string, folded bool) []string {
	lines := strings.Split(strings.TrimSuffix(v, "\n"), "\n")
	if !folded {
		return lines
	}
	out := make([]string, 0, 2*len(lines))
	for i, ln := range lines {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, ln)
	}
	return out
}

func writeBlockBody(lines []string, w io.Writer, es *EncState) error {
	es.depth++
	defer func() { es.depth-- }()
	ind := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	for _, ln := range lines {
		if ln == "" {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
			es.line++
			es.col = 0
			continue
		}
		if err := writeString(w, "\n"+ind+applyColor(es, ir.ClassString, ValueColor, ln)); err != nil {
			return err
		}
		es.line++
		es.col = len(ind) + len(ln)
	}
	return nil
}

// Flow encoding

// flowSafe reports whether text can sit unquoted inside a flow collection
// and survive the comma split and colon cut on the way back in.
func flowSafe(v string) bool {
	if v == "" {
		return false
	}
	if strings.Trim(v, " \t") != v {
		return false
	}
	return !strings.ContainsAny(v, ",:#{}[]\"'\n")
}

func flowableMapping(m *ir.Mapping, es *EncState) bool {
	if m.Len() == 0 {
		return true
	}
	if m.Len() > es.flowLimit {
		return false
	}
	for i, key := range m.Keys {
		if !flowSafe(key) {
			return false
		}
		s, ok := m.Values[i].(*ir.Scalar)
		if !ok || s.Style != ir.Plain || !flowSafe(s.Value) {
			return false
		}
	}
	return true
}

func flowableSequence(s *ir.Sequence, es *EncState) bool {
	if s.Len() == 0 {
		return true
	}
	if s.Len() > es.flowLimit {
		return false
	}
	for _, item := range s.Items {
		sc, ok := item.(*ir.Scalar)
		if !ok || sc.Style != ir.Plain || !flowSafe(sc.Value) {
			return false
		}
	}
	return true
}

// writeFlowMapping writes "{k:v, k2:v2}". No space follows the colon;
// with one, the line would read back as an ambiguous unquoted value.
func writeFlowMapping(m *ir.Mapping, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, "{"); err != nil {
		return err
	}
	for i, key := range m.Keys {
		if i > 0 {
			if err := writeSep(w, es, ", "); err != nil {
				return err
			}
		}
		es.col += len(key)
		if err := writeString(w, applyColor(es, ir.ClassString, FieldColor, key)); err != nil {
			return err
		}
		if err := writeSep(w, es, ":"); err != nil {
			return err
		}
		v := m.Values[i].(*ir.Scalar).Value
		es.col += len(v)
		if err := writeString(w, applyColor(es, ir.Classify(v), ValueColor, v)); err != nil {
			return err
		}
	}
	return writeSep(w, es, "}")
}

func writeFlowSequence(s *ir.Sequence, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, "["); err != nil {
		return err
	}
	for i, item := range s.Items {
		if i > 0 {
			if err := writeSep(w, es, ", "); err != nil {
				return err
			}
		}
		v := item.(*ir.Scalar).Value
		es.col += len(v)
		if err := writeString(w, applyColor(es, ir.Classify(v), ValueColor, v)); err != nil {
			return err
		}
	}
	return writeSep(w, es, "]")
}

// String quoting helper

// quoteScalar quotes text the parser could not otherwise read back as the
// same scalar: the empty string, newlines with no block body, ": ",
// whitespace at either end, and text already wrapped in quote marks.
func quoteScalar(v string) string {
	switch {
	case v == "",
		strings.Contains(v, "\n"),
		strings.Contains(v, ": "),
		strings.Trim(v, " \t") != v,
		quoteShaped(v):
		return quote(v)
	}
	return v
}

func quoteShaped(v string) bool {
	if len(v) < 2 {
		return false
	}
	return v[0] == '"' && v[len(v)-1] == '"' || v[0] == '\'' && v[len(v)-1] == '\''
}

func quote(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '\\', '"':
			b.WriteByte('\\')
			b.WriteByte(v[i])
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(v[i])
		}
	}
	b.WriteByte('"')
	return b.String()
}
