package parse

import (
	"strings"

	"github.com/yamlet-format/go-yamlet/ir"
)

// unescape resolves backslash escapes inside quoted scalars: \n, \t, \\,
// \' and \". Any other escaped character is kept verbatim, and a lone
// trailing backslash is kept.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(s[i])
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// unquote strips matching surrounding single or double quotes and
// unescapes the inside. Text that is not quoted is returned unchanged
// with ok false.
func unquote(s string) (string, bool) {
	if len(s) > 1 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return unescape(s[1 : len(s)-1]), true
	}
	return s, false
}

// splitFlow splits flow content on every comma, with no nesting or quote
// awareness. The final empty piece a trailing comma leaves behind is
// dropped; interior empties are kept for the callers to judge.
func splitFlow(inner string) []string {
	pieces := strings.Split(inner, ",")
	if n := len(pieces); pieces[n-1] == "" {
		pieces = pieces[:n-1]
	}
	return pieces
}

// parseFlowSeq parses the text between '[' and ']'. Empty elements are
// silently dropped; elements are trimmed, unquoted and stored as plain
// scalars.
func parseFlowSeq(inner string) *ir.Sequence {
	seq := ir.NewSequence()
	for _, elt := range splitFlow(inner) {
		v := strings.Trim(elt, " \t")
		if v == "" {
			continue
		}
		v, _ = unquote(v)
		seq.Append(ir.FromString(v))
	}
	return seq
}

// parseFlowMap parses the text between '{' and '}'. Every element needs a
// colon and a nonempty key; elements split at their first colon. Duplicate
// keys replace.
func parseFlowMap(inner string, num int) (*ir.Mapping, error) {
	m := ir.NewMapping()
	for _, elt := range splitFlow(inner) {
		k, v, ok := strings.Cut(elt, ":")
		if !ok {
			return nil, errAt(ErrInvalidFlow, Pos{Line: num}, "missing colon in %q", strings.Trim(elt, " \t"))
		}
		key := strings.Trim(k, " \t")
		if key == "" {
			return nil, errAt(ErrInvalidFlow, Pos{Line: num}, "empty key in %q", strings.Trim(elt, " \t"))
		}
		val := strings.Trim(v, " \t")
		val, _ = unquote(val)
		m.Set(key, ir.FromString(val))
	}
	return m, nil
}
