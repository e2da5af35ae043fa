package parse

import (
	"io"
	"strings"
)

// chomp selects the trailing-newline rule for a block scalar.
type chomp byte

const (
	chompClip  chomp = 0
	chompStrip chomp = '-'
	chompKeep  chomp = '+'
)

// readBlock consumes the lines of a block scalar following its header
// line. Content lines must be indented strictly deeper than the header;
// each is stripped of all its leading spaces (relative indentation is not
// preserved) and newline-terminated in the result. Blank lines are kept as
// empty lines only once content has begun, so the chomp step can see the
// trailing run. The dedenting line is pushed back for the driver. A header
// with no content lines at all is an error.
func (p *parser) readBlock(headerIndent, headerLine int) (string, error) {
	var b strings.Builder
	hasContent := false
	for {
		l, err := p.lines.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if l.blank() {
			if hasContent {
				b.WriteByte('\n')
			}
			continue
		}
		if l.indent <= headerIndent {
			p.lines.unread(l)
			break
		}
		hasContent = true
		b.WriteString(l.raw[l.indent:])
		b.WriteByte('\n')
	}
	if !hasContent {
		return "", errAt(ErrStructure, Pos{Line: headerLine}, "block scalar with no indented content")
	}
	return b.String(), nil
}

// applyChomp applies the chomp rule: strip removes all trailing newlines,
// keep returns the text unmodified, clip leaves exactly one.
func applyChomp(content string, c chomp) string {
	if content == "" {
		return content
	}
	base := strings.TrimRight(content, "\n")
	if base == "" {
		return ""
	}
	switch c {
	case chompStrip:
		return base
	case chompKeep:
		return content
	default:
		return base + "\n"
	}
}

// foldBlock folds a '>' block before chomping: each line is right-trimmed,
// runs of nonblank lines join with single spaces, and a blank gap
// collapses to exactly one newline. The result carries no trailing
// newline; the chomp step adds one back under clip.
func foldBlock(content string) string {
	var b strings.Builder
	first := true
	paragraph := false
	for _, ln := range strings.Split(content, "\n") {
		if ln == "" {
			paragraph = true
			continue
		}
		if !first {
			if paragraph {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString(strings.TrimRight(ln, " \t"))
		first = false
		paragraph = false
	}
	return b.String()
}
