package parse

import (
	"bufio"
	"io"
	"strings"
)

// line is one source line after comment stripping.
type line struct {
	raw     string // comment-stripped text, leading whitespace intact
	content string // raw with surrounding spaces and tabs trimmed
	indent  int    // count of leading spaces
	num     int    // 1-based
}

func (l line) blank() bool {
	return l.content == ""
}

// lineReader iterates source lines. It strips comments (everything from
// the first '#', with no quote awareness), measures indentation, rejects
// tabs in the leading whitespace of non-blank lines, and supports a single
// line of pushback for the driver's lookahead.
type lineReader struct {
	r    *bufio.Reader
	num  int
	held *line
	eof  bool
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// next returns the next line or io.EOF. Blank lines are returned, not
// skipped; whitespace-only lines are blank and bypass the tab check.
func (lr *lineReader) next() (line, error) {
	if lr.held != nil {
		l := *lr.held
		lr.held = nil
		return l, nil
	}
	if lr.eof {
		return line{}, io.EOF
	}
	s, err := lr.r.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return line{}, err
		}
		lr.eof = true
		if s == "" {
			return line{}, io.EOF
		}
	}
	lr.num++
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	if i := strings.IndexByte(s, '#'); i != -1 {
		s = s[:i]
	}
	content := strings.Trim(s, " \t")
	if content == "" {
		return line{raw: s, num: lr.num}, nil
	}
	indent := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			indent++
			continue
		}
		if s[i] == '\t' {
			return line{}, errAt(ErrIndent, Pos{Line: lr.num, Col: indent + 1}, "tab in leading whitespace")
		}
		break
	}
	return line{raw: s, content: content, indent: indent, num: lr.num}, nil
}

// unread pushes l back; the next call to next returns it again.
func (lr *lineReader) unread(l line) {
	lr.held = &l
}
