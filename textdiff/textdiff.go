// Package textdiff computes line-oriented diffs of rendered documents.
package textdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines returns a line diff from one text to another, with each line
// prefixed by "- ", "+ " or two spaces. Equal texts yield the empty
// string.
func Lines(from, to string) string {
	if from == to {
		return ""
	}
	diffCfg := diffpatch.New()
	a, b, lineText := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMain(a, b, false), lineText)
	var out strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		if diff.Text == "" {
			continue
		}
		prefix := "  "
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for _, ln := range strings.Split(strings.TrimSuffix(diff.Text, "\n"), "\n") {
			out.WriteString(prefix)
			out.WriteString(ln)
			out.WriteByte('\n')
		}
	}
	return out.String()
}

// Changed reports the number of "-" and "+" lines in a diff produced by
// Lines.
func Changed(diff string) (del, ins int) {
	for _, ln := range strings.Split(diff, "\n") {
		switch {
		case strings.HasPrefix(ln, "- "):
			del++
		case strings.HasPrefix(ln, "+ "):
			ins++
		}
	}
	return del, ins
}
