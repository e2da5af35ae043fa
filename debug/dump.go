package debug

import (
	"fmt"
	"io"
	"strings"

	"github.com/yamlet-format/go-yamlet/ir"
)

// Dump writes an indented rendering of the tree for troubleshooting. It is
// independent of the encoder: plain scalars print inline, literal and
// folded scalars print their header character with content lines one level
// deeper.
func Dump(w io.Writer, n ir.Node) {
	dumpNode(w, n, 0)
}

func dumpNode(w io.Writer, n ir.Node, indent int) {
	ind := strings.Repeat("  ", indent)
	switch t := n.(type) {
	case nil:
		fmt.Fprintf(w, "%s<nil>\n", ind)
	case *ir.Scalar:
		if t.Style != ir.Plain {
			fmt.Fprintf(w, "%s%s\n", ind, t.Style.Indicator())
			sub := strings.Repeat("  ", indent+1)
			for _, ln := range strings.Split(strings.TrimSuffix(t.Value, "\n"), "\n") {
				fmt.Fprintf(w, "%s%s\n", sub, ln)
			}
			return
		}
		fmt.Fprintf(w, "%s%s\n", ind, t.Value)
	case *ir.Sequence:
		for _, item := range t.Items {
			if s, ok := item.(*ir.Scalar); ok && s.Style == ir.Plain {
				fmt.Fprintf(w, "%s- %s\n", ind, s.Value)
				continue
			}
			fmt.Fprintf(w, "%s-\n", ind)
			dumpNode(w, item, indent+1)
		}
	case *ir.Mapping:
		for i, k := range t.Keys {
			v := t.Values[i]
			if s, ok := v.(*ir.Scalar); ok && s.Style == ir.Plain {
				fmt.Fprintf(w, "%s%s: %s\n", ind, k, s.Value)
				continue
			}
			fmt.Fprintf(w, "%s%s:\n", ind, k)
			dumpNode(w, v, indent+1)
		}
	}
}

func sprintNode(n ir.Node) string {
	var b strings.Builder
	dumpNode(&b, n, 0)
	return b.String()
}
