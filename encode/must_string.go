package encode

import (
	"bytes"
	"strings"

	"github.com/yamlet-format/go-yamlet/ir"
)

// MustString renders node to a string with surrounding whitespace
// trimmed, panicking on error. It is intended for tests and debug output.
func MustString(node ir.Node, opts ...EncodeOption) string {
	var b bytes.Buffer
	if err := Encode(node, &b, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(b.String())
}
