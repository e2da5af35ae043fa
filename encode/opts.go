package encode

// EncodeOption is the type of options to Encode.
type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting level. The default is 2.
func Indent(n int) EncodeOption {
	return func(es *EncState) {
		es.indent = n
	}
}

// FlowLimit sets the largest collection written in flow form. Collections
// with more entries, or with non-scalar members, are written in block
// form. The default is 5.
func FlowLimit(n int) EncodeOption {
	return func(es *EncState) {
		es.flowLimit = n
	}
}

// Depth sets the starting nesting level, for nesting the output under an
// existing document.
func Depth(n int) EncodeOption {
	return func(es *EncState) {
		es.depth = n
	}
}

// EncodeColors renders the output with ANSI colors.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		es.Color = c.Color
	}
}
