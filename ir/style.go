package ir

import "fmt"

// Style records how a scalar was written in the source. It affects only
// emission and whether continuation-line folding applies during parsing.
type Style int

const (
	Plain Style = iota
	Literal
	Folded
)

func (s Style) String() string {
	v, ok := map[Style]string{
		Plain:   "Plain",
		Literal: "Literal",
		Folded:  "Folded",
	}[s]
	if ok {
		return v
	}
	return "<unknown style>"
}

func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Style) UnmarshalText(d []byte) error {
	ss, ok := map[string]Style{
		"Plain":   Plain,
		"Literal": Literal,
		"Folded":  Folded,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized style %q", d)
	}
	*s = ss
	return nil
}

func Styles() []Style {
	return []Style{Plain, Literal, Folded}
}

// Indicator returns the block header character for the style, or "" for
// Plain.
func (s Style) Indicator() string {
	switch s {
	case Literal:
		return "|"
	case Folded:
		return ">"
	default:
		return ""
	}
}
