package parse

import (
	"errors"
	"fmt"
	"strconv"
)

// All parse errors wrap one of these sentinels, so callers can classify
// failures with errors.Is. Every error carries a position; indentation
// errors also carry a column.
var (
	ErrIndent           = errors.New("invalid indentation")
	ErrStructure        = errors.New("invalid structure")
	ErrUnexpectedIndent = errors.New("unexpected indentation")
	ErrMissingColon     = errors.New("missing colon")
	ErrEmptyKey         = errors.New("empty key")
	ErrAmbiguousColon   = errors.New("ambiguous colon")
	ErrInvalidFlow      = errors.New("invalid flow collection")
	ErrFile             = errors.New("cannot open file")
)

// Pos locates an error in the input. Line is 1-based. Col is 1-based and
// zero when unknown.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	if p.Col > 0 {
		return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Col)
	}
	return strconv.Itoa(p.Line)
}

func errAt(sentinel error, pos Pos, format string, args ...any) error {
	detail := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: %s at %s", sentinel, detail, pos)
}
