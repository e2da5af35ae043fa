package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/yamlet-format/go-yamlet/ir"
)

// Colorable selects a color by the classified scalar content and the role
// the text plays on the line.
type Colorable struct {
	Class ir.Class
	Attr  ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
	HeaderColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, c := range ir.Classes() {
		able := Colorable{Class: c, Attr: FieldColor}
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = HeaderColor
		colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Class = ir.ClassInt
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Class = ir.ClassFloat
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Class = ir.ClassBool
	colors.Map[able] = color.CyanString

	able.Class = ir.ClassNull
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Class = ir.ClassString
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(cl ir.Class, a ColorAttr, s string) string {
	return c.Get(cl, a)(s)
}

func (c *Colors) Get(cl ir.Class, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Class: cl, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
