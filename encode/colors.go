package encode

import (
	"strings"

	"github.com/versa-format/go-versa/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind ir.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	KeyColor
	ValueColor
	SepColor
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
	for _, k := range ir.Kinds() {
		able := Colorable{Kind: k, Attr: CommentColor}
		colors.Map[able] = color.BlueString
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = KeyColor
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	}
	// branch headers stand apart from value keys
	colors.Map[Colorable{Kind: ir.BranchListKind, Attr: KeyColor}] = color.RGB(128, 168, 196).SprintfFunc()

	able := Colorable{Attr: ValueColor}
	for _, k := range []ir.Kind{ir.IntKind, ir.LongKind, ir.FloatKind, ir.DoubleKind} {
		able.Kind = k
		colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	}
	able.Kind = ir.BoolKind
	colors.Map[able] = color.CyanString
	able.Kind = ir.StringKind
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k ir.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k ir.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
