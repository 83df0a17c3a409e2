package encode

import (
	"bytes"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/versa-format/go-versa/format"
	"github.com/versa-format/go-versa/ir"
)

// EncState carries the settings of one encode call.
type EncState struct {
	depth     int
	unit      int
	format    format.Format
	hasFormat bool

	Color func(ir.Kind, ColorAttr, string) string
}

// Encode renders node to w. The syntax defaults to the tree's Language and
// can be overridden with EncodeFormat. Layout entries render in order;
// at depth zero trailing newlines collapse into at most one, present only
// when the tree was read from input ending in a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	out, err := String(node, opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// String renders node to a string.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	f := node.Language
	if es.hasFormat {
		f = es.format
	}
	var buf bytes.Buffer
	var err error
	if f.IsYAML() {
		err = yamlNode(&buf, node, es, es.depth, resolveUnit(node, es, 2))
	} else {
		err = versaNode(&buf, node, es, es.depth, resolveUnit(node, es, 4))
	}
	if err != nil {
		return "", err
	}
	out := buf.String()
	if es.depth == 0 {
		out = strings.TrimRight(out, "\n")
		if node.EndsWithNewline {
			out += "\n"
		}
	}
	return out, nil
}

// Value renders just the value text of v, without a key or assignment.
// The syntax defaults to Versa and can be overridden with EncodeFormat.
func Value(v *ir.Value, opts ...EncodeOption) (string, error) {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if es.hasFormat && es.format.IsYAML() {
		return yamlValue(v, es)
	}
	return versaValue(v, es)
}

// resolveUnit picks the indent width: an explicit option wins, then the
// unit observed at parse time, then the syntax default.
func resolveUnit(node *ir.Node, es *EncState, def int) int {
	if es.unit > 0 {
		return es.unit
	}
	if node.IndentUnit > 0 {
		return node.IndentUnit
	}
	return def
}

// formatFloat renders floats so they read back as floats: an integral
// mantissa gets a ".0" suffix.
func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func (es *EncState) key(k ir.Kind, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, KeyColor, s)
}

func (es *EncState) branchName(s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(ir.BranchListKind, KeyColor, s)
}

func (es *EncState) val(k ir.Kind, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, ValueColor, s)
}

func (es *EncState) comment(s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(ir.StringKind, CommentColor, s)
}

func (es *EncState) sep(s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(ir.StringKind, SepColor, s)
}
