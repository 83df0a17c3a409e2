package encode

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/versa-format/go-versa/ir"
	"github.com/versa-format/go-versa/token"
)

func yamlNode(b *bytes.Buffer, n *ir.Node, es *EncState, depth, unit int) error {
	pad := strings.Repeat(" ", depth*unit)
	for _, e := range n.Order {
		switch e.Kind {
		case ir.EmptyLineEntry:
			b.WriteByte('\n')
		case ir.CommentEntry:
			// standalone comments keep their absolute source column
			ind := strings.Repeat(" ", e.Comment.Indent)
			for _, line := range e.Comment.Lines() {
				b.WriteString(ind)
				b.WriteString(es.comment("#" + line))
				b.WriteByte('\n')
			}
		case ir.ValueEntry:
			if err := yamlValueLine(b, e.Value, es, pad, unit); err != nil {
				return err
			}
		case ir.BranchEntry:
			if err := yamlBranch(b, e.Branch, es, depth, unit, pad); err != nil {
				return err
			}
		}
	}
	return nil
}

func yamlValueLine(b *bytes.Buffer, v *ir.Value, es *EncState, pad string, unit int) error {
	inline := v.InlineComment()
	if inline != nil && inline.Multiline() {
		return &RenderError{Name: v.Name, Reason: "inline comment spans multiple lines"}
	}
	s, err := yamlValue(v, es)
	if err != nil {
		return err
	}
	if v.Name == "" {
		b.WriteString(pad)
		b.WriteString("- ")
		b.WriteString(s)
		if inline != nil {
			b.WriteByte(' ')
			b.WriteString(es.comment("#" + inline.Text))
		}
		b.WriteByte('\n')
		return nil
	}
	b.WriteString(pad)
	b.WriteString(es.key(v.Kind, v.Name))
	b.WriteString(es.sep(":"))
	if strings.IndexByte(s, '\n') != -1 {
		// block form: the comment stays on the key's line
		if inline != nil {
			b.WriteByte(' ')
			b.WriteString(es.comment("#" + inline.Text))
		}
		b.WriteByte('\n')
		ind := pad + strings.Repeat(" ", unit)
		for _, line := range strings.Split(s, "\n") {
			b.WriteString(ind)
			b.WriteString(line)
			b.WriteByte('\n')
		}
		return nil
	}
	b.WriteByte(' ')
	b.WriteString(s)
	if inline != nil {
		b.WriteByte(' ')
		b.WriteString(es.comment("#" + inline.Text))
	}
	b.WriteByte('\n')
	return nil
}

// yamlValue renders just the value text, without key, colon, list marker,
// or indentation.
func yamlValue(v *ir.Value, es *EncState) (string, error) {
	switch v.Kind {
	case ir.StringKind:
		return es.val(v.Kind, token.QuoteEscaped(v.Str)), nil
	case ir.BoolKind:
		return es.val(v.Kind, strconv.FormatBool(v.Bool)), nil
	case ir.IntKind, ir.LongKind:
		return es.val(v.Kind, strconv.FormatInt(v.Int64, 10)), nil
	case ir.FloatKind, ir.DoubleKind:
		return es.val(v.Kind, formatFloat(v.Float64)), nil
	case ir.ListKind:
		var b strings.Builder
		for i, e := range v.List {
			s, err := yamlValue(e, es)
			if err != nil {
				return "", err
			}
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString("- ")
			b.WriteString(s)
		}
		return b.String(), nil
	case ir.BranchListKind:
		var b bytes.Buffer
		for _, br := range v.Branches {
			b.WriteString("-\n")
			unit := br.IndentUnit
			if unit <= 0 {
				unit = 2
			}
			if err := yamlNode(&b, br, es, 1, unit); err != nil {
				return "", err
			}
		}
		return strings.TrimSuffix(b.String(), "\n"), nil
	}
	return "", nil
}

func yamlBranch(b *bytes.Buffer, ch *ir.Node, es *EncState, depth, unit int, pad string) error {
	b.WriteString(pad)
	b.WriteString(es.branchName(ch.Name))
	b.WriteString(es.sep(":"))
	if c := ch.StartComment; c != nil {
		lines := c.Lines()
		b.WriteByte(' ')
		b.WriteString(es.comment("#" + lines[0]))
		b.WriteByte('\n')
		ind := pad + strings.Repeat(" ", unit)
		for _, l := range lines[1:] {
			b.WriteString(ind)
			b.WriteString(es.comment("#" + l))
			b.WriteByte('\n')
		}
	} else {
		b.WriteByte('\n')
	}
	if err := yamlNode(b, ch, es, depth+1, unit); err != nil {
		return err
	}
	if c := ch.EndComment; c != nil {
		// no closing delimiter to hang on: the comment becomes its own line
		for _, l := range c.Lines() {
			b.WriteString(pad)
			b.WriteString(es.comment("#" + l))
			b.WriteByte('\n')
		}
	}
	return nil
}
