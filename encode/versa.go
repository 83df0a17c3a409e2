package encode

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/versa-format/go-versa/ir"
	"github.com/versa-format/go-versa/token"
)

func versaNode(b *bytes.Buffer, n *ir.Node, es *EncState, depth, unit int) error {
	pad := strings.Repeat(" ", depth*unit)
	for _, e := range n.Order {
		switch e.Kind {
		case ir.EmptyLineEntry:
			b.WriteByte('\n')
		case ir.CommentEntry:
			prefix := e.Comment.Style.Prefix()
			for _, line := range e.Comment.Lines() {
				b.WriteString(pad)
				b.WriteString(es.comment(prefix + line))
				b.WriteByte('\n')
			}
		case ir.ValueEntry:
			// anonymous values render only through their branch's list form
			if e.Value.Name == "" {
				continue
			}
			if err := versaValueLine(b, e.Value, es, pad); err != nil {
				return err
			}
		case ir.BranchEntry:
			if err := versaBranch(b, e.Branch, es, depth, unit, pad); err != nil {
				return err
			}
		}
	}
	return nil
}

func versaValueLine(b *bytes.Buffer, v *ir.Value, es *EncState, pad string) error {
	s, err := versaValue(v, es)
	if err != nil {
		return err
	}
	b.WriteString(pad)
	b.WriteString(es.key(v.Kind, v.Name))
	if v.Assign == ':' {
		b.WriteString(es.sep(":") + " ")
	} else {
		b.WriteString(" " + es.sep("=") + " ")
	}
	b.WriteString(s)
	for _, c := range v.Comments {
		if c.Kind != ir.CommentInline {
			continue
		}
		if c.Multiline() {
			return &RenderError{Name: v.Name, Reason: "inline comment spans multiple lines"}
		}
		b.WriteByte(' ')
		b.WriteString(es.comment(c.Style.Prefix() + c.Text))
	}
	b.WriteByte('\n')
	return nil
}

// versaValue renders just the value text, without key, assignment, or
// indentation.
func versaValue(v *ir.Value, es *EncState) (string, error) {
	switch v.Kind {
	case ir.StringKind:
		return es.val(v.Kind, token.Quote(v.Str)), nil
	case ir.BoolKind:
		return es.val(v.Kind, strconv.FormatBool(v.Bool)), nil
	case ir.IntKind, ir.LongKind:
		return es.val(v.Kind, strconv.FormatInt(v.Int64, 10)), nil
	case ir.FloatKind, ir.DoubleKind:
		return es.val(v.Kind, formatFloat(v.Float64)), nil
	case ir.ListKind:
		var b strings.Builder
		b.WriteByte('[')
		for i, e := range v.List {
			if i > 0 {
				b.WriteString(", ")
			}
			s, err := versaValue(e, es)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		}
		b.WriteByte(']')
		return b.String(), nil
	case ir.BranchListKind:
		var b bytes.Buffer
		b.WriteString("[\n")
		for i, br := range v.Branches {
			b.WriteString("    {\n")
			unit := br.IndentUnit
			if unit <= 0 {
				unit = 4
			}
			if err := versaNode(&b, br, es, 2, unit); err != nil {
				return "", err
			}
			b.WriteString("    }")
			if i < len(v.Branches)-1 {
				b.WriteString(",\n")
			}
		}
		b.WriteString("\n]")
		return b.String(), nil
	}
	return "", nil
}

func versaBranch(b *bytes.Buffer, ch *ir.Node, es *EncState, depth, unit int, pad string) error {
	hasAnon, hasNamed := false, false
	for _, ce := range ch.Order {
		if ce.Kind == ir.ValueEntry {
			if ce.Value.Name == "" {
				hasAnon = true
			} else {
				hasNamed = true
			}
		}
	}
	if hasAnon && !hasNamed {
		return versaBlockList(b, ch, es, depth, unit, pad)
	}

	b.WriteString(pad)
	b.WriteString(es.branchName(ch.Name))
	b.WriteString(" " + es.sep("{"))
	inner := strings.Repeat(" ", (depth+1)*unit)
	if c := ch.StartComment; c != nil {
		branchComment(b, c, es, inner)
	} else {
		b.WriteByte('\n')
	}
	if err := versaNode(b, ch, es, depth+1, unit); err != nil {
		return err
	}
	b.WriteString(pad)
	b.WriteString(es.sep("}"))
	if c := ch.EndComment; c != nil {
		branchComment(b, c, es, inner)
	} else {
		b.WriteByte('\n')
	}
	return nil
}

// versaBlockList renders a branch holding only anonymous values as the
// multi-line list assignment form.
func versaBlockList(b *bytes.Buffer, ch *ir.Node, es *EncState, depth, unit int, pad string) error {
	b.WriteString(pad)
	b.WriteString(es.key(ir.ListKind, ch.Name))
	b.WriteString(" " + es.sep("=") + " [\n")
	inner := strings.Repeat(" ", (depth+1)*unit)
	for _, ce := range ch.Order {
		if ce.Kind != ir.ValueEntry || ce.Value.Name != "" {
			continue
		}
		s, err := versaValue(ce.Value, es)
		if err != nil {
			return err
		}
		b.WriteString(inner)
		b.WriteString(s)
		b.WriteString(",\n")
	}
	if d := b.Bytes(); len(d) >= 2 && d[len(d)-2] == ',' {
		b.Truncate(len(d) - 2)
		b.WriteByte('\n')
	}
	b.WriteString(pad)
	b.WriteString("]\n")
	for _, ce := range ch.Order {
		switch ce.Kind {
		case ir.CommentEntry:
			b.WriteString(pad)
			b.WriteString(es.comment(ce.Comment.Style.Prefix() + ce.Comment.Text))
			b.WriteByte('\n')
		case ir.EmptyLineEntry:
			b.WriteString(pad)
			b.WriteByte('\n')
		}
	}
	return nil
}

// branchComment writes a start or end comment on the delimiter's line,
// continuation lines one level deeper.
func branchComment(b *bytes.Buffer, c *ir.Comment, es *EncState, inner string) {
	lines := c.Lines()
	prefix := c.Style.Prefix()
	b.WriteByte(' ')
	b.WriteString(es.comment(prefix + lines[0]))
	b.WriteByte('\n')
	for _, l := range lines[1:] {
		b.WriteString(inner)
		b.WriteString(es.comment(prefix + l))
		b.WriteByte('\n')
	}
}
