package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/versa-format/go-versa/format"
	"github.com/versa-format/go-versa/ir"
	"github.com/versa-format/go-versa/token"
)

// versaParser holds the line cursor and open-branch stack for one parse of
// brace syntax.
type versaParser struct {
	lines []string
	ln    int // index of the line being parsed
	vln   int // index of the first line of the value being decoded
	o     *opts
	stack []*ir.Node
}

func parseVersa(src string, o *opts) (*ir.Node, error) {
	root := ir.New(ir.RootName)
	root.Language = format.VersaFormat
	root.EndsWithNewline = strings.HasSuffix(src, "\n")
	p := &versaParser{
		lines: token.SplitLines(src),
		o:     o,
		stack: []*ir.Node{root},
	}
	for p.ln = 0; p.ln < len(p.lines); p.ln++ {
		if err := p.line(); err != nil {
			return nil, err
		}
	}
	if len(p.stack) > 1 {
		reason := fmt.Sprintf("Reached end of file but '%s' was never closed with '}'", p.top().Name)
		if err := p.o.emit(ErrStructure, len(p.lines), reason, ""); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func (p *versaParser) top() *ir.Node {
	return p.stack[len(p.stack)-1]
}

func (p *versaParser) line() error {
	rest := strings.TrimSpace(p.lines[p.ln])
	node := p.top()

	if rest == "" {
		node.EmptyLine()
		return nil
	}
	if strings.HasPrefix(rest, "//") {
		node.AddComment(ir.NewComment(ir.CommentLine, rest[2:]))
		return nil
	}
	if strings.HasPrefix(rest, "#") {
		node.AddComment(ir.NewComment(ir.CommentLine, rest[1:]).WithStyle(ir.HashStyle))
		return nil
	}

	braceAt := token.IndexUnquoted(rest, '{')
	assignAt, glyph := assignIndex(rest)

	if braceAt != -1 && (assignAt == -1 || braceAt < assignAt) {
		return p.openBranch(rest, braceAt)
	}
	if strings.HasPrefix(rest, "}") {
		return p.closeBranch(rest)
	}
	if assignAt != -1 {
		return p.assignment(rest, assignAt, glyph)
	}
	return p.o.emit(ErrSyntax, p.ln+1, "Expected assignment, branch, or comment", rest)
}

// assignIndex finds the first unquoted assignment glyph. When both '=' and
// ':' appear the earlier one wins, '=' on a tie.
func assignIndex(s string) (int, byte) {
	eq := token.IndexUnquoted(s, '=')
	co := token.IndexUnquoted(s, ':')
	switch {
	case eq == -1 && co == -1:
		return -1, 0
	case co == -1 || (eq != -1 && eq <= co):
		return eq, '='
	default:
		return co, ':'
	}
}

func (p *versaParser) openBranch(rest string, braceAt int) error {
	name := strings.TrimSpace(rest[:braceAt])
	if name == "" {
		return p.o.emit(ErrSyntax, p.ln+1, "Missing branch name before '{'. Example: section {", rest)
	}
	b := ir.New(name)
	b.Language = format.VersaFormat
	p.top().AddChild(b)
	p.stack = append(p.stack, b)
	if text, style, ok := trailingComment(rest, braceAt+1); ok {
		b.StartComment = ir.NewComment(ir.CommentStart, text).WithStyle(style)
	}
	return nil
}

func (p *versaParser) closeBranch(rest string) error {
	if len(p.stack) == 1 {
		return p.o.emit(ErrStructure, p.ln+1, "Unexpected '}', no branch is open to close", rest)
	}
	b := p.top()
	p.stack = p.stack[:len(p.stack)-1]
	if text, style, ok := trailingComment(rest, 1); ok {
		b.EndComment = ir.NewComment(ir.CommentEnd, text).WithStyle(style)
	}
	return nil
}

func (p *versaParser) assignment(rest string, assignAt int, glyph byte) error {
	key := strings.TrimSpace(rest[:assignAt])
	if key == "" {
		return p.o.emit(ErrSyntax, p.ln+1, "Missing key before assignment", rest)
	}
	after := strings.TrimSpace(rest[assignAt+1:])
	if after == "" {
		reason := fmt.Sprintf("Missing value after assignment. Example: %s = 10", key)
		if err := p.o.emit(ErrSyntax, p.ln+1, reason, rest); err != nil {
			return err
		}
		// recovery: treat the following lines as the value
	}
	v, err := p.value(after)
	if err != nil || v == nil {
		return err
	}
	v.Name = key
	v.Assign = glyph
	if text, style, ok := trailingComment(rest, assignAt+1); ok {
		v.Comments = append(v.Comments, ir.NewComment(ir.CommentInline, text).WithStyle(style))
	}
	p.top().AddValue(v)
	return nil
}

// value decodes the text after an assignment, consuming continuation lines
// while quotes or brackets stay open. An empty start means the value begins
// on the next line.
func (p *versaParser) value(start string) (*ir.Value, error) {
	startLn := p.ln
	acc := start
	if start == "" {
		p.ln++
		if p.ln < len(p.lines) {
			acc = "\n" + p.lines[p.ln]
		}
	}
	p.vln = p.ln
	for token.Unbalanced(acc) {
		p.ln++
		if p.ln >= len(p.lines) {
			return nil, p.o.emit(ErrSyntax, startLn+1,
				"Value never closed, missing ']' or '}' or closing quote", strings.TrimSpace(acc))
		}
		acc += "\n" + p.lines[p.ln]
	}
	return p.decode(strings.TrimSpace(acc))
}

// decode classifies one balanced value token. Order: quoted string, list,
// boolean, number, inline branch block, bare string.
func (p *versaParser) decode(tok string) (*ir.Value, error) {
	tok = strings.TrimSpace(token.StripComment(tok))
	if strings.HasPrefix(tok, `"`) {
		s, ok := token.Unquote(tok)
		if !ok {
			return nil, p.o.emit(ErrSyntax, p.vln+1, "Missing closing quote", tok)
		}
		return ir.FromString(s), nil
	}
	if strings.HasPrefix(tok, "[") {
		return p.decodeList(tok)
	}
	switch tok {
	case "true":
		return ir.FromBool(true), nil
	case "false":
		return ir.FromBool(false), nil
	}
	if v := decodeNumber(tok); v != nil {
		return v, nil
	}
	if strings.HasPrefix(tok, "{") && strings.HasSuffix(tok, "}") {
		return p.inlineBranch(tok)
	}
	return ir.FromString(strings.ReplaceAll(tok, `\n`, "\n")), nil
}

func (p *versaParser) decodeList(tok string) (*ir.Value, error) {
	if !strings.HasSuffix(tok, "]") {
		return nil, p.o.emit(ErrSyntax, p.vln+1, "List missing ']'", tok)
	}
	inner := strings.TrimSpace(tok[1 : len(tok)-1])
	if inner == "" {
		return ir.FromList(), nil
	}
	parts := token.SplitTop(inner)
	if parts[len(parts)-1] == "" {
		// trailing comma
		parts = parts[:len(parts)-1]
	}
	elems := make([]*ir.Value, 0, len(parts))
	for _, part := range parts {
		e, err := p.listElement(strings.TrimSpace(part))
		if err != nil || e == nil {
			return nil, err
		}
		elems = append(elems, e)
	}
	branches, scalars := false, false
	for _, e := range elems {
		if e.Kind == ir.BranchListKind {
			branches = true
		} else {
			scalars = true
		}
	}
	if branches && scalars {
		return nil, p.o.emit(ErrSyntax, p.vln+1, "Mixed list types", inner)
	}
	if branches {
		var ns []*ir.Node
		for _, e := range elems {
			ns = append(ns, e.Branches...)
		}
		return ir.FromBranches(ns...), nil
	}
	return ir.FromList(elems...), nil
}

func (p *versaParser) listElement(s string) (*ir.Value, error) {
	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		return p.inlineBranch(s)
	}
	return p.decode(s)
}

// inlineBranch parses a {...} block by wrapping it in a synthetic branch
// header and re-running the brace parser over the wrapped text. The
// resulting branch is anonymous.
func (p *versaParser) inlineBranch(s string) (*ir.Value, error) {
	n, err := p.subParse(ir.RootName + " " + s)
	if err != nil || n == nil || len(n.Children) == 0 {
		return nil, err
	}
	b := n.Children[0]
	b.Name = ""
	b.Parent = nil
	return ir.FromBranches(b), nil
}

// subParse runs a nested parse over synthetic text, shifting reported line
// numbers to the enclosing value's position.
func (p *versaParser) subParse(src string) (*ir.Node, error) {
	off := p.vln
	sub := *p.o
	sub.sink = func(e *Error) {
		e.Line += off
		p.o.sink(e)
	}
	n, err := parseVersa(src, &sub)
	if err != nil {
		var pe *Error
		if errors.As(err, &pe) {
			pe.Line += off
		}
		return nil, err
	}
	return n, nil
}

// trailingComment scans line from index start for an unquoted comment and
// returns its text and style.
func trailingComment(line string, start int) (string, ir.Style, bool) {
	if start >= len(line) {
		return "", 0, false
	}
	i, w := token.FindComment(line[start:])
	if i == -1 {
		return "", 0, false
	}
	style := ir.SlashStyle
	if w == 1 {
		style = ir.HashStyle
	}
	return line[start+i+w:], style, true
}
