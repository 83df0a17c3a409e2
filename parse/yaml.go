package parse

import (
	"fmt"
	"strings"

	"github.com/versa-format/go-versa/format"
	"github.com/versa-format/go-versa/ir"
	"github.com/versa-format/go-versa/token"
)

// yamlParser tracks the open-branch stack with one indent column per level,
// plus the most recent "key:" line still waiting for its block.
type yamlParser struct {
	lines   []string
	ln      int
	o       *opts
	root    *ir.Node
	nodes   []*ir.Node
	indents []int
	pending *ir.Node
}

func parseYAML(src string, o *opts) (*ir.Node, error) {
	root := ir.New(ir.RootName)
	root.Language = format.YAMLFormat
	root.EndsWithNewline = strings.HasSuffix(src, "\n")
	p := &yamlParser{
		lines:   token.SplitLines(src),
		o:       o,
		root:    root,
		nodes:   []*ir.Node{root},
		indents: []int{0},
	}
	for p.ln = 0; p.ln < len(p.lines); p.ln++ {
		if err := p.line(); err != nil {
			return nil, err
		}
	}
	if p.pending != nil {
		reason := fmt.Sprintf("Mapping key '%s' is never given a block", p.pending.Name)
		if err := p.o.emit(ErrStructure, len(p.lines), reason, ""); err != nil {
			return nil, err
		}
	}
	if root.IndentUnit <= 0 {
		root.IndentUnit = 2
	}
	return root, nil
}

func (p *yamlParser) top() *ir.Node {
	return p.nodes[len(p.nodes)-1]
}

func (p *yamlParser) line() error {
	raw := p.lines[p.ln]
	indent := token.CountIndent(raw)
	rest := raw[indent:]

	if strings.TrimSpace(rest) == "" {
		p.top().EmptyLine()
		return nil
	}
	if strings.HasPrefix(rest, "#") {
		c := ir.NewComment(ir.CommentLine, rest[1:]).WithStyle(ir.HashStyle).WithIndent(indent)
		p.top().AddComment(c)
		return nil
	}

	ok, err := p.adjust(indent, raw)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	cur := p.top()

	if strings.HasPrefix(rest, "-") {
		return p.listItem(cur, rest, indent, raw)
	}
	return p.mapping(cur, rest, raw)
}

// adjust opens or closes levels until the stack top matches indent. The
// indent unit of the document is fixed by the first increase seen.
func (p *yamlParser) adjust(indent int, raw string) (bool, error) {
	current := p.indents[len(p.indents)-1]
	if indent > current {
		if p.pending == nil {
			err := p.o.emit(ErrStructure, p.ln+1, "Unexpected indentation (no parent to attach to)", raw)
			return false, err
		}
		diff := indent - current
		if p.root.IndentUnit == -1 {
			p.root.IndentUnit = diff
		} else if diff != p.root.IndentUnit {
			reason := fmt.Sprintf("Invalid indentation increase (expected +%d)", p.root.IndentUnit)
			if err := p.o.emit(ErrStructure, p.ln+1, reason, raw); err != nil {
				return false, err
			}
		}
		p.nodes = append(p.nodes, p.pending)
		p.indents = append(p.indents, indent)
		p.pending = nil
		return true, nil
	}
	for indent < p.indents[len(p.indents)-1] {
		p.nodes = p.nodes[:len(p.nodes)-1]
		p.indents = p.indents[:len(p.indents)-1]
	}
	if indent != p.indents[len(p.indents)-1] {
		if err := p.o.emit(ErrStructure, p.ln+1, "Indentation does not match any open level", raw); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (p *yamlParser) listItem(cur *ir.Node, rest string, indent int, raw string) error {
	if indent != p.indents[len(p.indents)-1] {
		if err := p.o.emit(ErrStructure, p.ln+1, "List item indentation mismatch", raw); err != nil {
			return err
		}
	}
	body := rest[1:]
	clean, comment, hasComment := splitHashComment(body)
	v := yamlScalar(strings.TrimSpace(clean))
	if hasComment {
		v.Comments = append(v.Comments, ir.NewComment(ir.CommentInline, comment).WithStyle(ir.HashStyle))
	}
	cur.AddValue(v)
	return nil
}

func (p *yamlParser) mapping(cur *ir.Node, rest, raw string) error {
	colon := token.IndexUnquoted(rest, ':')
	if colon == -1 {
		return p.o.emit(ErrSyntax, p.ln+1, "Expected mapping key or list item", raw)
	}
	key := strings.TrimSpace(rest[:colon])
	clean, comment, hasComment := splitHashComment(rest[colon+1:])
	clean = strings.TrimSpace(clean)
	if clean == "" {
		b := ir.New(key)
		b.Language = format.YAMLFormat
		if hasComment {
			b.StartComment = ir.NewComment(ir.CommentStart, comment).WithStyle(ir.HashStyle)
		}
		cur.AddChild(b)
		p.pending = b
		return nil
	}
	v := yamlScalar(clean)
	v.Name = key
	if hasComment {
		v.Comments = append(v.Comments, ir.NewComment(ir.CommentInline, comment).WithStyle(ir.HashStyle))
	}
	cur.AddValue(v)
	return nil
}

// splitHashComment cuts s at the first unquoted '#' and returns the part
// before it plus the comment text after it.
func splitHashComment(s string) (string, string, bool) {
	i := token.IndexUnquoted(s, '#')
	if i == -1 {
		return s, "", false
	}
	return s[:i], s[i+1:], true
}
