package ir

import (
	"github.com/versa-format/go-versa/format"
)

// RootName is the synthetic name parsers give the document root.
const RootName = "root"

// Node is one branch of a document tree. Values holds the named leaves,
// Children the sub-branches, and Order the render order over both plus
// standalone comments and blank lines. Every value and child appears in
// Order exactly once; the mutation methods keep that so.
type Node struct {
	Name   string
	Parent *Node

	Values   map[string]*Value
	Children []*Node

	// StartComment trails the opening delimiter, EndComment the closing one.
	StartComment *Comment
	EndComment   *Comment

	Order []Entry

	// IndentUnit is the spaces-per-level observed at parse time; values
	// <= 0 mean unset and let the renderer pick its default.
	IndentUnit int

	EndsWithNewline bool

	// Language is the syntax this node was parsed from and the default
	// syntax for rendering it.
	Language format.Format
}

// Entry is one element of a node's render order. Kind selects the payload:
// Value and Branch reference the same objects held in Values/Children,
// Comment is owned by the entry, EmptyLine carries nothing.
type Entry struct {
	Kind    EntryKind
	Value   *Value
	Branch  *Node
	Comment *Comment
}

func New(name string) *Node {
	return &Node{
		Name:       name,
		Values:     map[string]*Value{},
		IndentUnit: -1,
	}
}

func (n *Node) ensure() {
	if n.Values == nil {
		n.Values = map[string]*Value{}
	}
}

// Root walks Parent links to the top of the tree.
func (n *Node) Root() *Node {
	r := n
	for r.Parent != nil {
		r = r.Parent
	}
	return r
}

// Path returns the dotted path of this node from the root, "$" for the
// root itself.
func (n *Node) Path() string {
	if n.Parent == nil {
		return "$"
	}
	pp := n.Parent.Path()
	if pp == "$" {
		return n.Name
	}
	return pp + "." + n.Name
}

// AddChild appends an existing node as a sub-branch.
func (n *Node) AddChild(child *Node) *Node {
	child.Parent = n
	n.Children = append(n.Children, child)
	n.Order = append(n.Order, Entry{Kind: BranchEntry, Branch: child})
	return n
}

// AddBranch creates a named sub-branch at the end of the order and returns
// it.
func (n *Node) AddBranch(name string) *Node {
	child := New(name)
	n.AddChild(child)
	return child
}

// AddValue appends a value. Anonymous values (empty Name) only enter the
// order; named ones also enter the value map.
func (n *Node) AddValue(v *Value) *Node {
	n.ensure()
	if v.Name != "" {
		n.Values[v.Name] = v
	}
	n.Order = append(n.Order, Entry{Kind: ValueEntry, Value: v})
	return n
}

// SetVal binds name to v. An existing binding is replaced in place: the
// new value takes over the old one's order position and assign glyph.
func (n *Node) SetVal(name string, v *Value) *Node {
	n.ensure()
	v.Name = name
	old, ok := n.Values[name]
	if !ok {
		return n.AddValue(v)
	}
	v.Assign = old.Assign
	n.Values[name] = v
	for i := range n.Order {
		e := &n.Order[i]
		if e.Kind == ValueEntry && e.Value == old {
			e.Value = v
			break
		}
	}
	return n
}

// SetValue binds name to a plain Go value, classified per FromAny.
func (n *Node) SetValue(name string, val any) *Node {
	return n.SetVal(name, FromAny(val))
}

// EmptyLine appends a blank line to the order.
func (n *Node) EmptyLine() *Node {
	n.Order = append(n.Order, Entry{Kind: EmptyLineEntry})
	return n
}

// AddComment appends a standalone comment entry.
func (n *Node) AddComment(c *Comment) *Node {
	n.Order = append(n.Order, Entry{Kind: CommentEntry, Comment: c})
	return n
}

// AddLineComment appends a slash-style standalone comment.
func (n *Node) AddLineComment(text string) *Node {
	return n.AddComment(NewComment(CommentLine, text))
}

// AddLineCommentStyled appends a standalone comment with an explicit
// prefix style.
func (n *Node) AddLineCommentStyled(text string, style Style) *Node {
	return n.AddComment(NewComment(CommentLine, text).WithStyle(style))
}

// SetComment replaces the node's start or end comment. Other kinds attach
// elsewhere (AddLineComment, SetValueComment) and are ignored here.
func (n *Node) SetComment(kind CommentKind, text string, style Style) *Node {
	switch kind {
	case CommentStart:
		n.StartComment = NewComment(CommentStart, text).WithStyle(style)
	case CommentEnd:
		n.EndComment = NewComment(CommentEnd, text).WithStyle(style)
	}
	return n
}

// SetInlineComment attaches c per its kind: start/end comments land on the
// node, anything else becomes a standalone entry.
func (n *Node) SetInlineComment(c *Comment) *Node {
	switch c.Kind {
	case CommentStart:
		n.StartComment = c
	case CommentEnd:
		n.EndComment = c
	default:
		n.AddComment(c)
	}
	return n
}

func (n *Node) AddStartComment(text string) *Node {
	return n.SetComment(CommentStart, text, SlashStyle)
}

func (n *Node) AddEndComment(text string) *Node {
	return n.SetComment(CommentEnd, text, SlashStyle)
}

// AddStartCommentTo sets the start comment of the named child branch; a
// missing branch is a no-op.
func (n *Node) AddStartCommentTo(branch, text string) *Node {
	if b := n.GetBranch(branch); b != nil {
		b.AddStartComment(text)
	}
	return n
}

// AddEndCommentTo sets the end comment of the named child branch; a
// missing branch is a no-op.
func (n *Node) AddEndCommentTo(branch, text string) *Node {
	if b := n.GetBranch(branch); b != nil {
		b.AddEndComment(text)
	}
	return n
}

// SetValueComment replaces the inline comments of the named value with one
// slash-style comment; a missing value is a no-op.
func (n *Node) SetValueComment(name, text string) *Node {
	v := n.Values[name]
	if v == nil {
		return n
	}
	kept := v.Comments[:0]
	for _, c := range v.Comments {
		if c.Kind != CommentInline {
			kept = append(kept, c)
		}
	}
	v.Comments = append(kept, NewComment(CommentInline, text))
	return n
}

// GetBranch returns the first child with the given name, or nil.
func (n *Node) GetBranch(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Lookup returns the value bound directly on this node, or nil.
func (n *Node) Lookup(name string) *Value {
	return n.Values[name]
}

// GetValueFromAnywhere finds the first value with the given name in a
// depth-first walk of this subtree.
func (n *Node) GetValueFromAnywhere(name string) *Value {
	if v := n.Values[name]; v != nil {
		return v
	}
	for _, c := range n.Children {
		if v := c.GetValueFromAnywhere(name); v != nil {
			return v
		}
	}
	return nil
}

// Detach removes this node from its parent's children and order. Detaching
// the root is a no-op.
func (n *Node) Detach() *Node {
	p := n.Parent
	if p == nil {
		return n
	}
	for i, c := range p.Children {
		if c == n {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			break
		}
	}
	for i := range p.Order {
		e := &p.Order[i]
		if e.Kind == BranchEntry && e.Branch == n {
			p.Order = append(p.Order[:i], p.Order[i+1:]...)
			break
		}
	}
	n.Parent = nil
	return n
}

// RemoveValue drops the named value binding and its order entry. It
// reports whether the name was bound.
func (n *Node) RemoveValue(name string) bool {
	v, ok := n.Values[name]
	if !ok {
		return false
	}
	delete(n.Values, name)
	for i := range n.Order {
		e := &n.Order[i]
		if e.Kind == ValueEntry && e.Value == v {
			n.Order = append(n.Order[:i], n.Order[i+1:]...)
			break
		}
	}
	return true
}

// Clone deep-copies the subtree. The clone has no parent.
func (n *Node) Clone() *Node {
	c := New(n.Name)
	c.IndentUnit = n.IndentUnit
	c.EndsWithNewline = n.EndsWithNewline
	c.Language = n.Language
	if n.StartComment != nil {
		c.StartComment = n.StartComment.Clone()
	}
	if n.EndComment != nil {
		c.EndComment = n.EndComment.Clone()
	}
	vclones := map[*Value]*Value{}
	for name, v := range n.Values {
		cv := v.Clone()
		c.Values[name] = cv
		vclones[v] = cv
	}
	bclones := map[*Node]*Node{}
	for _, ch := range n.Children {
		cc := ch.Clone()
		cc.Parent = c
		c.Children = append(c.Children, cc)
		bclones[ch] = cc
	}
	for _, e := range n.Order {
		switch e.Kind {
		case ValueEntry:
			cv := vclones[e.Value]
			if cv == nil {
				// anonymous list item, lives only in the order
				cv = e.Value.Clone()
			}
			c.Order = append(c.Order, Entry{Kind: ValueEntry, Value: cv})
		case BranchEntry:
			c.Order = append(c.Order, Entry{Kind: BranchEntry, Branch: bclones[e.Branch]})
		case CommentEntry:
			c.Order = append(c.Order, Entry{Kind: CommentEntry, Comment: e.Comment.Clone()})
		case EmptyLineEntry:
			c.Order = append(c.Order, Entry{Kind: EmptyLineEntry})
		}
	}
	return c
}
