package ir

// InsertPoint is a cursor into a node's order, produced by Before/After and
// their branch variants. Splicing through it keeps the cursor just past
// the inserted entry, so repeated calls insert in sequence. Structural
// mutations made through other paths invalidate the cursor.
type InsertPoint struct {
	node  *Node
	index int
}

func (n *Node) point(i int) *InsertPoint {
	return &InsertPoint{node: n, index: i}
}

func (n *Node) valueIndex(name string) int {
	for i, e := range n.Order {
		if e.Kind == ValueEntry && e.Value.Name == name {
			return i
		}
	}
	return -1
}

func (n *Node) branchIndex(name string) int {
	for i, e := range n.Order {
		if e.Kind == BranchEntry && e.Branch.Name == name {
			return i
		}
	}
	return -1
}

// Before positions an insertion point in front of the first value entry
// with the given name, or at the end of the order when there is none.
func (n *Node) Before(name string) *InsertPoint {
	if i := n.valueIndex(name); i != -1 {
		return n.point(i)
	}
	return n.point(len(n.Order))
}

// After positions an insertion point just past the first value entry with
// the given name, or at the end of the order when there is none.
func (n *Node) After(name string) *InsertPoint {
	if i := n.valueIndex(name); i != -1 {
		return n.point(i + 1)
	}
	return n.point(len(n.Order))
}

// BeforeBranch is Before for branch entries.
func (n *Node) BeforeBranch(name string) *InsertPoint {
	if i := n.branchIndex(name); i != -1 {
		return n.point(i)
	}
	return n.point(len(n.Order))
}

// AfterBranch is After for branch entries.
func (n *Node) AfterBranch(name string) *InsertPoint {
	if i := n.branchIndex(name); i != -1 {
		return n.point(i + 1)
	}
	return n.point(len(n.Order))
}

func (p *InsertPoint) splice(e Entry) *Node {
	n := p.node
	n.Order = append(n.Order, Entry{})
	copy(n.Order[p.index+1:], n.Order[p.index:])
	n.Order[p.index] = e
	p.index++
	return n
}

// Comment splices a slash-style standalone comment and returns the owning
// node.
func (p *InsertPoint) Comment(text string) *Node {
	return p.splice(Entry{Kind: CommentEntry, Comment: NewComment(CommentLine, text)})
}

// CommentStyled splices a standalone comment with an explicit prefix style.
func (p *InsertPoint) CommentStyled(text string, style Style) *Node {
	return p.splice(Entry{Kind: CommentEntry, Comment: NewComment(CommentLine, text).WithStyle(style)})
}

// EmptyLine splices a blank line.
func (p *InsertPoint) EmptyLine() *Node {
	return p.splice(Entry{Kind: EmptyLineEntry})
}
