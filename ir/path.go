package ir

import "strings"

// GetValue resolves a dotted path: every segment but the last descends into
// the first child branch with that name, the last names a value. Any miss
// returns nil.
func (n *Node) GetValue(path string) *Value {
	segs := strings.Split(path, ".")
	cur := n
	for _, s := range segs[:len(segs)-1] {
		cur = cur.GetBranch(s)
		if cur == nil {
			return nil
		}
	}
	return cur.Values[segs[len(segs)-1]]
}

// GetPathBranch resolves a dotted path where every segment is a branch.
func (n *Node) GetPathBranch(path string) *Node {
	cur := n
	for _, s := range strings.Split(path, ".") {
		cur = cur.GetBranch(s)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// HasPath reports whether the dotted path resolves to a value or a branch.
func (n *Node) HasPath(path string) bool {
	return n.GetValue(path) != nil || n.GetPathBranch(path) != nil
}

// HasKey reports whether a value with this exact name is bound directly on
// this node.
func (n *Node) HasKey(name string) bool {
	_, ok := n.Values[name]
	return ok
}

func (n *Node) GetString(path string) string {
	return n.GetStringOr(path, "")
}

func (n *Node) GetStringOr(path, def string) string {
	v := n.GetValue(path)
	if v == nil || v.Kind != StringKind {
		return def
	}
	return v.Str
}

func (n *Node) GetBool(path string) bool {
	return n.GetBoolOr(path, false)
}

func (n *Node) GetBoolOr(path string, def bool) bool {
	v := n.GetValue(path)
	if v == nil || v.Kind != BoolKind {
		return def
	}
	return v.Bool
}

func (n *Node) GetInt(path string) int {
	return n.GetIntOr(path, 0)
}

func (n *Node) GetIntOr(path string, def int) int {
	v := n.GetValue(path)
	if v == nil || !v.Kind.IsInteger() {
		return def
	}
	return int(v.Int64)
}

func (n *Node) GetInt64(path string) int64 {
	return n.GetInt64Or(path, 0)
}

func (n *Node) GetInt64Or(path string, def int64) int64 {
	v := n.GetValue(path)
	if v == nil || !v.Kind.IsInteger() {
		return def
	}
	return v.Int64
}

func (n *Node) GetFloat64(path string) float64 {
	return n.GetFloat64Or(path, 0)
}

func (n *Node) GetFloat64Or(path string, def float64) float64 {
	v := n.GetValue(path)
	if v == nil || !v.Kind.IsFloat() {
		return def
	}
	return v.Float64
}

// GetList returns the elements of a list value, or nil.
func (n *Node) GetList(path string) []*Value {
	v := n.GetValue(path)
	if v == nil || v.Kind != ListKind {
		return nil
	}
	return v.List
}

// GetBranches returns the elements of a branch list value, or nil.
func (n *Node) GetBranches(path string) []*Node {
	v := n.GetValue(path)
	if v == nil || v.Kind != BranchListKind {
		return nil
	}
	return v.Branches
}

// GetStrings returns the string elements of a list value.
func (n *Node) GetStrings(path string) []string {
	var out []string
	for _, e := range n.GetList(path) {
		if e.Kind == StringKind {
			out = append(out, e.Str)
		}
	}
	return out
}

// GetInts returns the integer elements of a list value.
func (n *Node) GetInts(path string) []int {
	var out []int
	for _, e := range n.GetList(path) {
		if e.Kind.IsInteger() {
			out = append(out, int(e.Int64))
		}
	}
	return out
}
