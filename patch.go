package versa

import (
	jsonpatch "github.com/evanphx/json-patch"

	"github.com/versa-format/go-versa/gomap"
	"github.com/versa-format/go-versa/ir"
)

// ApplyMergePatch applies an RFC 7386 JSON merge patch to the tree in
// place. The patch runs over the tree's JSON view and the result is
// written back entry by entry, so comments, blank lines and ordering
// of untouched parts survive. Keys the patch introduces append at the
// end of their branch; a null in the patch removes the key it names.
func ApplyMergePatch(n *ir.Node, patch []byte) error {
	doc, err := gomap.ToJSON(n)
	if err != nil {
		return err
	}
	merged, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return err
	}
	want, err := gomap.FromJSON(merged)
	if err != nil {
		return err
	}
	writeBack(n, want)
	return nil
}

// writeBack reshapes dst to hold exactly want's values, touching only
// entries that differ.
func writeBack(dst, want *ir.Node) {
	if seqShaped(dst) {
		// getting here means the patch turned a sequence into a
		// mapping; its items cannot carry over
		var kept []ir.Entry
		for _, e := range dst.Order {
			if e.Kind == ir.ValueEntry && e.Value.Name == "" {
				continue
			}
			kept = append(kept, e)
		}
		dst.Order = kept
	}
	var dropVals []string
	for name := range dst.Values {
		if want.Lookup(name) == nil {
			dropVals = append(dropVals, name)
		}
	}
	for _, name := range dropVals {
		dst.RemoveValue(name)
	}
	var dropBranches []*ir.Node
	for _, c := range dst.Children {
		if want.GetBranch(c.Name) == nil && !keepAsSequence(c, want) {
			dropBranches = append(dropBranches, c)
		}
	}
	for _, c := range dropBranches {
		c.Detach()
	}

	for _, e := range want.Order {
		switch e.Kind {
		case ir.ValueEntry:
			wv := e.Value
			if wv.Name == "" {
				continue
			}
			// a parsed "- item" sequence shows up as a list in the
			// JSON view; keep the sequence shape on the way back
			if sb := dst.GetBranch(wv.Name); sb != nil && seqShaped(sb) && wv.Kind == ir.ListKind {
				writeSequence(sb, wv)
				continue
			}
			cur := dst.Lookup(wv.Name)
			if cur == nil {
				dst.SetVal(wv.Name, wv.Clone())
			} else if !valueEqual(cur, wv) {
				adopt(cur, wv.Clone())
			}
		case ir.BranchEntry:
			wb := e.Branch
			cb := dst.GetBranch(wb.Name)
			if cb == nil {
				dst.AddChild(wb.Clone())
			} else {
				writeBack(cb, wb)
			}
		}
	}
}

// keepAsSequence reports whether branch c survives as the sequence
// backing a list value of the same name in want.
func keepAsSequence(c *ir.Node, want *ir.Node) bool {
	if !seqShaped(c) {
		return false
	}
	v := want.Lookup(c.Name)
	return v != nil && v.Kind == ir.ListKind
}

// seqShaped reports whether n is a branch of anonymous values only,
// the shape indentation-syntax sequences parse to.
func seqShaped(n *ir.Node) bool {
	if n == nil {
		return false
	}
	items := 0
	for _, e := range n.Order {
		switch e.Kind {
		case ir.ValueEntry:
			if e.Value.Name != "" {
				return false
			}
			items++
		case ir.BranchEntry:
			return false
		}
	}
	return items > 0
}

// seqList views a sequence branch as an anonymous list value.
func seqList(n *ir.Node) *ir.Value {
	var elems []*ir.Value
	for _, e := range n.Order {
		if e.Kind == ir.ValueEntry {
			elems = append(elems, e.Value)
		}
	}
	return ir.FromList(elems...)
}

// writeSequence replaces the items of sequence branch sb with the
// elements of list value wv, unless they already agree.
func writeSequence(sb *ir.Node, wv *ir.Value) {
	if valueEqual(seqList(sb), wv) {
		return
	}
	var kept []ir.Entry
	for _, e := range sb.Order {
		if e.Kind != ir.ValueEntry {
			kept = append(kept, e)
		}
	}
	sb.Order = kept
	for _, el := range wv.List {
		item := el.Clone()
		item.Name = ""
		sb.AddValue(item)
	}
}

// valueEqual compares the JSON meaning of two values. Numbers compare
// across integer and float kinds, since the JSON round trip does not
// keep that distinction.
func valueEqual(a, b *ir.Value) bool {
	an, aok := num(a)
	bn, bok := num(b)
	if aok || bok {
		return aok && bok && an == bn
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ir.BoolKind:
		return a.Bool == b.Bool
	case ir.StringKind:
		return a.Str == b.Str
	case ir.ListKind:
		if len(a.List) != len(b.List) {
			return false
		}
		for i := range a.List {
			if !valueEqual(a.List[i], b.List[i]) {
				return false
			}
		}
		return true
	case ir.BranchListKind:
		if len(a.Branches) != len(b.Branches) {
			return false
		}
		for i := range a.Branches {
			if !nodeEqual(a.Branches[i], b.Branches[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func num(v *ir.Value) (float64, bool) {
	switch {
	case v.Kind.IsInteger():
		return float64(v.Int64), true
	case v.Kind.IsFloat():
		return v.Float64, true
	}
	return 0, false
}

// nodeEqual compares the JSON-visible entries of two nodes in order.
func nodeEqual(a, b *ir.Node) bool {
	ae, be := visible(a), visible(b)
	if len(ae) != len(be) {
		return false
	}
	for i := range ae {
		x, y := ae[i], be[i]
		if x.Kind != y.Kind {
			return false
		}
		switch x.Kind {
		case ir.ValueEntry:
			if x.Value.Name != y.Value.Name || !valueEqual(x.Value, y.Value) {
				return false
			}
		case ir.BranchEntry:
			if x.Branch.Name != y.Branch.Name || !nodeEqual(x.Branch, y.Branch) {
				return false
			}
		}
	}
	return true
}

func visible(n *ir.Node) []ir.Entry {
	var out []ir.Entry
	for _, e := range n.Order {
		switch e.Kind {
		case ir.ValueEntry:
			if e.Value.Name != "" {
				out = append(out, e)
			}
		case ir.BranchEntry:
			out = append(out, e)
		}
	}
	return out
}
