package versa

import "github.com/versa-format/go-versa/ir"

// Merge produces a tree holding every key and branch of defaults, in
// the defaults layout, with any same-path value present in user
// winning. Keys that appear only in user are not carried over. Neither
// input is modified.
func Merge(defaults, user *ir.Node) *ir.Node {
	out := defaults.Clone()
	overlay(out, user)
	return out
}

func overlay(dst, user *ir.Node) {
	if user == nil {
		return
	}
	for _, e := range dst.Order {
		switch e.Kind {
		case ir.ValueEntry:
			if e.Value.Name == "" {
				continue
			}
			if uv := user.Lookup(e.Value.Name); uv != nil {
				adopt(e.Value, uv.Clone())
			}
		case ir.BranchEntry:
			overlay(e.Branch, user.GetBranch(e.Branch.Name))
		}
	}
}

// adopt moves the payload of src into dst, keeping dst's name, assign
// glyph and comments so the surrounding layout survives.
func adopt(dst, src *ir.Value) {
	dst.Kind = src.Kind
	dst.Bool = src.Bool
	dst.Int64 = src.Int64
	dst.Float64 = src.Float64
	dst.Str = src.Str
	dst.List = src.List
	dst.Branches = src.Branches
}
