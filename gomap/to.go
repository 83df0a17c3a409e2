package gomap

import (
	"github.com/iancoleman/orderedmap"

	"github.com/versa-format/go-versa/ir"
)

// To builds an order-preserving map view of n. Child branches become nested
// maps, list values []any slices, and branch lists slices of maps. A child
// branch holding only anonymous values (a parsed "- item" sequence) becomes
// a []any of its items. Comments and blank lines are not represented.
func To(n *ir.Node) *orderedmap.OrderedMap {
	om := orderedmap.New()
	for _, e := range n.Order {
		switch e.Kind {
		case ir.ValueEntry:
			if e.Value.Name == "" {
				continue
			}
			om.Set(e.Value.Name, toAny(e.Value))
		case ir.BranchEntry:
			om.Set(e.Branch.Name, branchView(e.Branch))
		}
	}
	return om
}

func branchView(n *ir.Node) any {
	if items, ok := sequenceItems(n); ok {
		return items
	}
	return To(n)
}

// sequenceItems reports n as a plain slice when its value and branch
// entries are all anonymous values, the shape the YAML parser gives
// "- item" sequences.
func sequenceItems(n *ir.Node) ([]any, bool) {
	var items []any
	for _, e := range n.Order {
		switch e.Kind {
		case ir.ValueEntry:
			if e.Value.Name != "" {
				return nil, false
			}
			items = append(items, toAny(e.Value))
		case ir.BranchEntry:
			return nil, false
		}
	}
	if items == nil {
		return nil, false
	}
	return items, true
}

func toAny(v *ir.Value) any {
	switch v.Kind {
	case ir.ListKind:
		out := make([]any, len(v.List))
		for i, e := range v.List {
			out[i] = toAny(e)
		}
		return out
	case ir.BranchListKind:
		out := make([]any, len(v.Branches))
		for i, b := range v.Branches {
			out[i] = To(b)
		}
		return out
	default:
		return v.Interface()
	}
}

// Plain is To with the ordered wrappers stripped, for consumers that need
// plain nested maps, such as expression environments.
func Plain(n *ir.Node) map[string]any {
	return regular(To(n)).(map[string]any)
}

// regular recursively strips the ordered wrappers, for encoders that only
// take plain maps.
func regular(v any) any {
	switch m := v.(type) {
	case *orderedmap.OrderedMap:
		out := make(map[string]any, len(m.Keys()))
		for _, k := range m.Keys() {
			val, _ := m.Get(k)
			out[k] = regular(val)
		}
		return out
	case []any:
		out := make([]any, len(m))
		for i, e := range m {
			out[i] = regular(e)
		}
		return out
	default:
		return v
	}
}
