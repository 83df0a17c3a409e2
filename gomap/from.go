package gomap

import (
	"fmt"
	"math"
	"sort"

	"github.com/iancoleman/orderedmap"

	"github.com/versa-format/go-versa/ir"
)

// From builds a tree from a plain Go value. A map becomes a branch named
// name, with ordered maps keeping their order and plain maps sorted for
// determinism. Any other supported value becomes a single value named name
// on a fresh root node, so the result always renders as a document.
func From(name string, v any) (*ir.Node, error) {
	if keys, get, ok := mapAccess(v); ok {
		n := ir.New(name)
		for _, k := range keys {
			if err := place(n, k, get(k), name+"."+k); err != nil {
				return nil, err
			}
		}
		return n, nil
	}
	n := ir.New(ir.RootName)
	if err := place(n, name, v, name); err != nil {
		return nil, err
	}
	return n, nil
}

// mapAccess returns ordered key access over the map shapes From accepts.
func mapAccess(v any) ([]string, func(string) any, bool) {
	switch m := v.(type) {
	case *orderedmap.OrderedMap:
		return m.Keys(), func(k string) any { val, _ := m.Get(k); return val }, true
	case orderedmap.OrderedMap:
		return m.Keys(), func(k string) any { val, _ := m.Get(k); return val }, true
	case map[string]any:
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return keys, func(k string) any { return m[k] }, true
	case map[string]string:
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return keys, func(k string) any { return m[k] }, true
	}
	return nil, nil, false
}

// place adds one named entry to n: maps become sub-branches, nil an empty
// branch, everything else a value.
func place(n *ir.Node, name string, v any, path string) error {
	if keys, get, ok := mapAccess(v); ok {
		child := n.AddBranch(name)
		for _, k := range keys {
			if err := place(child, k, get(k), path+"."+k); err != nil {
				return err
			}
		}
		return nil
	}
	if v == nil {
		n.AddBranch(name)
		return nil
	}
	val, err := value(v, path)
	if err != nil {
		return err
	}
	n.SetVal(name, val)
	return nil
}

func value(v any, path string) (*ir.Value, error) {
	switch x := v.(type) {
	case *ir.Value:
		return x, nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return ir.FromInt(x), nil
	case int8:
		return ir.ClassifyInt(int64(x)), nil
	case int16:
		return ir.ClassifyInt(int64(x)), nil
	case int32:
		return ir.ClassifyInt(int64(x)), nil
	case int64:
		return ir.ClassifyInt(x), nil
	case uint8:
		return ir.ClassifyInt(int64(x)), nil
	case uint16:
		return ir.ClassifyInt(int64(x)), nil
	case uint32:
		return ir.ClassifyInt(int64(x)), nil
	case uint:
		if uint64(x) > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %d overflows int64 at %s", ErrUnsupported, x, path)
		}
		return ir.ClassifyInt(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %d overflows int64 at %s", ErrUnsupported, x, path)
		}
		return ir.ClassifyInt(int64(x)), nil
	case float32:
		return ir.FromFloat32(x), nil
	case float64:
		return ir.FromFloat64(x), nil
	case string:
		return ir.FromString(x), nil
	case []any:
		return sliceValue(x, path)
	case []map[string]any:
		xs := make([]any, len(x))
		for i, e := range x {
			xs[i] = e
		}
		return sliceValue(xs, path)
	case []*orderedmap.OrderedMap:
		xs := make([]any, len(x))
		for i, e := range x {
			xs[i] = e
		}
		return sliceValue(xs, path)
	case []string, []int, []int64, []float64:
		return ir.FromAny(x), nil
	default:
		return nil, fmt.Errorf("%w: %T at %s", ErrUnsupported, v, path)
	}
}

// sliceValue turns a slice into a list value, or a branch-list value when
// every element is a map. Mixing the two is an error.
func sliceValue(xs []any, path string) (*ir.Value, error) {
	maps := 0
	for _, e := range xs {
		if _, _, ok := mapAccess(e); ok {
			maps++
		}
	}
	switch {
	case maps == 0:
		elems := make([]*ir.Value, len(xs))
		for i, e := range xs {
			if e == nil {
				return nil, fmt.Errorf("%w: nil element at %s[%d]", ErrUnsupported, path, i)
			}
			ev, err := value(e, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			elems[i] = ev
		}
		return ir.FromList(elems...), nil
	case maps == len(xs):
		ns := make([]*ir.Node, len(xs))
		for i, e := range xs {
			keys, get, _ := mapAccess(e)
			b := ir.New("")
			for _, k := range keys {
				if err := place(b, k, get(k), fmt.Sprintf("%s[%d].%s", path, i, k)); err != nil {
					return nil, err
				}
			}
			ns[i] = b
		}
		return ir.FromBranches(ns...), nil
	default:
		return nil, fmt.Errorf("%w: mixed scalar and map elements at %s", ErrUnsupported, path)
	}
}
