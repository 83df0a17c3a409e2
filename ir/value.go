package ir

import (
	"fmt"
	"math"
)

// Value is a typed leaf. Kind selects which payload field is meaningful:
// Bool, Int64 (IntKind and LongKind), Float64 (FloatKind and DoubleKind),
// Str, List, or Branches. Assign records the glyph ('=' or ':') the value
// was bound with in Versa source and is reused when rendering.
type Value struct {
	Name     string
	Kind     Kind
	Assign   byte
	Comments []*Comment

	Bool     bool
	Int64    int64
	Float64  float64
	Str      string
	List     []*Value
	Branches []*Node
}

func newValue(k Kind) *Value {
	return &Value{Kind: k, Assign: '='}
}

func FromBool(b bool) *Value {
	v := newValue(BoolKind)
	v.Bool = b
	return v
}

// FromInt classifies by 32-bit fit: IntKind when the value fits, LongKind
// otherwise.
func FromInt(i int) *Value {
	return ClassifyInt(int64(i))
}

func FromInt64(i int64) *Value {
	v := newValue(LongKind)
	v.Int64 = i
	return v
}

// ClassifyInt builds an integer value, IntKind iff i fits in 32 bits.
func ClassifyInt(i int64) *Value {
	k := LongKind
	if i >= math.MinInt32 && i <= math.MaxInt32 {
		k = IntKind
	}
	v := newValue(k)
	v.Int64 = i
	return v
}

func FromFloat32(f float32) *Value {
	v := newValue(FloatKind)
	v.Float64 = float64(f)
	return v
}

func FromFloat64(f float64) *Value {
	v := newValue(DoubleKind)
	v.Float64 = f
	return v
}

func FromString(s string) *Value {
	v := newValue(StringKind)
	v.Str = s
	return v
}

func FromList(elems ...*Value) *Value {
	v := newValue(ListKind)
	v.List = elems
	return v
}

func FromBranches(ns ...*Node) *Value {
	v := newValue(BranchListKind)
	v.Branches = ns
	return v
}

// FromAny converts a plain Go value. Supported: bool, the signed integer
// types, float32/float64, string, *Value (taken as is), []string, []int,
// []int64, []float64, and []any (elements converted recursively). Anything
// else is stored as its fmt.Sprint string.
func FromAny(val any) *Value {
	switch x := val.(type) {
	case *Value:
		return x
	case bool:
		return FromBool(x)
	case int:
		return FromInt(x)
	case int8:
		return ClassifyInt(int64(x))
	case int16:
		return ClassifyInt(int64(x))
	case int32:
		return ClassifyInt(int64(x))
	case int64:
		return FromInt64(x)
	case float32:
		return FromFloat32(x)
	case float64:
		return FromFloat64(x)
	case string:
		return FromString(x)
	case []string:
		elems := make([]*Value, len(x))
		for i, s := range x {
			elems[i] = FromString(s)
		}
		return FromList(elems...)
	case []int:
		elems := make([]*Value, len(x))
		for i, n := range x {
			elems[i] = FromInt(n)
		}
		return FromList(elems...)
	case []int64:
		elems := make([]*Value, len(x))
		for i, n := range x {
			elems[i] = FromInt64(n)
		}
		return FromList(elems...)
	case []float64:
		elems := make([]*Value, len(x))
		for i, f := range x {
			elems[i] = FromFloat64(f)
		}
		return FromList(elems...)
	case []any:
		elems := make([]*Value, len(x))
		for i, e := range x {
			elems[i] = FromAny(e)
		}
		return FromList(elems...)
	default:
		return FromString(fmt.Sprint(val))
	}
}

func (v *Value) Clone() *Value {
	d := &Value{
		Name:    v.Name,
		Kind:    v.Kind,
		Assign:  v.Assign,
		Bool:    v.Bool,
		Int64:   v.Int64,
		Float64: v.Float64,
		Str:     v.Str,
	}
	for _, c := range v.Comments {
		d.Comments = append(d.Comments, c.Clone())
	}
	for _, e := range v.List {
		d.List = append(d.List, e.Clone())
	}
	for _, b := range v.Branches {
		d.Branches = append(d.Branches, b.Clone())
	}
	return d
}

// Interface returns the payload as a plain Go value: bool, int64, float64,
// string, []any for lists, or []*Node for branch lists.
func (v *Value) Interface() any {
	switch v.Kind {
	case BoolKind:
		return v.Bool
	case IntKind, LongKind:
		return v.Int64
	case FloatKind, DoubleKind:
		return v.Float64
	case StringKind:
		return v.Str
	case ListKind:
		out := make([]any, len(v.List))
		for i, e := range v.List {
			out[i] = e.Interface()
		}
		return out
	case BranchListKind:
		return v.Branches
	default:
		return nil
	}
}

// InlineComment returns the first CommentInline attached to v, or nil.
func (v *Value) InlineComment() *Comment {
	for _, c := range v.Comments {
		if c.Kind == CommentInline {
			return c
		}
	}
	return nil
}
