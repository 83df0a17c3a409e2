package ir

import (
	"math"
	"testing"
)

type fromAnyTest struct {
	in   any
	kind Kind
}

var fromAnyTests = []fromAnyTest{
	{in: true, kind: BoolKind},
	{in: false, kind: BoolKind},
	{in: 7, kind: IntKind},
	{in: int(math.MaxInt32), kind: IntKind},
	{in: int(math.MinInt32), kind: IntKind},
	{in: int(math.MaxInt32) + 1, kind: LongKind},
	{in: int(math.MinInt32) - 1, kind: LongKind},
	{in: int64(7), kind: LongKind},
	{in: float32(1.5), kind: FloatKind},
	{in: 1.5, kind: DoubleKind},
	{in: "x", kind: StringKind},
	{in: []string{"a", "b"}, kind: ListKind},
	{in: []int{1, 2}, kind: ListKind},
	{in: []any{1, "a"}, kind: ListKind},
	// unsupported types become their printed form
	{in: struct{ X int }{X: 3}, kind: StringKind},
}

func TestFromAny(t *testing.T) {
	for i, tc := range fromAnyTests {
		v := FromAny(tc.in)
		if v.Kind != tc.kind {
			t.Errorf("test %d: FromAny(%v) kind = %v, want %v", i, tc.in, v.Kind, tc.kind)
		}
	}
}

func TestClassifyInt(t *testing.T) {
	if v := ClassifyInt(12); v.Kind != IntKind || v.Int64 != 12 {
		t.Errorf("got %v %d", v.Kind, v.Int64)
	}
	if v := ClassifyInt(math.MaxInt32 + 1); v.Kind != LongKind {
		t.Errorf("got %v", v.Kind)
	}
}

func TestValueInterface(t *testing.T) {
	for i, tc := range []struct {
		v    *Value
		want any
	}{
		{v: FromBool(true), want: true},
		{v: FromInt(3), want: int64(3)},
		{v: FromFloat64(2.5), want: 2.5},
		{v: FromString("s"), want: "s"},
	} {
		if got := tc.v.Interface(); got != tc.want {
			t.Errorf("test %d: got %v (%T), want %v (%T)", i, got, got, tc.want, tc.want)
		}
	}
	lst := FromList(FromInt(1), FromString("a")).Interface().([]any)
	if len(lst) != 2 || lst[0] != int64(1) || lst[1] != "a" {
		t.Errorf("list interface: %v", lst)
	}
}

func TestValueClone(t *testing.T) {
	v := FromList(FromInt(1), FromString("a"))
	v.Comments = append(v.Comments, NewComment(CommentInline, " note"))
	c := v.Clone()
	c.List[0].Int64 = 99
	c.Comments[0].Text = " changed"
	if v.List[0].Int64 != 1 {
		t.Errorf("clone shares list elements")
	}
	if v.Comments[0].Text != " note" {
		t.Errorf("clone shares comments")
	}
}
