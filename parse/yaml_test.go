package parse

import (
	"errors"
	"testing"

	"github.com/versa-format/go-versa/ir"
)

func TestYAMLScalars(t *testing.T) {
	tests := []struct {
		in   string
		kind ir.Kind
		want any
	}{
		{"a: 5", ir.IntKind, int64(5)},
		{"a: -12", ir.IntKind, int64(-12)},
		{"a: 5000000000", ir.LongKind, int64(5000000000)},
		{"a: 1.5", ir.DoubleKind, 1.5},
		{"a: 2e2", ir.DoubleKind, 200.0},
		{"a: true", ir.BoolKind, true},
		{"a: false", ir.BoolKind, false},
		{"a: hello", ir.StringKind, "hello"},
		{"a: hello world", ir.StringKind, "hello world"},
		{"a: \"5\"", ir.StringKind, "5"},
		{"a: \"two\\nlines\"", ir.StringKind, "two\nlines"},
	}
	for _, tc := range tests {
		n, err := ParseString(tc.in)
		if err != nil {
			t.Errorf("%s: %v", tc.in, err)
			continue
		}
		if !n.Language.IsYAML() {
			t.Errorf("%s: detected as %v", tc.in, n.Language)
		}
		v := n.Lookup("a")
		if v == nil {
			t.Errorf("%s: value not bound", tc.in)
			continue
		}
		if v.Kind != tc.kind {
			t.Errorf("%s: kind %v, want %v", tc.in, v.Kind, tc.kind)
		}
		if got := v.Interface(); got != tc.want {
			t.Errorf("%s: value %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestYAMLNesting(t *testing.T) {
	in := `server:
  host: example.com
  limits:
    burst: 10
retries: 3
`
	n, err := ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	if n.IndentUnit != 2 {
		t.Errorf("indent unit = %d", n.IndentUnit)
	}
	server := n.GetBranch("server")
	if server == nil {
		t.Fatal("server branch missing")
	}
	if got := server.Lookup("host"); got == nil || got.Str != "example.com" {
		t.Errorf("host = %v", got)
	}
	limits := server.GetBranch("limits")
	if limits == nil || limits.Lookup("burst") == nil || limits.Lookup("burst").Int64 != 10 {
		t.Errorf("limits = %v", limits)
	}
	if got := n.Lookup("retries"); got == nil || got.Int64 != 3 {
		t.Errorf("retries = %v", got)
	}
}

func TestYAMLWideIndent(t *testing.T) {
	in := "a:\n    b: 1\n    c:\n        d: 2\n"
	n, err := ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	if n.IndentUnit != 4 {
		t.Errorf("indent unit = %d", n.IndentUnit)
	}
	if n.GetBranch("a").GetBranch("c").Lookup("d").Int64 != 2 {
		t.Error("deep value lost")
	}
}

func TestYAMLDefaultIndentUnit(t *testing.T) {
	n, err := ParseString("a: 1\n")
	if err != nil {
		t.Fatal(err)
	}
	if n.IndentUnit != 2 {
		t.Errorf("indent unit = %d, want default 2", n.IndentUnit)
	}
}

func TestYAMLLists(t *testing.T) {
	in := `fruits:
  - apple
  - "two words"
  - 5
  -6
`
	n, err := ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	fruits := n.GetBranch("fruits")
	if fruits == nil {
		t.Fatal("fruits branch missing")
	}
	if len(fruits.Values) != 0 {
		t.Errorf("list items leaked into the value map: %v", fruits.Values)
	}
	var items []*ir.Value
	for _, e := range fruits.Order {
		if e.Kind == ir.ValueEntry {
			if e.Value.Name != "" {
				t.Errorf("item %q not anonymous", e.Value.Name)
			}
			items = append(items, e.Value)
		}
	}
	if len(items) != 4 {
		t.Fatalf("got %d items", len(items))
	}
	if items[0].Str != "apple" || items[1].Str != "two words" {
		t.Errorf("items = %v, %v", items[0], items[1])
	}
	if items[2].Int64 != 5 || items[3].Int64 != 6 {
		t.Errorf("numeric items = %v, %v", items[2], items[3])
	}
}

func TestYAMLComments(t *testing.T) {
	in := `# top
a: 1 # inline
b: # open
  c: 2
`
	n, err := ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	if n.Order[0].Kind != ir.CommentEntry {
		t.Fatalf("first entry = %v", n.Order[0].Kind)
	}
	c := n.Order[0].Comment
	if c.Text != " top" || c.Style != ir.HashStyle || c.Indent != 0 {
		t.Errorf("top comment = %+v", c)
	}
	if ic := n.Lookup("a").InlineComment(); ic == nil || ic.Text != " inline" || ic.Style != ir.HashStyle {
		t.Errorf("inline comment = %v", ic)
	}
	b := n.GetBranch("b")
	if b.StartComment == nil || b.StartComment.Text != " open" {
		t.Errorf("start comment = %v", b.StartComment)
	}
	if b.Lookup("c") == nil {
		t.Error("branch under commented key lost")
	}
}

func TestYAMLCommentIndentRecorded(t *testing.T) {
	in := "a:\n  x: 1\n  # tucked in\n  y: 2\n"
	n, err := ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	a := n.GetBranch("a")
	var c *ir.Comment
	for _, e := range a.Order {
		if e.Kind == ir.CommentEntry {
			c = e.Comment
		}
	}
	if c == nil || c.Indent != 2 {
		t.Errorf("comment = %+v", c)
	}
}

func TestYAMLQuotedColonKey(t *testing.T) {
	n, err := ParseString("\"a:b\": 1\n")
	if err != nil {
		t.Fatal(err)
	}
	if v := n.Lookup(`"a:b"`); v == nil || v.Int64 != 1 {
		t.Errorf("quoted key = %v", v)
	}
}

func TestYAMLErrors(t *testing.T) {
	tests := []struct {
		in     string
		reason string
		kind   error
		line   int
	}{
		{"  a: 1\n", "Unexpected indentation (no parent to attach to)", ErrStructure, 1},
		{"a:\n  b:\n      c: 1\n", "Invalid indentation increase (expected +2)", ErrStructure, 3},
		{"a:\n   b: 1\n  c: 2\n", "Indentation does not match any open level", ErrStructure, 3},
		{"just words\n", "Expected mapping key or list item", ErrSyntax, 1},
		{"a:\nb: 1\n", "Mapping key 'a' is never given a block", ErrStructure, 2},
		{"a:\n  b: 1\nc:\n", "Mapping key 'c' is never given a block", ErrStructure, 3},
	}
	for _, tc := range tests {
		_, err := ParseString(tc.in)
		if err == nil {
			t.Errorf("%q: no error", tc.in)
			continue
		}
		var pe *Error
		if !errors.As(err, &pe) {
			t.Errorf("%q: error type %T", tc.in, err)
			continue
		}
		if pe.Reason != tc.reason {
			t.Errorf("%q: reason %q, want %q", tc.in, pe.Reason, tc.reason)
		}
		if !errors.Is(err, tc.kind) {
			t.Errorf("%q: kind %v, want %v", tc.in, pe.Err, tc.kind)
		}
		if pe.Line != tc.line {
			t.Errorf("%q: line %d, want %d", tc.in, pe.Line, tc.line)
		}
	}
}

func TestYAMLNonStrictIndent(t *testing.T) {
	in := "nums:\n  - 1\n - 2\n"
	var reported []*Error
	n, err := ParseString(in, WithStrict(false), WithErrorSink(func(e *Error) {
		reported = append(reported, e)
	}))
	if err != nil {
		t.Fatal(err)
	}
	if len(reported) != 2 {
		t.Fatalf("reported %d errors: %v", len(reported), reported)
	}
	// the stray item lands on the level the parser fell back to
	var rootItems int
	for _, e := range n.Order {
		if e.Kind == ir.ValueEntry {
			rootItems++
		}
	}
	if rootItems != 1 {
		t.Errorf("root items = %d", rootItems)
	}
}

func TestYAMLLayout(t *testing.T) {
	in := "\na: 1\n\nb: 2\n"
	n, err := ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	want := []ir.EntryKind{
		ir.EmptyLineEntry,
		ir.ValueEntry,
		ir.EmptyLineEntry,
		ir.ValueEntry,
	}
	if len(n.Order) != len(want) {
		t.Fatalf("order has %d entries, want %d", len(n.Order), len(want))
	}
	for i, k := range want {
		if n.Order[i].Kind != k {
			t.Errorf("order[%d] = %v, want %v", i, n.Order[i].Kind, k)
		}
	}
	if !n.EndsWithNewline {
		t.Error("final newline not recorded")
	}
}
