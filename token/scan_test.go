package token

import (
	"strings"
	"testing"
)

func TestIndexUnquoted(t *testing.T) {
	for i, tc := range []struct {
		s      string
		target byte
		want   int
	}{
		{s: "key = 10", target: '=', want: 4},
		{s: `s = "a=b"`, target: '=', want: 2},
		{s: `"a=b"`, target: '=', want: -1},
		{s: `"a\"=b"`, target: '=', want: -1},
		{s: "plain", target: '=', want: -1},
		{s: "a: b", target: ':', want: 1},
		{s: `"x:y" : z`, target: ':', want: 6},
	} {
		if got := IndexUnquoted(tc.s, tc.target); got != tc.want {
			t.Errorf("test %d: IndexUnquoted(%q, %q) = %d, want %d",
				i, tc.s, tc.target, got, tc.want)
		}
	}
}

func TestFindComment(t *testing.T) {
	for i, tc := range []struct {
		s     string
		idx   int
		width int
	}{
		{s: "port = 1 // note", idx: 9, width: 2},
		{s: "port = 1 # note", idx: 9, width: 1},
		{s: `url = "http://x"`, idx: -1, width: 0},
		{s: `tag = "#hash"`, idx: -1, width: 0},
		{s: "plain", idx: -1, width: 0},
		{s: "a / b // c", idx: 6, width: 2},
	} {
		idx, width := FindComment(tc.s)
		if idx != tc.idx || width != tc.width {
			t.Errorf("test %d: FindComment(%q) = (%d, %d), want (%d, %d)",
				i, tc.s, idx, width, tc.idx, tc.width)
		}
	}
}

func TestStripComment(t *testing.T) {
	for i, tc := range []struct {
		s, want string
	}{
		{s: "10 // note", want: "10"},
		{s: `"a // b"`, want: `"a // b"`},
		{s: "[1, 2] # c", want: "[1, 2]"},
		{s: "bare", want: "bare"},
	} {
		if got := StripComment(tc.s); got != tc.want {
			t.Errorf("test %d: StripComment(%q) = %q, want %q", i, tc.s, got, tc.want)
		}
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("a\nb\r\nc\n\n\n")
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %q", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: %q, want %q", i, got[i], want[i])
		}
	}
	if lines := SplitLines(""); len(lines) != 0 {
		t.Errorf("empty input: %q", lines)
	}
	// interior blanks survive
	if lines := SplitLines("a\n\nb"); len(lines) != 3 || lines[1] != "" {
		t.Errorf("interior blank: %q", lines)
	}
}

func TestCountIndent(t *testing.T) {
	if n := CountIndent("    x"); n != 4 {
		t.Errorf("got %d", n)
	}
	if n := CountIndent("\tx"); n != 0 {
		t.Errorf("tabs are not indent, got %d", n)
	}
	if n := CountIndent(strings.Repeat(" ", 8)); n != 8 {
		t.Errorf("got %d", n)
	}
}
