package token

import "testing"

func TestUnbalanced(t *testing.T) {
	for i, tc := range []struct {
		s    string
		want bool
	}{
		{s: "10", want: false},
		{s: "[1, 2]", want: false},
		{s: "[1, 2", want: true},
		{s: "{ a = 1", want: true},
		{s: "{ a = 1 }", want: false},
		{s: `"open`, want: true},
		{s: `"closed"`, want: false},
		{s: `"a [ b"`, want: false},
		{s: "[ { } ]", want: false},
		{s: "[ {", want: true},
		// over-closing is not "open"
		{s: "]", want: false},
	} {
		if got := Unbalanced(tc.s); got != tc.want {
			t.Errorf("test %d: Unbalanced(%q) = %v, want %v", i, tc.s, got, tc.want)
		}
	}
}

func TestSplitTop(t *testing.T) {
	for i, tc := range []struct {
		s    string
		want []string
	}{
		{s: "1, 2, 3", want: []string{"1", " 2", " 3"}},
		{s: `"a,b", c`, want: []string{`"a,b"`, " c"}},
		{s: "{x = 1, y = 2}, {z = 3}", want: []string{"{x = 1, y = 2}", " {z = 3}"}},
		{s: "[1, 2], [3]", want: []string{"[1, 2]", " [3]"}},
		{s: "solo", want: []string{"solo"}},
	} {
		got := SplitTop(tc.s)
		if len(got) != len(tc.want) {
			t.Fatalf("test %d: SplitTop(%q) = %q, want %q", i, tc.s, got, tc.want)
		}
		for j := range got {
			if got[j] != tc.want[j] {
				t.Errorf("test %d part %d: %q, want %q", i, j, got[j], tc.want[j])
			}
		}
	}
}

func TestQuoteUnquote(t *testing.T) {
	if s, ok := Unquote(`"hello"`); !ok || s != "hello" {
		t.Errorf("got %q %v", s, ok)
	}
	if s, ok := Unquote(`"a\nb"`); !ok || s != "a\nb" {
		t.Errorf("escape decode: %q %v", s, ok)
	}
	if s, ok := Unquote("bare"); ok || s != "bare" {
		t.Errorf("got %q %v", s, ok)
	}
	if got := Quote("x"); got != `"x"` {
		t.Errorf("got %q", got)
	}
	if got := QuoteEscaped("a\nb"); got != `"a\nb"` {
		t.Errorf("got %q", got)
	}
}
