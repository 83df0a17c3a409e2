package format

import "testing"

type detectTest struct {
	in   string
	want Format
}

var detectTests = []detectTest{
	{in: "key = 10\n", want: VersaFormat},
	{in: "server {\n}\n", want: VersaFormat},
	{in: "// top comment\nkey: 1\n", want: VersaFormat},
	{in: "key: value\n", want: YAMLFormat},
	{in: "# comment\nkey: value\n", want: YAMLFormat},
	{in: "items:\n  - one\n  - two\n", want: YAMLFormat},
	// '=' inside a quoted string must not classify
	{in: "motd: \"a = b\"\n", want: YAMLFormat},
	{in: "motd: \"{not a brace}\"\nurl: \"http://x\"\n", want: YAMLFormat},
	// first deciding character wins even late in the input
	{in: "a: 1\nb: 2\nc = 3\n", want: VersaFormat},
	{in: "", want: YAMLFormat},
	// escaped quote does not close the string
	{in: "s: \"a\\\"b = c\"\n", want: YAMLFormat},
}

func TestDetect(t *testing.T) {
	for i, tc := range detectTests {
		got := Detect([]byte(tc.in))
		if got != tc.want {
			t.Errorf("test %d: Detect(%q) = %v, want %v", i, tc.in, got, tc.want)
		}
	}
}

func TestDetectString(t *testing.T) {
	if got := DetectString("a = 1"); got != VersaFormat {
		t.Errorf("got %v", got)
	}
}
