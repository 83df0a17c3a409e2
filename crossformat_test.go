package versa

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/versa-format/go-versa/encode"
	"github.com/versa-format/go-versa/format"
	"github.com/versa-format/go-versa/ir"
	"github.com/versa-format/go-versa/parse"
)

// flatten maps every dotted path in the tree to its rendered scalar.
// A named list and a branch holding only anonymous values flatten the
// same way, since the two syntaxes trade one for the other.
func flatten(n *ir.Node) map[string]string {
	out := map[string]string{}
	var walk func(prefix string, n *ir.Node)
	walk = func(prefix string, n *ir.Node) {
		i := 0
		for _, e := range n.Order {
			switch e.Kind {
			case ir.ValueEntry:
				if e.Value.Kind == ir.ListKind {
					for j, el := range e.Value.List {
						out[fmt.Sprintf("%s%s.%d", prefix, e.Value.Name, j)] = render(el)
					}
					continue
				}
				name := e.Value.Name
				if name == "" {
					name = fmt.Sprint(i)
					i++
				}
				out[prefix+name] = render(e.Value)
			case ir.BranchEntry:
				walk(prefix+e.Branch.Name+".", e.Branch)
			}
		}
	}
	walk("", n)
	return out
}

func render(v *ir.Value) string {
	s, err := encode.Value(v)
	if err != nil {
		return "<unrenderable>"
	}
	return s
}

// A tree parsed from Versa and rendered as YAML keeps every key,
// scalar, and branch nesting through a reparse.
func TestCrossFormatFidelity(t *testing.T) {
	src := `// service config
name = "web"
port = 8080
ratio = 1.5
active = true

server {
    host = "example.com"
    limits {
        burst = 9
    }
}
tags = ["red", "blue"]
`
	n, err := ParseString(src)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Render(n, format.YAMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	back, err := ParseString(out, parse.WithFormat(format.YAMLFormat))
	if err != nil {
		t.Fatalf("reparse of %q: %v", out, err)
	}
	if diff := cmp.Diff(flatten(n), flatten(back)); diff != "" {
		t.Errorf("cross-format drift (-versa +yaml):\n%s", diff)
	}
}

func TestMergeKeepsDefaultsLayout(t *testing.T) {
	defaults, err := ParseString("// defaults\na = 1\nsec {\n    b = 2\n}\nc = 3\n")
	if err != nil {
		t.Fatal(err)
	}
	user, err := ParseString("sec {\n    b = 20\n}\nextra = 9\n")
	if err != nil {
		t.Fatal(err)
	}
	got := flatten(Merge(defaults, user))
	want := map[string]string{
		"a":     "1",
		"sec.b": "20",
		"c":     "3",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("merge result (-want +got):\n%s", diff)
	}
}
