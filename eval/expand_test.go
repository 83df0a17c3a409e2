package eval

import (
	"errors"
	"testing"

	"github.com/versa-format/go-versa/encode"
	"github.com/versa-format/go-versa/ir"
	"github.com/versa-format/go-versa/parse"
)

func TestExpandPathRef(t *testing.T) {
	n, err := parse.ParseString("base = 8000\nport = \"${base}\"\nlabel = \"p${base}\"\n")
	if err != nil {
		t.Fatal(err)
	}
	if err := Expand(n); err != nil {
		t.Fatal(err)
	}
	// a whole-string reference keeps the referenced type
	port := n.GetValue("port")
	if port == nil || port.Kind != ir.IntKind || port.Int64 != 8000 {
		t.Errorf("port = %+v", port)
	}
	if got := n.GetString("label"); got != "p8000" {
		t.Errorf("label = %q", got)
	}
	want := "base = 8000\nport = 8000\nlabel = \"p8000\""
	if got := encode.MustString(n); got != want {
		t.Errorf("rendered:\n%s\nwant:\n%s", got, want)
	}
}

func TestExpandEnvRef(t *testing.T) {
	n, err := parse.ParseString("home = \"${env:HOME_DIR}\"\n")
	if err != nil {
		t.Fatal(err)
	}
	if err := Expand(n, WithEnv(map[string]string{"HOME_DIR": "/opt"})); err != nil {
		t.Fatal(err)
	}
	if got := n.GetString("home"); got != "/opt" {
		t.Errorf("home = %q", got)
	}
}

func TestExpandExpr(t *testing.T) {
	src := "workers = 4\ndouble = \"${expr: workers * 2}\"\n" +
		"greet = \"${expr: \"hi \" + env.USER}\"\n" +
		"ports = \"${expr: [8000, 8001]}\"\n"
	n, err := parse.ParseString(src)
	if err != nil {
		t.Fatal(err)
	}
	if err := Expand(n, WithEnv(map[string]string{"USER": "ann"})); err != nil {
		t.Fatal(err)
	}
	d := n.GetValue("double")
	if d == nil || d.Kind != ir.IntKind || d.Int64 != 8 {
		t.Errorf("double = %+v", d)
	}
	if got := n.GetString("greet"); got != "hi ann" {
		t.Errorf("greet = %q", got)
	}
	p := n.GetValue("ports")
	if p == nil || p.Kind != ir.ListKind || len(p.List) != 2 || p.List[1].Int64 != 8001 {
		t.Errorf("ports = %+v", p)
	}
}

func TestExpandNested(t *testing.T) {
	src := "server {\n    host = \"h\"\n    url = \"http://${server.host}/\"\n}\n"
	n, err := parse.ParseString(src)
	if err != nil {
		t.Fatal(err)
	}
	if err := Expand(n); err != nil {
		t.Fatal(err)
	}
	if got := n.GetString("server.url"); got != "http://h/" {
		t.Errorf("url = %q", got)
	}
}

func TestExpandListElements(t *testing.T) {
	n, err := parse.ParseString("base = \"x\"\nxs = [\"${base}\", \"${base}-2\"]\n")
	if err != nil {
		t.Fatal(err)
	}
	if err := Expand(n); err != nil {
		t.Fatal(err)
	}
	xs := n.GetValue("xs")
	if xs == nil || len(xs.List) != 2 {
		t.Fatalf("xs = %+v", xs)
	}
	if xs.List[0].Str != "x" || xs.List[1].Str != "x-2" {
		t.Errorf("elements %q %q", xs.List[0].Str, xs.List[1].Str)
	}
}

func TestExpandUnknown(t *testing.T) {
	n, err := parse.ParseString("a = \"${missing}\"\n")
	if err != nil {
		t.Fatal(err)
	}
	if err := Expand(n); !errors.Is(err, ErrUnknownRef) {
		t.Errorf("strict: err = %v", err)
	}

	n2, err := parse.ParseString("a = \"${missing}\"\nb = \"x ${env:NOPE} y\"\n")
	if err != nil {
		t.Fatal(err)
	}
	if err := Expand(n2, WithKeepUnknown(), WithEnv(map[string]string{})); err != nil {
		t.Fatal(err)
	}
	if got := n2.GetString("a"); got != "${missing}" {
		t.Errorf("a = %q", got)
	}
	if got := n2.GetString("b"); got != "x ${env:NOPE} y" {
		t.Errorf("b = %q", got)
	}
}

func TestExpandEscape(t *testing.T) {
	n, err := parse.ParseString("a = \"$${literal}\"\nb = \"${open\"\n")
	if err != nil {
		t.Fatal(err)
	}
	if err := Expand(n); err != nil {
		t.Fatal(err)
	}
	if got := n.GetString("a"); got != "${literal}" {
		t.Errorf("a = %q", got)
	}
	// an unterminated reference reads as literal text
	if got := n.GetString("b"); got != "${open" {
		t.Errorf("b = %q", got)
	}
}

func TestExpandCycle(t *testing.T) {
	n, err := parse.ParseString("a = \"${b}\"\nb = \"${a}\"\n")
	if err != nil {
		t.Fatal(err)
	}
	if err := Expand(n); !errors.Is(err, ErrEval) {
		t.Errorf("err = %v", err)
	}
}
