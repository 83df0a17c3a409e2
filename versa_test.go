package versa

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/versa-format/go-versa/format"
)

func TestParseDetects(t *testing.T) {
	n, err := Parse([]byte("a = 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if n.Language != format.VersaFormat {
		t.Errorf("language = %s", n.Language)
	}
	y, err := ParseString("a: 1\n")
	if err != nil {
		t.Fatal(err)
	}
	if y.Language != format.YAMLFormat {
		t.Errorf("language = %s", y.Language)
	}
}

func TestLoadStringRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.versa")
	src := "// head\nname = \"srv\"\n\nnet {\n    port = 8080 // tcp\n}\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	n, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	out, err := String(n)
	if err != nil {
		t.Fatal(err)
	}
	if out != src {
		t.Errorf("got:\n%s\nwant:\n%s", out, src)
	}
}

func TestRenderExplicit(t *testing.T) {
	n, err := ParseString("port = 1\nname = \"x\"\n")
	if err != nil {
		t.Fatal(err)
	}
	out, err := Render(n, format.YAMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	if want := "port: 1\nname: x\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestSaveBySuffix(t *testing.T) {
	n, err := ParseString("a = 1\n")
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "deep", "out.yaml")
	if err := Save(n, path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "a: 1\n"; string(data) != want {
		t.Errorf("got %q, want %q", data, want)
	}
}

func TestDetect(t *testing.T) {
	if f := Detect([]byte("a = 1\n")); f != format.VersaFormat {
		t.Errorf("detect = %s", f)
	}
	if f := Detect([]byte("a: 1\n")); f != format.YAMLFormat {
		t.Errorf("detect = %s", f)
	}
}
