package parse

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/versa-format/go-versa/format"
)

func TestDispatch(t *testing.T) {
	n, err := ParseString("a = 1\nsec {\n}\n")
	if err != nil {
		t.Fatal(err)
	}
	if n.Language != format.VersaFormat {
		t.Errorf("brace input detected as %v", n.Language)
	}
	n, err = ParseString("a: 1\nsec:\n  b: 2\n")
	if err != nil {
		t.Fatal(err)
	}
	if n.Language != format.YAMLFormat {
		t.Errorf("indent input detected as %v", n.Language)
	}
}

func TestReader(t *testing.T) {
	n, err := Reader(strings.NewReader("a = 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if n.Lookup("a") == nil {
		t.Error("value lost")
	}
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.versa")
	if err := os.WriteFile(path, []byte("a = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	n, err := File(path)
	if err != nil {
		t.Fatal(err)
	}
	if n.Language != format.VersaFormat || n.Lookup("a") == nil {
		t.Errorf("file parse = %v", n)
	}
}

func TestFileExtensionWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	// brace content under a .yaml name: the extension decides, so this
	// must fail as YAML rather than silently parse as Versa
	if err := os.WriteFile(path, []byte("a = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := File(path); err == nil {
		t.Error("extension override did not take effect")
	}
	// an explicit option still beats the extension
	if _, err := File(path, WithFormat(format.VersaFormat)); err != nil {
		t.Errorf("explicit format override failed: %v", err)
	}
}
