package bind

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/versa-format/go-versa/encode"
	"github.com/versa-format/go-versa/ir"
	"github.com/versa-format/go-versa/parse"
)

func TestDefaultsLayout(t *testing.T) {
	s := &Schema{Fields: []Field{
		{Path: "name", Default: "srv", Comment: "display name"},
		{Path: "net.port", Default: 25565, SpaceBefore: true, Inline: "tcp"},
		{Path: "net.workers", Default: 4},
		{Path: "tags", Default: []string{"a", "b"}},
	}}
	n, err := s.Defaults()
	if err != nil {
		t.Fatal(err)
	}
	out, err := encode.String(n)
	if err != nil {
		t.Fatal(err)
	}
	want := "// display name\nname = \"srv\"\nnet {\n\n    port = 25565 // tcp\n    workers = 4\n}\ntags = [\"a\", \"b\"]\n"
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestApplyOverlay(t *testing.T) {
	var (
		name    string
		port    int
		workers int
		tags    []string
	)
	s := &Schema{Fields: []Field{
		{Path: "name", Ptr: &name, Default: "srv"},
		{Path: "net.port", Ptr: &port, Default: 25565},
		{Path: "net.workers", Ptr: &workers, Default: 4},
		{Path: "tags", Ptr: &tags, Default: []string{"a"}},
	}}
	n, err := parse.ParseString("name = \"from-file\"\nnet {\n    port = 1\n}\ntags = [\"x\", \"y\"]\n")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Apply(n); err != nil {
		t.Fatal(err)
	}
	if name != "from-file" || port != 1 {
		t.Errorf("file values: name=%q port=%d", name, port)
	}
	if workers != 4 {
		t.Errorf("missing path did not keep default: workers=%d", workers)
	}
	if len(tags) != 2 || tags[1] != "y" {
		t.Errorf("tags = %v", tags)
	}
}

func TestApplyWidening(t *testing.T) {
	var ratio float64
	s := &Schema{Fields: []Field{{Path: "ratio", Ptr: &ratio}}}
	n, err := parse.ParseString("ratio = 2\n")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Apply(n); err != nil {
		t.Fatal(err)
	}
	if ratio != 2.0 {
		t.Errorf("ratio = %v", ratio)
	}
}

func TestApplyKindMismatch(t *testing.T) {
	var port int
	s := &Schema{Fields: []Field{{Path: "port", Ptr: &port}}}
	n, err := parse.ParseString("port = \"oops\"\n")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Apply(n); !errors.Is(err, ErrKind) {
		t.Errorf("err = %v", err)
	}
}

func TestApplyNoDefaultLeavesValue(t *testing.T) {
	preset := 7
	s := &Schema{Fields: []Field{{Path: "missing", Ptr: &preset}}}
	n, err := parse.ParseString("other = 1\n")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Apply(n); err != nil {
		t.Fatal(err)
	}
	if preset != 7 {
		t.Errorf("preset = %d", preset)
	}
}

func TestLoadGeneratesAndRereads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "cfg.versa")

	var port int
	s := &Schema{Fields: []Field{
		{Path: "net.port", Ptr: &port, Default: 25565},
	}}
	if _, err := s.Load(path); err != nil {
		t.Fatal(err)
	}
	if port != 25565 {
		t.Errorf("first load: port = %d", port)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "net {\n    port = 25565\n}\n"; string(data) != want {
		t.Errorf("generated file:\n%s\nwant:\n%s", data, want)
	}

	// edits overlay the defaults on the next load
	if err := os.WriteFile(path, []byte("net {\n    port = 1\n}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(path); err != nil {
		t.Fatal(err)
	}
	if port != 1 {
		t.Errorf("second load: port = %d", port)
	}
}

type durationCodec struct{}

func (durationCodec) Decode(v *ir.Value) (any, error) {
	if v.Kind != ir.StringKind {
		return nil, fmt.Errorf("want string, got %s", v.Kind)
	}
	return time.ParseDuration(v.Str)
}

func (durationCodec) Encode(val any) (*ir.Value, error) {
	d, ok := val.(time.Duration)
	if !ok {
		return nil, fmt.Errorf("want duration, got %T", val)
	}
	return ir.FromString(d.String()), nil
}

func TestCodec(t *testing.T) {
	var timeout time.Duration
	s := &Schema{Fields: []Field{
		{Path: "timeout", Ptr: &timeout, Default: 5 * time.Second, Codec: durationCodec{}},
	}}

	n, err := s.Defaults()
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(n); got != "timeout = \"5s\"" {
		t.Errorf("defaults render %q", got)
	}

	parsed, err := parse.ParseString("timeout = \"30s\"\n")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Apply(parsed); err != nil {
		t.Fatal(err)
	}
	if timeout != 30*time.Second {
		t.Errorf("timeout = %v", timeout)
	}

	// missing path goes through the default, not the codec
	empty, err := parse.ParseString("other = 1\n")
	if err != nil {
		t.Fatal(err)
	}
	timeout = 0
	if err := s.Apply(empty); err != nil {
		t.Fatal(err)
	}
	if timeout != 5*time.Second {
		t.Errorf("default timeout = %v", timeout)
	}
}
