package main

import (
	"strings"
	"testing"

	"github.com/versa-format/go-versa/parse"
)

func TestHoverText(t *testing.T) {
	node, err := parse.ParseString("port = 25565\nserver {\n    host = \"a\"\n}\n")
	if err != nil {
		t.Fatal(err)
	}
	doc := &document{node: node}

	if got, want := hoverText(doc, "port"), "`port`: Int\n\n```\n25565\n```"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := hoverText(doc, "server"), "`server`: branch, 1 entries"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := hoverText(doc, "nope"); got != "" {
		t.Errorf("got %q for a missing path", got)
	}
	for _, path := range []string{"port", "server"} {
		if strings.Contains(hoverText(doc, path), "—") {
			t.Errorf("hover text for %s contains an em-dash", path)
		}
	}
}

func TestPathAt(t *testing.T) {
	versa := "top = 1\nserver {\n    host = \"a\"\n    limits {\n        burst = 9\n    }\n}\n"
	tests := []struct {
		line int
		want string
	}{
		{0, "top"},
		{1, "server"},
		{2, "server.host"},
		{4, "server.limits.burst"},
	}
	for _, tt := range tests {
		if got := pathAt(versa, tt.line); got != tt.want {
			t.Errorf("versa line %d: got %q, want %q", tt.line, got, tt.want)
		}
	}

	yaml := "top: 1\nserver:\n  host: a\n  limits:\n    burst: 9\n"
	for _, tt := range tests {
		if got := pathAt(yaml, tt.line); got != tt.want {
			t.Errorf("yaml line %d: got %q, want %q", tt.line, got, tt.want)
		}
	}
}
