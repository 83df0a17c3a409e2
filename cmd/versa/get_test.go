package main

import (
	"testing"

	"github.com/versa-format/go-versa/format"
	"github.com/versa-format/go-versa/parse"
)

func TestPathOutputScalar(t *testing.T) {
	tests := []struct {
		doc    string
		format format.Format
		path   string
		want   string
	}{
		{"port = 25565\n", format.VersaFormat, "port", "25565"},
		{"port: 25565\n", format.YAMLFormat, "port", "25565"},
		{"name = \"web\"\n", format.VersaFormat, "name", `"web"`},
		{"ratio: 1.5\n", format.YAMLFormat, "ratio", "1.5"},
		{"net {\n    host = \"a\"\n}\n", format.VersaFormat, "net.host", `"a"`},
	}
	for _, tt := range tests {
		n, err := parse.ParseString(tt.doc, parse.WithFormat(tt.format))
		if err != nil {
			t.Errorf("%q: parse: %v", tt.doc, err)
			continue
		}
		got, err := pathOutput(n, tt.path)
		if err != nil {
			t.Errorf("%q: %v", tt.doc, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q at %s: got %q, want %q", tt.doc, tt.path, got, tt.want)
		}
	}
}

func TestPathOutputMissing(t *testing.T) {
	n, err := parse.ParseString("a = 1\n")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := pathOutput(n, "nope"); err == nil {
		t.Error("expected an error for a missing path")
	}
}
