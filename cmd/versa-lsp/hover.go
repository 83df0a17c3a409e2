package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/versa-format/go-versa/encode"
	"github.com/versa-format/go-versa/format"
)

// Hover resolves the dotted path of the key under the cursor and
// reports its kind and value from the last good parse.
func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	path := pathAt(doc.content, int(params.Position.Line))
	if path == "" {
		return nil, nil
	}
	text := hoverText(doc, path)
	if text == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
	}, nil
}

func hoverText(doc *document, path string) string {
	if b := doc.node.GetPathBranch(path); b != nil && path != "" {
		return fmt.Sprintf("`%s`: branch, %d entries", path, len(b.Order))
	}
	v := doc.node.GetValue(path)
	if v == nil {
		return ""
	}
	rendered, err := encode.Value(v)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("`%s`: %s\n\n```\n%s\n```", path, v.Kind, rendered)
}

// pathAt recovers the dotted path of the key on the given 0-based
// line by a lexical scan of the enclosing branches. It understands
// both syntaxes without a full parse so it works on edited buffers.
func pathAt(content string, line int) string {
	lines := strings.Split(content, "\n")
	if line >= len(lines) {
		return ""
	}
	if format.Detect([]byte(content)) == format.VersaFormat {
		return versaPathAt(lines, line)
	}
	return yamlPathAt(lines, line)
}

func versaPathAt(lines []string, line int) string {
	var stack []string
	for i := 0; i <= line && i < len(lines); i++ {
		t := strings.TrimSpace(lines[i])
		if t == "" || strings.HasPrefix(t, "//") || strings.HasPrefix(t, "#") {
			continue
		}
		if i == line {
			if key := lineKey(t); key != "" {
				return strings.Join(append(stack, key), ".")
			}
			if brace := unquotedIndex(t, '{'); brace >= 0 && lineKey(t) == "" {
				name := strings.TrimSpace(t[:brace])
				if name != "" {
					return strings.Join(append(stack, name), ".")
				}
			}
			return ""
		}
		if strings.HasPrefix(t, "}") {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			continue
		}
		if brace := unquotedIndex(t, '{'); brace >= 0 && lineKey(t) == "" {
			stack = append(stack, strings.TrimSpace(t[:brace]))
		}
	}
	return ""
}

func yamlPathAt(lines []string, line int) string {
	type level struct {
		name   string
		indent int
	}
	var stack []level
	for i := 0; i <= line && i < len(lines); i++ {
		raw := lines[i]
		t := strings.TrimSpace(raw)
		if t == "" || strings.HasPrefix(t, "#") {
			continue
		}
		indent := len(raw) - len(strings.TrimLeft(raw, " "))
		for len(stack) > 0 && stack[len(stack)-1].indent >= indent {
			stack = stack[:len(stack)-1]
		}
		key, rest, ok := strings.Cut(t, ":")
		if i == line {
			if !ok || strings.HasPrefix(t, "-") {
				return ""
			}
			var segs []string
			for _, l := range stack {
				segs = append(segs, l.name)
			}
			return strings.Join(append(segs, strings.TrimSpace(key)), ".")
		}
		if ok && strings.TrimSpace(rest) == "" {
			stack = append(stack, level{name: strings.TrimSpace(key), indent: indent})
		}
	}
	return ""
}

// lineKey returns the key of a Versa assignment line, or "" when the
// line is not an assignment.
func lineKey(t string) string {
	eq := unquotedIndex(t, '=')
	col := unquotedIndex(t, ':')
	sep := eq
	if sep < 0 || (col >= 0 && col < sep) {
		sep = col
	}
	if sep < 0 {
		return ""
	}
	if brace := unquotedIndex(t, '{'); brace >= 0 && brace < sep {
		return ""
	}
	return strings.TrimSpace(t[:sep])
}

// unquotedIndex is strings.IndexByte skipping double-quoted spans.
func unquotedIndex(s string, c byte) int {
	inQuote := false
	for i := 0; i < len(s); i++ {
		switch {
		case inQuote && s[i] == '\\':
			i++
		case s[i] == '"':
			inQuote = !inQuote
		case !inQuote && s[i] == c:
			return i
		}
	}
	return -1
}
