package main

import (
	"context"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/versa-format/go-versa/encode"
)

// Formatting re-renders the whole document in its own syntax with
// normalized indentation, returned as one full-document edit.
func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil || len(doc.errs) > 0 {
		return nil, nil
	}
	n := doc.node.Clone()
	n.IndentUnit = -1
	formatted, err := encode.String(n)
	if err != nil {
		logf("lsp: format failed: %v\n", err)
		return nil, nil
	}
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}
	lines := strings.Count(doc.content, "\n")
	if len(doc.content) > 0 && !strings.HasSuffix(doc.content, "\n") {
		lines++
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: uint32(lines), Character: 0},
			},
			NewText: formatted,
		},
	}, nil
}
