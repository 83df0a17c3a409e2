package main

import (
	"context"
	"sync"

	"go.lsp.dev/protocol"

	"github.com/versa-format/go-versa/ir"
	"github.com/versa-format/go-versa/parse"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	node    *ir.Node
	errs    []*parse.Error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

// put reparses content in non-strict mode so a single bad line still
// yields a tree plus one diagnostic per offending line.
func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	var errs []*parse.Error
	node, err := parse.ParseString(content,
		parse.WithStrict(false),
		parse.WithErrorSink(func(e *parse.Error) {
			errs = append(errs, e)
		}))
	if err != nil {
		node = nil
	}
	ds.docs[uri] = &document{
		uri:     uri,
		content: content,
		version: version,
		node:    node,
		errs:    errs,
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil || s.conn == nil {
		return
	}
	diagnostics := []protocol.Diagnostic{}
	for _, e := range doc.errs {
		diagnostics = append(diagnostics, diagnosticFor(e))
	}
	logf("lsp: publish %d diagnostics for %s\n", len(diagnostics), uri)
	s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(uri),
		Diagnostics: diagnostics,
	})
}

// diagnosticFor maps a positioned parse error to an LSP range covering
// the offending line. parse.Error lines are 1-based, LSP lines 0-based.
func diagnosticFor(e *parse.Error) protocol.Diagnostic {
	line := uint32(0)
	if e.Line > 0 {
		line = uint32(e.Line - 1)
	}
	end := uint32(len(e.Text))
	if end == 0 {
		end = 1
	}
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: 0},
			End:   protocol.Position{Line: line, Character: end},
		},
		Severity: protocol.DiagnosticSeverityError,
		Message:  e.Reason,
		Source:   "versa",
	}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}
	content := doc.content
	for _, change := range params.ContentChanges {
		r := change.Range
		if r.Start == (protocol.Position{}) && r.End == (protocol.Position{}) {
			content = change.Text
			continue
		}
		start := offsetAt(content, int(r.Start.Line), int(r.Start.Character))
		end := offsetAt(content, int(r.End.Line), int(r.End.Character))
		if start <= end && end <= len(content) {
			content = content[:start] + change.Text + content[end:]
		}
	}
	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

// offsetAt converts a 0-based line/column position to a byte offset.
func offsetAt(content string, line, col int) int {
	curLine, curCol := 0, 0
	for i := range content {
		if curLine == line && curCol == col {
			return i
		}
		if content[i] == '\n' {
			curLine++
			curCol = 0
		} else {
			curCol++
		}
	}
	return len(content)
}
