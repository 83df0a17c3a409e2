package bind

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/versa-format/go-versa/encode"
	"github.com/versa-format/go-versa/format"
	"github.com/versa-format/go-versa/ir"
	"github.com/versa-format/go-versa/parse"
)

// Field binds one dotted path to a Go variable. Default is the value
// written into generated files and used when the path is missing; Comment
// and Inline attach comments to the generated entry, SpaceBefore and
// SpaceAfter blank lines around it. A Codec takes over value conversion in
// both directions.
type Field struct {
	Path        string
	Ptr         any
	Default     any
	Comment     string
	Inline      string
	SpaceBefore bool
	SpaceAfter  bool
	Codec       ValueCodec
}

// Schema is an ordered field list; generated files keep this order.
type Schema struct {
	Fields []Field
}

// ValueCodec adapts custom Go types to tree values.
type ValueCodec interface {
	Decode(*ir.Value) (any, error)
	Encode(any) (*ir.Value, error)
}

// Defaults builds a tree from the schema's default values, with the
// declared comments and spacing. Fields without a default (and without a
// codec) are left out. Intermediate branches appear on first use.
func (s *Schema) Defaults() (*ir.Node, error) {
	root := ir.New(ir.RootName)
	root.EndsWithNewline = true
	for i := range s.Fields {
		f := &s.Fields[i]
		if f.Path == "" {
			return nil, fmt.Errorf("%w: field %d has no path", ErrField, i)
		}
		v, err := defaultValue(f)
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		parent, key := ensurePath(root, f.Path)
		if f.SpaceBefore {
			parent.EmptyLine()
		}
		if f.Comment != "" {
			parent.AddComment(ir.NewComment(ir.CommentLine, " "+f.Comment))
		}
		if f.Inline != "" {
			v.Comments = append(v.Comments, ir.NewComment(ir.CommentInline, " "+f.Inline))
		}
		parent.SetVal(key, v)
		if f.SpaceAfter {
			parent.EmptyLine()
		}
	}
	return root, nil
}

// Load reads the file at path through the schema. A missing file is first
// generated from Defaults (creating parent directories), so the caller
// always ends up with bound variables and a tree. The file's values
// overlay field defaults individually; paths absent from the file keep
// their defaults.
func (s *Schema) Load(path string, options ...parse.Option) (*ir.Node, error) {
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		n, err := s.Defaults()
		if err != nil {
			return nil, err
		}
		if f, ok := format.FromPath(path); ok {
			n.Language = f
		}
		out, err := encode.String(n)
		if err != nil {
			return nil, err
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
			return nil, err
		}
		if err := s.Apply(n); err != nil {
			return nil, err
		}
		return n, nil
	}
	n, err := parse.File(path, options...)
	if err != nil {
		return nil, err
	}
	if err := s.Apply(n); err != nil {
		return nil, err
	}
	return n, nil
}

// ensurePath walks the dotted path below root, creating intermediate
// branches, and returns the parent node plus the final key.
func ensurePath(root *ir.Node, path string) (*ir.Node, string) {
	parts := strings.Split(path, ".")
	cur := root
	for _, p := range parts[:len(parts)-1] {
		next := cur.GetBranch(p)
		if next == nil {
			next = cur.AddBranch(p)
		}
		cur = next
	}
	return cur, parts[len(parts)-1]
}

func defaultValue(f *Field) (*ir.Value, error) {
	if f.Codec != nil {
		v, err := f.Codec.Encode(f.Default)
		if err != nil {
			return nil, fmt.Errorf("%w: encoding default at %s: %v", ErrField, f.Path, err)
		}
		return v, nil
	}
	if f.Default == nil {
		return nil, nil
	}
	switch f.Default.(type) {
	case bool, int, int64, float64, string, []string, []int:
		return ir.FromAny(f.Default), nil
	}
	return nil, fmt.Errorf("%w: default %T at %s", ErrField, f.Default, f.Path)
}
