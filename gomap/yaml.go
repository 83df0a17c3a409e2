package gomap

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/iancoleman/orderedmap"

	"github.com/versa-format/go-versa/format"
	"github.com/versa-format/go-versa/ir"
)

// FromYAML imports a full YAML document, covering YAML the indentation
// parser does not accept (flow styles, nested sequences, anchors). The top
// level must be a mapping. Comments are lost; key order is kept.
func FromYAML(src []byte) (*ir.Node, error) {
	if len(bytes.TrimSpace(src)) == 0 {
		n := ir.New(ir.RootName)
		n.Language = format.YAMLFormat
		return n, nil
	}
	var doc any
	if err := yaml.UnmarshalWithOptions(src, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("gomap: %w", err)
	}
	if doc == nil {
		n := ir.New(ir.RootName)
		n.Language = format.YAMLFormat
		return n, nil
	}
	norm := yamlValue(doc)
	if _, _, ok := mapAccess(norm); !ok {
		return nil, fmt.Errorf("%w: top-level YAML value must be a mapping", ErrShape)
	}
	n, err := From(ir.RootName, norm)
	if err != nil {
		return nil, err
	}
	n.Language = format.YAMLFormat
	n.EndsWithNewline = true
	return n, nil
}

// yamlValue rewrites yaml.MapSlice into ordered maps so From can take it.
func yamlValue(v any) any {
	switch x := v.(type) {
	case yaml.MapSlice:
		om := orderedmap.New()
		for _, it := range x {
			om.Set(fmt.Sprint(it.Key), yamlValue(it.Value))
		}
		return om
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = yamlValue(e)
		}
		return out
	default:
		return v
	}
}
