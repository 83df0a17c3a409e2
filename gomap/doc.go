// Package gomap converts between document trees and plain Go values, and
// bridges the tree into external formats (JSON, full YAML, TOML, INI).
//
// The map view is order preserving: branches become nested
// *orderedmap.OrderedMap values, so a tree exported to JSON keeps its key
// order. Layout (comments, blank lines) is not part of the view and does
// not survive a round trip through it.
//
// # Usage
//
//	n, _ := parse.ParseString("server {\n    port = 8080\n}\n")
//	m := gomap.To(n)
//	data, _ := gomap.ToJSON(n)
//
//	back, _ := gomap.From("server", map[string]any{"port": 8080})
//
// Full YAML documents outside the indentation subset can be imported
// through FromYAML; comments are lost but key order is kept:
//
//	n, err := gomap.FromYAML(data)
//
// # Related Packages
//
// Package ir holds the tree the conversions build and read.
//
// Package parse builds trees with layout preserved; prefer it over FromYAML
// for documents inside the subset.
package gomap
