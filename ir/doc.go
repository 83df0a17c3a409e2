// Package ir holds the document tree shared by both syntaxes: branches
// (Node), typed leaves (Value), comments with their attachment kinds, and
// per-branch render order (Entry). Parsing either syntax produces this
// tree; rendering walks it back out. Layout that survives a round trip
// lives here: comment text and style, blank lines, entry order, and the
// indentation unit.
//
// Trees are plain mutable structures owned by one goroutine at a time.
//
// # Usage
//
//	root := ir.New(ir.RootName)
//	db := root.AddBranch("database")
//	db.SetValue("port", 3306).
//		SetValue("host", "localhost")
//	db.Before("port").Comment(" where we listen")
//
//	port := root.GetInt("database.port")
//
// # Related Packages
//
//   - github.com/versa-format/go-versa/parse - Build trees from text
//   - github.com/versa-format/go-versa/encode - Render trees to text
//   - github.com/versa-format/go-versa/gomap - Convert trees to Go values
package ir
