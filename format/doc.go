// Package format names the two syntaxes a document tree can take and
// guesses which one a piece of source text is written in.
//
// # Usage
//
//	f := format.Detect(src)
//	if f.IsVersa() {
//		// brace syntax
//	}
//
//	f, err := format.ParseFormat("yaml")
//
// # Related Packages
//
//   - github.com/versa-format/go-versa/parse - Parse text to a tree
//   - github.com/versa-format/go-versa/encode - Render a tree to text
package format
