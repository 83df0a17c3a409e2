// Package encode renders document trees back to Versa or YAML text.
//
// # Usage
//
//	// Render in the tree's own syntax
//	err := encode.Encode(node, os.Stdout)
//
//	// Convert between syntaxes
//	out, err := encode.String(node, encode.EncodeFormat(format.YAMLFormat))
//
//	// Colored terminal output
//	err := encode.Encode(node, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// Rendering walks each branch's order, so comments, blank lines, and the
// relative position of every element come out where the source had them.
// A tree parsed and rendered in the same syntax reproduces its input.
//
// # Related Packages
//
//   - github.com/versa-format/go-versa/ir - document tree representation
//   - github.com/versa-format/go-versa/parse - parse text into trees
package encode
