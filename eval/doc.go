// Package eval expands ${...} references inside string values of a
// document tree.
//
// Three reference forms resolve: ${path.in.tree} to the value at a dotted
// path, ${env:NAME} to the environment, and ${expr: ...} to the result of
// an expr-lang expression evaluated against the tree's plain map view plus
// an env map. $${ escapes a literal ${.
//
// # Usage
//
//	n, _ := parse.ParseString("base = 8000\nport = \"${base}\"\n")
//	if err := eval.Expand(n); err != nil { ... }
//	// port is now the integer 8000
//
// Unknown references fail by default; WithKeepUnknown leaves them verbatim
// instead:
//
//	err := eval.Expand(n, eval.WithKeepUnknown())
//
// # Related Packages
//
// Package gomap supplies the map view expressions evaluate against.
package eval
