// Package parse parses Versa and YAML text into document trees.
//
// # Usage
//
//	// Parse with automatic format detection
//	node, err := parse.Parse([]byte("name = \"alice\"\nage = 30\n"))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	node, err := parse.ParseString("server:\n  port: 8080\n")
//
//	// Parse with options
//	node, err := parse.Parse(data,
//	    parse.WithFormat(format.YAMLFormat),
//	    parse.WithStrict(false),
//	    parse.WithErrorSink(func(e *parse.Error) { log.Print(e) }))
//
// Both parsers build the same tree shape: branches preserve the order of
// their values, sub-branches, comments, and blank lines, so a parse
// followed by an encode reproduces the document layout.
//
// # Related Packages
//
//   - github.com/versa-format/go-versa/ir - document tree representation
//   - github.com/versa-format/go-versa/encode - render trees back to text
//   - github.com/versa-format/go-versa/format - format detection
package parse
