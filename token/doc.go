// Package token provides the character-level scanning both parsers share:
// quote-aware index lookup, comment location, bracket/quote balance for
// multi-line values, line splitting, and string quoting rules.
//
// # Usage
//
//	if i := token.IndexUnquoted(line, '='); i != -1 {
//		key, rest := line[:i], line[i+1:]
//		_ = key
//		_ = rest
//	}
//
// # Related Packages
//
//   - github.com/versa-format/go-versa/parse - The two parsers
package token
