package token

import "strings"

// Quoted reports whether s is wrapped in double quotes.
func Quoted(s string) bool {
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}

// Unquote strips surrounding double quotes and decodes literal \n escape
// sequences into newlines. The second result is false when s is not a
// quoted token.
func Unquote(s string) (string, bool) {
	if !Quoted(s) {
		return s, false
	}
	inner := s[1 : len(s)-1]
	return strings.ReplaceAll(inner, `\n`, "\n"), true
}

// Quote wraps s in double quotes for Versa output. Newlines stay raw; the
// parser reassembles them by quote-aware line continuation.
func Quote(s string) string {
	return `"` + s + `"`
}

// QuoteEscaped wraps s in double quotes with newlines escaped as \n, the
// form YAML output uses.
func QuoteEscaped(s string) string {
	return `"` + strings.ReplaceAll(s, "\n", `\n`) + `"`
}
