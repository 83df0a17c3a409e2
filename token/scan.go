package token

import "strings"

// IndexUnquoted returns the index of the first occurrence of target outside
// double-quoted string regions, or -1. Quote state toggles on '"' unless
// the quote is escaped with a backslash.
func IndexUnquoted(s string, target byte) int {
	inQuotes := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' && (i == 0 || s[i-1] != '\\') {
			inQuotes = !inQuotes
			continue
		}
		if c == target && !inQuotes {
			return i
		}
	}
	return -1
}

// FindComment locates the first comment start outside quotes: "//" or '#'.
// It returns the index and the prefix width (2 for slash, 1 for hash), or
// (-1, 0) when the text has no comment.
func FindComment(s string) (idx, width int) {
	inQuotes := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' && (i == 0 || s[i-1] != '\\') {
			inQuotes = !inQuotes
			continue
		}
		if inQuotes {
			continue
		}
		if c == '/' && i+1 < len(s) && s[i+1] == '/' {
			return i, 2
		}
		if c == '#' {
			return i, 1
		}
	}
	return -1, 0
}

// StripComment cuts s at the first unquoted comment start and trims the
// remainder.
func StripComment(s string) string {
	i, _ := FindComment(s)
	if i == -1 {
		return s
	}
	return strings.TrimSpace(s[:i])
}

// SplitLines splits source text on newlines, strips carriage returns, and
// drops trailing empty lines (rendering restores the final newline from the
// tree's own flag).
func SplitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// CountIndent counts leading spaces. Tabs do not count as indentation in
// either syntax.
func CountIndent(s string) int {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	return i
}
