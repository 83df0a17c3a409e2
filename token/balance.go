package token

// Unbalanced reports whether s ends inside an open double quote or with
// more '{'/'[' than '}'/']' outside quotes. The multi-line value scanner
// keeps consuming lines while this holds.
func Unbalanced(s string) bool {
	inQuotes := false
	depth := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' && (i == 0 || s[i-1] != '\\') {
			inQuotes = !inQuotes
			continue
		}
		if inQuotes {
			continue
		}
		switch c {
		case '{', '[':
			depth++
		case '}', ']':
			depth--
		}
	}
	return inQuotes || depth > 0
}

// SplitTop splits s on commas at bracket depth zero outside quotes. Used
// for list element separation.
func SplitTop(s string) []string {
	var parts []string
	inQuotes := false
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' && (i == 0 || s[i-1] != '\\') {
			inQuotes = !inQuotes
			continue
		}
		if inQuotes {
			continue
		}
		switch c {
		case '{', '[':
			depth++
		case '}', ']':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}
