package format

// Detect classifies source text as Versa or YAML in a single forward pass.
// Outside of double-quoted strings, the first '=', '{', '}', or "//"
// classifies the input as Versa; input that runs out without one is YAML.
// '#' starts a comment in both syntaxes and never classifies.
func Detect(src []byte) Format {
	inQuotes := false
	for i := 0; i < len(src); i++ {
		c := src[i]
		if c == '"' && (i == 0 || src[i-1] != '\\') {
			inQuotes = !inQuotes
		}
		if c == '\n' {
			continue
		}
		if inQuotes {
			continue
		}
		switch {
		case c == '=':
			return VersaFormat
		case c == '{', c == '}':
			return VersaFormat
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			return VersaFormat
		}
	}
	return YAMLFormat
}

// DetectString is Detect on a string.
func DetectString(src string) Format {
	return Detect([]byte(src))
}
