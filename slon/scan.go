package slon

// Character classification for the SLON grammar. These are byte predicates:
// every structurally significant character is ASCII, so multi-byte UTF-8
// sequences fall through as ordinary string content.

// isDelimiter reports whether c is one of the structural characters
// : , ( ) [ ] | that terminate bare strings, numbers, and keywords.
func isDelimiter(c byte) bool {
	switch c {
	case ':', ',', '(', ')', '[', ']', '|':
		return true
	default:
		return false
	}
}

// isWhitespace reports whether c is space, tab, CR, or LF.
func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

// isBoundary reports whether position i in s is end-of-input, a delimiter,
// or whitespace. Keywords, numbers, and datetime literals must be followed
// by a boundary so that a token is never a prefix of a longer bare string.
func isBoundary(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	return isDelimiter(s[i]) || isWhitespace(s[i])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isNumberChar reports whether c may appear in a number literal run.
func isNumberChar(c byte) bool {
	switch c {
	case '+', '-', '.', 'e', 'E':
		return true
	default:
		return isDigit(c)
	}
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'f') ||
		(c >= 'A' && c <= 'F')
}

// keyNeedsQuoting reports whether an object key must be emitted as a quoted
// string: empty keys and keys containing a delimiter, quote character, or
// whitespace cannot be written bare.
func keyNeedsQuoting(s string) bool {
	if len(s) == 0 {
		return true
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isDelimiter(c) || isWhitespace(c) || c == '\'' || c == '"' {
			return true
		}
	}
	return false
}
