package slon

import "fmt"

// ErrCode classifies parse failures.
type ErrCode uint8

const (
	ErrUnexpectedEOF ErrCode = iota
	ErrTrailingContent
	ErrSyntax
	ErrBadEscape
	ErrBadUnicodeEscape
	ErrEmptyString
	ErrBadNumber
	ErrNumberBoundary
	ErrNonFinite
	ErrUnterminatedString
	ErrDepthExceeded
)

// String returns the error code name.
func (c ErrCode) String() string {
	switch c {
	case ErrUnexpectedEOF:
		return "unexpected end of input"
	case ErrTrailingContent:
		return "unexpected trailing content"
	case ErrSyntax:
		return "syntax error"
	case ErrBadEscape:
		return "unknown escape sequence"
	case ErrBadUnicodeEscape:
		return "invalid unicode escape"
	case ErrEmptyString:
		return "empty string value"
	case ErrBadNumber:
		return "invalid number"
	case ErrNumberBoundary:
		return "invalid number boundary"
	case ErrNonFinite:
		return "non-finite number"
	case ErrUnterminatedString:
		return "unterminated string literal"
	case ErrDepthExceeded:
		return "nesting depth exceeded"
	default:
		return "unknown error"
	}
}

// ParseError represents a parsing error with the byte offset at which it
// was detected. Parsing is fail-fast: the first error aborts the whole
// parse and no partial tree is returned.
type ParseError struct {
	Code    ErrCode
	Message string
	Offset  int
}

func (e *ParseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("slon: %s at offset %d", e.Code, e.Offset)
	}
	return fmt.Sprintf("slon: %s at offset %d", e.Message, e.Offset)
}
