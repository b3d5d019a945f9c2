package slon

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/valyala/fastjson/fastfloat"
)

// DefaultMaxDepth bounds container nesting for untrusted input.
const DefaultMaxDepth = 1000

// ParseOptions configures the parser.
type ParseOptions struct {
	// MaxDepth is the maximum container nesting depth. Values <= 0 use
	// DefaultMaxDepth.
	MaxDepth int
}

// Parse parses SLON text into a value tree. The entire trimmed input must
// be exactly one value; anything after it is ErrTrailingContent.
func Parse(input string) (*SValue, error) {
	return ParseWithOptions(input, ParseOptions{})
}

// ParseWithOptions parses with explicit options.
func ParseWithOptions(input string, opts ParseOptions) (*SValue, error) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	p := &parser{input: input, maxDepth: maxDepth}
	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if !p.end() {
		return nil, p.errorf(ErrTrailingContent, p.pos, "")
	}
	return value, nil
}

// ParseObject parses SLON text whose top-level value must be an object and
// returns its entries in insertion order.
func ParseObject(input string) ([]ObjectEntry, error) {
	value, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return value.AsObject()
}

// parser holds the single left-to-right cursor over the input. All parse
// functions advance pos monotonically; the only lookahead is the fixed
// 23-character datetime probe.
type parser struct {
	input    string
	pos      int
	depth    int
	maxDepth int
}

func (p *parser) end() bool {
	return p.pos >= len(p.input)
}

func (p *parser) advance(n int) {
	p.pos += n
}

func (p *parser) skipWhitespace() {
	for !p.end() && isWhitespace(p.input[p.pos]) {
		p.pos++
	}
}

func (p *parser) errorf(code ErrCode, offset int, message string) error {
	return &ParseError{Code: code, Message: message, Offset: offset}
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return p.errorf(ErrDepthExceeded, p.pos, "")
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

// parseValue parses any value, dispatching on the next non-space character.
func (p *parser) parseValue() (*SValue, error) {
	p.skipWhitespace()
	if p.end() {
		return nil, p.errorf(ErrUnexpectedEOF, p.pos, "")
	}

	switch c := p.input[p.pos]; {
	case c == '(':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == '\'' || c == '"':
		s, err := p.parseQuoted()
		if err != nil {
			return nil, err
		}
		return Str(s), nil
	case c == '-' || isDigit(c):
		if v, ok := p.tryDateTime(); ok {
			return v, nil
		}
		return p.parseNumber()
	default:
		if p.matchKeyword("true") {
			return Bool(true), nil
		}
		if p.matchKeyword("false") {
			return Bool(false), nil
		}
		if p.matchKeyword("null") {
			return Null(), nil
		}
		s, err := p.parseBare()
		if err != nil {
			return nil, err
		}
		return Str(s), nil
	}
}

// parseObject parses ( key: value, ... ).
func (p *parser) parseObject() (*SValue, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	p.advance(1) // consume (
	obj := Object()

	p.skipWhitespace()
	if !p.end() && p.input[p.pos] == ')' {
		p.advance(1)
		return obj, nil
	}

	for {
		p.skipWhitespace()
		key, err := p.parseStringLike()
		if err != nil {
			return nil, err
		}

		p.skipWhitespace()
		if p.end() || p.input[p.pos] != ':' {
			return nil, p.errorf(ErrSyntax, p.pos, "expected ':' after key")
		}
		p.advance(1)

		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj.Set(key, value)

		p.skipWhitespace()
		if p.end() {
			return nil, p.errorf(ErrUnexpectedEOF, p.pos, "unterminated object")
		}
		switch p.input[p.pos] {
		case ',':
			p.advance(1)
		case ')':
			p.advance(1)
			return obj, nil
		default:
			return nil, p.errorf(ErrSyntax, p.pos, "expected ',' or ')'")
		}
	}
}

// parseArray parses [ value | value | ... ].
func (p *parser) parseArray() (*SValue, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	p.advance(1) // consume [
	arr := Array()

	p.skipWhitespace()
	if !p.end() && p.input[p.pos] == ']' {
		p.advance(1)
		return arr, nil
	}

	for {
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr.Append(value)

		p.skipWhitespace()
		if p.end() {
			return nil, p.errorf(ErrUnexpectedEOF, p.pos, "unterminated array")
		}
		switch p.input[p.pos] {
		case '|':
			p.advance(1)
		case ']':
			p.advance(1)
			return arr, nil
		default:
			return nil, p.errorf(ErrSyntax, p.pos, "expected '|' or ']'")
		}
	}
}

// parseStringLike parses an object key: quoted or bare string.
func (p *parser) parseStringLike() (string, error) {
	if !p.end() && (p.input[p.pos] == '\'' || p.input[p.pos] == '"') {
		return p.parseQuoted()
	}
	return p.parseBare()
}

// parseQuoted parses a quoted string. The opening quote character ( ' or " )
// determines the closing delimiter.
func (p *parser) parseQuoted() (string, error) {
	start := p.pos
	quote := p.input[p.pos]
	p.advance(1)

	var sb strings.Builder
	for !p.end() {
		c := p.input[p.pos]
		if c == quote {
			p.advance(1)
			return sb.String(), nil
		}
		if c == '\\' {
			if err := p.parseEscape(&sb); err != nil {
				return "", err
			}
			continue
		}
		sb.WriteByte(c)
		p.advance(1)
	}
	return "", p.errorf(ErrUnterminatedString, start, "")
}

// parseEscape decodes one escape sequence starting at the backslash.
func (p *parser) parseEscape(sb *strings.Builder) error {
	esc := p.pos
	if p.pos+1 >= len(p.input) {
		return p.errorf(ErrBadEscape, esc, "")
	}

	switch c := p.input[p.pos+1]; c {
	case '"', '\'', '\\', '/':
		sb.WriteByte(c)
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case 'u':
		return p.parseUnicodeEscape(sb)
	default:
		return p.errorf(ErrBadEscape, esc, "")
	}
	p.advance(2)
	return nil
}

// parseUnicodeEscape decodes \uXXXX: exactly 4 hex digits naming one BMP
// code unit. Consecutive escapes are not composed into surrogate pairs;
// each decodes independently, so a lone surrogate becomes U+FFFD.
func (p *parser) parseUnicodeEscape(sb *strings.Builder) error {
	esc := p.pos
	if p.pos+5 >= len(p.input) {
		return p.errorf(ErrBadUnicodeEscape, esc, "")
	}
	hex := p.input[p.pos+2 : p.pos+6]
	for i := 0; i < 4; i++ {
		if !isHexDigit(hex[i]) {
			return p.errorf(ErrBadUnicodeEscape, esc, "")
		}
	}
	r, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return p.errorf(ErrBadUnicodeEscape, esc, "")
	}
	sb.WriteRune(rune(r))
	p.advance(6)
	return nil
}

// parseBare parses an unquoted string: a maximal run of bytes that are
// neither delimiters nor whitespace.
func (p *parser) parseBare() (string, error) {
	start := p.pos
	for !p.end() {
		c := p.input[p.pos]
		if isDelimiter(c) || isWhitespace(c) {
			break
		}
		p.pos++
	}
	raw := strings.TrimSpace(p.input[start:p.pos])
	if raw == "" {
		return "", p.errorf(ErrEmptyString, start, "")
	}
	return raw, nil
}

// matchKeyword consumes kw if it is present and followed by a boundary.
// Without the boundary check "trueish" would lose its prefix to the
// keyword instead of parsing as a bare string.
func (p *parser) matchKeyword(kw string) bool {
	if !strings.HasPrefix(p.input[p.pos:], kw) {
		return false
	}
	if !isBoundary(p.input, p.pos+len(kw)) {
		return false
	}
	p.advance(len(kw))
	return true
}

const (
	dateTimeLayout = "2006-01-02/15:04:05.000"
	dateTimeLen    = len(dateTimeLayout)
)

// tryDateTime attempts the fixed-width datetime literal
// YYYY-MM-DD/HH:MM:SS.mmm. On any failure -- shape mismatch, missing
// boundary, or calendar rejection -- the cursor is unchanged and number
// parsing takes over.
func (p *parser) tryDateTime() (*SValue, bool) {
	if p.pos+dateTimeLen > len(p.input) {
		return nil, false
	}
	candidate := p.input[p.pos : p.pos+dateTimeLen]
	if !dateTimeShape(candidate) {
		return nil, false
	}
	if !isBoundary(p.input, p.pos+dateTimeLen) {
		return nil, false
	}
	t, err := time.ParseInLocation(dateTimeLayout, candidate, time.UTC)
	if err != nil {
		return nil, false
	}
	p.advance(dateTimeLen)
	return DateTime(t), true
}

// dateTimeShape tests the positional digit/punctuation pattern
// DDDD-DD-DD/DD:DD:DD.DDD.
func dateTimeShape(s string) bool {
	for i := 0; i < dateTimeLen; i++ {
		switch i {
		case 4, 7:
			if s[i] != '-' {
				return false
			}
		case 10:
			if s[i] != '/' {
				return false
			}
		case 13, 16:
			if s[i] != ':' {
				return false
			}
		case 19:
			if s[i] != '.' {
				return false
			}
		default:
			if !isDigit(s[i]) {
				return false
			}
		}
	}
	return true
}

// parseNumber parses a number literal: int64, then uint64, then finite
// float64. The run must be followed by a boundary; "12abc" is a hard
// error, not a bare-string fallback.
func (p *parser) parseNumber() (*SValue, error) {
	start := p.pos
	for !p.end() && isNumberChar(p.input[p.pos]) {
		p.pos++
	}
	lit := p.input[start:p.pos]
	if lit == "" {
		return nil, p.errorf(ErrBadNumber, start, "")
	}
	if !isBoundary(p.input, p.pos) {
		return nil, p.errorf(ErrNumberBoundary, p.pos, "")
	}

	if strings.ContainsAny(lit, ".eE") {
		return p.parseFloatLit(lit, start)
	}

	if n, err := fastfloat.ParseInt64(lit); err == nil {
		return Int(n), nil
	}
	if u, err := fastfloat.ParseUint64(lit); err == nil {
		return Uint(u), nil
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, p.errorf(ErrBadNumber, start, "")
	}
	return Float(f), nil
}

// parseFloatLit parses a float literal. strconv rather than fastfloat
// here: the canonical round trip depends on correctly rounded
// shortest-decimal parsing, which fastfloat's fast path does not
// guarantee.
func (p *parser) parseFloatLit(lit string, start int) (*SValue, error) {
	f, err := strconv.ParseFloat(lit, 64)
	if math.IsInf(f, 0) {
		return nil, p.errorf(ErrNonFinite, start, "")
	}
	if err != nil || math.IsNaN(f) {
		return nil, p.errorf(ErrBadNumber, start, "invalid float")
	}
	return Float(f), nil
}
