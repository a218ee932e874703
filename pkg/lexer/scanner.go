package lexer

import (
	"strings"
)

// Scanner performs lexical analysis over a single source buffer.
// Each instance owns its own cursor, so separate instances are safe
// to use from separate goroutines.
type Scanner struct {
	source []byte
	cursor int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source []byte) *Scanner {
	return &Scanner{source: source}
}

// Reset re-initializes the scanner with new source for reuse.
func (s *Scanner) Reset(source []byte) {
	s.source = source
	s.cursor = 0
}

// Tokenize consumes the whole source and returns the token sequence.
// It never fails: bytes that match no rule come back as KindUnknown
// tokens, and every iteration advances the cursor by at least one, so
// the scan terminates on arbitrary input.
func (s *Scanner) Tokenize() []Token {
	var tokens []Token
	for s.cursor < len(s.source) {
		ch := s.source[s.cursor]
		switch {
		case isWhitespace(ch):
			s.cursor++

		// Digits are checked before isAlpha, which accepts them too;
		// a leading digit always starts a number.
		case isDigit(ch):
			text := s.scanNumber()
			kind := KindInteger
			if strings.IndexByte(text, '.') >= 0 {
				kind = KindFloat
			}
			tokens = append(tokens, Token{Kind: kind, Text: text})

		case isAlpha(ch):
			word := s.scanWord()
			kind := KindIdentifier
			if k, ok := keywords[word]; ok {
				kind = k
			}
			tokens = append(tokens, Token{Kind: kind, Text: word})

		case ch == '"':
			tokens = append(tokens, Token{Kind: KindString, Text: s.scanString()})

		default:
			s.cursor++
			kind := KindUnknown
			switch ch {
			case '+', '-', '*', '/', '%':
				kind = KindOperator
			case '(', ')', ':', '[', ']':
				kind = KindDelimiter
			}
			tokens = append(tokens, Token{Kind: kind, Text: string(ch)})
		}
	}
	return tokens
}

// scanWord consumes the maximal alphanumeric run at the cursor.
func (s *Scanner) scanWord() string {
	start := s.cursor
	for s.cursor < len(s.source) && isAlphaNumeric(s.source[s.cursor]) {
		s.cursor++
	}
	return string(s.source[start:s.cursor])
}

// scanNumber consumes the maximal run of digits and dots at the cursor.
// Dot placement is not validated; the caller classifies by presence of
// any dot.
func (s *Scanner) scanNumber() string {
	start := s.cursor
	for s.cursor < len(s.source) && (isDigit(s.source[s.cursor]) || s.source[s.cursor] == '.') {
		s.cursor++
	}
	return string(s.source[start:s.cursor])
}

// scanString consumes a quoted literal from the opening quote through
// the matching close quote. A backslash escapes the byte after it, so
// \" does not terminate the literal. An unterminated literal runs to
// the end of the source and is still returned as-is; the scanner has
// no error path.
func (s *Scanner) scanString() string {
	start := s.cursor
	s.cursor++ // Skip opening '"'
	for s.cursor < len(s.source) {
		ch := s.source[s.cursor]
		if ch == '\\' && s.cursor+1 < len(s.source) {
			s.cursor += 2
			continue
		}
		s.cursor++
		if ch == '"' {
			break
		}
	}
	return string(s.source[start:s.cursor])
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// isAlpha accepts digits as well as letters. The name is historical;
// it answers "can this byte continue a word", and the dispatch in
// Tokenize routes leading digits to scanNumber before consulting it.
func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')
}

func isAlphaNumeric(ch byte) bool {
	return isAlpha(ch) || isDigit(ch)
}
