package token

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/ut/internal/apperr"
)

var symbols = map[rune]Type{
	'+': PLUS,
	'-': MINUS,
	'*': STAR,
	'/': SLASH,
	'%': PERCENT,
	'^': CARET,
	'(': LPAREN,
	')': RPAREN,
}

// ExprTokenizer splits arithmetic expressions into tokens.
// Offsets are byte offsets into the input.
type ExprTokenizer struct {
	input string
	pos   int
}

func NewExprTokenizer() *ExprTokenizer {
	return &ExprTokenizer{}
}

// Tokenize converts the input string into a slice of Tokens terminated by EOF.
// Example: Input: `0xFF + sqrt(16) ^ 2`
func (t *ExprTokenizer) Tokenize(input string) ([]Token, error) {
	t.input = input
	t.pos = 0

	var tokens []Token

	for {
		t.skipWhitespace()
		if t.pos >= len(t.input) {
			break
		}

		tok, err := t.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}

	tokens = append(tokens, Token{Type: EOF, Pos: len(t.input)})
	return tokens, nil
}

func (t *ExprTokenizer) next() (Token, error) {
	start := t.pos
	ch, size := utf8.DecodeRuneInString(t.input[t.pos:])

	if typ, ok := symbols[ch]; ok {
		t.pos += size
		return Token{Type: typ, Value: string(ch), Pos: start}, nil
	}

	switch {
	case isDigit(t.byteAt(t.pos)):
		return t.readNumber()
	case ch == '.' && isDigit(t.byteAt(t.pos+1)):
		return t.readDecimal(start)
	case unicode.IsLetter(ch):
		return t.readIdent(), nil
	default:
		return Token{}, apperr.NewLex(start, ch, "unexpected character")
	}
}

func (t *ExprTokenizer) skipWhitespace() {
	for t.pos < len(t.input) {
		ch, size := utf8.DecodeRuneInString(t.input[t.pos:])
		if !unicode.IsSpace(ch) {
			return
		}
		t.pos += size
	}
}

func (t *ExprTokenizer) readNumber() (Token, error) {
	start := t.pos
	if t.input[start] == '0' {
		switch t.byteAt(start + 1) {
		case 'x', 'X':
			return t.readRadix(start, 16, isHexDigit)
		case 'b', 'B':
			return t.readRadix(start, 2, isBinaryDigit)
		}
	}
	return t.readDecimal(start)
}

// readRadix scans a 0x/0b literal. Only digits of the base are allowed, no
// fraction or exponent, and the value must fit in 64 bits.
func (t *ExprTokenizer) readRadix(start, base int, isBaseDigit func(byte) bool) (Token, error) {
	t.pos += 2 // skip prefix
	digits := t.pos
	for t.pos < len(t.input) && isBaseDigit(t.input[t.pos]) {
		t.pos++
	}

	lit := t.input[start:t.pos]
	if t.pos == digits {
		return Token{}, apperr.NewLex(start, 0, fmt.Sprintf("unterminated numeral %q", lit))
	}
	if isAlnum(t.byteAt(t.pos)) || t.byteAt(t.pos) == '.' {
		return Token{}, apperr.NewLex(t.pos, rune(t.input[t.pos]), fmt.Sprintf("invalid digit in base-%d literal", base))
	}

	u, err := strconv.ParseUint(t.input[digits:t.pos], base, 64)
	if err != nil {
		return Token{}, apperr.NewLex(start, 0, fmt.Sprintf("literal %s overflows 64 bits", lit))
	}

	return Token{Type: NUMBER, Value: lit, Num: float64(u), Base: base, Pos: start}, nil
}

func (t *ExprTokenizer) readDecimal(start int) (Token, error) {
	t.skipDigits()
	if t.byteAt(t.pos) == '.' {
		t.pos++
		t.skipDigits()
	}

	// An exponent needs at least one digit; otherwise the 'e' is left for the next token.
	if c := t.byteAt(t.pos); c == 'e' || c == 'E' {
		j := t.pos + 1
		if s := t.byteAt(j); s == '+' || s == '-' {
			j++
		}
		if isDigit(t.byteAt(j)) {
			t.pos = j
			t.skipDigits()
		}
	}

	if t.byteAt(t.pos) == '.' {
		return Token{}, apperr.NewLex(t.pos, '.', "second decimal point in numeric literal")
	}

	lit := t.input[start:t.pos]
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Token{}, apperr.NewLex(start, 0, fmt.Sprintf("malformed numeral %q", lit))
	}

	return Token{Type: NUMBER, Value: lit, Num: f, Base: 10, Pos: start}, nil
}

func (t *ExprTokenizer) readIdent() Token {
	start := t.pos
	for t.pos < len(t.input) {
		ch, size := utf8.DecodeRuneInString(t.input[t.pos:])
		if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) {
			break
		}
		t.pos += size
	}

	return Token{Type: IDENT, Value: t.input[start:t.pos], Pos: start}
}

func (t *ExprTokenizer) skipDigits() {
	for isDigit(t.byteAt(t.pos)) {
		t.pos++
	}
}

// byteAt returns the byte at i, or 0 past the end of input.
func (t *ExprTokenizer) byteAt(i int) byte {
	if i >= len(t.input) {
		return 0
	}
	return t.input[i]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isBinaryDigit(c byte) bool {
	return c == '0' || c == '1'
}

func isAlnum(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}
