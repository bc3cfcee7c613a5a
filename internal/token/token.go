package token

import "fmt"

type Type int

const (
	EOF Type = iota
	NUMBER
	IDENT
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	CARET
	LPAREN
	RPAREN
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case NUMBER:
		return "NUMBER"
	case IDENT:
		return "IDENT"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case STAR:
		return "STAR"
	case SLASH:
		return "SLASH"
	case PERCENT:
		return "PERCENT"
	case CARET:
		return "CARET"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// IsOperator reports whether t is one of the arithmetic operator symbols.
func (t Type) IsOperator() bool {
	return t >= PLUS && t <= CARET
}

// Token represents a lexical token with its type and literal value.
// Num and Base are only meaningful for NUMBER tokens; Pos is the byte offset
// of the first byte of Value in the input.
type Token struct {
	Type  Type
	Value string
	Num   float64
	Base  int
	Pos   int
}

// Describe renders the token for diagnostics.
func (t Token) Describe() string {
	switch t.Type {
	case EOF:
		return "end of input"
	case NUMBER:
		return fmt.Sprintf("number %s", t.Value)
	case IDENT:
		return fmt.Sprintf("identifier %q", t.Value)
	default:
		return fmt.Sprintf("'%s'", t.Value)
	}
}
