// Package parser builds an expression tree from calculator tokens by recursive descent.
//
// Grammar, lowest precedence first:
//
//	expr    := term (('+' | '-') term)*
//	term    := unary (('*' | '/' | '%') unary)*
//	unary   := ('-' | '+') unary | power
//	power   := primary ('^' unary)?
//	primary := NUMBER | CONSTANT | FUNCTION '(' expr ')' | '(' expr ')'
//
// Unary minus binds looser than '^', so -2^2 is -(2^2). The exponent is parsed
// through unary, which recurses back into power; that makes '^' right-associative.
package parser

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/ut/internal/apperr"
	"github.com/DjordjeVuckovic/ut/internal/ast"
	"github.com/DjordjeVuckovic/ut/internal/builtin"
	"github.com/DjordjeVuckovic/ut/internal/token"
)

// DefaultMaxDepth bounds the nesting of parentheses, calls, signs and exponents.
const DefaultMaxDepth = 256

// Options controls parsing behavior.
type Options struct {
	// MaxDepth is the deepest nesting accepted before failing (default DefaultMaxDepth).
	MaxDepth int
}

func (o *Options) normalize() Options {
	if o == nil || o.MaxDepth <= 0 {
		return Options{MaxDepth: DefaultMaxDepth}
	}
	return *o
}

// Parser turns a token sequence into an AST. It holds no per-call state and is
// safe for concurrent use.
type Parser struct {
	opt Options
}

func New(opt *Options) *Parser {
	return &Parser{opt: opt.normalize()}
}

// Parse consumes the whole token sequence. Tokens left over after a complete
// expression are an error.
func (p *Parser) Parse(tokens []token.Token) (ast.Node, error) {
	s := newState(tokens, p.opt.MaxDepth)

	root, err := s.parseExpr()
	if err != nil {
		return nil, err
	}

	if tok := s.peek(); tok.Type != token.EOF {
		return nil, apperr.NewParse(tok.Pos, "end of input after complete expression", tok.Describe())
	}

	return root, nil
}

type state struct {
	tokens   []token.Token
	pos      int
	depth    int
	maxDepth int
}

func newState(tokens []token.Token, maxDepth int) *state {
	// The cursor relies on a trailing EOF; add one if the caller did not.
	if n := len(tokens); n == 0 || tokens[n-1].Type != token.EOF {
		end := 0
		if n > 0 {
			end = tokens[n-1].Pos + len(tokens[n-1].Value)
		}
		tokens = append(tokens[:n:n], token.Token{Type: token.EOF, Pos: end})
	}

	return &state{tokens: tokens, maxDepth: maxDepth}
}

func (s *state) peek() token.Token {
	return s.tokens[s.pos]
}

func (s *state) next() token.Token {
	tok := s.tokens[s.pos]
	if tok.Type != token.EOF {
		s.pos++
	}
	return tok
}

func (s *state) parseExpr() (ast.Node, error) {
	left, err := s.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		op := s.peek()
		if op.Type != token.PLUS && op.Type != token.MINUS {
			return left, nil
		}
		s.next()

		right, err := s.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Op: binaryOp(op.Type), Left: left, Right: right}
	}
}

func (s *state) parseTerm() (ast.Node, error) {
	left, err := s.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		op := s.peek()
		if op.Type != token.STAR && op.Type != token.SLASH && op.Type != token.PERCENT {
			return left, nil
		}
		s.next()

		right, err := s.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Op: binaryOp(op.Type), Left: left, Right: right}
	}
}

// parseUnary is the single entry point of every nested construct, so the depth guard lives here.
func (s *state) parseUnary() (ast.Node, error) {
	tok := s.peek()
	if s.depth >= s.maxDepth {
		return nil, apperr.NewParse(tok.Pos, fmt.Sprintf("expression nested too deeply (limit %d)", s.maxDepth), "")
	}
	s.depth++
	defer func() { s.depth-- }()

	switch tok.Type {
	case token.MINUS:
		s.next()
		operand, err := s.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryMinus{Operand: operand}, nil

	case token.PLUS:
		s.next()
		return s.parseUnary()

	default:
		return s.parsePower()
	}
}

func (s *state) parsePower() (ast.Node, error) {
	base, err := s.parsePrimary()
	if err != nil {
		return nil, err
	}

	if s.peek().Type != token.CARET {
		return base, nil
	}
	s.next()

	exponent, err := s.parseUnary()
	if err != nil {
		return nil, err
	}

	return &ast.BinaryOp{Op: ast.OpPow, Left: base, Right: exponent}, nil
}

func (s *state) parsePrimary() (ast.Node, error) {
	tok := s.peek()

	switch tok.Type {
	case token.NUMBER:
		s.next()
		return &ast.Literal{Value: tok.Num}, nil

	case token.IDENT:
		s.next()
		return s.parseIdent(tok)

	case token.LPAREN:
		s.next()
		inner, err := s.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := s.expectClose(tok); err != nil {
			return nil, err
		}
		return inner, nil

	default:
		return nil, apperr.NewParse(tok.Pos, "operand", tok.Describe())
	}
}

func (s *state) parseIdent(ident token.Token) (ast.Node, error) {
	name := strings.ToLower(ident.Value)

	if builtin.IsFunction(name) {
		open := s.peek()
		if open.Type != token.LPAREN {
			return nil, apperr.NewParse(open.Pos, fmt.Sprintf("'(' after function %s", ident.Value), open.Describe())
		}
		s.next()

		arg, err := s.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := s.expectClose(open); err != nil {
			return nil, err
		}
		return &ast.FunctionCall{Name: name, Arg: arg}, nil
	}

	if builtin.IsConstant(name) {
		return &ast.Constant{Name: name}, nil
	}

	return nil, apperr.NewUnknownIdentifier(ident.Pos, ident.Value)
}

func (s *state) expectClose(open token.Token) error {
	tok := s.peek()
	if tok.Type != token.RPAREN {
		return apperr.NewParse(tok.Pos, fmt.Sprintf("')' to close '(' at offset %d", open.Pos), tok.Describe())
	}
	s.next()
	return nil
}

func binaryOp(t token.Type) ast.Op {
	switch t {
	case token.PLUS:
		return ast.OpAdd
	case token.MINUS:
		return ast.OpSub
	case token.STAR:
		return ast.OpMul
	case token.SLASH:
		return ast.OpDiv
	case token.PERCENT:
		return ast.OpMod
	default:
		return ast.OpPow
	}
}
