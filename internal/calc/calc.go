// Package calc chains the calculator stages: tokenize, parse, evaluate, format.
// The first failing stage ends the run; nothing is kept between calls.
package calc

import (
	"log/slog"

	"github.com/DjordjeVuckovic/ut/internal/ast"
	"github.com/DjordjeVuckovic/ut/internal/eval"
	"github.com/DjordjeVuckovic/ut/internal/format"
	"github.com/DjordjeVuckovic/ut/internal/parser"
	"github.com/DjordjeVuckovic/ut/internal/token"
)

type Calculator struct {
	parser *parser.Parser
	format format.Options
}

func New(cfg Config) *Calculator {
	return &Calculator{
		parser: parser.New(&parser.Options{MaxDepth: cfg.MaxDepth}),
		format: format.Options{Precision: cfg.Precision},
	}
}

// Evaluate computes expression. The error, if any, is an *apperr.LexError,
// *apperr.ParseError or *apperr.UnknownIdentifierError.
func (c *Calculator) Evaluate(expression string) (*format.Result, error) {
	root, err := c.Parse(expression)
	if err != nil {
		return nil, err
	}

	v, err := eval.Evaluate(root)
	if err != nil {
		return nil, err
	}

	slog.Debug("Expression evaluated",
		"expression", expression,
		"nodes", ast.Count(root),
		"depth", ast.Depth(root),
	)

	res := format.Format(v, &c.format)
	res.Expression = expression
	return &res, nil
}

// Parse runs only the tokenize and parse stages.
func (c *Calculator) Parse(expression string) (ast.Node, error) {
	tokens, err := token.NewExprTokenizer().Tokenize(expression)
	if err != nil {
		return nil, err
	}

	return c.parser.Parse(tokens)
}
