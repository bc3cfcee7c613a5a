// Package eval reduces an expression tree to a float64.
//
// Arithmetic follows IEEE-754: division by zero yields a signed infinity, 0/0
// and out-of-domain function arguments yield NaN. Neither is an error.
package eval

import (
	"fmt"
	"math"

	"github.com/DjordjeVuckovic/ut/internal/apperr"
	"github.com/DjordjeVuckovic/ut/internal/ast"
	"github.com/DjordjeVuckovic/ut/internal/builtin"
)

// Evaluate walks the tree bottom-up. The only failure is a function or
// constant name missing from the builtin table, which the parser never
// produces but a hand-built tree can.
func Evaluate(node ast.Node) (float64, error) {
	switch n := node.(type) {
	case *ast.Literal:
		return n.Value, nil

	case *ast.Constant:
		v, ok := builtin.Constant(n.Name)
		if !ok {
			return 0, apperr.NewUnknownIdentifier(-1, n.Name)
		}
		return v, nil

	case *ast.UnaryMinus:
		v, err := Evaluate(n.Operand)
		if err != nil {
			return 0, err
		}
		return -v, nil

	case *ast.FunctionCall:
		fn, ok := builtin.Function(n.Name)
		if !ok {
			return 0, apperr.NewUnknownIdentifier(-1, n.Name)
		}
		arg, err := Evaluate(n.Arg)
		if err != nil {
			return 0, err
		}
		return fn(arg), nil

	case *ast.BinaryOp:
		left, err := Evaluate(n.Left)
		if err != nil {
			return 0, err
		}
		right, err := Evaluate(n.Right)
		if err != nil {
			return 0, err
		}
		return apply(n.Op, left, right)

	case nil:
		return 0, fmt.Errorf("evaluate: nil node")

	default:
		return 0, fmt.Errorf("evaluate: unsupported node %T", node)
	}
}

func apply(op ast.Op, left, right float64) (float64, error) {
	switch op {
	case ast.OpAdd:
		return left + right, nil
	case ast.OpSub:
		return left - right, nil
	case ast.OpMul:
		return left * right, nil
	case ast.OpDiv:
		return left / right, nil
	case ast.OpMod:
		return math.Mod(left, right), nil
	case ast.OpPow:
		return math.Pow(left, right), nil
	default:
		return 0, fmt.Errorf("evaluate: unsupported operator %q", string(op))
	}
}
