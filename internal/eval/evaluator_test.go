package eval

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/ut/internal/apperr"
	"github.com/DjordjeVuckovic/ut/internal/ast"
)

func lit(v float64) ast.Node {
	return &ast.Literal{Value: v}
}

func bin(op ast.Op, l, r ast.Node) ast.Node {
	return &ast.BinaryOp{Op: op, Left: l, Right: r}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		node ast.Node
		want float64
	}{
		{"literal", lit(3.5), 3.5},
		{"add", bin(ast.OpAdd, lit(2), lit(3)), 5},
		{"sub", bin(ast.OpSub, lit(2), lit(3)), -1},
		{"mul", bin(ast.OpMul, lit(4), lit(5)), 20},
		{"div", bin(ast.OpDiv, lit(7), lit(2)), 3.5},
		{"mod", bin(ast.OpMod, lit(10), lit(3)), 1},
		{"negative mod keeps dividend sign", bin(ast.OpMod, lit(-7), lit(3)), -1},
		{"pow", bin(ast.OpPow, lit(2), lit(10)), 1024},
		{"right nested pow", bin(ast.OpPow, lit(2), bin(ast.OpPow, lit(3), lit(2))), 512},
		{"unary minus", &ast.UnaryMinus{Operand: bin(ast.OpPow, lit(2), lit(2))}, -4},
		{"constant", &ast.Constant{Name: "pi"}, math.Pi},
		{"function", &ast.FunctionCall{Name: "sin", Arg: bin(ast.OpDiv, &ast.Constant{Name: "pi"}, lit(2))}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.node)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestEvaluate_IEEE754(t *testing.T) {
	v, err := Evaluate(bin(ast.OpDiv, lit(1), lit(0)))
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	v, err = Evaluate(bin(ast.OpDiv, lit(-1), lit(0)))
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, -1))

	v, err = Evaluate(bin(ast.OpDiv, lit(0), lit(0)))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))

	v, err = Evaluate(bin(ast.OpMod, lit(1), lit(0)))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))

	v, err = Evaluate(&ast.FunctionCall{Name: "sqrt", Arg: lit(-1)})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
}

func TestEvaluate_UnknownNames(t *testing.T) {
	_, err := Evaluate(&ast.FunctionCall{Name: "cbrt", Arg: lit(8)})
	var ue *apperr.UnknownIdentifierError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "cbrt", ue.Name)

	_, err = Evaluate(bin(ast.OpAdd, lit(1), &ast.Constant{Name: "tau"}))
	assert.Equal(t, apperr.KindUnknownIdentifier, apperr.Kind(err))
}

func TestEvaluate_InvalidTree(t *testing.T) {
	_, err := Evaluate(nil)
	assert.Error(t, err)

	_, err = Evaluate(bin(ast.Op('&'), lit(1), lit(2)))
	assert.Error(t, err)
}

func TestEvaluate_Repeatable(t *testing.T) {
	tree := bin(ast.OpAdd, lit(0.1), lit(0.2))
	first, err := Evaluate(tree)
	require.NoError(t, err)
	second, err := Evaluate(tree)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
