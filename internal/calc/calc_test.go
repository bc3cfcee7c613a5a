package calc

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/ut/internal/apperr"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expr    string
		decimal string
		hex     string
		binary  string
	}{
		{"2 + 2 * 3", "8", "0x8", "0b1000"},
		{"(2 + 2) * 3", "12", "0xc", "0b1100"},
		{"2 ^ 3 ^ 2", "512", "0x200", "0b1000000000"},
		{"-2 ^ 2", "-4", "0xfffffffffffffffc", "0b" + strings.Repeat("1", 62) + "00"},
		{"0xFF + 0b1010", "265", "0x109", "0b100001001"},
		{"sqrt(16) ^ 2", "16", "0x10", "0b10000"},
		{"sin(pi / 2)", "1", "0x1", "0b1"},
		{"(2 + 3) * 4 - 6 / 2", "17", "0x11", "0b10001"},
		{"((10 + 5) * 2) / 3", "10", "0xa", "0b1010"},
		{"-5 + 10", "5", "0x5", "0b101"},
		{"10 % 3", "1", "0x1", "0b1"},
		{"0b1010 + 0b0101", "15", "0xf", "0b1111"},
		{"abs(-42)", "42", "0x2a", "0b101010"},
		{"floor(3.7)", "3", "0x3", "0b11"},
		{"ceil(3.2)", "4", "0x4", "0b100"},
		{"round(3.6)", "4", "0x4", "0b100"},
		{"7 / 2", "3.5", "", ""},
		{"3.14 * 2", "6.28", "", ""},
		{"1 / 0", "+Inf", "", ""},
		{"-1 / 0", "-Inf", "", ""},
		{"0 / 0", "NaN", "", ""},
		{"sqrt(-1)", "NaN", "", ""},
	}

	c := New(DefaultConfig())
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			res, err := c.Evaluate(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.expr, res.Expression)
			assert.Equal(t, tt.decimal, res.Decimal)
			assert.Equal(t, tt.hex, res.Hex)
			assert.Equal(t, tt.binary, res.Binary)
		})
	}
}

func TestEvaluate_Constants(t *testing.T) {
	c := New(DefaultConfig())

	res, err := c.Evaluate("pi * 2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.Decimal, "6.28318"))
	assert.False(t, res.HasBases())

	res, err = c.Evaluate("E")
	require.NoError(t, err)
	assert.Equal(t, math.E, res.Value)
}

func TestEvaluate_Errors(t *testing.T) {
	tests := []struct {
		expr   string
		kind   string
		offset int
	}{
		{"(2 + 3", apperr.KindParse, 6},
		{"2 + * 3", apperr.KindParse, 4},
		{"2 $ 3", apperr.KindLex, 2},
		{"0x", apperr.KindLex, 0},
		{"foo(1)", apperr.KindUnknownIdentifier, 0},
		{"1 + 2 3", apperr.KindParse, 6},
	}

	c := New(DefaultConfig())
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			res, err := c.Evaluate(tt.expr)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.Equal(t, tt.kind, apperr.Kind(err))
			assert.Equal(t, tt.offset, apperr.Offset(err))
		})
	}
}

func TestEvaluate_MissingParenMessage(t *testing.T) {
	_, err := New(DefaultConfig()).Evaluate("(2 + 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected ')'")
}

func TestEvaluate_Idempotent(t *testing.T) {
	c := New(DefaultConfig())

	first, err := c.Evaluate("sqrt(2) * 0.1 + 0xF")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := c.Evaluate("sqrt(2) * 0.1 + 0xF")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEvaluate_Config(t *testing.T) {
	c := New(Config{MaxDepth: 4, Precision: 3})

	res, err := c.Evaluate("pi")
	require.NoError(t, err)
	assert.Equal(t, "3.14", res.Decimal)

	_, err = c.Evaluate("((((1))))")
	assert.Equal(t, apperr.KindParse, apperr.Kind(err))
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.Error(t, Config{MaxDepth: 0, Precision: -1}.Validate())
	assert.Error(t, Config{MaxDepth: 10, Precision: -2}.Validate())
}
