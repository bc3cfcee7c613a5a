package format

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		decimal string
		hex     string
		binary  string
	}{
		{"small integer", 265, "265", "0x109", "0b100001001"},
		{"zero", 0, "0", "0x0", "0b0"},
		{"negative zero", math.Copysign(0, -1), "0", "0x0", "0b0"},
		{"large integer stays fixed", 1048576, "1048576", "0x100000", "0b100000000000000000000"},
		{"fraction", 3.5, "3.5", "", ""},
		{"pi", math.Pi, "3.141592653589793", "", ""},
		{"negative one", -1, "-1", "0xffffffffffffffff", "0b" + strings.Repeat("1", 64)},
		{"negative integer", -256, "-256", "0xffffffffffffff00", "0b" + strings.Repeat("1", 56) + "00000000"},
		{"min int64", math.MinInt64, "-9223372036854775808", "0x8000000000000000", "0b1" + strings.Repeat("0", 63)},
		{"beyond int64", 1 << 63, "9223372036854776000", "", ""},
		{"huge", 1e300, "1e+300", "", ""},
		{"tiny", 1e-9, "1e-09", "", ""},
		{"positive infinity", math.Inf(1), "+Inf", "", ""},
		{"negative infinity", math.Inf(-1), "-Inf", "", ""},
		{"nan", math.NaN(), "NaN", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Format(tt.value, nil)
			assert.Equal(t, tt.decimal, res.Decimal)
			assert.Equal(t, tt.hex, res.Hex)
			assert.Equal(t, tt.binary, res.Binary)
			assert.Equal(t, tt.hex != "", res.HasBases())
		})
	}
}

func TestFormat_Precision(t *testing.T) {
	assert.Equal(t, "3.142", Format(math.Pi, &Options{Precision: 4}).Decimal)
	assert.Equal(t, "3", Format(math.Pi, &Options{Precision: 0}).Decimal)
	assert.Equal(t, "1.235e+06", Format(1234567, &Options{Precision: 4}).Decimal)
	assert.Equal(t, "3.141592653589793", Format(math.Pi, &Options{Precision: -5}).Decimal)
}

func TestInt64(t *testing.T) {
	n, ok := Int64(-42)
	assert.True(t, ok)
	assert.Equal(t, int64(-42), n)

	_, ok = Int64(0.5)
	assert.False(t, ok)

	_, ok = Int64(math.MaxInt64)
	assert.False(t, ok, "float64(MaxInt64) rounds up to 2^63")
}
