// Package format renders calculator results in decimal, hexadecimal and binary.
package format

import (
	"math"
	"strconv"
)

// DefaultPrecision selects the shortest decimal that round-trips.
const DefaultPrecision = -1

const (
	minInt64 = -(1 << 63)
	maxInt64 = 1 << 63 // exclusive

	// Magnitudes outside [fixedMin, fixedMax) switch to exponent notation.
	fixedMin = 1e-6
	fixedMax = 1e21
)

// Options controls rendering.
type Options struct {
	// Precision is the number of significant decimal digits; -1 means shortest.
	Precision int
}

func (o *Options) normalize() Options {
	if o == nil || o.Precision < -1 {
		return Options{Precision: DefaultPrecision}
	}
	return *o
}

// Result is the rendered value of one expression. Hex and Binary are empty
// when the value is not an integer inside the int64 range.
type Result struct {
	Expression string  `json:"expression,omitempty" yaml:"expression,omitempty"`
	Value      float64 `json:"-" yaml:"-"`
	Decimal    string  `json:"decimal" yaml:"decimal"`
	Hex        string  `json:"hex,omitempty" yaml:"hex,omitempty"`
	Binary     string  `json:"binary,omitempty" yaml:"binary,omitempty"`
}

// HasBases reports whether hexadecimal and binary renderings are present.
func (r Result) HasBases() bool {
	return r.Hex != ""
}

// Format renders v. Negative integers use their 64-bit two's complement pattern.
func Format(v float64, opt *Options) Result {
	o := opt.normalize()

	res := Result{Value: v, Decimal: Decimal(v, o.Precision)}
	if n, ok := Int64(v); ok {
		bits := uint64(n)
		res.Hex = "0x" + strconv.FormatUint(bits, 16)
		res.Binary = "0b" + strconv.FormatUint(bits, 2)
	}

	return res
}

// Decimal renders v in base 10. Infinities print as +Inf/-Inf and NaN as NaN.
func Decimal(v float64, precision int) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}

	if precision >= 0 {
		return strconv.FormatFloat(v, 'g', max(precision, 1), 64)
	}

	if n, ok := Int64(v); ok {
		return strconv.FormatInt(n, 10)
	}

	abs := math.Abs(v)
	if abs >= fixedMin && abs < fixedMax {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Int64 converts v when it is finite, has no fractional part and fits in an int64.
func Int64(v float64) (int64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if v != math.Trunc(v) {
		return 0, false
	}
	if v < minInt64 || v >= maxInt64 {
		return 0, false
	}
	return int64(v), true
}
