// Package builtin holds the closed set of functions and constants an expression may name.
// Names are matched case-insensitively.
package builtin

import (
	"math"
	"slices"
	"strings"
)

// Func is a single-argument numeric function. Out-of-domain input yields NaN.
type Func func(float64) float64

var functions = map[string]Func{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"log":   math.Log,
	"exp":   math.Exp,
	"sqrt":  math.Sqrt,
	"abs":   math.Abs,
	"floor": math.Floor,
	"ceil":  math.Ceil,
	"round": math.Round,
}

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// Function returns the function registered under name.
func Function(name string) (Func, bool) {
	fn, ok := functions[strings.ToLower(name)]
	return fn, ok
}

// Constant returns the value of the constant registered under name.
func Constant(name string) (float64, bool) {
	v, ok := constants[strings.ToLower(name)]
	return v, ok
}

// IsFunction reports whether name is a known function.
func IsFunction(name string) bool {
	_, ok := Function(name)
	return ok
}

// IsConstant reports whether name is a known constant.
func IsConstant(name string) bool {
	_, ok := Constant(name)
	return ok
}

// Functions returns the sorted function names.
func Functions() []string {
	return sortedKeys(functions)
}

// Constants returns the sorted constant names.
func Constants() []string {
	return sortedKeys(constants)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
