package batch

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/DjordjeVuckovic/ut/internal/apperr"
	"github.com/DjordjeVuckovic/ut/internal/calc"
	"github.com/DjordjeVuckovic/ut/internal/format"
)

const DefaultTolerance = 1e-9

type Runner struct {
	calc      *calc.Calculator
	tolerance float64
}

func New(c *calc.Calculator) *Runner {
	return &Runner{calc: c, tolerance: DefaultTolerance}
}

// Run evaluates every case of the suite, independent of earlier failures.
func (r *Runner) Run(s *Suite) *Report {
	tol := r.tolerance
	if s.Tolerance > 0 {
		tol = s.Tolerance
	}

	rep := &Report{Name: s.Name, Total: len(s.Cases)}
	for _, c := range s.Cases {
		cr := r.runCase(c, tol)
		if cr.Passed {
			rep.Passed++
		} else {
			rep.Failed++
			slog.Debug("Case failed", "suite", s.Name, "id", c.ID, "reason", cr.Reason)
		}
		rep.Cases = append(rep.Cases, cr)
	}

	return rep
}

func (r *Runner) runCase(c Case, tol float64) CaseResult {
	cr := CaseResult{ID: c.ID, Expr: c.Expr}

	res, err := r.calc.Evaluate(c.Expr)
	if err != nil {
		cr.Error = err.Error()
		cr.ErrorKind = apperr.Kind(err)
	}
	cr.Result = res

	cr.Reason = check(c, res, cr.ErrorKind, err, tol)
	cr.Passed = cr.Reason == ""
	return cr
}

// check returns why the outcome does not match the case, or "" when it does.
func check(c Case, res *format.Result, kind string, err error, tol float64) string {
	if c.Error != "" {
		if err == nil {
			return fmt.Sprintf("expected %s error, got %s", c.Error, res.Decimal)
		}
		if kind != c.Error {
			return fmt.Sprintf("expected %s error, got %q", c.Error, err.Error())
		}
		return ""
	}

	if err != nil {
		return fmt.Sprintf("unexpected error: %v", err)
	}
	if c.Expect != nil && !approxEqual(res.Value, *c.Expect, tol) {
		return fmt.Sprintf("expected %s, got %s", format.Decimal(*c.Expect, format.DefaultPrecision), res.Decimal)
	}
	if c.Hex != "" && c.Hex != res.Hex {
		return fmt.Sprintf("expected hex %s, got %q", c.Hex, res.Hex)
	}
	if c.Binary != "" && c.Binary != res.Binary {
		return fmt.Sprintf("expected binary %s, got %q", c.Binary, res.Binary)
	}
	return ""
}

// approxEqual compares with a tolerance relative to the expected magnitude.
// NaN matches NaN and infinities must match exactly.
func approxEqual(got, want, tol float64) bool {
	switch {
	case math.IsNaN(want) || math.IsNaN(got):
		return math.IsNaN(want) && math.IsNaN(got)
	case math.IsInf(want, 0) || math.IsInf(got, 0):
		return got == want
	default:
		return math.Abs(got-want) <= tol*max(1, math.Abs(want))
	}
}
