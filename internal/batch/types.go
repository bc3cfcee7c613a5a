package batch

import "github.com/DjordjeVuckovic/ut/internal/format"

// Suite is a YAML file of expressions with their expected outcome.
type Suite struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Tolerance   float64 `yaml:"tolerance,omitempty"`
	Cases       []Case  `yaml:"cases"`
}

// Case is one expression. Error names the expected error kind; otherwise the
// expression must evaluate and match every expectation that is set.
type Case struct {
	ID     string   `yaml:"id"`
	Expr   string   `yaml:"expr"`
	Expect *float64 `yaml:"expect,omitempty"`
	Hex    string   `yaml:"hex,omitempty"`
	Binary string   `yaml:"binary,omitempty"`
	Error  string   `yaml:"error,omitempty"`
}

func (c Case) expectsValue() bool {
	return c.Expect != nil || c.Hex != "" || c.Binary != ""
}

type CaseResult struct {
	ID        string         `json:"id" yaml:"id"`
	Expr      string         `json:"expr" yaml:"expr"`
	Passed    bool           `json:"passed" yaml:"passed"`
	Result    *format.Result `json:"result,omitempty" yaml:"result,omitempty"`
	ErrorKind string         `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
	Error     string         `json:"error,omitempty" yaml:"error,omitempty"`
	Reason    string         `json:"reason,omitempty" yaml:"reason,omitempty"`
}

type Report struct {
	Name   string       `json:"name" yaml:"name"`
	Total  int          `json:"total" yaml:"total"`
	Passed int          `json:"passed" yaml:"passed"`
	Failed int          `json:"failed" yaml:"failed"`
	Cases  []CaseResult `json:"cases" yaml:"cases"`
}

// OK reports whether every case passed.
func (r *Report) OK() bool {
	return r.Failed == 0
}
