package batch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/DjordjeVuckovic/ut/internal/apperr"
)

var knownErrorKinds = map[string]struct{}{
	apperr.KindLex:               {},
	apperr.KindParse:             {},
	apperr.KindUnknownIdentifier: {},
}

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}
	if s.Tolerance < 0 {
		return nil, fmt.Errorf("tolerance must not be negative, got %g", s.Tolerance)
	}

	seen := make(map[string]struct{}, len(s.Cases))
	for i, c := range s.Cases {
		if c.ID == "" {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if _, ok := seen[c.ID]; ok {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = struct{}{}

		if c.Expr == "" {
			return nil, fmt.Errorf("case %q has no expr", c.ID)
		}
		if c.Error != "" {
			if _, ok := knownErrorKinds[c.Error]; !ok {
				return nil, fmt.Errorf("case %q expects unknown error kind %q", c.ID, c.Error)
			}
			if c.expectsValue() {
				return nil, fmt.Errorf("case %q sets both an error and an expected value", c.ID)
			}
		}
	}

	return &s, nil
}
