package calc

import (
	"fmt"

	"github.com/DjordjeVuckovic/ut/internal/format"
	"github.com/DjordjeVuckovic/ut/internal/parser"
)

const (
	DefaultMaxDepth  = parser.DefaultMaxDepth
	DefaultPrecision = format.DefaultPrecision
)

type Config struct {
	MaxDepth  int
	Precision int
}

func DefaultConfig() Config {
	return Config{
		MaxDepth:  DefaultMaxDepth,
		Precision: DefaultPrecision,
	}
}

func (c Config) Validate() error {
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max depth must be positive, got %d", c.MaxDepth)
	}
	if c.Precision < -1 {
		return fmt.Errorf("precision must be -1 (shortest) or a digit count, got %d", c.Precision)
	}
	return nil
}
