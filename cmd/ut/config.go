package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/ut/internal/calc"
	"github.com/DjordjeVuckovic/ut/internal/report"
	"github.com/DjordjeVuckovic/ut/pkg/config/env"
)

const defaultEnvPath = ".env"

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type UtConfig struct {
	Calc     calc.Config
	Output   report.Format
	LogLevel slog.Level
}

func (as *AppConfig) Load() (*UtConfig, error) {
	if err := env.LoadDotEnv(as.ENV, defaultEnvPath); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	return loadEnv()
}

func loadEnv() (*UtConfig, error) {
	cfg := &UtConfig{
		Calc:     calc.DefaultConfig(),
		Output:   report.Text,
		LogLevel: slog.LevelWarn,
	}

	var err error
	if cfg.Calc.Precision, err = intEnv("UT_PRECISION", cfg.Calc.Precision); err != nil {
		return nil, err
	}
	if cfg.Calc.MaxDepth, err = intEnv("UT_MAX_DEPTH", cfg.Calc.MaxDepth); err != nil {
		return nil, err
	}
	if err := cfg.Calc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid calculator configuration: %w", err)
	}

	if cfg.Output, err = report.ParseFormat(os.Getenv("UT_OUTPUT")); err != nil {
		return nil, fmt.Errorf("invalid UT_OUTPUT: %w", err)
	}

	if v := os.Getenv("UT_LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("invalid UT_LOG_LEVEL %q: %w", v, err)
		}
	}

	return cfg, nil
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer", key, v)
	}
	return n, nil
}
