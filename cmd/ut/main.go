// Package main ut calculator
// @title ut calculator API
// @version 1.0
// @description Evaluates arithmetic expressions and renders the result in decimal, hexadecimal and binary
// @license.name MIT
// @BasePath /
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/ut/docs"
)

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(1)
	}

	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "calc", "cal":
		err = newCalcCmd(cfg, os.Stdin, os.Stdout, os.Stderr).run(args)
	case "serve":
		err = runServe(cfg, args)
	case "help", "-h", "--help":
		usage(os.Stdout)
		return
	default:
		slog.Error("Unknown command", "command", cmd)
		usage(os.Stderr)
		os.Exit(1)
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("Command failed", "command", cmd, "error", err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, `Usage: ut <command> [flags] [arguments]

Commands:
  calc, cal   evaluate an expression ("-" reads stdin, "\-" is a literal dash,
              no expression or -i starts interactive mode, -suite runs a YAML suite)
  serve       run the calculator HTTP API

Run "ut <command> -h" for the flags of a command. Expressions starting with
"-" must follow "--", e.g. ut calc -- -2 ^ 2.
`)
}
