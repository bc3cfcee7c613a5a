package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/DjordjeVuckovic/ut/internal/batch"
	"github.com/DjordjeVuckovic/ut/internal/calc"
	"github.com/DjordjeVuckovic/ut/internal/report"
)

const (
	stdinArg   = "-"
	escapedArg = `\-`
)

type calcCmd struct {
	cfg    *UtConfig
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newCalcCmd(cfg *UtConfig, stdin io.Reader, stdout, stderr io.Writer) *calcCmd {
	return &calcCmd{cfg: cfg, stdin: stdin, stdout: stdout, stderr: stderr}
}

type calcFlags struct {
	interactive bool
	suite       string
	output      string
	precision   int
	maxDepth    int
}

func (c *calcCmd) parseFlags(args []string) (*calcFlags, []string, error) {
	f := &calcFlags{}

	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.BoolVar(&f.interactive, "i", false, "Interactive mode: one expression per line until EOF, exit or quit")
	fs.StringVar(&f.suite, "suite", "", "Path to a YAML suite of expressions to check")
	fs.StringVar(&f.output, "output", string(c.cfg.Output), "Output format: text, json or yaml")
	fs.IntVar(&f.precision, "precision", c.cfg.Calc.Precision, "Significant decimal digits, -1 for shortest round-trip")
	fs.IntVar(&f.maxDepth, "max-depth", c.cfg.Calc.MaxDepth, "Maximum expression nesting depth")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func (c *calcCmd) run(args []string) error {
	f, rest, err := c.parseFlags(args)
	if err != nil {
		return err
	}

	out, err := report.ParseFormat(f.output)
	if err != nil {
		return err
	}

	cfg := calc.Config{MaxDepth: f.maxDepth, Precision: f.precision}
	if err := cfg.Validate(); err != nil {
		return err
	}
	calculator := calc.New(cfg)

	switch {
	case f.suite != "":
		if len(rest) > 0 {
			return errors.New("-suite cannot be combined with an expression")
		}
		return c.runSuite(calculator, f.suite, out)
	case f.interactive || len(rest) == 0:
		return c.runInteractive(calculator, out)
	}

	expr, err := c.expression(rest)
	if err != nil {
		return err
	}

	res, err := calculator.Evaluate(expr)
	if err != nil {
		return err
	}
	return report.WriteResult(c.stdout, res, out)
}

// expression joins the arguments with spaces. A "-" argument is replaced by
// stdin and `\-` by a literal dash.
func (c *calcCmd) expression(args []string) (string, error) {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		switch {
		case strings.TrimSpace(a) == stdinArg:
			data, err := io.ReadAll(c.stdin)
			if err != nil {
				return "", fmt.Errorf("read stdin: %w", err)
			}
			parts = append(parts, strings.TrimRight(string(data), "\r\n"))
		case a == escapedArg:
			parts = append(parts, "-")
		default:
			parts = append(parts, a)
		}
	}
	return strings.Join(parts, " "), nil
}

func (c *calcCmd) runInteractive(calculator *calc.Calculator, out report.Format) error {
	sc := bufio.NewScanner(c.stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		res, err := calculator.Evaluate(line)
		if err != nil {
			fmt.Fprintf(c.stderr, "error: %v\n", err)
			continue
		}
		if err := report.WriteResult(c.stdout, res, out); err != nil {
			return err
		}
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return nil
}

func (c *calcCmd) runSuite(calculator *calc.Calculator, path string, out report.Format) error {
	s, err := batch.LoadFromFile(path)
	if err != nil {
		return err
	}

	rep := batch.New(calculator).Run(s)
	if err := report.WriteBatch(c.stdout, rep, out); err != nil {
		return err
	}

	if !rep.OK() {
		return fmt.Errorf("%d of %d cases failed", rep.Failed, rep.Total)
	}
	return nil
}
