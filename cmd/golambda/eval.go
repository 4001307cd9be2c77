package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vic/golambda/pkg/config"
	"github.com/vic/golambda/pkg/interp"
)

func evalCmd(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate expressions given as arguments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd, *flags)
			if err != nil {
				return err
			}
			exprs := make([]source, len(args))
			for i, arg := range args {
				exprs[i] = source{Line: i + 1, Expr: arg}
			}
			return evaluateAndReport(cmd.Context(), cfg, *flags, exprs, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func runCmd(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE",
		Short: "Evaluate every non-blank line of a file (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd, *flags)
			if err != nil {
				return err
			}

			var r io.Reader = os.Stdin
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrapf(err, "reading %s", args[0])
				}
				defer f.Close()
				r = f
			}
			return runLines(cmd.Context(), cfg, *flags, r, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// source is one expression and where it came from.
type source struct {
	Line int
	Expr string
}

// maxLineSize is the longest input line accepted by run and the REPL.
const maxLineSize = 16 << 20

func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return scanner
}

func readLines(r io.Reader) ([]source, error) {
	var srcs []source
	scanner := newLineScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		srcs = append(srcs, source{Line: line, Expr: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return srcs, nil
}

func runLines(ctx context.Context, cfg config.Config, flags Flags, r io.Reader, stdout, stderr io.Writer) error {
	srcs, err := readLines(r)
	if err != nil {
		return err
	}
	return evaluateAndReport(ctx, cfg, flags, srcs, stdout, stderr)
}

// evaluateAll evaluates srcs with up to cfg.Jobs running at once. Every
// evaluation gets its own reduction state, so they never interfere.
// Reports are returned in input order.
func evaluateAll(ctx context.Context, cfg config.Config, srcs []source) ([]report, error) {
	in := newInterpreter(cfg)
	reports := make([]report, len(srcs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Jobs)
	for i, src := range srcs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := in.Evaluate(src.Expr, interp.Options{Trace: cfg.Trace})
			reports[i] = newReport(src, res, err)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "evaluation interrupted")
	}
	return reports, nil
}

func evaluateAndReport(ctx context.Context, cfg config.Config, flags Flags, srcs []source, stdout, stderr io.Writer) error {
	reports, err := evaluateAll(ctx, cfg, srcs)
	if err != nil {
		return err
	}

	st := newStyler(cfg.REPL.Color, stdout)
	if err := writeReports(stdout, stderr, st, flags.Format, reports, len(srcs) > 1); err != nil {
		return err
	}
	if flags.Stats {
		writeStats(stderr, reports)
	}

	failed := 0
	for _, r := range reports {
		if r.err != nil {
			failed++
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d expressions failed", failed, len(reports))
	}
	return nil
}
