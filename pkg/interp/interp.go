// Package interp wires the parser to the evaluator for front ends.
package interp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kr/pretty"

	"github.com/vic/golambda/pkg/config"
	"github.com/vic/golambda/pkg/lambda"
	"github.com/vic/golambda/pkg/reduce"
)

type Options struct {
	// Trace records each beta reduction in Result.Steps.
	Trace bool
}

type Result struct {
	Term    lambda.Term
	Steps   []reduce.Step
	Stats   reduce.Stats
	Elapsed time.Duration
}

// String renders the normal form.
func (r *Result) String() string {
	return lambda.Render(r.Term)
}

type Interpreter struct {
	maxSteps int
	logger   *slog.Logger
}

type Option func(*Interpreter)

func WithLogger(logger *slog.Logger) Option {
	return func(i *Interpreter) {
		i.logger = logger
	}
}

// New creates an interpreter bounded by cfg.MaxSteps.
func New(cfg config.Config, opts ...Option) *Interpreter {
	i := &Interpreter{
		maxSteps: cfg.MaxSteps,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

func (i *Interpreter) MaxSteps() int {
	return i.maxSteps
}

// Parse parses text without evaluating it.
func (i *Interpreter) Parse(text string) (lambda.Term, error) {
	term, err := lambda.Parse(text)
	if err != nil {
		i.logger.Debug("parse failed", "expr", text, "error", err)
		return nil, err
	}
	if i.logger.Enabled(context.Background(), slog.LevelDebug) {
		i.logger.Debug("parsed", "expr", text, "ast", Dump(term))
	}
	return term, nil
}

// Evaluate parses text and reduces it to normal form. Syntax errors are
// returned as *lambda.SyntaxError; hitting the step limit returns a
// *reduce.LimitError carrying the trace recorded so far, and a term that
// grows too deep returns a *reduce.DepthError.
func (i *Interpreter) Evaluate(text string, opts Options) (*Result, error) {
	term, err := i.Parse(text)
	if err != nil {
		return nil, err
	}

	ev := reduce.New(reduce.Options{
		MaxSteps: i.maxSteps,
		Trace:    opts.Trace,
	})

	start := time.Now()
	res, err := ev.Normalize(term)
	elapsed := time.Since(start)
	if err != nil {
		i.logger.Debug("evaluation failed", "expr", text, "elapsed", elapsed, "error", err)
		return nil, err
	}

	i.logger.Debug("evaluated",
		"expr", text,
		"result", res.Term.String(),
		"beta", res.Stats.BetaReductions,
		"renames", res.Stats.AlphaRenames,
		"elapsed", elapsed)

	return &Result{
		Term:    res.Term,
		Steps:   res.Steps,
		Stats:   res.Stats,
		Elapsed: elapsed,
	}, nil
}

// Render returns the canonical text of t.
func Render(t lambda.Term) string {
	return lambda.Render(t)
}

// Dump formats the structure of t as Go syntax.
func Dump(t lambda.Term) string {
	return fmt.Sprintf("%# v", pretty.Formatter(t))
}
