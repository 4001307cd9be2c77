// Package reduce normalizes lambda terms by call-by-value beta reduction
// with capture-avoiding substitution.
package reduce

import (
	"github.com/vic/golambda/pkg/lambda"
)

// DefaultMaxSteps bounds evaluation when Options.MaxSteps is zero.
const DefaultMaxSteps = 1000

// MaxDepth bounds the recursion of a single evaluation. It leaves room for
// any term the parser accepts; terms grown deeper by substitution fail with
// a *DepthError.
const MaxDepth = 100_000

type Options struct {
	// MaxSteps is the number of beta reductions allowed before giving up.
	MaxSteps int
	// Trace records every redex before it is reduced.
	Trace bool
}

// Stats holds reduction statistics.
type Stats struct {
	BetaReductions uint64 `json:"beta" yaml:"beta"`
	AlphaRenames   uint64 `json:"renames" yaml:"renames"`
	Substitutions  uint64 `json:"substitutions" yaml:"substitutions"`
}

type Result struct {
	Term  lambda.Term
	Steps []Step
	Stats Stats
}

// Evaluator reduces terms to normal form. It holds only options, so one
// Evaluator may be used from several goroutines.
type Evaluator struct {
	opts Options
}

func New(opts Options) *Evaluator {
	if opts.MaxSteps <= 0 {
		opts.MaxSteps = DefaultMaxSteps
	}
	return &Evaluator{opts: opts}
}

// Normalize reduces t to normal form. If the step limit is reached it
// returns a *LimitError carrying the partial trace.
func (e *Evaluator) Normalize(t lambda.Term) (*Result, error) {
	r := &run{
		max:   e.opts.MaxSteps,
		names: NewNameSupply(),
		trace: &tracer{on: e.opts.Trace},
	}
	nf, err := r.normalize(t)
	if err != nil {
		return nil, err
	}
	return &Result{
		Term:  nf,
		Steps: r.trace.snapshot(),
		Stats: r.stats,
	}, nil
}

// run is the state of a single Normalize call.
type run struct {
	max   int
	steps int
	depth int
	names *NameSupply
	trace *tracer
	stats Stats
}

// enter must be paired with a deferred leave, even when it fails.
func (r *run) enter() error {
	r.depth++
	if r.depth > MaxDepth {
		return &DepthError{MaxDepth: MaxDepth, Stats: r.stats}
	}
	return nil
}

func (r *run) leave() {
	r.depth--
}

// normalize evaluates t and then keeps going under binders and into the
// arguments of stuck applications, so the result contains no redex.
func (r *run) normalize(t lambda.Term) (lambda.Term, error) {
	defer r.leave()
	if err := r.enter(); err != nil {
		return nil, err
	}

	t, err := r.eval(t)
	if err != nil {
		return nil, err
	}
	switch t := t.(type) {
	case lambda.Var:
		return t, nil
	case lambda.Abs:
		body, err := r.normalize(t.Body)
		if err != nil {
			return nil, err
		}
		return lambda.Abs{Param: t.Param, Body: body}, nil
	case lambda.App:
		// eval only returns an application when its head is a free
		// variable, so normalizing the parts cannot create a redex.
		fun, err := r.normalize(t.Fun)
		if err != nil {
			return nil, err
		}
		arg, err := r.normalize(t.Arg)
		if err != nil {
			return nil, err
		}
		return lambda.App{Fun: fun, Arg: arg}, nil
	default:
		panic("unknown term type")
	}
}

// eval reduces t call-by-value until it is a value or a stuck application.
func (r *run) eval(t lambda.Term) (lambda.Term, error) {
	defer r.leave()
	if err := r.enter(); err != nil {
		return nil, err
	}

	for {
		app, ok := t.(lambda.App)
		if !ok {
			return t, nil
		}

		fun, arg := app.Fun, app.Arg
		if !lambda.IsValue(fun) {
			var err error
			if fun, err = r.eval(fun); err != nil {
				return nil, err
			}
			if !lambda.IsValue(fun) {
				// Stuck head such as (x y) z: only the argument can
				// still make progress.
				if arg, err = r.eval(arg); err != nil {
					return nil, err
				}
				return lambda.App{Fun: fun, Arg: arg}, nil
			}
		}
		if !lambda.IsValue(arg) {
			var err error
			// A stuck argument comes back as an application; it is
			// substituted as it is.
			if arg, err = r.eval(arg); err != nil {
				return nil, err
			}
		}

		abs, ok := fun.(lambda.Abs)
		if !ok {
			return lambda.App{Fun: fun, Arg: arg}, nil
		}

		if r.steps >= r.max {
			return nil, &LimitError{
				MaxSteps: r.max,
				Steps:    r.trace.snapshot(),
				Stats:    r.stats,
			}
		}
		r.trace.record(r.steps, lambda.App{Fun: abs, Arg: arg})
		r.steps++
		r.stats.BetaReductions++

		t = r.subst(abs.Param, arg, abs.Body)
	}
}
