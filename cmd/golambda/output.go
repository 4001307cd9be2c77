package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vic/golambda/pkg/interp"
	"github.com/vic/golambda/pkg/lambda"
	"github.com/vic/golambda/pkg/reduce"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// report is the outcome of evaluating one source line.
type report struct {
	Line    int           `json:"line" yaml:"line"`
	Expr    string        `json:"expr" yaml:"expr"`
	Result  string        `json:"result,omitempty" yaml:"result,omitempty"`
	Error   string        `json:"error,omitempty" yaml:"error,omitempty"`
	Steps   []reduce.Step `json:"steps,omitempty" yaml:"steps,omitempty"`
	Stats   reduce.Stats  `json:"stats" yaml:"stats"`
	Elapsed time.Duration `json:"-" yaml:"-"`

	err error
}

func newReport(src source, res *interp.Result, err error) report {
	r := report{Line: src.Line, Expr: src.Expr, err: err}
	var limitErr *reduce.LimitError
	var depthErr *reduce.DepthError
	switch {
	case err == nil:
		r.Result = res.String()
		r.Steps = res.Steps
		r.Stats = res.Stats
		r.Elapsed = res.Elapsed
	case errors.As(err, &limitErr):
		r.Error = err.Error()
		r.Steps = limitErr.Steps
		r.Stats = limitErr.Stats
	case errors.As(err, &depthErr):
		r.Error = err.Error()
		r.Stats = depthErr.Stats
	default:
		r.Error = err.Error()
	}
	return r
}

func writeReports(stdout, stderr io.Writer, st styler, format string, reports []report, numbered bool) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(reports), "encoding json")
	case formatYAML:
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		return errors.Wrap(enc.Close(), "encoding yaml")
	default:
		for _, r := range reports {
			writeText(stdout, stderr, st, r, numbered)
		}
		return nil
	}
}

func writeText(stdout, stderr io.Writer, st styler, r report, numbered bool) {
	prefix := ""
	if numbered {
		prefix = fmt.Sprintf("%d: ", r.Line)
	}

	for _, step := range r.Steps {
		fmt.Fprintln(stdout, st.dim(fmt.Sprintf("  %d: %s", step.Index, step.Term)))
	}

	if r.err == nil {
		fmt.Fprintln(stdout, prefix+st.result(r.Result))
		return
	}

	fmt.Fprintln(stderr, prefix+st.failure("error: "+r.Error))
	var synErr *lambda.SyntaxError
	if errors.As(r.err, &synErr) {
		fmt.Fprint(stderr, caret(r.Expr, synErr.Pos))
	}
}

// caret points at the rune offset pos in expr.
func caret(expr string, pos int) string {
	return "  " + expr + "\n  " + strings.Repeat(" ", pos) + "^\n"
}

func writeStats(w io.Writer, reports []report) {
	var total reduce.Stats
	var elapsed time.Duration
	for _, r := range reports {
		total.BetaReductions += r.Stats.BetaReductions
		total.AlphaRenames += r.Stats.AlphaRenames
		total.Substitutions += r.Stats.Substitutions
		elapsed += r.Elapsed
	}
	seconds := elapsed.Seconds()

	fmt.Fprintf(w, "\nStats:\n")
	fmt.Fprintf(w, "Terms: %d\n", len(reports))
	fmt.Fprintf(w, "Time: %v\n", elapsed)
	fmt.Fprintf(w, "Total Reductions: %d", total.BetaReductions)
	if seconds > 0 {
		fmt.Fprintf(w, " (%.2f ops/sec)", float64(total.BetaReductions)/seconds)
	}
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "\nBreakdown:\n")
	fmt.Fprintf(w, "  Beta:          %6d\n", total.BetaReductions)
	fmt.Fprintf(w, "  Alpha renames: %6d\n", total.AlphaRenames)
	fmt.Fprintf(w, "  Substitutions: %6d\n", total.Substitutions)
}
