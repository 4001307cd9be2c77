package gentests

import (
	_ "embed"
	"errors"
	"testing"

	"github.com/vic/golambda/pkg/config"
	"github.com/vic/golambda/pkg/interp"
	"github.com/vic/golambda/pkg/reduce"
)

//go:embed input.lc
var input string

// Omega has no normal form: evaluation must stop at the step limit with a
// full trace of the steps it took, and never return a value.
func Test_102_non_normalizing_StepLimit(t *testing.T) {
	for _, maxSteps := range []int{1, 10, 500} {
		cfg := config.Default()
		cfg.MaxSteps = maxSteps

		res, err := interp.New(cfg).Evaluate(input, interp.Options{Trace: true})
		if res != nil {
			t.Fatalf("max=%d: expected no result, got %s", maxSteps, res)
		}

		var limitErr *reduce.LimitError
		if !errors.As(err, &limitErr) {
			t.Fatalf("max=%d: expected *reduce.LimitError, got %v", maxSteps, err)
		}
		if len(limitErr.Steps) != maxSteps {
			t.Errorf("max=%d: recorded %d steps", maxSteps, len(limitErr.Steps))
		}
		for i, step := range limitErr.Steps {
			if step.Index != i || step.Term != input {
				t.Fatalf("max=%d: unexpected step %d: %+v", maxSteps, i, step)
			}
		}
		t.Logf("max=%d: stopped after %d reductions", maxSteps, limitErr.Stats.BetaReductions)
	}
}
