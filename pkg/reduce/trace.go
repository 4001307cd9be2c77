package reduce

import "github.com/vic/golambda/pkg/lambda"

// Step is one recorded beta reduction: the redex as it looked before
// substitution.
type Step struct {
	Index int    `json:"index" yaml:"index"`
	Term  string `json:"term" yaml:"term"`
}

type tracer struct {
	on    bool
	steps []Step
}

func (tr *tracer) record(index int, redex lambda.Term) {
	if !tr.on {
		return
	}
	tr.steps = append(tr.steps, Step{Index: index, Term: redex.String()})
}

func (tr *tracer) snapshot() []Step {
	if !tr.on {
		return nil
	}
	res := make([]Step, len(tr.steps))
	copy(res, tr.steps)
	return res
}
