package gentests

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vic/golambda/pkg/config"
	"github.com/vic/golambda/pkg/interp"
	"github.com/vic/golambda/pkg/lambda"
)

// AlphaNormalize renames every bound variable of t to a canonical sequence
// #0, #1, ... in binding order. Free variables keep their names, so two
// terms are alpha-equivalent exactly when their normalized forms are equal.
func AlphaNormalize(t lambda.Term) lambda.Term {
	bindings := make(map[string]string)
	var idx int
	var walk func(lambda.Term) lambda.Term
	walk = func(tt lambda.Term) lambda.Term {
		switch v := tt.(type) {
		case lambda.Var:
			if name, ok := bindings[v.Name]; ok {
				return lambda.Var{Name: name}
			}
			return v
		case lambda.Abs:
			// '#' cannot appear in parsed names, so canonical names never
			// clash with free ones.
			canon := fmt.Sprintf("#%d", idx)
			idx++
			// restore the shadowed binding afterwards
			old, had := bindings[v.Param]
			bindings[v.Param] = canon
			body := walk(v.Body)
			if had {
				bindings[v.Param] = old
			} else {
				delete(bindings, v.Param)
			}
			return lambda.Abs{Param: canon, Body: body}
		case lambda.App:
			return lambda.App{Fun: walk(v.Fun), Arg: walk(v.Arg)}
		default:
			panic("unknown term type")
		}
	}
	return walk(t)
}

// CheckLambdaReduction evaluates inputStr and compares its normal form with
// outputStr up to renaming of bound variables.
func CheckLambdaReduction(t *testing.T, testName string, inputStr string, outputStr string) {
	t.Helper()

	expectedTerm, err := lambda.Parse(strings.TrimSpace(outputStr))
	if err != nil {
		t.Fatalf("Parse error for expected output: %v", err)
	}

	in := interp.New(config.Default())
	res, err := in.Evaluate(strings.TrimSpace(inputStr), interp.Options{Trace: true})
	if err != nil {
		t.Fatalf("%s: evaluation failed: %v", testName, err)
	}

	normExpected := AlphaNormalize(expectedTerm)
	normActual := AlphaNormalize(res.Term)

	if diff := cmp.Diff(normExpected, normActual); diff != "" {
		t.Errorf("Mismatch in %s:\nInput: %s\nExpected: %s\nActual:   %s\n(-want +got):\n%s",
			testName, inputStr, normExpected, normActual, diff)
	}

	for _, step := range res.Steps {
		t.Logf("%s: step %d: %s", testName, step.Index, step.Term)
	}
	t.Logf("%s: %d reductions, %d renames in %v", testName, res.Stats.BetaReductions, res.Stats.AlphaRenames, res.Elapsed)
}
