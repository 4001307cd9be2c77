package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vic/golambda/pkg/config"
)

func replSession(t *testing.T, cfg config.Config, lines ...string) string {
	t.Helper()
	cfg.REPL.Color = config.ColorNever
	var out bytes.Buffer
	input := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, runREPL(context.Background(), cfg, input, &out))
	return out.String()
}

func TestREPLEvaluates(t *testing.T) {
	out := replSession(t, config.Default(),
		`(\x.x) y`,
		`(\f.\x.f (f x)) (\y.y)`,
	)
	assert.Contains(t, out, "λ> y\n")
	assert.Contains(t, out, "λ> (λx. x)\n")
}

func TestREPLSyntaxErrorCaret(t *testing.T) {
	out := replSession(t, config.Default(), `(\x.x`)
	assert.Contains(t, out, "error: Expected token: RPAREN\n")
	assert.Contains(t, out, "  (\\x.x\n       ^\n")
}

func TestREPLTraceToggle(t *testing.T) {
	out := replSession(t, config.Default(),
		":trace",
		`(\x.\y.x) a b`,
		":trace",
		`(\x.x) c`,
	)
	assert.Contains(t, out, "Tracing enabled.")
	assert.Contains(t, out, "  0: (λx. (λy. x)) a\n  1: (λy. a) b\na\n")
	assert.Contains(t, out, "Tracing disabled.")
	assert.NotContains(t, out, "0: (λx. x) c")
}

func TestREPLSteps(t *testing.T) {
	out := replSession(t, config.Default(),
		":steps 5",
		`(\x.x x) (\x.x x)`,
		":steps",
		":steps nope",
	)
	assert.Contains(t, out, "Maximum steps set to 5.")
	assert.Contains(t, out, "error: evaluation exceeded 5 steps")
	assert.Contains(t, out, "raise the limit with :steps")
	assert.Contains(t, out, "Maximum steps: 5")
	assert.Contains(t, out, `invalid step count "nope"`)
}

func TestREPLFreeAndAST(t *testing.T) {
	out := replSession(t, config.Default(),
		`:free \x.x y z`,
		`:free \x.x`,
		`:ast \x.x`,
		`:free (`,
	)
	assert.Contains(t, out, "y z\n")
	assert.Contains(t, out, "no free variables")
	assert.Contains(t, out, "lambda.Abs{")
	assert.Contains(t, out, "error: Expected atom")
}

func TestREPLCommands(t *testing.T) {
	out := replSession(t, config.Default(),
		":help",
		":config",
		":bogus",
		":quit",
		"x",
	)
	assert.Contains(t, out, ":steps N")
	assert.Contains(t, out, "config: (defaults)")
	assert.Contains(t, out, "max_steps = 1000")
	assert.Contains(t, out, "unknown command :bogus")
	assert.NotContains(t, out, "λ> x\n", "input after :quit must not be evaluated")
}

func TestREPLLongLine(t *testing.T) {
	out := replSession(t, config.Default(),
		`(\x.x)`+strings.Repeat(" ", 100*1024)+"y",
		"z",
	)
	assert.Contains(t, out, "λ> y\n")
	assert.Contains(t, out, "λ> z\n")
}

func TestREPLDeeplyNested(t *testing.T) {
	n := 20_000
	out := replSession(t, config.Default(), strings.Repeat("(", n)+"x"+strings.Repeat(")", n), "a")
	assert.Contains(t, out, "error: Expression nested too deeply\n")
	assert.Contains(t, out, "λ> a\n")
}
