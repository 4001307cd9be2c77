package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/vic/golambda/pkg/config"
	"github.com/vic/golambda/pkg/interp"
	"github.com/vic/golambda/pkg/lambda"
	"github.com/vic/golambda/pkg/reduce"
)

type replCommandDef struct {
	name string
	desc string
}

var replCommandDefs = []replCommandDef{
	{"help", "Show this help"},
	{"quit", "Exit the REPL (also :exit)"},
	{"trace", "Toggle printing of reduction steps"},
	{"steps N", "Set the maximum number of beta reductions"},
	{"free EXPR", "List the free variables of EXPR"},
	{"ast EXPR", "Show the syntax tree of EXPR"},
	{"config", "Show the active configuration"},
}

type repl struct {
	cfg   config.Config
	in    *interp.Interpreter
	out   io.Writer
	st    styler
	trace bool
	quit  bool
}

func runREPL(ctx context.Context, cfg config.Config, input io.Reader, out io.Writer) error {
	r := &repl{
		cfg:   cfg,
		in:    newInterpreter(cfg),
		out:   out,
		st:    newStyler(cfg.REPL.Color, out),
		trace: cfg.Trace,
	}
	return r.loop(ctx, input)
}

func (r *repl) loop(ctx context.Context, input io.Reader) error {
	fmt.Fprintln(r.out, r.st.welcome("golambda - untyped lambda calculus"))
	fmt.Fprintln(r.out, r.st.dim(`Type a term such as (\x.x) y, or :help for commands.`))

	scanner := newLineScanner(input)
	for !r.quit {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprint(r.out, r.st.prompt(r.cfg.REPL.Prompt))
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			break
		}
		r.handle(strings.TrimSpace(scanner.Text()))
	}
	return errors.Wrap(scanner.Err(), "reading input")
}

func (r *repl) handle(line string) {
	switch {
	case line == "":
	case strings.HasPrefix(line, ":"):
		r.command(strings.TrimPrefix(line, ":"))
	default:
		r.evaluate(line)
	}
}

func (r *repl) evaluate(expr string) {
	res, err := r.in.Evaluate(expr, interp.Options{Trace: r.trace})
	writeText(r.out, r.out, r.st, newReport(source{Expr: expr}, res, err), false)
	if hint := limitHint(err); hint != "" {
		fmt.Fprintln(r.out, r.st.dim(hint))
	}
}

func (r *repl) command(cmdLine string) {
	name, arg, _ := strings.Cut(cmdLine, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "help":
		fmt.Fprintln(r.out, "Available commands:")
		maxName := 0
		for _, cmd := range replCommandDefs {
			maxName = max(maxName, len(cmd.name))
		}
		for _, cmd := range replCommandDefs {
			fmt.Fprintln(r.out, r.st.dim(fmt.Sprintf("  :%-*s - %s", maxName, cmd.name, cmd.desc)))
		}

	case "quit", "exit":
		r.quit = true

	case "trace":
		r.trace = !r.trace
		status := "disabled"
		if r.trace {
			status = "enabled"
		}
		fmt.Fprintln(r.out, r.st.result(fmt.Sprintf("Tracing %s.", status)))

	case "steps":
		if arg == "" {
			fmt.Fprintln(r.out, r.st.result(fmt.Sprintf("Maximum steps: %d", r.in.MaxSteps())))
			return
		}
		n, err := strconv.Atoi(arg)
		if err != nil || n <= 0 {
			fmt.Fprintln(r.out, r.st.failure(fmt.Sprintf("invalid step count %q", arg)))
			return
		}
		r.cfg.MaxSteps = n
		r.in = newInterpreter(r.cfg)
		fmt.Fprintln(r.out, r.st.result(fmt.Sprintf("Maximum steps set to %d.", n)))

	case "free":
		term, ok := r.parse(arg)
		if !ok {
			return
		}
		names := lambda.FreeNames(term)
		if len(names) == 0 {
			fmt.Fprintln(r.out, r.st.dim("no free variables"))
			return
		}
		fmt.Fprintln(r.out, r.st.result(strings.Join(names, " ")))

	case "ast":
		term, ok := r.parse(arg)
		if !ok {
			return
		}
		fmt.Fprintln(r.out, interp.Dump(term))

	case "config":
		path := r.cfg.Path
		if path == "" {
			path = "(defaults)"
		}
		fmt.Fprintln(r.out, r.st.dim("config: "+path))
		fmt.Fprintf(r.out, "max_steps = %d\ntrace = %t\n", r.in.MaxSteps(), r.trace)

	default:
		fmt.Fprintln(r.out, r.st.failure(fmt.Sprintf("unknown command :%s (try :help)", name)))
	}
}

func (r *repl) parse(expr string) (lambda.Term, bool) {
	term, err := r.in.Parse(expr)
	if err != nil {
		writeText(r.out, r.out, r.st, newReport(source{Expr: expr}, nil, err), false)
		return nil, false
	}
	return term, true
}

// limitHint is shown after a limit error so the user knows how to raise it.
func limitHint(err error) string {
	var limitErr *reduce.LimitError
	if !errors.As(err, &limitErr) {
		return ""
	}
	return fmt.Sprintf("stopped after %d steps; raise the limit with :steps", limitErr.MaxSteps)
}
