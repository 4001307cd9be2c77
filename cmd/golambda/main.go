package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/charmbracelet/fang"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vic/golambda/pkg/config"
	"github.com/vic/golambda/pkg/interp"
)

// Flags holds the command line flags shared by every command.
type Flags struct {
	Debug      bool
	ConfigFile string
	Color      string
	Trace      bool
	MaxSteps   int
	Stats      bool
	Format     string
	Jobs       int
}

func main() {
	var flags Flags
	rootCmd := newRootCmd(&flags)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := fang.Execute(ctx, rootCmd,
		fang.WithVersion("v0.1.0"),
		fang.WithCommit("dev"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		stop()
		os.Exit(1)
	}
}

// newRootCmd builds the command tree with its flags bound to flags.
func newRootCmd(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "golambda [flags]",
		Short: "Untyped lambda calculus evaluator",
		Long: `golambda reduces untyped lambda calculus terms to normal form using
call-by-value beta reduction with capture-avoiding substitution.

Terms use \ (or λ) for binders and single lowercase letters for variables.`,
		Example: `  # Start the interactive REPL
  golambda

  # Evaluate an expression
  golambda eval '(\f.\x.f (f x)) (\y.y)'

  # Show every reduction step
  golambda eval --trace '(\x.\y.x) a b'

  # Evaluate every line of a file
  golambda run terms.lc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd, *flags)
			if err != nil {
				return err
			}
			if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
				return runREPL(cmd.Context(), cfg, os.Stdin, cmd.OutOrStdout())
			}
			return runLines(cmd.Context(), cfg, *flags, os.Stdin, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flags.Debug, "debug", "d", false, "Enable debug logging")
	pf.StringVar(&flags.ConfigFile, "config", "", "Path to "+config.FileName+" (searched upwards from the working directory by default)")
	pf.StringVar(&flags.Color, "color", "", "Color output: auto, always or never")
	pf.BoolVarP(&flags.Trace, "trace", "t", false, "Print every reduction step")
	pf.IntVar(&flags.MaxSteps, "max-steps", 0, "Maximum number of beta reductions per term")
	pf.BoolVar(&flags.Stats, "stats", false, "Print reduction statistics to stderr")
	pf.StringVarP(&flags.Format, "format", "o", formatText, "Output format: text, json or yaml")
	pf.IntVarP(&flags.Jobs, "jobs", "j", 0, "Number of terms evaluated concurrently")

	rootCmd.AddCommand(evalCmd(flags))
	rootCmd.AddCommand(runCmd(flags))
	return rootCmd
}

// setup installs the logger and resolves the configuration. Flags given on
// the command line win over the environment, which wins over the config
// file.
func setup(cmd *cobra.Command, flags Flags) (config.Config, error) {
	level := slog.LevelInfo
	if flags.Debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))

	cwd, err := os.Getwd()
	if err != nil {
		return config.Config{}, errors.Wrap(err, "getting working directory")
	}
	cfg, err := config.Resolve(flags.ConfigFile, cwd)
	if err != nil {
		return config.Config{}, err
	}
	if cfg.Path != "" {
		slog.Debug("loaded config", "path", cfg.Path)
	}

	set := cmd.Flags()
	if set.Changed("trace") {
		cfg.Trace = flags.Trace
	}
	if set.Changed("max-steps") {
		cfg.MaxSteps = flags.MaxSteps
	}
	if set.Changed("jobs") {
		cfg.Jobs = flags.Jobs
	}
	if set.Changed("color") {
		cfg.REPL.Color = flags.Color
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	switch flags.Format {
	case formatText, formatJSON, formatYAML:
	default:
		return config.Config{}, errors.Errorf("unknown format %q", flags.Format)
	}
	return cfg, nil
}

func newInterpreter(cfg config.Config) *interp.Interpreter {
	return interp.New(cfg, interp.WithLogger(slog.Default()))
}
