package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vic/golambda/pkg/config"
)

const projectConfig = `
max_steps = 50
trace = true
jobs = 2

[repl]
color = "always"
`

// inProject runs the test from a directory holding golambda.toml, with no
// golambda environment overrides.
func inProject(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0644))
	t.Chdir(dir)
	t.Setenv(config.EnvMaxSteps, "")
	t.Setenv(config.EnvTrace, "")

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func setupArgs(t *testing.T, args ...string) (config.Config, error) {
	t.Helper()
	var flags Flags
	root := newRootCmd(&flags)
	root.SetErr(io.Discard)

	cmd, rest, err := root.Find(args)
	require.NoError(t, err)
	require.NoError(t, cmd.ParseFlags(rest))
	return setup(cmd, flags)
}

func TestSetupUsesConfigFile(t *testing.T) {
	inProject(t, projectConfig)

	cfg, err := setupArgs(t)
	require.NoError(t, err)
	assert.True(t, cfg.Trace)
	assert.Equal(t, 50, cfg.MaxSteps)
	assert.Equal(t, 2, cfg.Jobs)
	assert.Equal(t, config.ColorAlways, cfg.REPL.Color)
}

func TestSetupPrecedence(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		args  []string
		check func(t *testing.T, cfg config.Config)
	}{
		{
			name: "environment over file",
			env:  map[string]string{config.EnvMaxSteps: "70", config.EnvTrace: "false"},
			check: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, 70, cfg.MaxSteps)
				assert.False(t, cfg.Trace)
			},
		},
		{
			name: "false flag over environment",
			env:  map[string]string{config.EnvTrace: "true"},
			args: []string{"--trace=false"},
			check: func(t *testing.T, cfg config.Config) {
				assert.False(t, cfg.Trace)
			},
		},
		{
			name: "flag over environment and file",
			env:  map[string]string{config.EnvMaxSteps: "70"},
			args: []string{"--max-steps", "90", "-j", "8"},
			check: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, 90, cfg.MaxSteps)
				assert.Equal(t, 8, cfg.Jobs)
			},
		},
		{
			name: "persistent flags on a subcommand",
			env:  map[string]string{config.EnvTrace: "true"},
			args: []string{"eval", "--trace=false", "--color", "never", "x"},
			check: func(t *testing.T, cfg config.Config) {
				assert.False(t, cfg.Trace)
				assert.Equal(t, config.ColorNever, cfg.REPL.Color)
				assert.Equal(t, 50, cfg.MaxSteps)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inProject(t, projectConfig)
			for key, val := range tt.env {
				t.Setenv(key, val)
			}

			cfg, err := setupArgs(t, tt.args...)
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestSetupRejectsInvalidFlags(t *testing.T) {
	tests := []struct {
		args []string
		msg  string
	}{
		{[]string{"--jobs", "0"}, "jobs must be positive"},
		{[]string{"--max-steps=-1"}, "max_steps must be positive"},
		{[]string{"--color", "blue"}, "repl.color"},
		{[]string{"--format", "xml"}, `unknown format "xml"`},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			inProject(t, projectConfig)
			_, err := setupArgs(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
