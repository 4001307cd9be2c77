package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vic/golambda/pkg/reduce"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func noEnv(string) (string, bool) { return "", false }

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, reduce.DefaultMaxSteps, cfg.MaxSteps)
	assert.False(t, cfg.Trace)
	assert.Equal(t, ColorAuto, cfg.REPL.Color)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
max_steps = 50
trace = true

[repl]
prompt = "> "
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.MaxSteps)
	assert.True(t, cfg.Trace)
	assert.Equal(t, "> ", cfg.REPL.Prompt)
	// unset keys keep their defaults
	assert.Equal(t, ColorAuto, cfg.REPL.Color)
	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, path, cfg.Path)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		msg     string
	}{
		{"syntax", "max_steps = ", "parsing"},
		{"unknown key", "max_stpes = 3", `unknown key "max_stpes"`},
		{"invalid limit", "max_steps = 0", "max_steps must be positive"},
		{"invalid color", "[repl]\ncolor = \"blue\"", "repl.color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0755))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	path, err := Find(nested)
	require.NoError(t, err)
	assert.Empty(t, path, "must stop at the .git boundary")

	want := writeConfig(t, filepath.Join(root, "a"), "max_steps = 7")
	path, err = Find(nested)
	require.NoError(t, err)
	assert.Equal(t, want, path)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvMaxSteps: "12",
		EnvTrace:    "true",
	}
	lookup := func(key string) (string, bool) {
		val, ok := env[key]
		return val, ok
	}

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(lookup))
	assert.Equal(t, 12, cfg.MaxSteps)
	assert.True(t, cfg.Trace)

	cfg = Default()
	require.NoError(t, cfg.ApplyEnv(noEnv))
	assert.Equal(t, Default(), cfg)

	env[EnvMaxSteps] = "lots"
	err := cfg.ApplyEnv(lookup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvMaxSteps)
}

func TestResolve(t *testing.T) {
	t.Setenv(EnvMaxSteps, "")
	t.Setenv(EnvTrace, "")

	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0755))

	cfg, err := Resolve("", root)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := writeConfig(t, root, "max_steps = 99")
	cfg, err = Resolve("", root)
	require.NoError(t, err)
	assert.Equal(t, 99, cfg.MaxSteps)
	assert.Equal(t, path, cfg.Path)

	t.Setenv(EnvMaxSteps, "5")
	cfg, err = Resolve(path, "")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.MaxSteps)
}
