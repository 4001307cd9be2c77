// Package config loads golambda.toml settings.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/vic/golambda/pkg/reduce"
)

const FileName = "golambda.toml"

// Environment variables that override the config file.
const (
	EnvMaxSteps = "GOLAMBDA_MAX_STEPS"
	EnvTrace    = "GOLAMBDA_TRACE"
)

// Color modes for REPLConfig.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Config struct {
	// MaxSteps bounds the number of beta reductions per evaluation.
	MaxSteps int `toml:"max_steps"`
	// Trace records reduction steps by default.
	Trace bool `toml:"trace"`
	// Jobs is how many lines `run` evaluates at once.
	Jobs int `toml:"jobs"`

	REPL REPLConfig `toml:"repl"`

	// Path is the file the config was read from, if any.
	Path string `toml:"-"`
}

type REPLConfig struct {
	Prompt string `toml:"prompt"`
	Color  string `toml:"color"`
}

func Default() Config {
	return Config{
		MaxSteps: reduce.DefaultMaxSteps,
		Jobs:     4,
		REPL: REPLConfig{
			Prompt: "λ> ",
			Color:  ColorAuto,
		},
	}
}

// Load reads the file at path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "parsing %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	cfg.Path = path
	return cfg, cfg.Validate()
}

// Find searches for golambda.toml starting from dir and walking up to
// parent directories, stopping at a .git boundary. It returns "" if there
// is none.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Resolve loads the explicit config file if one is given, otherwise the
// nearest golambda.toml above dir, otherwise the defaults. Environment
// overrides are applied last.
func Resolve(explicit, dir string) (Config, error) {
	path := explicit
	if path == "" {
		var err error
		if path, err = Find(dir); err != nil {
			return Config{}, errors.Wrap(err, "finding config")
		}
	}

	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides settings from environment variables.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if val, ok := lookup(EnvMaxSteps); ok && val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvMaxSteps)
		}
		c.MaxSteps = n
	}
	if val, ok := lookup(EnvTrace); ok && val != "" {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvTrace)
		}
		c.Trace = b
	}
	return nil
}

func (c Config) Validate() error {
	if c.MaxSteps <= 0 {
		return errors.Errorf("max_steps must be positive, got %d", c.MaxSteps)
	}
	if c.Jobs <= 0 {
		return errors.Errorf("jobs must be positive, got %d", c.Jobs)
	}
	switch c.REPL.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Errorf("repl.color must be one of auto, always, never; got %q", c.REPL.Color)
	}
	return nil
}
