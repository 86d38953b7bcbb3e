// Package config loads the optional YAML run configuration that
// selects the evaluator's mode, loop cap, and LCG seed ahead of a CLI
// or library run. It mirrors the teacher's preference for a thin,
// dependency-backed config loader over a hand-rolled flag-only one.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/golfscript-go/golfscript/internal/eval"
)

// Config is the on-disk shape of `.golfscriptrc.yaml`. Every field is
// optional; zero values mean "use the evaluator's built-in default".
type Config struct {
	ModeName string `yaml:"mode"`
	MaxLoops uint64 `yaml:"max_loops"`
	Seed     uint64 `yaml:"seed"`
}

// DefaultPath is the config file golfscript looks for in the current
// working directory when none is given via --config.
const DefaultPath = ".golfscriptrc.yaml"

// Load reads and parses a YAML config file. A missing file at
// DefaultPath is not an error: Load returns a zero Config so callers
// fall back entirely to flags and evaluator defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return c, nil
}

// Mode resolves the config's mode string to an eval.Mode, defaulting
// to sandboxed for an empty or unrecognized value.
func (c Config) Mode() eval.Mode {
	if c.ModeName == "strict" {
		return eval.ModeStrict
	}
	return eval.ModeSandboxed
}

// Apply builds an Evaluator from the config. A true strict, or a
// non-zero seed or maxLoops (e.g. from CLI flags), overrides whatever
// the config file specified.
func Apply(c Config, strict bool, seed, maxLoops uint64) *eval.Evaluator {
	mode := c.Mode()
	if strict {
		mode = eval.ModeStrict
	}
	e := eval.New(mode)
	if c.Seed != 0 {
		e.SetSeed(c.Seed)
	}
	if seed != 0 {
		e.SetSeed(seed)
	}
	if c.MaxLoops != 0 {
		e.SetMaxLoops(c.MaxLoops)
	}
	if maxLoops != 0 {
		e.SetMaxLoops(maxLoops)
	}
	return e
}
