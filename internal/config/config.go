// Package config resolves where neon-maze keeps its files and loads the
// optional tuning overrides and environment switches.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/pfelipm/neon-maze/internal/engine"
)

const (
	dirName         = "neon-maze"
	TuningFileName  = "tuning.yaml"
	envConfigDir    = "NEONMAZE_CONFIG_DIR"
	envEnableAudio  = "NEONMAZE_ENABLE_AUDIO"
	envDisableAudio = "NEONMAZE_DISABLE_AUDIO"
	envSeed         = "NEONMAZE_SEED"
	envStartLevel   = "NEONMAZE_START_LEVEL"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Dir returns the directory for the leaderboard and tuning file, creating
// it if needed. NEONMAZE_CONFIG_DIR is used as-is when set, otherwise
// UserConfigDir()/neon-maze.
func Dir() (string, error) {
	if env := os.Getenv(envConfigDir); env != "" {
		if err := os.MkdirAll(env, 0o755); err != nil {
			return "", err
		}
		return env, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, dirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// LoadTuning reads YAML overrides from path on top of the default tuning.
// Keys missing from the file keep their defaults, and a missing file is
// not an error.
func LoadTuning(path string) (engine.Tuning, error) {
	t := engine.DefaultTuning()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return t, nil
		}
		return t, fmt.Errorf("read tuning: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return engine.DefaultTuning(), fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
	}
	if err := t.Validate(); err != nil {
		return engine.DefaultTuning(), fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// DefaultTuningPath is tuning.yaml inside Dir.
func DefaultTuningPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, TuningFileName), nil
}

// Settings are the launch switches that may come from the environment.
type Settings struct {
	Audio      bool
	Seed       uint64
	HasSeed    bool
	StartLevel int
}

// FromEnv reads the NEONMAZE_* switches. Audio stays off unless enabled,
// and NEONMAZE_DISABLE_AUDIO=1 always wins.
func FromEnv() (Settings, error) {
	s := Settings{StartLevel: 1}
	s.Audio = os.Getenv(envEnableAudio) == "1" && os.Getenv(envDisableAudio) != "1"

	if v := os.Getenv(envSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return s, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, envSeed, v, err)
		}
		s.Seed, s.HasSeed = seed, true
	}
	if v := os.Getenv(envStartLevel); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return s, fmt.Errorf("%w: %s=%q must be a positive integer", ErrInvalidConfig, envStartLevel, v)
		}
		s.StartLevel = n
	}
	return s, nil
}

// AudioDisabled reports whether NEONMAZE_DISABLE_AUDIO forces silence,
// regardless of flags.
func AudioDisabled() bool {
	return os.Getenv(envDisableAudio) == "1"
}
