package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pfelipm/neon-maze/internal/engine"
)

func TestDirHonorsEnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "nested")
	t.Setenv("NEONMAZE_CONFIG_DIR", want)

	got, err := Dir()
	if err != nil {
		t.Fatalf("Dir: %v", err)
	}
	if got != want {
		t.Fatalf("Dir() = %q, want %q", got, want)
	}
	if fi, err := os.Stat(got); err != nil || !fi.IsDir() {
		t.Fatalf("config dir not created: %v", err)
	}
}

func TestLoadTuningMissingFileUsesDefaults(t *testing.T) {
	got, err := LoadTuning(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if got != engine.DefaultTuning() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestLoadTuningOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), TuningFileName)
	data := "start_lives: 5\nghost_speed: 0.1\nmode_switch_seconds: 15\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if got.StartLives != 5 || got.GhostSpeed != 0.1 || got.ModeSwitchSeconds != 15 {
		t.Fatalf("overrides not applied: %+v", got)
	}
	if got.PlayerSpeed != engine.DefaultTuning().PlayerSpeed {
		t.Fatalf("unset keys should keep defaults, player_speed = %v", got.PlayerSpeed)
	}
}

func TestLoadTuningRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"malformed yaml", "start_lives: [oops", ErrInvalidConfig},
		{"wrong type", "ghost_speed: fast\n", ErrInvalidConfig},
		{"fails validation", "turn_tolerance: 0.9\n", engine.ErrInvalidTuning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), TuningFileName)
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			got, err := LoadTuning(path)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != engine.DefaultTuning() {
				t.Fatal("a rejected file should fall back to defaults")
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    Settings
		wantErr bool
	}{
		{"defaults", nil, Settings{StartLevel: 1}, false},
		{"audio on", map[string]string{"NEONMAZE_ENABLE_AUDIO": "1"}, Settings{Audio: true, StartLevel: 1}, false},
		{"disable wins", map[string]string{"NEONMAZE_ENABLE_AUDIO": "1", "NEONMAZE_DISABLE_AUDIO": "1"}, Settings{StartLevel: 1}, false},
		{"seed and level", map[string]string{"NEONMAZE_SEED": "42", "NEONMAZE_START_LEVEL": "4"}, Settings{Seed: 42, HasSeed: true, StartLevel: 4}, false},
		{"bad seed", map[string]string{"NEONMAZE_SEED": "-3"}, Settings{}, true},
		{"bad level", map[string]string{"NEONMAZE_START_LEVEL": "0"}, Settings{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"NEONMAZE_ENABLE_AUDIO", "NEONMAZE_DISABLE_AUDIO", "NEONMAZE_SEED", "NEONMAZE_START_LEVEL"} {
				t.Setenv(k, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			got, err := FromEnv()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Fatalf("err = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromEnv: %v", err)
			}
			if got != tt.want {
				t.Fatalf("FromEnv() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
