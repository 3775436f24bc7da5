package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pfelipm/neon-maze/internal/config"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NEONMAZE_CONFIG_DIR", t.TempDir())
	t.Setenv("NEONMAZE_SEED", "")
	t.Setenv("NEONMAZE_START_LEVEL", "")
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run(context.Background(), append([]string{"neonmaze"}, args...))
	return out.String(), err
}

func TestSimulatePrintsReport(t *testing.T) {
	out, err := runApp(t, "simulate", "--runs", "2", "--ticks", "120", "--seed-base", "7")
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	for _, want := range []string{"--- Run 1 (seed=7", "--- Run 2 (seed=8", "=== Aggregate ===", "ate-dot="} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSimulateSeedBase(t *testing.T) {
	tests := []struct {
		name string
		env  string
		args []string
		want string
	}{
		{"flag default", "", []string{"simulate", "--runs", "1", "--ticks", "1"}, "seed_base=42 "},
		{"general seed flag", "", []string{"--seed", "9", "simulate", "--runs", "1", "--ticks", "1"}, "seed_base=9 "},
		{"seed from env", "11", []string{"simulate", "--runs", "1", "--ticks", "1"}, "seed_base=11 "},
		{"seed-base wins", "11", []string{"--seed", "9", "simulate", "--seed-base", "5", "--runs", "1", "--ticks", "1"}, "seed_base=5 "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NEONMAZE_CONFIG_DIR", t.TempDir())
			t.Setenv("NEONMAZE_SEED", tt.env)
			t.Setenv("NEONMAZE_START_LEVEL", "")
			var out bytes.Buffer
			app := newApp()
			app.Writer = &out
			if err := app.Run(context.Background(), append([]string{"neonmaze"}, tt.args...)); err != nil {
				t.Fatalf("simulate: %v", err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Fatalf("output missing %q:\n%s", tt.want, out.String())
			}
		})
	}
}

func TestSimulateIsRepeatable(t *testing.T) {
	strip := func(s string) string {
		var keep []string
		for _, line := range strings.Split(s, "\n") {
			if !strings.HasPrefix(line, "--- Run") {
				keep = append(keep, line)
			}
		}
		return strings.Join(keep, "\n")
	}
	a, err := runApp(t, "simulate", "--runs", "1", "--ticks", "600")
	if err != nil {
		t.Fatal(err)
	}
	b, err := runApp(t, "simulate", "--runs", "1", "--ticks", "600")
	if err != nil {
		t.Fatal(err)
	}
	if strip(a) != strip(b) {
		t.Fatalf("reports differ:\n%s\n%s", a, b)
	}
}

func TestSimulateRejectsBadArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero runs", []string{"simulate", "--runs", "0"}},
		{"zero ticks", []string{"simulate", "--ticks", "0"}},
		{"bad level", []string{"--level", "0", "simulate"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runApp(t, tt.args...); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestSimulateRejectsExplicitBadTuning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("player_speed: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := runApp(t, "--tuning", path, "simulate", "--runs", "1", "--ticks", "1"); err == nil {
		t.Fatal("expected an invalid tuning error")
	}
}

func TestEngineOptionsSeed(t *testing.T) {
	tun, _ := config.LoadTuning("")
	s := config.Settings{}
	if got := len(engineOptions(s, tun, nil)); got != 2 {
		t.Fatalf("unseeded options = %d, want 2", got)
	}
	s.Seed, s.HasSeed = 9, true
	if got := len(engineOptions(s, tun, nil)); got != 3 {
		t.Fatalf("seeded options = %d, want 3", got)
	}
}
