package engine

import (
	"errors"
	"testing"
)

func TestDefaultTuningIsValid(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("default tuning invalid: %v", err)
	}
}

func TestTuningValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"zero lives", func(t *Tuning) { t.StartLives = 0 }},
		{"stalled player", func(t *Tuning) { t.PlayerSpeed = 0 }},
		{"negative ghost speed", func(t *Tuning) { t.GhostSpeed = -0.1 }},
		{"wide turn tolerance", func(t *Tuning) { t.TurnTolerance = 0.5 }},
		{"wide boosted tolerance", func(t *Tuning) { t.BoostedTurnTolerance = 0.7 }},
		{"modifier chance above one", func(t *Tuning) { t.ModifierChance = 1.5 }},
		{"negative glitch chance", func(t *Tuning) { t.PhaseGlitchChance = -0.1 }},
		{"negative item cap", func(t *Tuning) { t.MaxItems = -1 }},
		{"no fright", func(t *Tuning) { t.FrightenedSeconds = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tu := DefaultTuning()
			tt.mutate(&tu)
			if err := tu.Validate(); !errors.Is(err, ErrInvalidTuning) {
				t.Fatalf("Validate() = %v, want ErrInvalidTuning", err)
			}
		})
	}
}
