package engine

import (
	"math"
	"testing"

	"github.com/pfelipm/neon-maze/internal/entities"
)

func TestLevelOneHasNoModifier(t *testing.T) {
	e := newTestEngine(t, WithRand(fixedRand{f: 0}))
	if e.Modifier() != ModNone {
		t.Fatalf("modifier = %v", e.Modifier())
	}
}

func TestEscalation(t *testing.T) {
	tests := []struct {
		name      string
		level     int
		rnd       fixedRand
		modifier  Modifier
		ghosts    int
		ghostSpd  float64
		playerSpd float64
	}{
		{"lucky roll", 20, fixedRand{f: 0.99}, ModNone, 5, 0.08 + 10*0.005, 0.15 + 20*0.01},
		{"worst case", 20, fixedRand{f: 0, n: 0}, ModFastGhosts, 7, (0.08 + 10*0.005) * 1.15, 0.15 + 20*0.01},
		{"speed cap", 100, fixedRand{f: 0, n: 0}, ModFastGhosts, 7, (0.08 + 10*0.005) * 1.15, 0.15 + 100*0.01},
		{"slow player", 2, fixedRand{f: 0, n: 1}, ModSlowPlayer, 6, 0.08 + 2*0.005, (0.15 + 2*0.01) * 0.85},
		{"early level", 3, fixedRand{f: 0.25, n: 2}, ModBlinkingDots, 5, 0.08 + 3*0.005, 0.15 + 3*0.01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, WithRand(tt.rnd))
			e.ResetLevel(tt.level)

			if e.Modifier() != tt.modifier {
				t.Fatalf("modifier = %v, want %v", e.Modifier(), tt.modifier)
			}
			if len(e.Ghosts()) != tt.ghosts {
				t.Fatalf("ghosts = %d, want %d", len(e.Ghosts()), tt.ghosts)
			}
			if got := e.Ghosts()[0].BaseSpeed; math.Abs(got-tt.ghostSpd) > 1e-12 {
				t.Fatalf("lead ghost speed = %v, want %v", got, tt.ghostSpd)
			}
			if got := e.Player().BaseSpeed; math.Abs(got-tt.playerSpd) > 1e-12 {
				t.Fatalf("player speed = %v, want %v", got, tt.playerSpd)
			}
		})
	}
}

func TestGhostRosterNeverExceedsSeven(t *testing.T) {
	e := newTestEngine(t, WithSeed(42))
	for level := 1; level <= 60; level++ {
		e.ResetLevel(level)
		n := len(e.Ghosts())
		if n < 5 || n > 7 {
			t.Fatalf("level %d: %d ghosts", level, n)
		}
		if level == 1 && n != 5 {
			t.Fatalf("level 1 rolled %d ghosts", n)
		}
	}
}

func TestRosterSpeedFactors(t *testing.T) {
	e := newTestEngine(t, WithRand(fixedRand{f: 0}))
	e.ResetLevel(20)
	factors := []float64{1, 0.95, 0.9, 0.92, 0.88, 0.93, 0.94}
	lead := e.Ghosts()[0].BaseSpeed
	for i, g := range e.Ghosts() {
		if math.Abs(g.BaseSpeed-lead*factors[i]) > 1e-12 {
			t.Errorf("ghost %d speed = %v, want %v", i, g.BaseSpeed, lead*factors[i])
		}
	}
}

func TestRandomArchetypesComeFromTheRand(t *testing.T) {
	e := newTestEngine(t, WithRand(fixedRand{f: 0.99, n: 2}))
	for i, g := range e.Ghosts()[3:] {
		if g.Archetype != entities.Wanderer {
			t.Fatalf("ghost %d archetype = %v, want wanderer", i+3, g.Archetype)
		}
	}
}

func TestResetPositionsClearsTransientState(t *testing.T) {
	e := newTestEngine(t)
	e.modeTimer = 12
	e.player.Effect = entities.ItemSpeed
	e.player.EffectTimer = 2
	e.burst(3, 3, 0)
	e.ResetPositions()

	if e.modeTimer != 0 || len(e.Particles()) != 0 {
		t.Fatalf("mode timer %v, %d particles survive a reset", e.modeTimer, len(e.Particles()))
	}
	if e.player.Effect != entities.ItemNone || e.player.Speed != e.player.BaseSpeed {
		t.Fatal("effects must not survive a reset")
	}
}
