package engine

import (
	"testing"

	"github.com/pfelipm/neon-maze/internal/entities"
	tm "github.com/pfelipm/neon-maze/internal/tilemap"
)

// fixedRand returns the same values forever, for pinning down rolls.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }

func (r fixedRand) IntN(bound int) int {
	return min(r.n, bound-1)
}

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{WithSeed(1)}, opts...)
	e := New(opts...)
	if e.Level() != 1 || e.Modifier() != ModNone {
		t.Fatalf("new engine should start at level 1 with no modifier, got %d/%v", e.Level(), e.Modifier())
	}
	return e
}

// clearUnderPlayer removes the dot the player spawns on so score checks
// are exact.
func clearUnderPlayer(e *Engine) {
	gx, gy := e.player.Cell()
	if e.grid.At(gx, gy).Collectible() {
		e.grid.Set(gx, gy, tm.TileEmpty)
		e.dotsRemaining--
	}
}

// shield makes the player immune to lethal contact for the whole test.
func shield(e *Engine) {
	e.player.Effect = entities.ItemPhase
	e.player.EffectTimer = 1e9
}

func countEvents(evs []Event, kinds ...EventKind) int {
	n := 0
	for _, ev := range evs {
		for _, k := range kinds {
			if ev.Kind == k {
				n++
			}
		}
	}
	return n
}
