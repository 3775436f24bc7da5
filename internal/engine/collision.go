package engine

import (
	"github.com/pfelipm/neon-maze/internal/entities"
	"github.com/pfelipm/neon-maze/internal/particles"
	tm "github.com/pfelipm/neon-maze/internal/tilemap"
)

// collectAt applies whatever the player finds on cell gx,gy.
func (e *Engine) collectAt(gx, gy int) {
	p := e.player
	if ate, power := e.grid.EatPelletAt(gx, gy); ate {
		if e.dotsRemaining > 0 {
			e.dotsRemaining--
		}
		if power {
			e.score += e.tuning.PowerPoints
			e.frightenGhosts()
			e.emit(EventAtePower, p.X, p.Y)
		} else {
			e.score += e.tuning.DotPoints
			e.burst(p.X, p.Y, particles.ColorDot)
			e.emit(EventAteDot, p.X, p.Y)
		}
		return
	}

	item, color := itemFromTile(e.grid.At(gx, gy))
	if item == entities.ItemNone || p.Inventory != entities.ItemNone {
		// Nothing here, or hands full: leave the tile untouched
		return
	}
	e.grid.Set(gx, gy, tm.TileEmpty)
	p.Inventory = item
	e.score += e.tuning.ItemPoints
	e.burst(p.X, p.Y, color)
	e.emit(EventAteItem, p.X, p.Y)
}

// resolveContact applies the capture rules between g and the player and
// reports whether the player died.
func (e *Engine) resolveContact(g *entities.Ghost) bool {
	p := e.player
	if g.DistanceTo(p.X, p.Y) >= e.tuning.CaptureRadius {
		return false
	}
	switch g.State {
	case entities.GhostFrightened:
		g.State = entities.GhostEaten
		g.NextDir = entities.DirNone
		e.score += e.tuning.GhostPoints
		e.burst(g.X, g.Y, particles.ColorGhost)
		e.emit(EventAteGhost, g.X, g.Y)
	case entities.GhostScatter, entities.GhostChase:
		if p.HasEffect(entities.ItemPhase) {
			if e.rng.Float64() < e.tuning.PhaseGlitchChance {
				e.burst(p.X, p.Y, particles.ColorGhost)
			}
			return false
		}
		e.killPlayer()
		return true
	case entities.GhostEaten:
	}
	return false
}

func (e *Engine) killPlayer() {
	e.status = StatusDying
	e.lives--
	e.emit(EventDied, e.player.X, e.player.Y)
}

func (e *Engine) burst(x, y float64, c particles.Color) {
	e.particles.Burst(x, y, c, e.rng.Float64)
}
