package engine

import (
	"math"

	"github.com/pfelipm/neon-maze/internal/entities"
	tm "github.com/pfelipm/neon-maze/internal/tilemap"
)

// Ghost house entry point; eaten ghosts head here to respawn.
const (
	homeX = 9.5
	homeY = 9.5
)

func (e *Engine) modeSwitchTime() float64 {
	if e.modifier == ModGhostFrenzy {
		return e.tuning.FrenzyModeSwitchSeconds
	}
	return e.tuning.ModeSwitchSeconds
}

// updateMode flips every scattering or chasing ghost when the global mode
// timer runs out. Flipped ghosts reverse at their next tile center.
func (e *Engine) updateMode(dt float64) {
	e.modeTimer += dt
	if e.modeTimer < e.modeSwitchTime()-timerEpsilon {
		return
	}
	e.modeTimer = 0
	for _, g := range e.ghosts {
		switch g.State {
		case entities.GhostScatter:
			g.State = entities.GhostChase
			g.NextDir = g.Dir.Reverse()
		case entities.GhostChase:
			g.State = entities.GhostScatter
			g.NextDir = g.Dir.Reverse()
		case entities.GhostFrightened, entities.GhostEaten:
		}
	}
}

// frightenGhosts makes every ghost that is not already eaten vulnerable
// and turns it around on the spot.
func (e *Engine) frightenGhosts() {
	for _, g := range e.ghosts {
		if g.State == entities.GhostEaten {
			continue
		}
		g.State = entities.GhostFrightened
		g.ScaredTimer = e.tuning.FrightenedSeconds
		g.Dir = g.Dir.Reverse()
		g.NextDir = entities.DirNone
	}
}

func (e *Engine) updateGhosts(dt float64) {
	for _, g := range e.ghosts {
		if g.State == entities.GhostFrightened {
			g.ScaredTimer -= dt
			if g.ScaredTimer <= timerEpsilon {
				g.ScaredTimer = 0
				g.State = entities.GhostChase
				g.Speed = g.BaseSpeed
			}
		}

		oldX, oldY := g.X, g.Y
		e.moveGhost(g)
		recordTrail(&g.Entity, oldX, oldY)

		if g.State == entities.GhostEaten &&
			math.Abs(g.X-homeX) < e.tuning.HomeRadius && math.Abs(g.Y-homeY) < e.tuning.HomeRadius {
			g.State = entities.GhostScatter
			g.Speed = g.BaseSpeed
			g.Dir = entities.DirUp
			g.NextDir = entities.DirNone
			g.Trail.Clear()
		}

		if e.resolveContact(g) {
			// One death per tick; the rest of the roster waits for the reset.
			return
		}
	}
}

// decideGhostDirection picks a ghost's direction at a tile center: no
// reversing, no walking back into the house unless eaten, then the
// candidate whose next tile is closest to the target.
func (e *Engine) decideGhostDirection(g *entities.Ghost) {
	rev := g.Dir.Reverse()

	// A pending mode-switch reversal takes priority if the way back is open.
	if g.NextDir != entities.DirNone {
		want := g.NextDir
		g.NextDir = entities.DirNone
		if want == rev && e.canMove(g.X, g.Y, want, moverGhost) {
			g.Dir = want
			return
		}
	}

	gx, gy := g.Cell()
	possible := make([]entities.Direction, 0, 4)
	valid := make([]entities.Direction, 0, 4)
	for _, d := range entities.Directions {
		if d == rev || !e.canMove(g.X, g.Y, d, moverGhost) {
			continue
		}
		possible = append(possible, d)
		if !e.entersHouse(g, gx, gy, d) {
			valid = append(valid, d)
		}
	}

	candidates := valid
	if len(candidates) == 0 {
		candidates = possible
	}
	if len(candidates) == 0 {
		g.Dir = rev
		return
	}

	tx, ty := e.ghostTarget(g)
	best := candidates[0]
	bestDist := distFromNeighbour(gx, gy, best, tx, ty)
	for _, d := range candidates[1:] {
		if dist := distFromNeighbour(gx, gy, d, tx, ty); dist < bestDist {
			best, bestDist = d, dist
		}
	}
	g.Dir = best
}

// entersHouse reports whether stepping in d would take a ghost from the
// maze into the ghost house. Eaten ghosts and ghosts already inside may.
func (e *Engine) entersHouse(g *entities.Ghost, gx, gy int, d entities.Direction) bool {
	if g.State == entities.GhostEaten {
		return false
	}
	dx, dy := entities.DirDelta(d)
	return e.grid.At(gx, gy) != tm.TileHouse && e.grid.At(gx+dx, gy+dy) == tm.TileHouse
}

func distFromNeighbour(gx, gy int, d entities.Direction, tx, ty float64) float64 {
	dx, dy := entities.DirDelta(d)
	return math.Hypot(float64(gx+dx)+0.5-tx, float64(gy+dy)+0.5-ty)
}

func (e *Engine) ghostTarget(g *entities.Ghost) (float64, float64) {
	switch g.State {
	case entities.GhostEaten:
		return homeX, homeY
	case entities.GhostScatter:
		return e.scatterCorner(g.Archetype)
	case entities.GhostFrightened:
		return e.rng.Float64() * float64(e.grid.Width), e.rng.Float64() * float64(e.grid.Height)
	case entities.GhostChase:
		return e.chaseTarget(g)
	default:
		return e.player.X, e.player.Y
	}
}

func (e *Engine) chaseTarget(g *entities.Ghost) (float64, float64) {
	p := e.player
	switch g.Archetype {
	case entities.Aggressive:
		return p.X, p.Y
	case entities.Ambush:
		d := p.NextDir
		if d == entities.DirNone {
			d = p.Dir
		}
		dx, dy := entities.DirDelta(d)
		return p.X + float64(dx)*e.tuning.AmbushLookahead, p.Y + float64(dy)*e.tuning.AmbushLookahead
	case entities.Wanderer:
		if g.DistanceTo(p.X, p.Y) > e.tuning.WandererShyDistance {
			return p.X, p.Y
		}
		return e.scatterCorner(g.Archetype)
	default:
		return p.X, p.Y
	}
}

// scatterCorner returns the tile center each archetype retreats to.
func (e *Engine) scatterCorner(a entities.Archetype) (float64, float64) {
	w, h := float64(e.grid.Width), float64(e.grid.Height)
	switch a {
	case entities.Aggressive:
		return w - 1.5, 1.5
	case entities.Ambush:
		return 1.5, 1.5
	case entities.Wanderer:
		return 1.5, h - 1.5
	default:
		return 1.5, 1.5
	}
}
