package engine

import (
	"math"

	"github.com/pfelipm/neon-maze/internal/entities"
	tm "github.com/pfelipm/neon-maze/internal/tilemap"
)

// mover selects the passability rule used by canMove.
type mover int

const (
	moverPlayer mover = iota
	moverGhost
)

const (
	// centerEpsilon absorbs float drift when a ghost lands exactly on a tile center.
	centerEpsilon = 0.001
	// trailJump is the per-tick displacement treated as a teleport.
	trailJump = 2.0

	playerTrail        = 8
	boostedPlayerTrail = 15
	ghostTrail         = 20
)

// canMove reports whether an entity at x,y may step one cell in dir.
// Stepping off the left or right edge is always allowed (tunnel); the top
// and bottom edges are solid.
func (e *Engine) canMove(x, y float64, dir entities.Direction, who mover) bool {
	if dir == entities.DirNone {
		return false
	}
	dx, dy := entities.DirDelta(dir)
	tx := int(math.Floor(x)) + dx
	ty := int(math.Floor(y)) + dy
	if ty < 0 || ty >= e.grid.Height {
		return false
	}
	if tx < 0 || tx >= e.grid.Width {
		return true
	}
	t := e.grid.At(tx, ty)
	switch who {
	case moverGhost:
		return t != tm.TileWall
	case moverPlayer:
		return t != tm.TileWall && t != tm.TileHouse
	default:
		return false
	}
}

// wrapX teleports an entity that left the grid sideways to the opposite edge.
func (e *Engine) wrapX(ent *entities.Entity) {
	w := float64(e.grid.Width)
	if ent.X < 0 {
		ent.X = w - 1
	}
	if ent.X >= w {
		ent.X = 0
	}
}

// recordTrail appends the new position, or clears the trail after a
// teleport so the renderer does not draw a seam across the maze.
func recordTrail(ent *entities.Entity, oldX, oldY float64) {
	if math.Abs(ent.X-oldX) > trailJump || math.Abs(ent.Y-oldY) > trailJump {
		ent.Trail.Clear()
		return
	}
	ent.Trail.Push(ent.X, ent.Y)
}

func (e *Engine) turnTolerance() float64 {
	if e.player.HasEffect(entities.ItemSpeed) {
		return e.tuning.BoostedTurnTolerance
	}
	return e.tuning.TurnTolerance
}

func (e *Engine) updatePlayer(dt float64) {
	p := e.player
	e.updateEffect(dt)

	oldX, oldY := p.X, p.Y
	oldGX, oldGY := p.Cell()

	// Attempt the queued turn when close enough to the cell center
	if p.NextDir != entities.DirNone && e.canMove(p.X, p.Y, p.NextDir, moverPlayer) {
		cx, cy := p.CellCenter()
		tol := e.turnTolerance()
		if math.Abs(p.X-cx) < tol && math.Abs(p.Y-cy) < tol {
			p.X, p.Y = cx, cy
			p.Dir = p.NextDir
			p.NextDir = entities.DirNone
		}
	}

	if p.Dir != entities.DirNone {
		if e.canMove(p.X, p.Y, p.Dir, moverPlayer) {
			dx, dy := entities.DirDelta(p.Dir)
			p.X += float64(dx) * p.Speed
			p.Y += float64(dy) * p.Speed
			e.wrapX(&p.Entity)
		} else {
			// Blocked: snap to cell center to avoid jitter
			p.SnapToCenter()
		}
	}

	limit := playerTrail
	if p.HasEffect(entities.ItemSpeed) {
		limit = boostedPlayerTrail
	}
	p.Trail.SetLimit(limit)
	recordTrail(&p.Entity, oldX, oldY)

	gx, gy := p.Cell()
	if gx != oldGX || gy != oldGY {
		e.emit(EventMovedTile, p.X, p.Y)
	}
	e.collectAt(gx, gy)
}

// moveGhost advances a ghost one tick. When the step reaches or crosses
// the current tile center the ghost snaps there, picks a new direction
// and spends the rest of the step along it.
func (e *Engine) moveGhost(g *entities.Ghost) {
	speed := e.ghostMoveSpeed(g)
	dx, dy := entities.DirDelta(g.Dir)
	cx, cy := g.CellCenter()
	toCenter := (cx-g.X)*float64(dx) + (cy-g.Y)*float64(dy)

	if toCenter >= -centerEpsilon && toCenter <= speed+centerEpsilon {
		g.X, g.Y = cx, cy
		e.decideGhostDirection(g)
		rest := math.Max(0, speed-toCenter)
		ndx, ndy := entities.DirDelta(g.Dir)
		g.X += float64(ndx) * rest
		g.Y += float64(ndy) * rest
	} else {
		g.X += float64(dx) * speed
		g.Y += float64(dy) * speed
	}
	e.wrapX(&g.Entity)
}

func (e *Engine) ghostMoveSpeed(g *entities.Ghost) float64 {
	switch g.State {
	case entities.GhostFrightened:
		return g.Speed * e.tuning.FrightenedSpeedFactor
	case entities.GhostEaten:
		return g.Speed * e.tuning.EatenSpeedFactor
	case entities.GhostScatter, entities.GhostChase:
		return g.Speed
	default:
		return g.Speed
	}
}
