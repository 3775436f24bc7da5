package sim

import (
	"math"

	"github.com/pfelipm/neon-maze/internal/engine"
	"github.com/pfelipm/neon-maze/internal/entities"
	tm "github.com/pfelipm/neon-maze/internal/tilemap"
)

// dangerRadius is how close, in tiles, a lethal ghost may be to a cell
// before the autopilot routes around it.
const dangerRadius = 2.0

type cell struct{ x, y int }

// Autopilot steers the player toward the nearest collectible or item by
// breadth-first search, avoiding cells near lethal ghosts when it can.
type Autopilot struct {
	queue []cell
	prev  map[cell]cell
}

func NewAutopilot() *Autopilot {
	return &Autopilot{prev: make(map[cell]cell)}
}

// Steer queues the next direction and fires a held item straight away.
func (a *Autopilot) Steer(e *engine.Engine) {
	p := e.Player()
	if p.Inventory != entities.ItemNone && p.Effect == entities.ItemNone {
		e.ActivateHeldItem()
	}
	if d := a.Plan(e); d != entities.DirNone {
		e.SetDirection(d)
	}
}

// Plan returns the first step of the route it would take, or DirNone when
// nothing is reachable.
func (a *Autopilot) Plan(e *engine.Engine) entities.Direction {
	grid := e.Grid()
	start := decisionCell(e)

	var danger map[cell]bool
	if !e.Player().HasEffect(entities.ItemPhase) {
		danger = dangerCells(e)
	}
	if d := a.search(grid, start, danger); d != entities.DirNone || len(danger) == 0 {
		return d
	}
	// Boxed in: head for food anyway.
	return a.search(grid, start, nil)
}

// decisionCell is the cell the player will next be able to turn in: its
// own cell, or the one ahead when it is already past the center.
func decisionCell(e *engine.Engine) cell {
	p := e.Player()
	gx, gy := p.Cell()
	if p.Dir == entities.DirNone {
		return cell{gx, gy}
	}
	cx, cy := p.CellCenter()
	dx, dy := entities.DirDelta(p.Dir)
	past := (p.X-cx)*float64(dx) + (p.Y-cy)*float64(dy)
	if past <= e.Tuning().TurnTolerance {
		return cell{gx, gy}
	}
	next, ok := step(e.Grid(), cell{gx, gy}, p.Dir)
	if !ok {
		return cell{gx, gy}
	}
	return next
}

func dangerCells(e *engine.Engine) map[cell]bool {
	grid := e.Grid()
	out := make(map[cell]bool)
	for _, g := range e.Ghosts() {
		if !g.Lethal() {
			continue
		}
		r := int(math.Ceil(dangerRadius))
		gx, gy := g.Cell()
		for y := gy - r; y <= gy+r; y++ {
			for x := gx - r; x <= gx+r; x++ {
				if !grid.InBounds(x, y) {
					continue
				}
				if math.Hypot(float64(x)+0.5-g.X, float64(y)+0.5-g.Y) <= dangerRadius {
					out[cell{x, y}] = true
				}
			}
		}
	}
	return out
}

func passable(t tm.Tile) bool {
	return t != tm.TileWall && t != tm.TileHouse
}

func wanted(t tm.Tile) bool {
	return t.Collectible() || t.IsItem()
}

// step moves one cell in d, wrapping through the side tunnels.
func step(grid *tm.TileMap, c cell, d entities.Direction) (cell, bool) {
	dx, dy := entities.DirDelta(d)
	n := cell{c.x + dx, c.y + dy}
	if n.y < 0 || n.y >= grid.Height {
		return c, false
	}
	if n.x < 0 {
		n.x = grid.Width - 1
	} else if n.x >= grid.Width {
		n.x = 0
	}
	return n, passable(grid.At(n.x, n.y))
}

func (a *Autopilot) search(grid *tm.TileMap, start cell, blocked map[cell]bool) entities.Direction {
	clear(a.prev)
	a.queue = append(a.queue[:0], start)
	a.prev[start] = start

	for i := 0; i < len(a.queue); i++ {
		c := a.queue[i]
		if c != start && wanted(grid.At(c.x, c.y)) {
			return a.firstStep(start, c)
		}
		for _, d := range entities.Directions {
			n, ok := step(grid, c, d)
			if !ok || blocked[n] {
				continue
			}
			if _, seen := a.prev[n]; seen {
				continue
			}
			a.prev[n] = c
			a.queue = append(a.queue, n)
		}
	}
	return entities.DirNone
}

// firstStep walks the route back from goal and returns the direction of
// its first move out of start.
func (a *Autopilot) firstStep(start, goal cell) entities.Direction {
	c := goal
	for a.prev[c] != start {
		c = a.prev[c]
	}
	for _, d := range entities.Directions {
		dx, dy := entities.DirDelta(d)
		if c.x == start.x+dx && c.y == start.y+dy {
			return d
		}
	}
	// The move crossed a tunnel edge.
	if c.x > start.x {
		return entities.DirLeft
	}
	return entities.DirRight
}
