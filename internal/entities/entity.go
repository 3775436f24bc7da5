package entities

import "math"

// Entity is the movement state shared by the player and the ghosts.
// Positions are in tile units with tile centers at .5.
type Entity struct {
	X, Y      float64
	Dir       Direction
	NextDir   Direction
	Speed     float64
	BaseSpeed float64
	Trail     *Trail
}

func NewEntity(x, y float64, dir Direction, speed float64, trailLimit int) Entity {
	return Entity{
		X:         x,
		Y:         y,
		Dir:       dir,
		NextDir:   DirNone,
		Speed:     speed,
		BaseSpeed: speed,
		Trail:     NewTrail(trailLimit),
	}
}

// Cell returns the grid cell containing the entity.
func (e *Entity) Cell() (int, int) {
	return int(math.Floor(e.X)), int(math.Floor(e.Y))
}

// CellCenter returns the center of the cell containing the entity.
func (e *Entity) CellCenter() (float64, float64) {
	gx, gy := e.Cell()
	return float64(gx) + 0.5, float64(gy) + 0.5
}

func (e *Entity) SnapToCenter() {
	e.X, e.Y = e.CellCenter()
}

func (e *Entity) DistanceTo(x, y float64) float64 {
	return math.Hypot(e.X-x, e.Y-y)
}
