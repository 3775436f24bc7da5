package engine

import (
	"github.com/pfelipm/neon-maze/internal/entities"
	"github.com/pfelipm/neon-maze/internal/particles"
	tm "github.com/pfelipm/neon-maze/internal/tilemap"
)

type cell struct{ x, y int }

// updateItemSpawning drops a power-up on a cleared corridor cell every
// ItemSpawnSeconds, as long as the map holds fewer than MaxItems.
func (e *Engine) updateItemSpawning(dt float64) {
	e.itemSpawnTimer += dt
	if e.itemSpawnTimer < e.tuning.ItemSpawnSeconds-timerEpsilon {
		return
	}
	e.itemSpawnTimer = 0

	if e.grid.CountItems() >= e.tuning.MaxItems {
		return
	}

	// Only cells that started as dots or pellets: never structural gaps
	var spots []cell
	for y := 1; y < e.grid.Height-1; y++ {
		for x := 1; x < e.grid.Width-1; x++ {
			if e.grid.At(x, y) == tm.TileEmpty && e.base.At(x, y).Collectible() {
				spots = append(spots, cell{x, y})
			}
		}
	}
	if len(spots) == 0 {
		return
	}

	spot := spots[e.rng.IntN(len(spots))]
	tile, color := tm.TileItemPhase, particles.ColorPhase
	if e.rng.Float64() < 0.5 {
		tile, color = tm.TileItemSpeed, particles.ColorSpeed
	}
	e.grid.Set(spot.x, spot.y, tile)
	cx, cy := float64(spot.x)+0.5, float64(spot.y)+0.5
	e.burst(cx, cy, color)
	e.emit(EventItemSpawned, cx, cy)
}

// ActivateHeldItem starts the held power-up. It reports false when the
// inventory is empty or the player is dying.
func (e *Engine) ActivateHeldItem() bool {
	p := e.player
	if e.status == StatusDying || p.Inventory == entities.ItemNone {
		return false
	}
	p.Effect = p.Inventory
	p.Inventory = entities.ItemNone
	p.EffectTimer = e.tuning.EffectSeconds
	p.Speed = p.BaseSpeed
	switch p.Effect {
	case entities.ItemSpeed:
		p.Speed = p.BaseSpeed * e.tuning.SpeedBoostFactor
	case entities.ItemPhase, entities.ItemNone:
	}
	e.emit(EventPowerUp, p.X, p.Y)
	return true
}

// updateEffect runs down the active power-up and restores baseline stats
// when it expires.
func (e *Engine) updateEffect(dt float64) {
	p := e.player
	if p.Effect == entities.ItemNone {
		return
	}
	p.EffectTimer -= dt
	if p.EffectTimer <= timerEpsilon {
		p.EffectTimer = 0
		p.Speed = p.BaseSpeed
		p.Effect = entities.ItemNone
	}
}

func itemFromTile(t tm.Tile) (entities.ItemType, particles.Color) {
	switch t {
	case tm.TileItemSpeed:
		return entities.ItemSpeed, particles.ColorSpeed
	case tm.TileItemPhase:
		return entities.ItemPhase, particles.ColorPhase
	case tm.TileWall, tm.TileDot, tm.TilePower, tm.TileEmpty, tm.TileHouse:
		return entities.ItemNone, particles.ColorDot
	default:
		return entities.ItemNone, particles.ColorDot
	}
}
