package engine

import (
	"math"

	"github.com/pfelipm/neon-maze/internal/entities"
)

const (
	playerStartX = 9.5
	playerStartY = 16.5
)

type ghostSpawn struct {
	x, y      float64
	dir       entities.Direction
	factor    float64 // fraction of the level's ghost speed
	archetype entities.Archetype
	random    bool // archetype drawn at spawn instead of fixed
}

// baseRoster is the five ghosts every level starts with.
var baseRoster = []ghostSpawn{
	{x: 9.5, y: 8.5, dir: entities.DirLeft, factor: 1.0, archetype: entities.Aggressive},
	{x: 9.5, y: 9.5, dir: entities.DirUp, factor: 0.95, archetype: entities.Ambush},
	{x: 9.5, y: 10.5, dir: entities.DirRight, factor: 0.9, archetype: entities.Wanderer},
	{x: 8.5, y: 10.5, dir: entities.DirLeft, factor: 0.92, random: true},
	{x: 10.5, y: 10.5, dir: entities.DirRight, factor: 0.88, random: true},
}

// extraRoster holds the escalation ghosts, added in order.
var extraRoster = []ghostSpawn{
	{x: 7.5, y: 8.5, dir: entities.DirLeft, factor: 0.93, random: true},
	{x: 11.5, y: 8.5, dir: entities.DirRight, factor: 0.94, random: true},
}

// ResetLevel starts level n on a fresh copy of the maze, rolls the level
// modifier and respawns everything.
func (e *Engine) ResetLevel(n int) {
	e.level = n
	e.grid = e.base.Clone()
	e.itemSpawnTimer = 0
	e.modifier = e.pickModifier()
	e.dotsRemaining = e.grid.CountCollectibles()
	e.logger.Printf("level %d: modifier=%q dots=%d", e.level, e.modifier, e.dotsRemaining)
	e.ResetPositions()
}

// NextLevel advances to the following level.
func (e *Engine) NextLevel() {
	e.ResetLevel(e.level + 1)
}

// NewRun starts over from level 1 with full lives and an empty inventory.
func (e *Engine) NewRun() {
	e.score = 0
	e.lives = e.tuning.StartLives
	if e.player != nil {
		e.player.Inventory = entities.ItemNone
	}
	e.events = nil
	e.ResetLevel(1)
}

func (e *Engine) pickModifier() Modifier {
	if e.level <= 1 {
		return ModNone
	}
	if e.rng.Float64() < e.tuning.ModifierChance {
		return Modifiers[e.rng.IntN(len(Modifiers))]
	}
	return ModNone
}

// ResetPositions respawns the player and the ghost roster for the current
// level. The held item survives; timers, effects and particles do not.
func (e *Engine) ResetPositions() {
	t := e.tuning

	playerSpeed := t.PlayerSpeed + float64(e.level)*t.PlayerSpeedPerLevel
	if e.modifier == ModSlowPlayer {
		playerSpeed *= t.SlowPlayerFactor
	}
	inventory := entities.ItemNone
	if e.player != nil {
		inventory = e.player.Inventory
	}
	e.player = &entities.Player{
		Entity:    entities.NewEntity(playerStartX, playerStartY, entities.DirNone, playerSpeed, playerTrail),
		Inventory: inventory,
	}

	ghostSpeed := t.GhostSpeed + float64(min(e.level, t.GhostSpeedLevelCap))*t.GhostSpeedPerLevel
	if e.modifier == ModFastGhosts {
		ghostSpeed *= t.FastGhostFactor
	}

	e.ghosts = make([]*entities.Ghost, 0, len(baseRoster)+len(extraRoster))
	for _, s := range baseRoster {
		e.ghosts = append(e.ghosts, e.spawnGhost(s, ghostSpeed))
	}
	extras := e.rollExtraGhosts()
	for _, s := range extraRoster[:extras] {
		e.ghosts = append(e.ghosts, e.spawnGhost(s, ghostSpeed))
	}
	e.logger.Printf("level %d: %d ghosts (%d extra)", e.level, len(e.ghosts), extras)

	e.modeTimer = 0
	e.particles.Clear()
	e.status = StatusPlaying
}

func (e *Engine) spawnGhost(s ghostSpawn, levelSpeed float64) *entities.Ghost {
	a := s.archetype
	if s.random {
		a = entities.Archetypes[e.rng.IntN(len(entities.Archetypes))]
	}
	return &entities.Ghost{
		Entity:    entities.NewEntity(s.x, s.y, s.dir, levelSpeed*s.factor, ghostTrail),
		Archetype: a,
		State:     entities.GhostScatter,
	}
}

// rollExtraGhosts returns how many escalation ghosts join the roster. The
// odds of a first extra grow with the level; a second one is only
// possible once the first is in, and both are capped.
func (e *Engine) rollExtraGhosts() int {
	t := e.tuning
	first := clamp(t.ExtraGhostChancePerLevel*float64(e.level-1), 0, t.ExtraGhostChanceCap)
	second := clamp(t.SecondExtraChancePerLevel*float64(e.level-3), 0, t.SecondExtraChanceCap)

	n := 0
	if e.rng.Float64() < first {
		n++
		if e.rng.Float64() < second {
			n++
		}
	}
	return min(n, len(extraRoster))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
