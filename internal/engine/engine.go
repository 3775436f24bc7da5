// Package engine is the fixed-step simulation core: map state, the
// player, the ghosts and their AI, items, scoring and level progression.
// It does no I/O and never blocks. The host drives it with Tick and reads
// state back through the accessors.
package engine

import (
	"io"
	"log"
	"time"

	"github.com/pfelipm/neon-maze/internal/entities"
	"github.com/pfelipm/neon-maze/internal/particles"
	tm "github.com/pfelipm/neon-maze/internal/tilemap"
)

// timerEpsilon absorbs the float residue left after summing fixed steps,
// so an N-second timer fires on exactly the tick that completes N seconds.
const timerEpsilon = 1e-9

type Engine struct {
	tuning Tuning
	rng    Rand
	logger *log.Logger

	base      *tm.TileMap // pristine template, never mutated
	grid      *tm.TileMap // per-level copy
	player    *entities.Player
	ghosts    []*entities.Ghost
	particles *particles.System

	score    int
	lives    int
	level    int
	status   Status
	modifier Modifier

	dotsRemaining  int
	modeTimer      float64
	itemSpawnTimer float64

	events []Event
}

type Option func(*Engine)

// WithRand routes all randomness through r.
func WithRand(r Rand) Option {
	return func(e *Engine) { e.rng = r }
}

func WithSeed(seed uint64) Option {
	return func(e *Engine) { e.rng = NewRand(seed) }
}

func WithTuning(t Tuning) Option {
	return func(e *Engine) { e.tuning = t }
}

// WithMap replaces the built-in maze template. The engine keeps its own copy.
func WithMap(m *tm.TileMap) Option {
	return func(e *Engine) { e.base = m.Clone() }
}

func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New builds an engine positioned at the start of level 1.
func New(opts ...Option) *Engine {
	e := &Engine{
		tuning:    DefaultTuning(),
		logger:    log.New(io.Discard, "", 0),
		particles: particles.NewSystem(particles.DefaultCapacity),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = NewRand(uint64(time.Now().UnixNano()))
	}
	if e.base == nil {
		e.base = tm.NewDefaultMap()
	}
	e.lives = e.tuning.StartLives
	e.ResetLevel(1)
	return e
}

// Tick advances the simulation by dt seconds and returns the events raised
// since the previous call. While the player is dying nothing moves.
func (e *Engine) Tick(dt float64) []Event {
	if e.status == StatusDying {
		return e.flushEvents()
	}
	e.updateMode(dt)
	e.updateItemSpawning(dt)
	e.updatePlayer(dt)
	e.updateGhosts(dt)
	e.particles.Update(dt)
	return e.flushEvents()
}

// SetDirection queues the player's next turn.
func (e *Engine) SetDirection(d entities.Direction) {
	e.player.NextDir = d
}

func (e *Engine) CheckLevelComplete() bool {
	return e.dotsRemaining == 0
}

func (e *Engine) GameOver() bool {
	return e.lives <= 0
}

// Grid returns the live level map. Callers must not modify it.
func (e *Engine) Grid() *tm.TileMap               { return e.grid }
func (e *Engine) Player() *entities.Player        { return e.player }
func (e *Engine) Ghosts() []*entities.Ghost       { return e.ghosts }
func (e *Engine) Particles() []particles.Particle { return e.particles.Particles() }
func (e *Engine) Score() int                      { return e.score }
func (e *Engine) Lives() int                      { return e.lives }
func (e *Engine) Level() int                      { return e.level }
func (e *Engine) Modifier() Modifier              { return e.modifier }
func (e *Engine) Status() Status                  { return e.status }
func (e *Engine) DotsRemaining() int              { return e.dotsRemaining }
func (e *Engine) Tuning() Tuning                  { return e.tuning }
