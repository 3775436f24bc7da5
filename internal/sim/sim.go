// Package sim plays the engine headless under an autopilot and reports
// what happened. Runs with the same seed and options are identical.
package sim

import (
	"errors"
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/pfelipm/neon-maze/internal/engine"
)

const (
	updatesPerSecond = 60
	tickSeconds      = 1.0 / updatesPerSecond
	deathDelayTicks  = 2 * updatesPerSecond
)

var ErrNoTicks = errors.New("ticks must be > 0")

type Options struct {
	Seed       uint64
	Ticks      int
	StartLevel int
	// Engine options are applied after the seed.
	Engine []engine.Option
	Logger *log.Logger
}

// Report summarises one run.
type Report struct {
	RunID string
	Seed  uint64
	Ticks int

	Level    int
	Score    int
	Lives    int
	GameOver bool

	LevelsCleared int
	DotsEaten     int
	PowerEaten    int
	GhostsEaten   int
	ItemsPicked   int
	PowerUps      int
	Deaths        int

	Events map[engine.EventKind]int
}

func (r *Report) count(ev engine.Event) {
	r.Events[ev.Kind]++
	switch ev.Kind {
	case engine.EventAteDot:
		r.DotsEaten++
	case engine.EventAtePower:
		r.PowerEaten++
	case engine.EventAteGhost:
		r.GhostsEaten++
	case engine.EventAteItem:
		r.ItemsPicked++
	case engine.EventPowerUp:
		r.PowerUps++
	case engine.EventDied:
		r.Deaths++
	case engine.EventMovedTile, engine.EventItemSpawned:
	}
}

// Run plays one seeded run for up to opts.Ticks fixed steps. It stops
// early on game over.
func Run(opts Options) (Report, error) {
	if opts.Ticks <= 0 {
		return Report{}, ErrNoTicks
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	engOpts := append([]engine.Option{engine.WithSeed(opts.Seed), engine.WithLogger(logger)}, opts.Engine...)
	e := engine.New(engOpts...)
	if opts.StartLevel > 1 {
		e.ResetLevel(opts.StartLevel)
	}

	r := Report{
		RunID:  uuid.NewString(),
		Seed:   opts.Seed,
		Events: make(map[engine.EventKind]int),
	}
	pilot := NewAutopilot()
	dying := 0

	for r.Ticks < opts.Ticks {
		r.Ticks++
		if e.Status() == engine.StatusPlaying {
			pilot.Steer(e)
		}
		for _, ev := range e.Tick(tickSeconds) {
			r.count(ev)
		}

		if e.Status() == engine.StatusDying {
			dying++
			if dying < deathDelayTicks {
				continue
			}
			dying = 0
			if e.GameOver() {
				r.GameOver = true
				break
			}
			e.ResetPositions()
			continue
		}
		if e.CheckLevelComplete() {
			r.LevelsCleared++
			logger.Printf("run %s: cleared level %d at tick %d", r.RunID, e.Level(), r.Ticks)
			e.NextLevel()
		}
	}

	r.Level = e.Level()
	r.Score = e.Score()
	r.Lives = e.Lives()
	return r, nil
}
