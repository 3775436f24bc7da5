// Command neonmaze runs the Neon Maze game.
//
// It supports two modes:
//  1. "play" (default) opens the game window
//  2. "simulate" plays seeded headless runs under the autopilot and prints a report
//
// Flags override the NEONMAZE_* environment switches, which may also come
// from a .env file in the working directory.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/pfelipm/neon-maze/internal/config"
	"github.com/pfelipm/neon-maze/internal/engine"
	"github.com/pfelipm/neon-maze/internal/game"
	"github.com/pfelipm/neon-maze/internal/sim"
)

const (
	AppName = "Neon Maze"
	Version = "1.0.0"

	// windowFit is the share of the screen the window may take.
	windowFit = 0.75
)

func main() {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	} else {
		log.Println("Loaded environment variables from .env file")
	}

	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "neonmaze",
		Usage:   "maze-chase arcade game",
		Version: Version,
		Flags: []cli.Flag{
			&cli.Uint64Flag{Name: "seed", Usage: "RNG seed; for simulate, the seed of run 1 unless --seed-base is given (default: NEONMAZE_SEED or time-based)"},
			&cli.IntFlag{Name: "level", Usage: "starting level (default: NEONMAZE_START_LEVEL or 1)"},
			&cli.StringFlag{Name: "tuning", Usage: "path to a tuning.yaml (default: inside the config directory)"},
			&cli.BoolFlag{Name: "debug", Usage: "enable debug logging"},
			&cli.BoolFlag{Name: "audio", Usage: "enable sound (NEONMAZE_DISABLE_AUDIO=1 still wins)"},
			&cli.BoolFlag{Name: "fullscreen", Usage: "start in fullscreen"},
		},
		Action: playAction,
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "open the game window (default)",
				Action: playAction,
			},
			{
				Name:  "simulate",
				Usage: "play headless runs under the autopilot and print a report",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "runs", Value: 5, Usage: "number of headless runs"},
					&cli.IntFlag{Name: "ticks", Value: 3600, Usage: "ticks per run"},
					&cli.Uint64Flag{Name: "seed-base", Value: 42, Usage: "seed for run 1 (default: --seed, NEONMAZE_SEED or 42)"},
					&cli.Uint64Flag{Name: "seed-step", Value: 1, Usage: "seed increment between runs"},
				},
				Action: simulateAction,
			},
		},
	}
}

// setup applies logging flags and merges environment and CLI settings.
// Flags win over the environment.
func setup(cmd *cli.Command) (config.Settings, engine.Tuning, *log.Logger, error) {
	debug := cmd.Bool("debug")
	if debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}

	s, err := config.FromEnv()
	if err != nil {
		return s, engine.Tuning{}, nil, err
	}
	if cmd.IsSet("seed") {
		s.Seed, s.HasSeed = cmd.Uint64("seed"), true
	}
	if cmd.IsSet("level") {
		if cmd.Int("level") < 1 {
			return s, engine.Tuning{}, nil, fmt.Errorf("%w: --level must be >= 1", config.ErrInvalidConfig)
		}
		s.StartLevel = cmd.Int("level")
	}
	if cmd.Bool("audio") && !config.AudioDisabled() {
		s.Audio = true
	}

	path := cmd.String("tuning")
	if path == "" {
		if path, err = config.DefaultTuningPath(); err != nil {
			log.Printf("tuning: %v", err)
		}
	}
	tuning, err := config.LoadTuning(path)
	if err != nil {
		if cmd.IsSet("tuning") {
			return s, tuning, nil, err
		}
		log.Printf("tuning: %v; using defaults", err)
	}

	logger := log.New(io.Discard, "", 0)
	if debug {
		logger = log.Default()
	}
	return s, tuning, logger, nil
}

func engineOptions(s config.Settings, t engine.Tuning, logger *log.Logger) []engine.Option {
	opts := []engine.Option{engine.WithTuning(t), engine.WithLogger(logger)}
	if s.HasSeed {
		opts = append(opts, engine.WithSeed(s.Seed))
	}
	return opts
}

func playAction(ctx context.Context, cmd *cli.Command) error {
	s, tuning, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	board, err := game.DefaultLeaderboard()
	if err != nil {
		log.Printf("leaderboard unavailable: %v", err)
	}

	g := game.New(game.Options{
		Engine:      engineOptions(s, tuning, logger),
		StartLevel:  s.StartLevel,
		Audio:       s.Audio,
		Fullscreen:  cmd.Bool("fullscreen"),
		Leaderboard: board,
		Logger:      logger,
	})
	sw, sh := ebiten.ScreenSizeInFullscreen()
	g.FitWindow(sw, sh, windowFit)

	log.Printf("Starting %s v%s (audio=%v level=%d)", AppName, Version, s.Audio, s.StartLevel)
	ebiten.SetWindowTitle(AppName)
	ebiten.SetWindowResizable(false)
	ebiten.SetWindowSize(g.ScreenWidth(), g.ScreenHeight())
	ebiten.SetTPS(60)
	ebiten.SetFullscreen(cmd.Bool("fullscreen"))
	return ebiten.RunGame(g)
}

func simulateAction(ctx context.Context, cmd *cli.Command) error {
	s, tuning, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	runs, ticks := cmd.Int("runs"), cmd.Int("ticks")
	if runs <= 0 {
		return fmt.Errorf("%w: --runs must be > 0", config.ErrInvalidConfig)
	}
	if ticks <= 0 {
		return fmt.Errorf("%w: --ticks must be > 0", config.ErrInvalidConfig)
	}
	seedBase, seedStep := simulateSeedBase(cmd, s), cmd.Uint64("seed-step")

	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, "=== Headless Run Report ===\n")
	fmt.Fprintf(w, "runs=%d ticks=%d seed_base=%d seed_step=%d start_level=%d\n\n", runs, ticks, seedBase, seedStep, s.StartLevel)

	all := make([]sim.Report, 0, runs)
	for i := 0; i < runs; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		r, err := sim.Run(sim.Options{
			Seed:       seedBase + uint64(i)*seedStep,
			Ticks:      ticks,
			StartLevel: s.StartLevel,
			Engine:     []engine.Option{engine.WithTuning(tuning)},
			Logger:     logger,
		})
		if err != nil {
			return err
		}
		all = append(all, r)
		printRun(w, i+1, r)
	}
	printAggregate(w, all)
	return nil
}

// simulateSeedBase picks the first run's seed: --seed-base, then the
// general seed from --seed or NEONMAZE_SEED, then the flag default.
func simulateSeedBase(cmd *cli.Command, s config.Settings) uint64 {
	if !cmd.IsSet("seed-base") && s.HasSeed {
		return s.Seed
	}
	return cmd.Uint64("seed-base")
}

func printRun(w io.Writer, index int, r sim.Report) {
	fmt.Fprintf(w, "--- Run %d (seed=%d id=%s) ---\n", index, r.Seed, r.RunID)
	fmt.Fprintf(w, "result: ticks=%d level=%d score=%d lives=%d game_over=%v levels_cleared=%d\n",
		r.Ticks, r.Level, r.Score, r.Lives, r.GameOver, r.LevelsCleared)
	fmt.Fprintf(w, "totals: dots=%d power=%d ghosts=%d items=%d power_ups=%d deaths=%d\n",
		r.DotsEaten, r.PowerEaten, r.GhostsEaten, r.ItemsPicked, r.PowerUps, r.Deaths)
	fmt.Fprintf(w, "events:")
	for k := engine.EventAteDot; k <= engine.EventItemSpawned; k++ {
		fmt.Fprintf(w, " %s=%d", k, r.Events[k])
	}
	fmt.Fprintf(w, "\n\n")
}

func printAggregate(w io.Writer, all []sim.Report) {
	if len(all) == 0 {
		return
	}
	var score, level, deaths, cleared, overs int
	best := all[0]
	for _, r := range all {
		score += r.Score
		level += r.Level
		deaths += r.Deaths
		cleared += r.LevelsCleared
		if r.GameOver {
			overs++
		}
		if r.Score > best.Score {
			best = r
		}
	}
	n := float64(len(all))
	fmt.Fprintf(w, "=== Aggregate ===\n")
	fmt.Fprintf(w, "avg_score=%.1f avg_level=%.2f avg_deaths=%.2f levels_cleared=%d game_overs=%d/%d\n",
		float64(score)/n, float64(level)/n, float64(deaths)/n, cleared, overs, len(all))
	fmt.Fprintf(w, "best: seed=%d score=%d level=%d\n", best.Seed, best.Score, best.Level)
}
