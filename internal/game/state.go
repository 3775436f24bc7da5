package game

import (
	"github.com/google/uuid"

	"github.com/pfelipm/neon-maze/internal/engine"
)

// AppState is the screen the host is on. Only StatePlaying advances the
// simulation.
type AppState int

const (
	StateMenu AppState = iota
	StateLevelStart
	StatePlaying
	StatePaused
	StateLevelComplete
	StateGameOver
)

func (s AppState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateLevelStart:
		return "level-start"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateLevelComplete:
		return "level-complete"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// step runs one update of the host state machine.
func (g *Game) step() {
	switch g.state {
	case StateLevelStart:
		g.stateTicks++
		if g.stateTicks >= levelStartTicks {
			g.setState(StatePlaying)
			g.audio.PlayGo()
		}
	case StatePlaying:
		g.stepPlaying()
	case StateLevelComplete:
		g.stateTicks++
		if g.stateTicks >= levelCompleteTicks {
			g.eng.NextLevel()
			g.enterLevelStart()
		}
	case StateMenu, StatePaused, StateGameOver:
	}
}

func (g *Game) stepPlaying() {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Printf("tick %d: recovered: %v", g.tickCounter, r)
		}
	}()

	for _, ev := range g.eng.Tick(tickSeconds) {
		g.audio.HandleEvent(ev)
	}
	if s := g.eng.Score(); s > g.highScore {
		g.highScore = s
		g.highScoreName = g.playerName
	}

	if g.eng.Status() == engine.StatusDying {
		g.dyingTicks++
		if g.dyingTicks < deathDelayTicks {
			return
		}
		g.dyingTicks = 0
		if g.eng.GameOver() {
			g.enterGameOver()
			return
		}
		g.eng.ResetPositions()
		return
	}
	if g.eng.CheckLevelComplete() {
		g.setState(StateLevelComplete)
	}
}

func (g *Game) setState(s AppState) {
	g.state = s
	g.stateTicks = 0
}

// startRun begins a fresh run at the configured starting level.
func (g *Game) startRun() {
	if g.playerName == "" {
		g.playerName = "PLAYER"
	}
	g.eng.NewRun()
	if g.startLevel > 1 {
		g.eng.ResetLevel(g.startLevel)
	}
	g.runID = uuid.NewString()
	g.recorded = false
	g.dyingTicks = 0
	g.logger.Printf("run %s: %s starts at level %d", g.runID, g.playerName, g.eng.Level())
	g.enterLevelStart()
}

func (g *Game) enterLevelStart() {
	g.setState(StateLevelStart)
	g.audio.PlayReady()
}

func (g *Game) enterGameOver() {
	g.setState(StateGameOver)
	g.gameOverChoice = 0
	g.recordScore()
}

func (g *Game) togglePause() {
	switch g.state {
	case StatePlaying:
		g.setState(StatePaused)
	case StatePaused:
		g.setState(StatePlaying)
	case StateMenu, StateLevelStart, StateLevelComplete, StateGameOver:
	}
}

// confirmGameOver applies the highlighted game-over choice.
func (g *Game) confirmGameOver() {
	if g.gameOverChoice == 0 {
		g.startRun()
		return
	}
	g.setState(StateMenu)
}

func (g *Game) cycleTheme(delta int) {
	n := len(Themes)
	g.themeIndex = ((g.themeIndex+delta)%n + n) % n
}

// inRun reports whether a run is underway and has a score worth keeping.
func (g *Game) inRun() bool {
	switch g.state {
	case StateLevelStart, StatePlaying, StatePaused, StateLevelComplete:
		return g.runID != ""
	case StateMenu, StateGameOver:
		return false
	default:
		return false
	}
}

// recordScore saves the current run to the leaderboard once.
func (g *Game) recordScore() {
	if g.recorded || g.board == nil || g.runID == "" {
		return
	}
	g.recorded = true
	rec := HighScoreRecord{
		RunID: g.runID,
		Name:  g.playerName,
		Score: g.eng.Score(),
		Level: g.eng.Level(),
	}
	if err := g.board.Save(rec); err != nil {
		g.logger.Printf("leaderboard save: %v", err)
		return
	}
	g.refreshLeaderboard()
}

func (g *Game) quitGame() {
	if g.inRun() {
		g.recordScore()
	}
	g.quit = true
}
