package game

import (
	"image/color"
	"io"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pfelipm/neon-maze/internal/engine"
)

const (
	tileSize         = 20
	hudHeight        = 36
	updatesPerSecond = 60
	tickSeconds      = 1.0 / updatesPerSecond

	// Host delays, counted in updates
	levelStartTicks    = 2 * updatesPerSecond
	deathDelayTicks    = 2 * updatesPerSecond
	levelCompleteTicks = 2 * updatesPerSecond

	leaderboardRows = 5
	maxNameLen      = 12
)

// Options configures a Game. The zero value is a silent game at scale 1
// with no leaderboard.
type Options struct {
	Engine      []engine.Option
	StartLevel  int
	Audio       bool
	SoundsDir   string
	Fullscreen  bool
	Scale       float64
	Leaderboard *Leaderboard
	Logger      *log.Logger
}

type Game struct {
	eng    *engine.Engine
	audio  *AudioManager
	board  *Leaderboard
	logger *log.Logger

	state      AppState
	stateTicks int
	dyingTicks int
	startLevel int

	themeIndex     int
	gameOverChoice int
	playerName     string
	runID          string
	recorded       bool

	highScore     int
	highScoreName string
	topScores     []HighScoreRecord

	fullscreen  bool
	quit        bool
	scale       float64
	tickCounter int

	off *ebiten.Image
}

func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	g := &Game{
		eng:        engine.New(opts.Engine...),
		audio:      NewAudioManager(opts.SoundsDir, opts.Audio),
		board:      opts.Leaderboard,
		logger:     logger,
		state:      StateMenu,
		startLevel: max(opts.StartLevel, 1),
		fullscreen: opts.Fullscreen,
		scale:      opts.Scale,
	}
	if g.scale <= 0 || math.IsNaN(g.scale) || math.IsInf(g.scale, 0) {
		g.scale = 1.0
	}
	g.refreshLeaderboard()
	return g
}

// FitScale returns the scale that fits a w x h board within fit of the
// screen. Used to size the window before the game starts.
func FitScale(screenW, screenH, w, h int, fit float64) float64 {
	if w <= 0 || h <= 0 {
		return 1.0
	}
	scaleW := float64(screenW) * fit / float64(w)
	scaleH := float64(screenH) * fit / float64(h)
	s := math.Min(scaleW, scaleH)
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return 1.0
	}
	return s
}

// FitWindow rescales the game to fill fraction fit of a screenW x screenH
// display.
func (g *Game) FitWindow(screenW, screenH int, fit float64) {
	w, h := g.NativeSize()
	g.scale = FitScale(screenW, screenH, w, h, fit)
}

func (g *Game) nativeWidth() int  { return g.eng.Grid().Width * tileSize }
func (g *Game) nativeHeight() int { return g.eng.Grid().Height*tileSize + hudHeight }

// NativeSize is the unscaled board plus HUD size in pixels.
func (g *Game) NativeSize() (int, int) {
	return g.nativeWidth(), g.nativeHeight()
}

func (g *Game) ScreenWidth() int {
	return int(float64(g.nativeWidth()) * g.scale)
}

func (g *Game) ScreenHeight() int {
	return int(float64(g.nativeHeight()) * g.scale)
}

func (g *Game) Update() error {
	g.tickCounter++
	g.handleInput()
	if g.quit {
		return ebiten.Termination
	}
	g.step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	w, h := g.nativeWidth(), g.nativeHeight()
	if g.off == nil || g.off.Bounds().Dx() != w || g.off.Bounds().Dy() != h {
		g.off = ebiten.NewImage(w, h)
	}
	g.drawFrame(g.off)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	screen.DrawImage(g.off, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.ScreenWidth(), g.ScreenHeight()
}

// State reports the current screen.
func (g *Game) State() AppState { return g.state }

// Engine exposes the running simulation, mainly for tests and tooling.
func (g *Game) Engine() *engine.Engine { return g.eng }

func (g *Game) theme() Theme {
	return themeForLevel(g.themeIndex, g.eng.Level())
}

func (g *Game) refreshLeaderboard() {
	if g.board == nil {
		return
	}
	top, err := g.board.Top(leaderboardRows)
	if err != nil {
		g.logger.Printf("leaderboard: %v", err)
		return
	}
	g.topScores = top
	if len(top) > 0 && top[0].Score >= g.highScore {
		g.highScore = top[0].Score
		g.highScoreName = top[0].Name
	}
}
