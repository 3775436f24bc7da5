package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/pfelipm/neon-maze/internal/engine"
	"github.com/pfelipm/neon-maze/internal/entities"
	"github.com/pfelipm/neon-maze/internal/particles"
	tm "github.com/pfelipm/neon-maze/internal/tilemap"
)

// basicfont.Face7x13 is 7 pixels per glyph
const glyphWidth = 7

func (g *Game) drawFrame(off *ebiten.Image) {
	th := g.theme()
	off.Fill(th.Background)

	g.drawMaze(off, th)
	g.drawParticles(off, th)
	g.drawPlayer(off)
	g.drawRespawnAura(off)
	g.drawGhosts(off)
	g.drawHUD(off, th)

	switch g.state {
	case StateMenu:
		g.drawMenu(off)
	case StateLevelStart:
		g.drawLevelStart(off, th)
	case StatePaused:
		g.drawBanner(off, "PAUSED", colorWhite, "P / ESC to resume")
	case StateLevelComplete:
		g.drawBanner(off, "LEVEL COMPLETE", colorGo, fmt.Sprintf("score %d", g.eng.Score()))
	case StateGameOver:
		g.drawGameOver(off)
	case StatePlaying:
	}
}

// seconds is a cosmetic clock for blinking and pulsing.
func (g *Game) seconds() float64 {
	return float64(g.tickCounter) / updatesPerSecond
}

func (g *Game) drawMaze(off *ebiten.Image, th Theme) {
	grid := g.eng.Grid()
	blink := g.eng.Modifier() == engine.ModBlinkingDots
	t := g.seconds()
	const ts = float32(tileSize)

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			px, py := float32(x)*ts, float32(y)*ts
			cx, cy := px+ts/2, py+ts/2
			switch grid.At(x, y) {
			case tm.TileWall:
				vector.StrokeRect(off, px+4, py+4, ts-8, ts-8, 2, th.Wall, true)
			case tm.TileDot:
				alpha := 1.0
				if blink {
					alpha = 0.3 + 0.7*math.Abs(math.Sin(t/0.3+float64(x+y)))
				}
				vector.DrawFilledCircle(off, cx, cy, 2, withAlpha(th.Dot, alpha), true)
			case tm.TilePower:
				if int(t*5)%2 == 0 {
					vector.DrawFilledCircle(off, cx, cy, 6, th.Dot, true)
				}
			case tm.TileItemSpeed:
				drawBolt(off, px, py, colorSpeed)
			case tm.TileItemPhase:
				vector.DrawFilledCircle(off, cx, cy, ts*0.3, colorPhase, true)
				vector.DrawFilledCircle(off, cx, cy, ts*0.1, color.Black, true)
			case tm.TileEmpty, tm.TileHouse:
			}
		}
	}
}

// drawBolt draws the speed item as a zigzag inside the tile at px,py.
func drawBolt(off *ebiten.Image, px, py float32, c color.Color) {
	const ts = float32(tileSize)
	pts := [][2]float32{{0.7, 0.2}, {0.3, 0.6}, {0.5, 0.6}, {0.3, 0.9}}
	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		vector.StrokeLine(off, px+a[0]*ts, py+a[1]*ts, px+b[0]*ts, py+b[1]*ts, 2, c, true)
	}
}

func particleColor(c particles.Color, th Theme) color.RGBA {
	switch c {
	case particles.ColorDot:
		return th.Dot
	case particles.ColorSpeed:
		return colorSpeed
	case particles.ColorPhase:
		return colorPhase
	case particles.ColorGhost:
		return colorWhite
	default:
		return colorWhite
	}
}

func (g *Game) drawParticles(off *ebiten.Image, th Theme) {
	for _, p := range g.eng.Particles() {
		c := withAlpha(particleColor(p.Color, th), p.Alpha())
		vector.DrawFilledCircle(off, float32(p.X*tileSize), float32(p.Y*tileSize), 2, c, true)
	}
}

// drawTrail fades a trail from transparent at the tail to alpha at the head.
func drawTrail(off *ebiten.Image, pts []entities.TrailPoint, c color.RGBA, alpha, width float64) {
	n := len(pts)
	for i := 0; i < n-1; i++ {
		ratio := float64(i) / float64(n)
		a, b := pts[i], pts[i+1]
		vector.StrokeLine(off,
			float32(a.X*tileSize), float32(a.Y*tileSize),
			float32(b.X*tileSize), float32(b.Y*tileSize),
			float32(1+ratio*tileSize*width), withAlpha(c, ratio*ratio*alpha), true)
	}
}

func (g *Game) drawPlayer(off *ebiten.Image) {
	p := g.eng.Player()
	body := colorPlayer
	switch p.Effect {
	case entities.ItemSpeed:
		body = colorSpeed
	case entities.ItemPhase:
		body = colorPhase
	case entities.ItemNone:
	}
	drawTrail(off, p.Trail.Points(), body, 0.6, 0.8)

	// Flicker while dying
	if g.eng.Status() == engine.StatusDying && g.tickCounter%6 < 3 {
		return
	}
	x, y := float32(p.X*tileSize), float32(p.Y*tileSize)
	pulse := float32(1 + math.Sin(g.seconds()*8)*0.05)
	r := float32(tileSize) * 0.45 * pulse
	vector.DrawFilledCircle(off, x, y, r, body, true)

	// Eye sits ahead of the heading
	dx, dy := entities.DirDelta(p.Dir)
	if p.Dir == entities.DirNone {
		dx = 1
	}
	ex := x + float32(dx)*r*0.3 + float32(dy)*r*0.3
	ey := y + float32(dy)*r*0.3 - r*0.4
	vector.DrawFilledCircle(off, ex, ey, r*0.2, color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}, true)
}

// drawRespawnAura pulses over the ghost house while any ghost is heading home.
func (g *Game) drawRespawnAura(off *ebiten.Image) {
	eaten := false
	for _, gh := range g.eng.Ghosts() {
		if gh.State == entities.GhostEaten {
			eaten = true
			break
		}
	}
	if !eaten {
		return
	}
	pulse := (math.Sin(g.seconds()*5) + 1) / 2
	vector.DrawFilledCircle(off, 9.5*tileSize, 9.5*tileSize, 2*tileSize, withAlpha(colorWhite, 0.1+pulse*0.2), true)
}

func (g *Game) drawGhosts(off *ebiten.Image) {
	p := g.eng.Player()
	for i, gh := range g.eng.Ghosts() {
		x, y := float32(gh.X*tileSize), float32(gh.Y*tileSize)
		c := ghostColors[i%len(ghostColors)]
		switch gh.State {
		case entities.GhostEaten:
			drawGhostEyes(off, x, y, gh.Dir)
			continue
		case entities.GhostFrightened:
			c = colorFrightened
			if gh.ScaredTimer < 2 && g.tickCounter%20 < 10 {
				c = colorWhite
			}
		case entities.GhostScatter, entities.GhostChase:
		}

		// Aura grows as the ghost closes in on the player
		proximity := math.Max(0, 1-gh.DistanceTo(p.X, p.Y)/8)
		vector.DrawFilledCircle(off, x, y, tileSize*0.65, withAlpha(c, 0.05+0.15*proximity), true)
		drawTrail(off, gh.Trail.Points(), c, 0.5, 0.6)

		r := float32(tileSize) * 0.4
		vector.DrawFilledCircle(off, x, y-2, r, c, true)
		vector.DrawFilledRect(off, x-r, y-2, 2*r, r+2, c, true)
		drawGhostEyes(off, x, y, gh.Dir)
	}
}

func drawGhostEyes(off *ebiten.Image, x, y float32, dir entities.Direction) {
	dx, dy := entities.DirDelta(dir)
	for _, side := range []float32{-4, 4} {
		vector.DrawFilledCircle(off, x+side, y-4, 3, colorWhite, true)
		vector.DrawFilledCircle(off, x+side+float32(dx), y-4+float32(dy), 1.5, colorFrightened, true)
	}
}

func (g *Game) drawHUD(off *ebiten.Image, th Theme) {
	top := g.eng.Grid().Height * tileSize
	vector.DrawFilledRect(off, 0, float32(top), float32(g.nativeWidth()), hudHeight, color.Black, false)

	hiLabel := "HI"
	if g.highScoreName != "" {
		hiLabel = fmt.Sprintf("HI(%s)", g.highScoreName)
	}
	line1 := fmt.Sprintf("SCORE %d  %s %d  LVL %d  LIVES %d", g.eng.Score(), hiLabel, g.highScore, g.eng.Level(), g.eng.Lives())
	text.Draw(off, line1, basicfont.Face7x13, 4, top+14, color.White)

	p := g.eng.Player()
	item := "-"
	if p.Inventory != entities.ItemNone {
		item = p.Inventory.String()
	}
	line2 := fmt.Sprintf("ITEM %s  %s  %s", item, g.eng.Modifier(), th.Name)
	if p.Effect != entities.ItemNone {
		line2 = fmt.Sprintf("%s  %s %.1fs", line2, p.Effect, p.EffectTimer)
	}
	text.Draw(off, line2, basicfont.Face7x13, 4, top+30, th.Wall)
}

func (g *Game) drawCentered(off *ebiten.Image, s string, y int, c color.Color) {
	x := (g.nativeWidth() - len(s)*glyphWidth) / 2
	text.Draw(off, s, basicfont.Face7x13, x, y, c)
}

func (g *Game) dimBoard(off *ebiten.Image) {
	w, h := g.nativeWidth(), g.eng.Grid().Height*tileSize
	vector.DrawFilledRect(off, 0, 0, float32(w), float32(h), color.NRGBA{A: 0xb0}, false)
}

func (g *Game) drawBanner(off *ebiten.Image, title string, c color.Color, sub string) {
	g.dimBoard(off)
	mid := g.eng.Grid().Height * tileSize / 2
	g.drawCentered(off, title, mid, c)
	if sub != "" {
		g.drawCentered(off, sub, mid+18, colorDim)
	}
}

func (g *Game) drawMenu(off *ebiten.Image) {
	g.dimBoard(off)
	th := Themes[g.themeIndex]
	y := 60
	g.drawCentered(off, "NEON MAZE", y, th.Wall)
	y += 30
	g.drawCentered(off, "Enter name: "+g.playerName+"_", y, color.White)
	y += 24
	g.drawCentered(off, "< "+th.Name+" >", y, th.Dot)
	y += 24
	g.drawCentered(off, "ENTER to start", y, colorDim)
	g.drawLeaderboard(off, y+36)
}

func (g *Game) drawLeaderboard(off *ebiten.Image, y int) {
	if len(g.topScores) == 0 {
		return
	}
	g.drawCentered(off, "High Scores", y, colorGold)
	y += 14
	for i, r := range g.topScores {
		line := fmt.Sprintf("%2d. %-12s %6d  L%d", i+1, r.Name, r.Score, r.Level)
		g.drawCentered(off, line, y, color.White)
		y += 14
	}
}

func (g *Game) drawLevelStart(off *ebiten.Image, th Theme) {
	g.dimBoard(off)
	mid := g.eng.Grid().Height * tileSize / 2
	g.drawCentered(off, fmt.Sprintf("LEVEL %d", g.eng.Level()), mid-36, th.Wall)
	g.drawCentered(off, th.Name, mid-20, th.Dot)
	g.drawCentered(off, g.eng.Modifier().String(), mid-4, colorWhite)

	remaining := levelStartTicks - g.stateTicks
	word, c := "READY", colorReady
	if remaining <= updatesPerSecond {
		word, c = "GO!", colorGo
	}
	g.drawCentered(off, word, mid+24, c)
}

func (g *Game) drawGameOver(off *ebiten.Image) {
	g.dimBoard(off)
	y := 60
	g.drawCentered(off, "GAME OVER", y, colorReady)
	y += 20
	g.drawCentered(off, fmt.Sprintf("%s scored %d on level %d", g.playerName, g.eng.Score(), g.eng.Level()), y, color.White)
	y += 24
	restart, menu := "  RESTART  ", "  MENU  "
	if g.gameOverChoice == 0 {
		restart = "> RESTART <"
	} else {
		menu = "> MENU <"
	}
	g.drawCentered(off, restart+"   "+menu, y, colorGold)
	g.drawLeaderboard(off, y+30)
}
