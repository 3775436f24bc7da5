package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/pfelipm/neon-maze/internal/entities"
)

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (g *Game) handleInput() {
	if g.state != StateMenu && justPressed(ebiten.KeyF) {
		g.toggleFullscreen()
	}

	switch g.state {
	case StateMenu:
		g.handleMenuInput()
	case StateGameOver:
		if justPressed(ebiten.KeyArrowLeft, ebiten.KeyArrowRight, ebiten.KeyArrowUp, ebiten.KeyArrowDown) {
			g.gameOverChoice = 1 - g.gameOverChoice
		}
		if justPressed(ebiten.KeyEnter, ebiten.KeyKPEnter, ebiten.KeySpace) {
			g.confirmGameOver()
		}
		if justPressed(ebiten.KeyEscape) {
			g.setState(StateMenu)
		}
		if justPressed(ebiten.KeyQ) {
			g.quitGame()
		}
	case StatePaused:
		if justPressed(ebiten.KeyP, ebiten.KeyEscape, ebiten.KeySpace, ebiten.KeyEnter) {
			g.togglePause()
		}
		if justPressed(ebiten.KeyQ) {
			g.quitGame()
		}
	case StatePlaying, StateLevelStart, StateLevelComplete:
		if d := pressedDirection(); d != entities.DirNone {
			g.eng.SetDirection(d)
		}
		if g.state == StatePlaying {
			if justPressed(ebiten.KeySpace, ebiten.KeyE) {
				g.eng.ActivateHeldItem()
			}
			if justPressed(ebiten.KeyP, ebiten.KeyEscape) {
				g.togglePause()
			}
		}
		if justPressed(ebiten.KeyQ) {
			g.quitGame()
		}
	}
}

// handleMenuInput handles name entry, theme selection and start. Letters
// go to the name, so Escape quits from here instead of Q.
func (g *Game) handleMenuInput() {
	var chars []rune
	chars = ebiten.AppendInputChars(chars)
	g.playerName = appendNameChars(g.playerName, chars)
	if justPressed(ebiten.KeyBackspace) {
		rs := []rune(g.playerName)
		if len(rs) > 0 {
			g.playerName = string(rs[:len(rs)-1])
		}
	}
	if justPressed(ebiten.KeyArrowLeft) {
		g.cycleTheme(-1)
	}
	if justPressed(ebiten.KeyArrowRight) {
		g.cycleTheme(1)
	}
	if justPressed(ebiten.KeyEnter, ebiten.KeyKPEnter, ebiten.KeySpace) {
		g.startRun()
	}
	if justPressed(ebiten.KeyEscape) {
		g.quitGame()
	}
}

// appendNameChars adds the allowed characters from chars to name, up to
// maxNameLen runes.
func appendNameChars(name string, chars []rune) string {
	for _, r := range chars {
		if len([]rune(name)) >= maxNameLen {
			break
		}
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			name += string(r)
		}
	}
	return name
}

// pressedDirection maps held arrow or WASD keys to a direction.
func pressedDirection() entities.Direction {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW):
		return entities.DirUp
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS):
		return entities.DirDown
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA):
		return entities.DirLeft
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD):
		return entities.DirRight
	default:
		return entities.DirNone
	}
}

func (g *Game) toggleFullscreen() {
	g.fullscreen = !g.fullscreen
	ebiten.SetFullscreen(g.fullscreen)
}
