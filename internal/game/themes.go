package game

import "image/color"

// Theme is a maze palette. Levels walk through Themes starting from the
// one picked in the menu.
type Theme struct {
	Name       string
	Wall       color.RGBA
	Dot        color.RGBA
	Background color.RGBA
}

var Themes = []Theme{
	{Name: "CYBER BLUE", Wall: rgb(0x00d9ff), Dot: rgb(0xff0099), Background: rgb(0x050505)},
	{Name: "MATRIX GREEN", Wall: rgb(0x00ff41), Dot: rgb(0xe0ff00), Background: rgb(0x001100)},
	{Name: "NEON INFERNO", Wall: rgb(0xff2a00), Dot: rgb(0xffcc00), Background: rgb(0x1a0505)},
	{Name: "VAPORWAVE", Wall: rgb(0xff71ce), Dot: rgb(0x01cdfe), Background: rgb(0x050510)},
}

func themeForLevel(selected, level int) Theme {
	n := len(Themes)
	i := ((selected+level-1)%n + n) % n
	return Themes[i]
}

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

// withAlpha returns c at alpha a in [0,1].
func withAlpha(c color.RGBA, a float64) color.NRGBA {
	a = max(0, min(1, a))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a * 255)}
}

var (
	colorPlayer     = rgb(0xffff00)
	colorSpeed      = rgb(0x00ffff)
	colorPhase      = rgb(0xff00ff)
	colorFrightened = rgb(0x0000ff)
	colorWhite      = rgb(0xffffff)
	colorGold       = rgb(0xffd700)
	colorReady      = rgb(0xff0055)
	colorGo         = rgb(0x00ff00)
	colorDim        = rgb(0x808080)

	// ghostColors follow roster slots: five base ghosts, then the extras.
	ghostColors = []color.RGBA{
		rgb(0xff0000), rgb(0xffb8ff), rgb(0x00ffff), rgb(0xffbf00),
		rgb(0x39ff14), rgb(0xbf00ff), rgb(0xff0055),
	}
)
