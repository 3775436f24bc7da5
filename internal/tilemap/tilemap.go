package tilemap

import (
	"errors"
	"fmt"
)

type Tile int

const (
	TileWall Tile = iota
	TileDot
	TilePower
	TileEmpty
	TileHouse
	TileItemSpeed
	TileItemPhase
)

var (
	ErrEmptyMaze   = errors.New("maze has no rows")
	ErrRaggedMaze  = errors.New("maze rows differ in length")
	ErrUnknownTile = errors.New("unknown tile code")
)

func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileDot:
		return "dot"
	case TilePower:
		return "power"
	case TileEmpty:
		return "empty"
	case TileHouse:
		return "house"
	case TileItemSpeed:
		return "item-speed"
	case TileItemPhase:
		return "item-phase"
	default:
		return fmt.Sprintf("tile(%d)", int(t))
	}
}

// Collectible reports whether the tile counts toward level completion.
func (t Tile) Collectible() bool {
	return t == TileDot || t == TilePower
}

func (t Tile) IsItem() bool {
	return t == TileItemSpeed || t == TileItemPhase
}

type TileMap struct {
	Width  int
	Height int
	Tiles  [][]Tile
}

func NewDefaultMap() *TileMap {
	m, err := Parse(defaultMaze)
	if err != nil {
		// defaultMaze is a compile-time constant; a parse failure is a programming error.
		panic(err)
	}
	return m
}

// Parse builds a map from rows of tile codes '0'..'6'.
func Parse(rows []string) (*TileMap, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMaze
	}
	h := len(rows)
	w := len(rows[0])
	grid := make([][]Tile, h)
	for y := 0; y < h; y++ {
		if len(rows[y]) != w {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(rows[y]), w, ErrRaggedMaze)
		}
		grid[y] = make([]Tile, w)
		for x := 0; x < w; x++ {
			c := rows[y][x]
			if c < '0' || c > '6' {
				return nil, fmt.Errorf("cell %d,%d = %q: %w", x, y, c, ErrUnknownTile)
			}
			grid[y][x] = Tile(c - '0')
		}
	}
	return &TileMap{Width: w, Height: h, Tiles: grid}, nil
}

// Clone returns a deep copy that shares no rows with m.
func (m *TileMap) Clone() *TileMap {
	grid := make([][]Tile, m.Height)
	for y := range m.Tiles {
		grid[y] = append([]Tile(nil), m.Tiles[y]...)
	}
	return &TileMap{Width: m.Width, Height: m.Height, Tiles: grid}
}

func (m *TileMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the tile at x,y. Cells outside the grid read as walls.
func (m *TileMap) At(x, y int) Tile {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.Tiles[y][x]
}

// Set writes a tile and reports whether x,y was inside the grid.
func (m *TileMap) Set(x, y int, t Tile) bool {
	if !m.InBounds(x, y) {
		return false
	}
	m.Tiles[y][x] = t
	return true
}

func (m *TileMap) IsWall(x, y int) bool {
	return m.At(x, y) == TileWall
}

// EatPelletAt removes a dot/power pellet at grid cell and returns (ate, power)
func (m *TileMap) EatPelletAt(x, y int) (bool, bool) {
	switch m.At(x, y) {
	case TileDot:
		m.Tiles[y][x] = TileEmpty
		return true, false
	case TilePower:
		m.Tiles[y][x] = TileEmpty
		return true, true
	}
	return false, false
}

// Count returns the number of cells whose tile satisfies keep.
func (m *TileMap) Count(keep func(Tile) bool) int {
	n := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if keep(m.Tiles[y][x]) {
				n++
			}
		}
	}
	return n
}

func (m *TileMap) CountCollectibles() int {
	return m.Count(Tile.Collectible)
}

func (m *TileMap) CountItems() int {
	return m.Count(Tile.IsItem)
}
