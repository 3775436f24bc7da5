package tilemap

import (
	"errors"
	"testing"
)

func TestNewDefaultMapDimensions(t *testing.T) {
	m := NewDefaultMap()
	if m.Width != 19 || m.Height != 20 {
		t.Fatalf("unexpected dimensions: got %dx%d, want 19x20", m.Width, m.Height)
	}
	if got := m.CountCollectibles(); got != 138 {
		t.Fatalf("expected 138 collectibles (134 dots + 4 power), got %d", got)
	}
	if got := m.Count(func(t Tile) bool { return t == TilePower }); got != 4 {
		t.Fatalf("expected 4 power pellets, got %d", got)
	}
}

func TestEatPelletAt(t *testing.T) {
	m := NewDefaultMap()
	var px, py int
	found := false
	for y := 0; y < m.Height && !found; y++ {
		for x := 0; x < m.Width && !found; x++ {
			if m.Tiles[y][x] == TileDot {
				px, py = x, y
				found = true
			}
		}
	}
	if !found {
		t.Fatal("no dot found in default map")
	}

	ate, power := m.EatPelletAt(px, py)
	if !ate || power {
		t.Fatalf("expected to eat normal dot, got ate=%v power=%v", ate, power)
	}
	if m.At(px, py) != TileEmpty {
		t.Fatalf("eaten cell should be empty, got %v", m.At(px, py))
	}
	ate, power = m.EatPelletAt(px, py)
	if ate || power {
		t.Fatalf("expected to not eat after consumed, got ate=%v power=%v", ate, power)
	}

	ate, power = m.EatPelletAt(1, 2)
	if !ate || !power {
		t.Fatalf("expected power pellet at 1,2, got ate=%v power=%v", ate, power)
	}
	if ate, _ := m.EatPelletAt(-1, 0); ate {
		t.Fatal("out-of-bounds cell must not be edible")
	}
}

func TestOutOfBoundsReadsAsWall(t *testing.T) {
	m := NewDefaultMap()
	if !m.IsWall(-1, 0) || !m.IsWall(0, -1) || !m.IsWall(m.Width, 0) || !m.IsWall(0, m.Height) {
		t.Fatalf("out-of-bounds should be treated as wall")
	}
	if m.Set(m.Width, 0, TileDot) {
		t.Fatal("Set outside the grid should report false")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	base := NewDefaultMap()
	c := base.Clone()
	if c.Width != base.Width || c.Height != base.Height {
		t.Fatalf("clone dimensions differ")
	}
	c.Set(1, 1, TileItemSpeed)
	if base.At(1, 1) != TileDot {
		t.Fatalf("mutating clone changed template: %v", base.At(1, 1))
	}
	if c.CountItems() != 1 || base.CountItems() != 0 {
		t.Fatalf("unexpected item counts clone=%d base=%d", c.CountItems(), base.CountItems())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want error
	}{
		{name: "empty", rows: nil, want: ErrEmptyMaze},
		{name: "ragged", rows: []string{"000", "00"}, want: ErrRaggedMaze},
		{name: "unknown", rows: []string{"090"}, want: ErrUnknownTile},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.rows)
			if !errors.Is(err, tc.want) {
				t.Fatalf("Parse(%v) err = %v, want %v", tc.rows, err, tc.want)
			}
		})
	}
}

func TestParseCodes(t *testing.T) {
	m, err := Parse([]string{"0123456"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []Tile{TileWall, TileDot, TilePower, TileEmpty, TileHouse, TileItemSpeed, TileItemPhase}
	for x, w := range want {
		if m.At(x, 0) != w {
			t.Fatalf("cell %d = %v, want %v", x, m.At(x, 0), w)
		}
	}
}
