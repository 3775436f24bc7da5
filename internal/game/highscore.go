package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pfelipm/neon-maze/internal/config"
)

const highScoreJSONFN = "highscore.json"

var (
	ErrNegativeScore = errors.New("score must be non-negative")
	ErrEmptyName     = errors.New("name must not be empty")
)

// HighScoreRecord is one leaderboard entry: a player's best run.
type HighScoreRecord struct {
	RunID string `json:"run_id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
	Level int    `json:"level"`
}

// Leaderboard persists best scores as a JSON array in a single file.
type Leaderboard struct {
	path string
}

// OpenLeaderboard uses highscore.json inside dir.
func OpenLeaderboard(dir string) *Leaderboard {
	return &Leaderboard{path: filepath.Join(dir, highScoreJSONFN)}
}

// DefaultLeaderboard opens the leaderboard in the config directory.
func DefaultLeaderboard() (*Leaderboard, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, fmt.Errorf("leaderboard dir: %w", err)
	}
	return OpenLeaderboard(dir), nil
}

func (lb *Leaderboard) Path() string { return lb.path }

// Load returns every record. A missing file is an empty leaderboard.
func (lb *Leaderboard) Load() ([]HighScoreRecord, error) {
	data, err := os.ReadFile(lb.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var list []HighScoreRecord
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode %s: %w", lb.path, err)
	}
	return list, nil
}

// Save upserts rec by name, case-insensitively. An existing entry is only
// replaced by a higher score. The file is written atomically.
func (lb *Leaderboard) Save(rec HighScoreRecord) error {
	if rec.Score < 0 {
		return ErrNegativeScore
	}
	rec.Name = strings.TrimSpace(rec.Name)
	if rec.Name == "" {
		return ErrEmptyName
	}
	list, err := lb.Load()
	if err != nil {
		return err
	}
	updated := false
	for i := range list {
		if strings.EqualFold(strings.TrimSpace(list[i].Name), rec.Name) {
			if rec.Score > list[i].Score {
				list[i] = rec
			}
			updated = true
			break
		}
	}
	if !updated {
		list = append(list, rec)
	}

	if err := os.MkdirAll(filepath.Dir(lb.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	tmp := lb.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, lb.path)
}

// Top returns up to n records, best first. Ties keep file order.
func (lb *Leaderboard) Top(n int) ([]HighScoreRecord, error) {
	list, err := lb.Load()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Score > list[j].Score })
	if n >= 0 && len(list) > n {
		list = list[:n]
	}
	return list, nil
}

// Best returns the top record, if any.
func (lb *Leaderboard) Best() (HighScoreRecord, bool) {
	top, err := lb.Top(1)
	if err != nil || len(top) == 0 {
		return HighScoreRecord{}, false
	}
	return top[0], true
}
