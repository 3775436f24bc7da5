package engine

import (
	"errors"
	"fmt"
)

var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds every gameplay constant. Speeds are in tiles per tick,
// durations in simulated seconds.
type Tuning struct {
	StartLives int `yaml:"start_lives"`

	PlayerSpeed         float64 `yaml:"player_speed"`
	PlayerSpeedPerLevel float64 `yaml:"player_speed_per_level"`
	GhostSpeed          float64 `yaml:"ghost_speed"`
	GhostSpeedPerLevel  float64 `yaml:"ghost_speed_per_level"`
	GhostSpeedLevelCap  int     `yaml:"ghost_speed_level_cap"`

	SlowPlayerFactor float64 `yaml:"slow_player_factor"`
	FastGhostFactor  float64 `yaml:"fast_ghost_factor"`
	ModifierChance   float64 `yaml:"modifier_chance"`

	ModeSwitchSeconds       float64 `yaml:"mode_switch_seconds"`
	FrenzyModeSwitchSeconds float64 `yaml:"frenzy_mode_switch_seconds"`

	FrightenedSeconds     float64 `yaml:"frightened_seconds"`
	FrightenedSpeedFactor float64 `yaml:"frightened_speed_factor"`
	EatenSpeedFactor      float64 `yaml:"eaten_speed_factor"`
	CaptureRadius         float64 `yaml:"capture_radius"`
	HomeRadius            float64 `yaml:"home_radius"`
	AmbushLookahead       float64 `yaml:"ambush_lookahead"`
	WandererShyDistance   float64 `yaml:"wanderer_shy_distance"`
	PhaseGlitchChance     float64 `yaml:"phase_glitch_chance"`

	ItemSpawnSeconds float64 `yaml:"item_spawn_seconds"`
	MaxItems         int     `yaml:"max_items"`
	EffectSeconds    float64 `yaml:"effect_seconds"`
	SpeedBoostFactor float64 `yaml:"speed_boost_factor"`

	TurnTolerance        float64 `yaml:"turn_tolerance"`
	BoostedTurnTolerance float64 `yaml:"boosted_turn_tolerance"`

	DotPoints   int `yaml:"dot_points"`
	PowerPoints int `yaml:"power_points"`
	ItemPoints  int `yaml:"item_points"`
	GhostPoints int `yaml:"ghost_points"`

	ExtraGhostChancePerLevel  float64 `yaml:"extra_ghost_chance_per_level"`
	ExtraGhostChanceCap       float64 `yaml:"extra_ghost_chance_cap"`
	SecondExtraChancePerLevel float64 `yaml:"second_extra_chance_per_level"`
	SecondExtraChanceCap      float64 `yaml:"second_extra_chance_cap"`
}

func DefaultTuning() Tuning {
	return Tuning{
		StartLives: 3,

		PlayerSpeed:         0.15,
		PlayerSpeedPerLevel: 0.01,
		GhostSpeed:          0.08,
		GhostSpeedPerLevel:  0.005,
		GhostSpeedLevelCap:  10,

		SlowPlayerFactor: 0.85,
		FastGhostFactor:  1.15,
		ModifierChance:   0.5,

		ModeSwitchSeconds:       20,
		FrenzyModeSwitchSeconds: 10,

		FrightenedSeconds:     6,
		FrightenedSpeedFactor: 0.6,
		EatenSpeedFactor:      2.0,
		CaptureRadius:         0.6,
		HomeRadius:            1.0,
		AmbushLookahead:       4,
		WandererShyDistance:   8,
		PhaseGlitchChance:     0.2,

		ItemSpawnSeconds: 45,
		MaxItems:         2,
		EffectSeconds:    3,
		SpeedBoostFactor: 1.8,

		TurnTolerance:        0.35,
		BoostedTurnTolerance: 0.45,

		DotPoints:   10,
		PowerPoints: 50,
		ItemPoints:  50,
		GhostPoints: 200,

		ExtraGhostChancePerLevel:  0.1,
		ExtraGhostChanceCap:       0.8,
		SecondExtraChancePerLevel: 0.05,
		SecondExtraChanceCap:      0.5,
	}
}

// Validate rejects values that would stall or break the simulation.
func (t Tuning) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"start_lives", float64(t.StartLives)},
		{"player_speed", t.PlayerSpeed},
		{"ghost_speed", t.GhostSpeed},
		{"slow_player_factor", t.SlowPlayerFactor},
		{"fast_ghost_factor", t.FastGhostFactor},
		{"mode_switch_seconds", t.ModeSwitchSeconds},
		{"frenzy_mode_switch_seconds", t.FrenzyModeSwitchSeconds},
		{"frightened_seconds", t.FrightenedSeconds},
		{"frightened_speed_factor", t.FrightenedSpeedFactor},
		{"eaten_speed_factor", t.EatenSpeedFactor},
		{"capture_radius", t.CaptureRadius},
		{"home_radius", t.HomeRadius},
		{"item_spawn_seconds", t.ItemSpawnSeconds},
		{"effect_seconds", t.EffectSeconds},
		{"speed_boost_factor", t.SpeedBoostFactor},
		{"turn_tolerance", t.TurnTolerance},
		{"boosted_turn_tolerance", t.BoostedTurnTolerance},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidTuning, p.name, p.v)
		}
	}
	// A tolerance of half a tile or more would let turns fire from the
	// neighbouring cell.
	if t.TurnTolerance >= 0.5 || t.BoostedTurnTolerance >= 0.5 {
		return fmt.Errorf("%w: turn tolerances must be < 0.5", ErrInvalidTuning)
	}
	if t.MaxItems < 0 || t.GhostSpeedLevelCap < 0 {
		return fmt.Errorf("%w: max_items and ghost_speed_level_cap must be >= 0", ErrInvalidTuning)
	}
	probs := []struct {
		name string
		v    float64
	}{
		{"modifier_chance", t.ModifierChance},
		{"phase_glitch_chance", t.PhaseGlitchChance},
		{"extra_ghost_chance_cap", t.ExtraGhostChanceCap},
		{"second_extra_chance_cap", t.SecondExtraChanceCap},
	}
	for _, p := range probs {
		if p.v < 0 || p.v > 1 {
			return fmt.Errorf("%w: %s must be within [0,1], got %v", ErrInvalidTuning, p.name, p.v)
		}
	}
	return nil
}
