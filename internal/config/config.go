// Package config provides YAML-based gameplay configuration loading for the
// tetrus engine.
package config

import (
	"time"

	"github.com/tetrus-game/tetrus/internal/game"
)

// GameConfig contains all tunable gameplay parameters. Values map onto
// game.Rules; the mode is chosen at the command line, not in the file.
type GameConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Preview PreviewConfig `yaml:"preview"`
	Gravity GravityConfig `yaml:"gravity"`
	Lock    LockConfig    `yaml:"lock"`
	Scoring ScoringConfig `yaml:"scoring"`
	Kicks   []KickOffset  `yaml:"kicks"`
}

// BoardConfig defines the playfield geometry.
type BoardConfig struct {
	Width         int `yaml:"width"`
	VisibleHeight int `yaml:"visible_height"`
	HiddenRows    int `yaml:"hidden_rows"`
}

// PreviewConfig defines the upcoming-piece window.
type PreviewConfig struct {
	Count int `yaml:"count"`
}

// GravityConfig defines the fall-speed curve. Intervals are milliseconds.
type GravityConfig struct {
	StartMs int     `yaml:"start_ms"`
	Factor  float64 `yaml:"factor"`
	FloorMs int     `yaml:"floor_ms"`
}

// LockConfig defines the grounded-piece grace period in milliseconds.
type LockConfig struct {
	DelayMs int `yaml:"delay_ms"`
}

// ScoringConfig defines points and level progression.
type ScoringConfig struct {
	LinesPerLevel int    `yaml:"lines_per_level"`
	LineScores    [4]int `yaml:"line_scores"`
	SoftDropBonus int    `yaml:"soft_drop_bonus"`
	HardDropBonus int    `yaml:"hard_drop_bonus"`
}

// KickOffset is one rotation kick candidate, tried in file order.
type KickOffset struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// ToRules converts the file representation into an engine ruleset for the
// given mode. The result still goes through game.Rules.Validate, so a broken
// file fails at session creation, not mid-game.
func (c GameConfig) ToRules(mode game.Mode) game.Rules {
	kicks := make([]game.Offset, len(c.Kicks))
	for i, k := range c.Kicks {
		kicks[i] = game.Offset{X: k.X, Y: k.Y}
	}
	return game.Rules{
		Width:         c.Board.Width,
		VisibleHeight: c.Board.VisibleHeight,
		HiddenRows:    c.Board.HiddenRows,
		PreviewCount:  c.Preview.Count,
		GravityStart:  time.Duration(c.Gravity.StartMs) * time.Millisecond,
		GravityFactor: c.Gravity.Factor,
		GravityMin:    time.Duration(c.Gravity.FloorMs) * time.Millisecond,
		LockDelay:     time.Duration(c.Lock.DelayMs) * time.Millisecond,
		LinesPerLevel: c.Scoring.LinesPerLevel,
		LineScores:    c.Scoring.LineScores,
		SoftDropBonus: c.Scoring.SoftDropBonus,
		HardDropBonus: c.Scoring.HardDropBonus,
		Kicks:         kicks,
		Mode:          mode,
	}
}
