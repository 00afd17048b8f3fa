package config

import (
	_ "embed"
)

//go:embed defaults/tetrus.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the standard gameplay configuration, matching the
// embedded defaults file.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Board: BoardConfig{
			Width:         12,
			VisibleHeight: 20,
			HiddenRows:    4,
		},
		Preview: PreviewConfig{
			Count: 3,
		},
		Gravity: GravityConfig{
			StartMs: 800,
			Factor:  0.9,
			FloorMs: 50,
		},
		Lock: LockConfig{
			DelayMs: 500,
		},
		Scoring: ScoringConfig{
			LinesPerLevel: 10,
			LineScores:    [4]int{40, 100, 300, 1200},
			SoftDropBonus: 1,
			HardDropBonus: 2,
		},
		Kicks: []KickOffset{
			{X: 0, Y: 0},
			{X: -1, Y: 0},
			{X: 1, Y: 0},
			{X: 0, Y: -1},
			{X: 0, Y: 1},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGameYAML
}
