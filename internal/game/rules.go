package game

import (
	"fmt"
	"math"
	"time"
)

// Rules is the immutable gameplay configuration for a session. A session
// never reads process-wide state: everything tunable is passed in here and
// validated before any session state is created.
type Rules struct {
	// Board geometry. TotalHeight = VisibleHeight + HiddenRows.
	Width         int
	VisibleHeight int
	HiddenRows    int

	// PreviewCount is the fixed length of the upcoming-piece queue.
	PreviewCount int

	// Gravity: the fall interval starts at GravityStart and is multiplied by
	// GravityFactor for each level above 1, floored at GravityMin.
	GravityStart  time.Duration
	GravityFactor float64
	GravityMin    time.Duration

	// LockDelay is how long a grounded piece may still be moved before it
	// commits. Zero locks on the first failed descent.
	LockDelay time.Duration

	// LinesPerLevel controls level progression: level = 1 + lines/LinesPerLevel.
	LinesPerLevel int

	// LineScores maps cleared-row count (1-4) to base points, multiplied by
	// the current level on award.
	LineScores [4]int

	// Drop bonuses, per row traveled.
	SoftDropBonus int
	HardDropBonus int

	// Kicks is the ordered offset sequence tried when a rotation collides at
	// the current position. The first collision-free candidate wins; the
	// order makes kick resolution deterministic.
	Kicks []Offset

	// Mode selects the run goal.
	Mode Mode
}

// DefaultRules returns the standard ruleset: 12x24 board with 20 visible
// rows, 3-piece preview, classic scoring table, and the documented kick
// order (in place, left, right, up, down).
func DefaultRules() Rules {
	return Rules{
		Width:         12,
		VisibleHeight: 20,
		HiddenRows:    4,
		PreviewCount:  3,
		GravityStart:  800 * time.Millisecond,
		GravityFactor: 0.9,
		GravityMin:    50 * time.Millisecond,
		LockDelay:     500 * time.Millisecond,
		LinesPerLevel: 10,
		LineScores:    [4]int{40, 100, 300, 1200},
		SoftDropBonus: 1,
		HardDropBonus: 2,
		Kicks: []Offset{
			{0, 0},
			{-1, 0},
			{1, 0},
			{0, -1},
			{0, 1},
		},
		Mode: Endless(),
	}
}

// TotalHeight returns the full grid height including the hidden spawn buffer.
func (r Rules) TotalHeight() int {
	return r.VisibleHeight + r.HiddenRows
}

// GravityInterval returns the time a piece rests per row at the given level.
// Strictly non-increasing in level, floored at GravityMin.
func (r Rules) GravityInterval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	interval := time.Duration(float64(r.GravityStart) * math.Pow(r.GravityFactor, float64(level-1)))
	if interval < r.GravityMin {
		return r.GravityMin
	}
	return interval
}

// Validate fails fast on a malformed ruleset so no partial session is ever
// created from bad configuration.
func (r Rules) Validate() error {
	if r.Width < 4 {
		return fmt.Errorf("game: board width %d is too narrow (minimum 4)", r.Width)
	}
	if r.VisibleHeight < 4 {
		return fmt.Errorf("game: visible height %d is too short (minimum 4)", r.VisibleHeight)
	}
	if r.HiddenRows < 0 {
		return fmt.Errorf("game: hidden rows must not be negative, got %d", r.HiddenRows)
	}
	if r.PreviewCount < 1 || r.PreviewCount > 5 {
		return fmt.Errorf("game: preview count %d out of range [1, 5]", r.PreviewCount)
	}
	if r.GravityStart <= 0 {
		return fmt.Errorf("game: gravity start interval must be positive, got %v", r.GravityStart)
	}
	if r.GravityFactor <= 0 || r.GravityFactor > 1 {
		return fmt.Errorf("game: gravity factor %v out of range (0, 1]", r.GravityFactor)
	}
	if r.GravityMin <= 0 {
		return fmt.Errorf("game: gravity minimum interval must be positive, got %v", r.GravityMin)
	}
	if r.LockDelay < 0 {
		return fmt.Errorf("game: lock delay must not be negative, got %v", r.LockDelay)
	}
	if r.LinesPerLevel < 1 {
		return fmt.Errorf("game: lines per level must be positive, got %d", r.LinesPerLevel)
	}
	for i, score := range r.LineScores {
		if score < 0 {
			return fmt.Errorf("game: line score for %d rows must not be negative, got %d", i+1, score)
		}
	}
	if r.SoftDropBonus < 0 || r.HardDropBonus < 0 {
		return fmt.Errorf("game: drop bonuses must not be negative")
	}
	if len(r.Kicks) == 0 {
		return fmt.Errorf("game: kick table must not be empty")
	}
	switch r.Mode.Kind {
	case ModeSprint:
		if r.Mode.TargetLines < 1 {
			return fmt.Errorf("game: sprint target must be positive, got %d", r.Mode.TargetLines)
		}
	case ModeUltra:
		if r.Mode.TimeLimit <= 0 {
			return fmt.Errorf("game: ultra time limit must be positive, got %v", r.Mode.TimeLimit)
		}
	}
	return nil
}
