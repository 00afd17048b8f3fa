package game

import (
	"fmt"
	"time"
)

// ModeKind selects the overall goal of a run.
type ModeKind int

const (
	// ModeEndless plays until the stack tops out.
	ModeEndless ModeKind = iota
	// ModeSprint ends successfully once a target line count is cleared.
	ModeSprint
	// ModeUltra ends when a time limit expires, freezing the score.
	ModeUltra
)

// Mode is a gameplay preset: endless, sprint to a line target, or ultra
// against a time limit.
type Mode struct {
	Kind        ModeKind
	TargetLines int           // Sprint only
	TimeLimit   time.Duration // Ultra only
}

// Endless returns the open-ended marathon mode.
func Endless() Mode {
	return Mode{Kind: ModeEndless}
}

// Sprint returns a mode that completes after clearing target lines.
func Sprint(targetLines int) Mode {
	return Mode{Kind: ModeSprint, TargetLines: targetLines}
}

// Ultra returns a mode that ends when the time limit elapses.
func Ultra(limit time.Duration) Mode {
	return Mode{Kind: ModeUltra, TimeLimit: limit}
}

// ID returns a stable identifier used for score storage, e.g. "endless",
// "sprint-40", "ultra-120s".
func (m Mode) ID() string {
	switch m.Kind {
	case ModeSprint:
		return fmt.Sprintf("sprint-%d", m.TargetLines)
	case ModeUltra:
		return fmt.Sprintf("ultra-%ds", int(m.TimeLimit.Seconds()))
	default:
		return "endless"
	}
}

// Label returns a human-readable mode name for HUDs and score listings.
func (m Mode) Label() string {
	switch m.Kind {
	case ModeSprint:
		return fmt.Sprintf("Sprint (%d lines)", m.TargetLines)
	case ModeUltra:
		if m.TimeLimit%time.Minute == 0 {
			return fmt.Sprintf("Ultra (%d min)", int(m.TimeLimit.Minutes()))
		}
		return fmt.Sprintf("Ultra (%d s)", int(m.TimeLimit.Seconds()))
	default:
		return "Marathon"
	}
}

// Outcome records why a run ended. Mode completions are distinct from a
// collision-based game over.
type Outcome int

const (
	// OutcomeNone means the run is still going.
	OutcomeNone Outcome = iota
	// OutcomeTopOut means a spawn collided: the classic failure game over.
	OutcomeTopOut
	// OutcomeSprintDone means the sprint line target was reached.
	OutcomeSprintDone
	// OutcomeTimeUp means the ultra time limit expired.
	OutcomeTimeUp
	// OutcomeQuit means the player abandoned the run.
	OutcomeQuit
)

// String returns a stable identifier for the outcome, used in score storage.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeTopOut:
		return "top-out"
	case OutcomeSprintDone:
		return "success"
	case OutcomeTimeUp:
		return "time-up"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Completed reports whether the run ended by achieving the mode goal rather
// than by failure or abandonment.
func (o Outcome) Completed() bool {
	return o == OutcomeSprintDone || o == OutcomeTimeUp
}
