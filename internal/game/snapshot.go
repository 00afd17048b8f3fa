package game

import "time"

// Snapshot is a read-only view of the session for renderers and drivers.
// Coordinates are absolute board coordinates; subtract HiddenRows from Y to
// map into the visible area. The engine never calls into rendering; the
// driver polls a snapshot after each processed event.
type Snapshot struct {
	// Geometry.
	Width         int
	VisibleHeight int
	HiddenRows    int

	// Cells holds the visible rows, top to bottom.
	Cells [][]Cell

	// Active piece, present unless the run is between pieces or over.
	HasActive   bool
	ActiveShape Shape
	ActiveCells [4]Offset

	// Ghost is the hard-drop landing pose of the active piece.
	GhostCells [4]Offset

	// Hold slot.
	HasHold   bool
	HoldShape Shape
	HoldUsed  bool

	// Preview lists the upcoming shapes, soonest first.
	Preview []Shape

	// Scoring.
	Score int
	Level int
	Lines int

	// State machine and mode progress.
	Phase       Phase
	Outcome     Outcome
	Mode        Mode
	Elapsed     time.Duration
	Remaining   time.Duration // Ultra only; zero otherwise
	TargetLines int           // Sprint only; zero otherwise
	LastCleared int           // rows removed by the most recent lock
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Width:         s.rules.Width,
		VisibleHeight: s.rules.VisibleHeight,
		HiddenRows:    s.rules.HiddenRows,
		Cells:         s.board.VisibleRows(),
		HasActive:     s.hasActive,
		HasHold:       s.hasHeld,
		HoldShape:     s.held,
		HoldUsed:      s.holdUsed,
		Preview:       s.queue.Preview(),
		Score:         s.stats.Score,
		Level:         s.stats.Level,
		Lines:         s.stats.Lines,
		Phase:         s.phase,
		Outcome:       s.outcome,
		Mode:          s.rules.Mode,
		Elapsed:       s.elapsed,
		LastCleared:   s.lastCleared,
	}

	if s.hasActive {
		snap.ActiveShape = s.active.Shape
		snap.ActiveCells = s.active.Cells()
		snap.GhostCells = s.board.Dropped(s.active).Cells()
	}

	switch s.rules.Mode.Kind {
	case ModeUltra:
		remaining := s.rules.Mode.TimeLimit - s.elapsed
		if remaining < 0 {
			remaining = 0
		}
		snap.Remaining = remaining
	case ModeSprint:
		snap.TargetLines = s.rules.Mode.TargetLines
	}

	return snap
}
