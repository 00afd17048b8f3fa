package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/tetrus-game/tetrus/internal/core"
)

// Phase is the session state machine position.
type Phase int

const (
	// PhaseSpawning: the next piece is being taken from the preview queue.
	PhaseSpawning Phase = iota
	// PhaseFalling: the active piece descends on gravity ticks.
	PhaseFalling
	// PhaseLocking: the piece is grounded; the lock delay is running.
	PhaseLocking
	// PhaseClearing: full rows are being removed. Synchronous with the lock
	// step, but exposed so renderers can observe the clear.
	PhaseClearing
	// PhasePaused: gravity and mode clocks are suspended.
	PhasePaused
	// PhaseGameOver: the run ended; see Outcome for the reason.
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseClearing:
		return "clearing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Session owns one run of the game: board, active piece, hold slot, preview
// queue, scoring, and the state machine that ties them together. It is
// driven entirely from outside through Apply and Advance; it never blocks,
// never does I/O, and never owns a loop.
//
// A session is single-owner: exactly one goroutine may drive it.
type Session struct {
	rules Rules
	board *Board
	bag   *SevenBag
	queue *pieceQueue

	active    Piece
	hasActive bool

	held     Shape
	hasHeld  bool
	holdUsed bool

	stats   Stats
	phase   Phase
	resume  Phase // phase to restore when unpausing
	outcome Outcome

	gravityAcc  time.Duration
	lockAcc     time.Duration
	elapsed     time.Duration
	lastCleared int
}

// NewSession validates the rules and starts a run with the first piece
// spawned. The seed fixes the bag sequence, so identical seeds and identical
// action/tick schedules replay identically.
func NewSession(rules Rules, seed int64) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	bag := NewSevenBag(rng)
	s := &Session{
		rules: rules,
		board: NewBoard(rules.Width, rules.VisibleHeight, rules.HiddenRows),
		bag:   bag,
		queue: newPieceQueue(bag, rules.PreviewCount),
		stats: newStats(),
	}
	s.spawnNext()
	return s, nil
}

// Rules returns the session's immutable ruleset.
func (s *Session) Rules() Rules { return s.rules }

// Phase returns the current state machine position.
func (s *Session) Phase() Phase { return s.phase }

// Outcome returns why the run ended, or OutcomeNone while it is going.
func (s *Session) Outcome() Outcome { return s.outcome }

// Stats returns the cumulative score/level/lines state.
func (s *Session) Stats() Stats { return s.stats }

// Elapsed returns run time accumulated through Advance, excluding pauses.
func (s *Session) Elapsed() time.Duration { return s.elapsed }

// Over reports whether the run has ended for any reason.
func (s *Session) Over() bool { return s.phase == PhaseGameOver }

// Apply processes one discrete player action. Requests that would violate a
// board or cycle invariant are silently ignored; the session state is
// observable through Snapshot afterwards either way.
func (s *Session) Apply(action core.Action) {
	if s.phase == PhaseGameOver {
		return
	}

	// While paused only unpause and quit are honored.
	if s.phase == PhasePaused {
		switch action {
		case core.ActionPause:
			s.phase = s.resume
		case core.ActionQuit:
			s.finish(OutcomeQuit)
		}
		return
	}

	switch action {
	case core.ActionQuit:
		s.finish(OutcomeQuit)
	case core.ActionPause:
		s.resume = s.phase
		s.phase = PhasePaused
	case core.ActionMoveLeft:
		s.tryShift(-1, 0)
	case core.ActionMoveRight:
		s.tryShift(1, 0)
	case core.ActionRotateCW:
		s.tryRotate(true)
	case core.ActionRotateCCW:
		s.tryRotate(false)
	case core.ActionSoftDrop:
		s.softDrop()
	case core.ActionHardDrop:
		s.hardDrop()
	case core.ActionHold:
		s.hold()
	}
}

// Advance moves the session clock forward. The driver calls it periodically;
// the session tracks accumulated time against the gravity interval, the lock
// delay, and the ultra time limit. Nothing advances while paused or after
// the run ends.
func (s *Session) Advance(dt time.Duration) {
	if dt < 0 || s.phase == PhasePaused || s.phase == PhaseGameOver {
		return
	}

	s.elapsed += dt
	if s.rules.Mode.Kind == ModeUltra && s.elapsed >= s.rules.Mode.TimeLimit {
		s.elapsed = s.rules.Mode.TimeLimit
		s.finish(OutcomeTimeUp)
		return
	}

	switch s.phase {
	case PhaseFalling:
		s.gravityAcc += dt
		interval := s.rules.GravityInterval(s.stats.Level)
		for s.gravityAcc >= interval {
			s.gravityAcc -= interval
			if !s.tryDescend() {
				s.ground()
				break
			}
		}
	case PhaseLocking:
		s.lockAcc += dt
		if s.lockAcc >= s.rules.LockDelay {
			s.lockPiece()
		}
	}
}

// tryShift attempts a one-cell translation, ignoring the request if the
// candidate pose collides. A successful shift restarts the lock delay and
// may lift a grounded piece back to falling.
func (s *Session) tryShift(dx, dy int) bool {
	if !s.hasActive {
		return false
	}
	candidate := s.active.Moved(dx, dy)
	if !s.board.CanPlace(candidate) {
		return false
	}
	s.active = candidate
	s.afterSuccessfulMove()
	return true
}

// tryRotate attempts the new rotation state at the current position, then
// walks the configured kick offsets in order, accepting the first
// collision-free candidate. If every candidate collides the rotation is
// rejected and the piece is unchanged.
func (s *Session) tryRotate(clockwise bool) bool {
	if !s.hasActive {
		return false
	}
	rotated := s.active.Rotated(clockwise)
	for _, kick := range s.rules.Kicks {
		candidate := rotated.Moved(kick.X, kick.Y)
		if s.board.CanPlace(candidate) {
			s.active = candidate
			s.afterSuccessfulMove()
			return true
		}
	}
	return false
}

// afterSuccessfulMove resets the lock delay and re-evaluates grounding.
func (s *Session) afterSuccessfulMove() {
	s.lockAcc = 0
	if s.phase == PhaseLocking && s.board.CanPlace(s.active.Moved(0, 1)) {
		s.phase = PhaseFalling
	}
}

// tryDescend lowers the piece one row if collision-free.
func (s *Session) tryDescend() bool {
	if !s.hasActive {
		return false
	}
	candidate := s.active.Moved(0, 1)
	if !s.board.CanPlace(candidate) {
		return false
	}
	s.active = candidate
	return true
}

// ground transitions a piece that failed to descend into the locking state.
// With no lock delay configured it commits immediately.
func (s *Session) ground() {
	if s.rules.LockDelay <= 0 {
		s.lockPiece()
		return
	}
	s.phase = PhaseLocking
	s.lockAcc = 0
}

// softDrop descends one row, awarding the soft-drop bonus, and resets the
// gravity accumulator so the manual step replaces the next gravity step.
// Against the floor it starts the lock sequence instead.
func (s *Session) softDrop() {
	if !s.hasActive {
		return
	}
	if s.tryDescend() {
		s.stats.addSoftDrop(1, s.rules)
		s.gravityAcc = 0
		return
	}
	if s.phase == PhaseFalling {
		s.ground()
	}
}

// hardDrop slams the piece to its landing pose, awards the per-row bonus,
// and locks immediately, bypassing the lock delay.
func (s *Session) hardDrop() {
	if !s.hasActive {
		return
	}
	distance := s.board.DropDistance(s.active)
	s.active = s.active.Moved(0, distance)
	s.stats.addHardDrop(distance, s.rules)
	s.lockPiece()
}

// hold swaps the active piece with the hold slot, once per piece-lock cycle.
// The first hold stores the shape and pulls the next piece from the preview;
// later holds swap, resetting the active piece to its spawn pose. If the
// swapped-in spawn pose collides the run ends, matching normal spawn rules.
func (s *Session) hold() {
	if !s.hasActive || s.holdUsed {
		return
	}
	if !s.hasHeld {
		s.held = s.active.Shape
		s.hasHeld = true
		s.holdUsed = true
		s.spawnNext()
		return
	}

	replacement := SpawnPiece(s.held, s.rules.Width)
	if !s.board.CanPlace(replacement) {
		s.hasActive = false
		s.finish(OutcomeTopOut)
		return
	}
	s.held, s.active = s.active.Shape, replacement
	s.holdUsed = true
	s.lockAcc = 0
	s.gravityAcc = 0
	s.phase = PhaseFalling
}

// lockPiece runs the lock sequence atomically: commit the piece, clear full
// rows, score, reset the hold flag, and spawn the next piece. The clearing
// step is synchronous; its result stays observable through LastCleared.
func (s *Session) lockPiece() {
	if !s.hasActive {
		return
	}
	s.phase = PhaseLocking
	if err := s.board.Lock(s.active); err != nil {
		// A failed lock means a collision check was skipped upstream. That is
		// a programming error, not a runtime condition to recover from.
		panic(fmt.Sprintf("game: corrupted session state: %v", err))
	}
	s.hasActive = false

	s.phase = PhaseClearing
	cleared := s.board.ClearFullLines()
	s.lastCleared = cleared
	s.stats.addClear(cleared, s.rules)
	s.holdUsed = false

	if s.rules.Mode.Kind == ModeSprint && s.stats.Lines >= s.rules.Mode.TargetLines {
		s.finish(OutcomeSprintDone)
		return
	}

	s.spawnNext()
}

// spawnNext takes the next shape from the preview queue and places it at the
// canonical spawn pose. A blocked spawn ends the run.
func (s *Session) spawnNext() {
	s.phase = PhaseSpawning
	shape := s.queue.Next()
	piece := SpawnPiece(shape, s.rules.Width)
	if !s.board.CanPlace(piece) {
		s.hasActive = false
		s.finish(OutcomeTopOut)
		return
	}
	s.active = piece
	s.hasActive = true
	s.gravityAcc = 0
	s.lockAcc = 0
	s.phase = PhaseFalling
}

// finish terminates the run with the given outcome. Terminal for the run;
// drivers start a fresh session to play again.
func (s *Session) finish(outcome Outcome) {
	s.phase = PhaseGameOver
	s.outcome = outcome
}
