package game

// Stats is the cumulative score/level state of a run. Score and lines only
// grow; level is monotonically non-decreasing.
type Stats struct {
	Score int
	Level int
	Lines int
}

// newStats starts a run at level 1 with nothing scored.
func newStats() Stats {
	return Stats{Level: 1}
}

// addClear awards points for a line clear and advances the level. Clearing
// n rows scores LineScores[n-1] times the level at the moment of the clear;
// zero rows contribute nothing.
func (st *Stats) addClear(cleared int, r Rules) {
	if cleared <= 0 {
		return
	}
	if cleared > len(r.LineScores) {
		cleared = len(r.LineScores)
	}
	st.Score += r.LineScores[cleared-1] * st.Level
	st.Lines += cleared
	st.Level = 1 + st.Lines/r.LinesPerLevel
}

// addSoftDrop awards the per-row soft-drop bonus.
func (st *Stats) addSoftDrop(rows int, r Rules) {
	st.Score += rows * r.SoftDropBonus
}

// addHardDrop awards the per-row hard-drop bonus.
func (st *Stats) addHardDrop(rows int, r Rules) {
	st.Score += rows * r.HardDropBonus
}
