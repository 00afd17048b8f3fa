package game

import (
	"fmt"
	"time"

	"github.com/tetrus-game/tetrus/internal/core"
)

// Rendering layout constants.
const (
	cellWidth  = 2 // each board cell is drawn two characters wide
	panelWidth = 16
	hudHeight  = 2
	ghostRune  = '·'
	blockOpen  = '['
	blockClose = ']'
)

// Render draws the session state into the screen buffer. The buffer is a
// plain character grid; the platform maps colors to the terminal. Rendering
// only reads the snapshot, never the live session internals.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	RenderSnapshot(dst, s.Snapshot())
}

// RenderSnapshot draws a captured snapshot. Split out so remote drivers can
// render a snapshot they received without holding the session.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	boardW := snap.Width*cellWidth + 2
	boardH := snap.VisibleHeight + 2

	if dst.Width() < boardW+panelWidth || dst.Height() < boardH+hudHeight {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+2, "Resize to continue")
		return
	}

	renderHUD(dst, snap)

	boardX := (dst.Width() - boardW - panelWidth) / 2
	boardY := hudHeight

	dst.DrawBox(boardX, boardY, boardW, boardH)
	renderCells(dst, snap, boardX+1, boardY+1)
	renderPanel(dst, snap, boardX+boardW+2, boardY)
	renderOverlay(dst, snap)
}

// renderHUD draws the top status bar.
func renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Tetrus [%s]  Score: %d  Level: %d  Lines: %d",
		snap.Mode.Label(), snap.Score, snap.Level, snap.Lines)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderCells draws locked cells, the ghost landing pose, and the active
// piece, in that order so the active piece wins overlaps.
func renderCells(dst *core.Screen, snap Snapshot, originX, originY int) {
	for y, row := range snap.Cells {
		for x, cell := range row {
			if !cell.Occupied() {
				continue
			}
			drawBlock(dst, originX, originY, x, y, cell.Shape().Color())
		}
	}

	if !snap.HasActive {
		return
	}

	for _, c := range snap.GhostCells {
		vy := c.Y - snap.HiddenRows
		if vy < 0 {
			continue
		}
		dst.SetColored(originX+c.X*cellWidth, originY+vy, ghostRune, core.ColorGray)
		dst.SetColored(originX+c.X*cellWidth+1, originY+vy, ghostRune, core.ColorGray)
	}

	for _, c := range snap.ActiveCells {
		vy := c.Y - snap.HiddenRows
		if vy < 0 {
			continue
		}
		drawBlock(dst, originX, originY, c.X, vy, snap.ActiveShape.Color())
	}
}

func drawBlock(dst *core.Screen, originX, originY, x, y int, color core.Color) {
	dst.SetColored(originX+x*cellWidth, originY+y, blockOpen, color)
	dst.SetColored(originX+x*cellWidth+1, originY+y, blockClose, color)
}

// renderPanel draws the hold slot, the preview queue, and mode progress.
func renderPanel(dst *core.Screen, snap Snapshot, x, y int) {
	dst.DrawText(x, y, "HOLD")
	if snap.HasHold {
		renderMiniShape(dst, snap.HoldShape, x+1, y+1)
	} else {
		dst.DrawTextColored(x+1, y+1, "--", core.ColorGray)
	}

	nextY := y + 4
	dst.DrawText(x, nextY, "NEXT")
	for i, shape := range snap.Preview {
		renderMiniShape(dst, shape, x+1, nextY+1+i*3)
	}

	infoY := nextY + 1 + len(snap.Preview)*3 + 1
	switch snap.Mode.Kind {
	case ModeSprint:
		dst.DrawText(x, infoY, fmt.Sprintf("Goal  %d/%d", snap.Lines, snap.TargetLines))
	case ModeUltra:
		dst.DrawText(x, infoY, fmt.Sprintf("Left  %s", formatClock(snap.Remaining)))
	default:
		dst.DrawText(x, infoY, fmt.Sprintf("Time  %s", formatClock(snap.Elapsed)))
	}
}

// renderMiniShape draws a shape at rotation 0 in a side panel slot.
func renderMiniShape(dst *core.Screen, shape Shape, x, y int) {
	for _, o := range shape.Offsets(0) {
		dst.SetColored(x+o.X*cellWidth, y+o.Y, blockOpen, shape.Color())
		dst.SetColored(x+o.X*cellWidth+1, y+o.Y, blockClose, shape.Color())
	}
}

// renderOverlay draws the pause or end-of-run message box.
func renderOverlay(dst *core.Screen, snap Snapshot) {
	var line1, line2 string
	switch {
	case snap.Phase == PhasePaused:
		line1, line2 = "Paused", "Press P to continue"
	case snap.Phase == PhaseGameOver:
		switch snap.Outcome {
		case OutcomeSprintDone:
			line1 = "Sprint complete!"
		case OutcomeTimeUp:
			line1 = "Time's up!"
		case OutcomeQuit:
			line1 = "Run abandoned"
		default:
			line1 = "Game Over"
		}
		line2 = fmt.Sprintf("Score %d - press R to restart", snap.Score)
	default:
		return
	}

	boxW := len(line1)
	if len(line2) > boxW {
		boxW = len(line2)
	}
	boxW += 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// formatClock renders a duration as MM:SS.
func formatClock(d time.Duration) string {
	total := int(d.Seconds())
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
