package game

import "fmt"

// Cell is one grid position: empty, or occupied with the tag of the shape
// that locked there. The tag drives rendering colors.
type Cell int8

// CellEmpty marks an unoccupied cell.
const CellEmpty Cell = -1

// Shape returns the shape tag of an occupied cell.
func (c Cell) Shape() Shape {
	return Shape(c)
}

// Occupied reports whether the cell holds a locked block.
func (c Cell) Occupied() bool {
	return c != CellEmpty
}

// Board is the playfield grid: a fixed-width column of rows, the topmost
// hiddenRows of which sit above the visible area as a spawn buffer. The grid
// is mutated only by Lock and ClearFullLines; no occupied cell ever exists
// outside its bounds.
type Board struct {
	width         int
	visibleHeight int
	hiddenRows    int
	grid          [][]Cell
}

// NewBoard creates an empty board. Dimensions are assumed validated by
// Rules.Validate before a session is created.
func NewBoard(width, visibleHeight, hiddenRows int) *Board {
	b := &Board{
		width:         width,
		visibleHeight: visibleHeight,
		hiddenRows:    hiddenRows,
	}
	b.grid = make([][]Cell, b.TotalHeight())
	for y := range b.grid {
		b.grid[y] = emptyRow(width)
	}
	return b
}

func emptyRow(width int) []Cell {
	row := make([]Cell, width)
	for x := range row {
		row[x] = CellEmpty
	}
	return row
}

// Width returns the board width in columns.
func (b *Board) Width() int { return b.width }

// VisibleHeight returns the number of rows shown to the player.
func (b *Board) VisibleHeight() int { return b.visibleHeight }

// HiddenRows returns the number of spawn-buffer rows above the visible area.
func (b *Board) HiddenRows() int { return b.hiddenRows }

// TotalHeight returns the full grid height including hidden rows.
func (b *Board) TotalHeight() int { return b.visibleHeight + b.hiddenRows }

// Reset empties every cell. Used when starting a fresh run.
func (b *Board) Reset() {
	for y := range b.grid {
		for x := range b.grid[y] {
			b.grid[y][x] = CellEmpty
		}
	}
}

// Inside reports whether (x, y) lies within the grid bounds.
func (b *Board) Inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.TotalHeight()
}

// CellAt returns the cell at (x, y), or CellEmpty for out-of-bounds reads.
func (b *Board) CellAt(x, y int) Cell {
	if !b.Inside(x, y) {
		return CellEmpty
	}
	return b.grid[y][x]
}

// CanPlace is the collision test: it returns false if any block of the piece
// at its current pose lies outside the grid or overlaps a locked cell.
// Pure; the board is not mutated.
func (b *Board) CanPlace(p Piece) bool {
	for _, c := range p.Cells() {
		if !b.Inside(c.X, c.Y) {
			return false
		}
		if b.grid[c.Y][c.X].Occupied() {
			return false
		}
	}
	return true
}

// Lock writes the piece's blocks into the grid with its shape tag.
// Callers must have validated the pose with CanPlace first; locking onto an
// occupied or out-of-bounds cell is a contract violation and returns an
// error without mutating the grid.
func (b *Board) Lock(p Piece) error {
	cells := p.Cells()
	for _, c := range cells {
		if !b.Inside(c.X, c.Y) {
			return fmt.Errorf("game: lock out of bounds at (%d, %d)", c.X, c.Y)
		}
		if b.grid[c.Y][c.X].Occupied() {
			return fmt.Errorf("game: lock onto occupied cell (%d, %d)", c.X, c.Y)
		}
	}
	for _, c := range cells {
		b.grid[c.Y][c.X] = Cell(p.Shape)
	}
	return nil
}

// ClearFullLines removes every fully-occupied row, shifts all rows above each
// cleared row down by one, and returns the number of rows cleared (0-4 for a
// single lock). Relative order of the surviving rows is preserved.
func (b *Board) ClearFullLines() int {
	cleared := 0
	kept := make([][]Cell, 0, len(b.grid))
	for _, row := range b.grid {
		if rowFull(row) {
			cleared++
		} else {
			kept = append(kept, row)
		}
	}
	if cleared == 0 {
		return 0
	}

	fresh := make([][]Cell, 0, len(b.grid))
	for i := 0; i < cleared; i++ {
		fresh = append(fresh, emptyRow(b.width))
	}
	b.grid = append(fresh, kept...)
	return cleared
}

func rowFull(row []Cell) bool {
	for _, c := range row {
		if !c.Occupied() {
			return false
		}
	}
	return true
}

// SpawnBlocked reports whether the shape's canonical spawn pose collides.
// A blocked spawn ends the run.
func (b *Board) SpawnBlocked(s Shape) bool {
	return !b.CanPlace(SpawnPiece(s, b.width))
}

// DropDistance returns how many rows the piece can descend before the next
// descent would collide.
func (b *Board) DropDistance(p Piece) int {
	distance := 0
	for b.CanPlace(p.Moved(0, distance+1)) {
		distance++
	}
	return distance
}

// Dropped returns the piece translated to its hard-drop landing pose.
func (b *Board) Dropped(p Piece) Piece {
	return p.Moved(0, b.DropDistance(p))
}

// VisibleRows returns a copy of the rows below the hidden spawn buffer,
// top to bottom.
func (b *Board) VisibleRows() [][]Cell {
	rows := make([][]Cell, b.visibleHeight)
	for i := range rows {
		src := b.grid[b.hiddenRows+i]
		rows[i] = make([]Cell, b.width)
		copy(rows[i], src)
	}
	return rows
}

// ColumnHeights returns, per column, the stack height measured from the
// bottom of the grid. Useful for diagnostics and tests.
func (b *Board) ColumnHeights() []int {
	heights := make([]int, b.width)
	total := b.TotalHeight()
	for x := 0; x < b.width; x++ {
		for y := 0; y < total; y++ {
			if b.grid[y][x].Occupied() {
				heights[x] = total - y
				break
			}
		}
	}
	return heights
}
