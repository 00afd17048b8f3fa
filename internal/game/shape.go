// Package game implements the deterministic falling-block engine: board
// state, tetromino catalog, 7-bag randomizer, hold/preview, scoring, and the
// session state machine. It is fully decoupled from rendering and input so it
// can run headless and be tested move-by-move and tick-by-tick.
package game

import "github.com/tetrus-game/tetrus/internal/core"

// Shape identifies one of the 7 canonical tetromino shapes.
// The set is closed; shapes are never extended at runtime.
type Shape int8

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// ShapeCount is the number of canonical shapes.
const ShapeCount = 7

// RotationCount is the number of rotation states per shape. Indexing is
// circular: rotating clockwise from the last state returns to state 0.
const RotationCount = 4

// Offset is a cell position relative to a piece anchor, or an absolute board
// coordinate depending on context. Y grows downward.
type Offset struct {
	X, Y int
}

// String returns the single-letter shape name.
func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	default:
		return "?"
	}
}

// Color returns the display color tag for the shape.
func (s Shape) Color() core.Color {
	switch s {
	case ShapeI:
		return core.ColorCyan
	case ShapeO:
		return core.ColorYellow
	case ShapeT:
		return core.ColorMagenta
	case ShapeS:
		return core.ColorGreen
	case ShapeZ:
		return core.ColorRed
	case ShapeJ:
		return core.ColorBlue
	case ShapeL:
		return core.ColorOrange
	default:
		return core.ColorDefault
	}
}

// rotationTables holds, per shape, the ordered rotation states as fixed sets
// of relative cell offsets. State 0 is the spawn orientation.
var rotationTables = [ShapeCount][RotationCount][4]Offset{
	ShapeI: {
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
	},
	ShapeO: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	ShapeT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {1, 1}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	ShapeS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	ShapeZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
	ShapeJ: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {2, 1}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	ShapeL: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{0, 0}, {0, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {0, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

// AllShapes lists every shape in enum order.
func AllShapes() [ShapeCount]Shape {
	return [ShapeCount]Shape{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}
}

// Offsets returns the relative cell offsets for the shape at the given
// rotation state. The rotation index is normalized circularly.
func (s Shape) Offsets(rotation int) [4]Offset {
	r := ((rotation % RotationCount) + RotationCount) % RotationCount
	return rotationTables[s][r]
}

// Piece is an active tetromino: shape, rotation state, and board-relative
// anchor position. Pieces are immutable values; movement and rotation return
// new candidates that callers validate against the board.
type Piece struct {
	Shape    Shape
	Rotation int
	X, Y     int
}

// Cells returns the absolute board coordinates of the piece's four blocks.
func (p Piece) Cells() [4]Offset {
	offsets := p.Shape.Offsets(p.Rotation)
	var cells [4]Offset
	for i, o := range offsets {
		cells[i] = Offset{X: p.X + o.X, Y: p.Y + o.Y}
	}
	return cells
}

// Moved returns a copy of the piece shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	return Piece{Shape: p.Shape, Rotation: p.Rotation, X: p.X + dx, Y: p.Y + dy}
}

// Rotated returns a copy of the piece rotated one state clockwise or
// counter-clockwise, wrapping circularly.
func (p Piece) Rotated(clockwise bool) Piece {
	delta := 1
	if !clockwise {
		delta = -1
	}
	rotation := ((p.Rotation+delta)%RotationCount + RotationCount) % RotationCount
	return Piece{Shape: p.Shape, Rotation: rotation, X: p.X, Y: p.Y}
}

// SpawnPiece returns the canonical spawn pose for the shape: rotation 0,
// horizontally centered on a board of the given width, anchored at row 0.
func SpawnPiece(s Shape, boardWidth int) Piece {
	offsets := s.Offsets(0)
	minX, maxX := offsets[0].X, offsets[0].X
	for _, o := range offsets[1:] {
		if o.X < minX {
			minX = o.X
		}
		if o.X > maxX {
			maxX = o.X
		}
	}
	width := maxX - minX + 1
	return Piece{Shape: s, Rotation: 0, X: (boardWidth-width)/2 - minX, Y: 0}
}
