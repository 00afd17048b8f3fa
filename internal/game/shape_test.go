package game

import "testing"

func TestShapeOffsetsHaveFourDistinctCells(t *testing.T) {
	for _, s := range AllShapes() {
		for r := 0; r < RotationCount; r++ {
			offsets := s.Offsets(r)
			seen := make(map[Offset]bool, 4)
			for _, o := range offsets {
				if seen[o] {
					t.Errorf("shape %v rotation %d repeats offset %+v", s, r, o)
				}
				seen[o] = true
				if o.X < 0 || o.Y < 0 {
					t.Errorf("shape %v rotation %d has negative offset %+v", s, r, o)
				}
			}
			if len(seen) != 4 {
				t.Errorf("shape %v rotation %d has %d cells, expected 4", s, r, len(seen))
			}
		}
	}
}

func TestShapeOffsetsCircularIndexing(t *testing.T) {
	for _, s := range AllShapes() {
		if s.Offsets(RotationCount) != s.Offsets(0) {
			t.Errorf("shape %v: Offsets(%d) should wrap to state 0", s, RotationCount)
		}
		if s.Offsets(-1) != s.Offsets(RotationCount-1) {
			t.Errorf("shape %v: Offsets(-1) should wrap to the last state", s)
		}
	}
}

func TestPieceRotatedWraps(t *testing.T) {
	p := Piece{Shape: ShapeT, Rotation: 0, X: 5, Y: 5}

	cw := p
	for i := 0; i < RotationCount; i++ {
		cw = cw.Rotated(true)
	}
	if cw != p {
		t.Errorf("four clockwise rotations should return to the start, got %+v", cw)
	}

	ccw := p.Rotated(false)
	if ccw.Rotation != RotationCount-1 {
		t.Errorf("counter-clockwise from state 0 should reach state %d, got %d",
			RotationCount-1, ccw.Rotation)
	}
	if ccw.X != p.X || ccw.Y != p.Y {
		t.Error("rotation must not move the anchor")
	}
}

func TestPieceMoved(t *testing.T) {
	p := Piece{Shape: ShapeJ, Rotation: 2, X: 3, Y: 7}
	m := p.Moved(-1, 2)

	if m.X != 2 || m.Y != 9 {
		t.Errorf("Moved(-1, 2) anchor = (%d, %d), expected (2, 9)", m.X, m.Y)
	}
	if m.Shape != p.Shape || m.Rotation != p.Rotation {
		t.Error("Moved must preserve shape and rotation")
	}
	if p.X != 3 || p.Y != 7 {
		t.Error("Moved must not mutate the original piece")
	}
}

func TestPieceCellsAbsolute(t *testing.T) {
	p := Piece{Shape: ShapeO, Rotation: 0, X: 4, Y: 10}
	expected := [4]Offset{{4, 10}, {5, 10}, {4, 11}, {5, 11}}

	if p.Cells() != expected {
		t.Errorf("Cells() = %v, expected %v", p.Cells(), expected)
	}
}

func TestSpawnPieceCentered(t *testing.T) {
	const width = 12
	for _, s := range AllShapes() {
		p := SpawnPiece(s, width)
		if p.Rotation != 0 {
			t.Errorf("shape %v spawn rotation = %d, expected 0", s, p.Rotation)
		}
		for _, c := range p.Cells() {
			if c.X < 0 || c.X >= width {
				t.Errorf("shape %v spawn cell %+v outside [0, %d)", s, c, width)
			}
			if c.Y < 0 {
				t.Errorf("shape %v spawn cell %+v above the board", s, c)
			}
		}
	}

	// The I piece is 4 wide on a 12-wide board: columns 4-7
	i := SpawnPiece(ShapeI, width)
	if i.X != 4 || i.Y != 0 {
		t.Errorf("I spawn anchor = (%d, %d), expected (4, 0)", i.X, i.Y)
	}
}

func TestShapeString(t *testing.T) {
	names := map[Shape]string{
		ShapeI: "I", ShapeO: "O", ShapeT: "T", ShapeS: "S",
		ShapeZ: "Z", ShapeJ: "J", ShapeL: "L",
	}
	for s, want := range names {
		if s.String() != want {
			t.Errorf("%v.String() = %q, expected %q", s, s.String(), want)
		}
	}
}
