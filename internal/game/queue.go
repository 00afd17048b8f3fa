package game

// pieceQueue is the upcoming-piece window over the bag randomizer. Its
// length is fixed: every consumption triggers exactly one refill draw.
type pieceQueue struct {
	bag     *SevenBag
	preview []Shape
}

func newPieceQueue(bag *SevenBag, count int) *pieceQueue {
	q := &pieceQueue{bag: bag, preview: make([]Shape, 0, count)}
	for i := 0; i < count; i++ {
		q.preview = append(q.preview, bag.Next())
	}
	return q
}

// Next pops the front shape and replenishes the window from the bag.
func (q *pieceQueue) Next() Shape {
	s := q.preview[0]
	copy(q.preview, q.preview[1:])
	q.preview[len(q.preview)-1] = q.bag.Next()
	return s
}

// Preview returns a copy of the upcoming shapes, soonest first.
func (q *pieceQueue) Preview() []Shape {
	out := make([]Shape, len(q.preview))
	copy(out, q.preview)
	return out
}
