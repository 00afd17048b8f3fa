package game

import "math/rand"

// SevenBag generates tetromino shapes with the classic seven-bag algorithm:
// each batch of 7 draws is a uniformly random permutation of all shapes, so
// no shape repeats within a bag and every shape appears once per bag.
//
// The random source is injected so runs are reproducible from a seed.
type SevenBag struct {
	rng *rand.Rand
	bag []Shape
}

// NewSevenBag creates a bag randomizer backed by the given source.
func NewSevenBag(rng *rand.Rand) *SevenBag {
	return &SevenBag{rng: rng}
}

// refill fills the bag with a fresh shuffled permutation of all 7 shapes.
func (b *SevenBag) refill() {
	shapes := AllShapes()
	b.bag = b.bag[:0]
	for _, i := range b.rng.Perm(ShapeCount) {
		b.bag = append(b.bag, shapes[i])
	}
}

// Next returns the next shape, refilling the bag lazily when exhausted.
func (b *SevenBag) Next() Shape {
	if len(b.bag) == 0 {
		b.refill()
	}
	s := b.bag[0]
	b.bag = b.bag[1:]
	return s
}
