package game

import (
	"math/rand"
	"testing"
)

func TestSevenBagNoRepeatWithinBag(t *testing.T) {
	bag := NewSevenBag(rand.New(rand.NewSource(1)))

	for batch := 0; batch < 100; batch++ {
		seen := make(map[Shape]bool, ShapeCount)
		for i := 0; i < ShapeCount; i++ {
			s := bag.Next()
			if seen[s] {
				t.Fatalf("batch %d: shape %v repeated within a single bag", batch, s)
			}
			seen[s] = true
		}
		if len(seen) != ShapeCount {
			t.Fatalf("batch %d: bag yielded %d distinct shapes, expected %d", batch, len(seen), ShapeCount)
		}
	}
}

func TestSevenBagFairness(t *testing.T) {
	const draws = 10000
	bag := NewSevenBag(rand.New(rand.NewSource(42)))

	counts := make(map[Shape]int, ShapeCount)
	for i := 0; i < draws; i++ {
		counts[bag.Next()]++
	}

	// Bag boundaries guarantee every count is within floor(n/7)..floor(n/7)+1
	low := draws / ShapeCount
	for _, s := range AllShapes() {
		if counts[s] < low || counts[s] > low+1 {
			t.Errorf("shape %v drawn %d times over %d draws, expected %d or %d",
				s, counts[s], draws, low, low+1)
		}
	}
}

func TestSevenBagDeterministic(t *testing.T) {
	a := NewSevenBag(rand.New(rand.NewSource(7)))
	b := NewSevenBag(rand.New(rand.NewSource(7)))

	for i := 0; i < 70; i++ {
		if sa, sb := a.Next(), b.Next(); sa != sb {
			t.Fatalf("draw %d: seeds diverged, %v vs %v", i, sa, sb)
		}
	}
}

func TestSevenBagDifferentSeedsDiffer(t *testing.T) {
	a := NewSevenBag(rand.New(rand.NewSource(1)))
	b := NewSevenBag(rand.New(rand.NewSource(2)))

	same := true
	for i := 0; i < 70; i++ {
		if a.Next() != b.Next() {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds should produce different sequences")
	}
}
