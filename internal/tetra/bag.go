package tetra

import "math/rand"

// Bag deals piece kinds from a shuffled sequence of all seven, guaranteeing
// each kind appears exactly once per seven spawns. The cursor names the
// preview (next) kind; exhausting the bag re-shuffles it.
type Bag struct {
	order  [KindCount]Kind
	cursor int
	rng    *rand.Rand
}

// NewBag creates a bag seeded from rng. The opening bag is re-shuffled until
// its first kind is neither S nor Z, so the first piece is never one of the
// overlap-prone shapes.
func NewBag(rng *rand.Rand) *Bag {
	b := &Bag{rng: rng}
	for i := range b.order {
		b.order[i] = Kind(i)
	}
	for {
		b.shuffle()
		if b.order[0] != KindS && b.order[0] != KindZ {
			break
		}
	}
	return b
}

// shuffle permutes the bag in place with Fisher-Yates.
func (b *Bag) shuffle() {
	for i := len(b.order) - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		b.order[i], b.order[j] = b.order[j], b.order[i]
	}
}

// Preview returns the kind the next call to Next will deal.
func (b *Bag) Preview() Kind {
	return b.order[b.cursor]
}

// Next deals the next kind and advances the cursor, re-shuffling and
// resetting to the start when the bag is exhausted.
func (b *Bag) Next() Kind {
	k := b.order[b.cursor]
	b.cursor++
	if b.cursor == KindCount {
		b.cursor = 0
		b.shuffle()
	}
	return k
}
