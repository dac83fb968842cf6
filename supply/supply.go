// Package supply produces the unending sequence of piece kinds using the 7-bag randomizer.
package supply

import (
	"math/rand/v2"

	"github.com/lixenwraith/term-tetris/constant"
	"github.com/lixenwraith/term-tetris/tetromino"
)

// Supply hands out kinds through a lookahead queue backed by two shuffled bags
// Each bag yields every kind exactly once before the next bag is drawn from
type Supply struct {
	rng     *rand.Rand
	bag     []tetromino.Kind
	nextBag []tetromino.Kind
	queue   []tetromino.Kind
}

// New creates a supply drawing randomness from src and fills the lookahead queue
func New(src rand.Source) *Supply {
	s := &Supply{
		rng:   rand.New(src),
		queue: make([]tetromino.Kind, 0, constant.PreviewDepth+1),
	}
	s.bag = s.generateBag()
	s.nextBag = s.generateBag()
	s.refill()
	return s
}

// NewSeeded creates a deterministic supply; equal seeds produce equal sequences
func NewSeeded(seed uint64) *Supply {
	return New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandom creates a supply seeded from the runtime's random source
func NewRandom() *Supply {
	return New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Next pops the head of the lookahead queue and tops the queue back up
func (s *Supply) Next() tetromino.Kind {
	k := s.queue[0]
	s.queue = append(s.queue[:0], s.queue[1:]...)
	s.refill()
	return k
}

// Preview returns a copy of the upcoming kinds, nearest first
func (s *Supply) Preview() []tetromino.Kind {
	out := make([]tetromino.Kind, len(s.queue))
	copy(out, s.queue)
	return out
}

// refill moves kinds from the bags into the queue until it holds PreviewDepth entries
func (s *Supply) refill() {
	for len(s.queue) < constant.PreviewDepth {
		if len(s.bag) == 0 {
			s.bag, s.nextBag = s.nextBag, s.generateBag()
		}
		s.queue = append(s.queue, s.bag[0])
		s.bag = s.bag[1:]
	}
}

// generateBag returns a uniformly random permutation of all kinds (Fisher-Yates via Shuffle)
func (s *Supply) generateBag() []tetromino.Kind {
	kinds := tetromino.Kinds()
	bag := make([]tetromino.Kind, len(kinds))
	copy(bag, kinds[:])
	s.rng.Shuffle(len(bag), func(i, j int) {
		bag[i], bag[j] = bag[j], bag[i]
	})
	return bag
}
