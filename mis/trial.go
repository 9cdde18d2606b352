package mis

import (
	"math/rand"

	"github.com/ScottSallinen/misrand/graph"
	"github.com/ScottSallinen/misrand/utils"
)

// Selection is one trial's independent set, as internal vertex IDs in the order they were picked.
type Selection []uint32

// Scratch holds the per-worker buffers for RandomMaximal, so repeated trials do not reallocate.
// Not safe for concurrent use.
type Scratch struct {
	order   []uint32
	covered utils.Bitmap
}

func NewScratch(g *graph.Graph) *Scratch {
	return &Scratch{
		order:   make([]uint32, g.NumVertices()),
		covered: utils.NewBitmap(g.NumVertices()),
	}
}

func (s *Scratch) fit(n uint32) {
	if uint32(len(s.order)) != n {
		s.order = make([]uint32, n)
		s.covered = utils.NewBitmap(n)
	}
}

// RandomMaximal builds one maximal independent set: shuffle all vertices, then sweep once,
// taking every vertex not yet covered and covering it along with its neighbours.
// Deterministic for a given rng state. The graph is only read. scratch may be nil.
func RandomMaximal(g *graph.Graph, rng *rand.Rand, scratch *Scratch) Selection {
	n := g.NumVertices()
	if scratch == nil {
		scratch = NewScratch(g)
	}
	scratch.fit(n)

	order := scratch.order
	for i := range order {
		order[i] = uint32(i)
	}
	utils.Shuffle(order, rng)

	covered := scratch.covered
	covered.Zeroes()

	var selection Selection
	for _, vidx := range order {
		if covered.IsSet(vidx) {
			continue
		}
		selection = append(selection, vidx)
		covered.QuickSet(vidx)
		for _, nbr := range g.Neighbours(vidx) {
			covered.QuickSet(nbr)
		}
	}
	return selection
}

// Replay regenerates the trial that ran with the given seed.
func Replay(g *graph.Graph, seed int64) Selection {
	return RandomMaximal(g, rand.New(rand.NewSource(seed)), nil)
}
