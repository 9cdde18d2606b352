package mis

import (
	"errors"
	"fmt"

	"github.com/ScottSallinen/misrand/graph"
	"github.com/ScottSallinen/misrand/utils"
)

var (
	ErrNotIndependent = errors.New("mis: selection is not independent")
	ErrNotMaximal     = errors.New("mis: selection is not maximal")
)

func membership(g *graph.Graph, sel Selection) utils.Bitmap {
	in := utils.NewBitmap(g.NumVertices())
	for _, vidx := range sel {
		in.QuickSet(vidx)
	}
	return in
}

// CheckIndependent fails if two distinct members are adjacent. A member listing itself (self-loop) is allowed.
func CheckIndependent(g *graph.Graph, sel Selection) error {
	in := membership(g, sel)
	for _, u := range sel {
		for _, v := range g.Neighbours(u) {
			if v != u && in.IsSet(v) {
				return fmt.Errorf("%w: %q and %q are adjacent", ErrNotIndependent, g.RawId(u), g.RawId(v))
			}
		}
	}
	return nil
}

// CheckMaximal fails if some non-member has no member neighbour, i.e. it could still be added.
func CheckMaximal(g *graph.Graph, sel Selection) error {
	in := membership(g, sel)
	for v := uint32(0); v < g.NumVertices(); v++ {
		if in.IsSet(v) {
			continue
		}
		dominated := false
		for _, nbr := range g.Neighbours(v) {
			if in.IsSet(nbr) {
				dominated = true
				break
			}
		}
		if !dominated {
			return fmt.Errorf("%w: %q has no selected neighbour", ErrNotMaximal, g.RawId(v))
		}
	}
	return nil
}

// Check runs both checks.
func Check(g *graph.Graph, sel Selection) error {
	return errors.Join(CheckIndependent(g, sel), CheckMaximal(g, sel))
}
