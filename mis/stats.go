package mis

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/ScottSallinen/misrand/utils"
)

// SizeCount is one histogram bucket: how many trials produced a set of this size.
type SizeCount struct {
	Size   int    `json:"size"`
	Trials uint32 `json:"trials"`
}

// Stats summarises the distribution of trial sizes over a search.
type Stats struct {
	Trials    uint32        `json:"trials"`
	Min       int           `json:"min"`
	Max       int           `json:"max"`
	Mean      float64       `json:"mean"`
	StdDev    float64       `json:"stddev"`
	Histogram []SizeCount   `json:"histogram"`
	Elapsed   time.Duration `json:"elapsed_ns"`
}

// Counts trials per size. A maximal independent set never exceeds the vertex count, so a flat slice suffices.
type sizeTally struct {
	counts []uint32
}

func newSizeTally(numVertices uint32) *sizeTally {
	return &sizeTally{counts: make([]uint32, numVertices+1)}
}

func (t *sizeTally) add(size int) {
	t.counts[size]++
}

func (t *sizeTally) summarise(elapsed time.Duration) Stats {
	s := Stats{Elapsed: elapsed, Trials: utils.Sum(t.counts)}
	if s.Trials == 0 {
		return s
	}

	var sizes, weights []float64
	first := true
	for size, count := range t.counts {
		if count == 0 {
			continue
		}
		if first {
			s.Min, s.Max = size, size
			first = false
		}
		s.Min = utils.Min(s.Min, size)
		s.Max = utils.Max(s.Max, size)
		sizes = append(sizes, float64(size))
		weights = append(weights, float64(count))
		s.Histogram = append(s.Histogram, SizeCount{Size: size, Trials: count})
	}

	if s.Trials == 1 {
		s.Mean = sizes[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(sizes, weights)
	return s
}
