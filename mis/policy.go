package mis

// Policy decides which of two trial sizes is kept.
type Policy uint8

const (
	Maximize Policy = iota // Keep the largest maximal independent set found. Default.
	Minimize               // Keep the smallest maximal independent set found.
)

func (p Policy) String() string {
	switch p {
	case Maximize:
		return "maximize"
	case Minimize:
		return "minimize"
	}
	return "unknown"
}

// Better reports whether candidate strictly beats best. Ties never replace, so the first writer wins.
func (p Policy) Better(candidate, best int) bool {
	if p == Minimize {
		return candidate < best
	}
	return candidate > best
}

// Starting size of the accumulator: nothing real is smaller than 0 or larger than the vertex count.
func (p Policy) sentinel(numVertices uint32) int {
	if p == Minimize {
		return int(numVertices)
	}
	return 0
}

func (p Policy) valid() bool {
	return p == Maximize || p == Minimize
}
