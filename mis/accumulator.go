package mis

// Accumulator is the best-so-far state of a search. It is owned by a single goroutine
// (the collector in Search) and offered trial results one at a time, so it needs no lock.
type Accumulator struct {
	Policy  Policy
	Size    int
	Members Selection
	Trial   uint32 // Trial number that produced Members.
	Seed    int64  // Seed of that trial; Replay(g, Seed) gives Members again.
	filled  bool   // False while only the sentinel is held.
}

func NewAccumulator(policy Policy, numVertices uint32) *Accumulator {
	return &Accumulator{Policy: policy, Size: policy.sentinel(numVertices)}
}

// Offer applies the replace rule to one trial result and reports whether it was kept.
// The first offer always replaces the sentinel, even when it only ties it (e.g. a 0-size set on an empty graph,
// or an all-isolated graph whose set equals the vertex count when minimizing).
// The members are copied; the caller keeps ownership of sel.
func (a *Accumulator) Offer(trial uint32, seed int64, sel Selection) bool {
	if a.filled && !a.Policy.Better(len(sel), a.Size) {
		return false
	}
	a.Members = append(a.Members[:0], sel...)
	a.Size = len(a.Members)
	a.Trial = trial
	a.Seed = seed
	a.filled = true
	return true
}
