package graph

// Graph is the undirected adjacency model. Raw (external) vertex IDs are arbitrary strings,
// interned to dense internal indexes in order of first appearance in the input.
// Built once, then read concurrently without synchronization; nothing may mutate it after loading.
type Graph struct {
	VertexMap map[string]uint32 // Raw to internal.
	Vertices  []Vertex          // Indexed by internal ID.
	EdgeCount uint64            // Number of input edges (each stored in both directions).
}

func New() *Graph {
	return &Graph{VertexMap: make(map[string]uint32)}
}

// NumVertices returns the number of distinct vertices seen in the input.
func (g *Graph) NumVertices() uint32 {
	return uint32(len(g.Vertices))
}

// Neighbours of internal vertex v, in insertion order. Duplicates are kept.
// The returned slice belongs to the graph; do not modify it.
func (g *Graph) Neighbours(v uint32) []uint32 {
	return g.Vertices[v].Neighbours
}

// RawId returns the external identifier of internal vertex v.
func (g *Graph) RawId(v uint32) string {
	return g.Vertices[v].RawId
}

// Index returns the internal ID of a raw identifier.
func (g *Graph) Index(raw string) (uint32, bool) {
	vidx, ok := g.VertexMap[raw]
	return vidx, ok
}

// Adjacent reports whether b appears in the neighbour list of a.
func (g *Graph) Adjacent(a, b uint32) bool {
	for _, n := range g.Vertices[a].Neighbours {
		if n == b {
			return true
		}
	}
	return false
}

// AddEdge inserts the edge in both directions, creating either endpoint if needed.
// A self-loop (a == b) makes the vertex its own neighbour, twice.
func (g *Graph) AddEdge(srcRaw, dstRaw string) {
	sidx := g.vertexIndexOrCreate(srcRaw)
	didx := g.vertexIndexOrCreate(dstRaw)
	g.Vertices[sidx].Neighbours = append(g.Vertices[sidx].Neighbours, didx)
	g.Vertices[didx].Neighbours = append(g.Vertices[didx].Neighbours, sidx)
	g.EdgeCount++
}

func (g *Graph) vertexIndexOrCreate(raw string) uint32 {
	if vidx, ok := g.VertexMap[raw]; ok {
		return vidx
	}
	vidx := uint32(len(g.Vertices))
	g.VertexMap[raw] = vidx
	g.Vertices = append(g.Vertices, Vertex{RawId: raw})
	return vidx
}

// RawIds maps a list of internal IDs back to their external identifiers.
func (g *Graph) RawIds(vidxs []uint32) []string {
	raws := make([]string, len(vidxs))
	for i, v := range vidxs {
		raws[i] = g.Vertices[v].RawId
	}
	return raws
}
