package graph

// Defines a vertex in the adjacency model.
type Vertex struct {
	RawId      string   // Raw (external) ID of the vertex, as it appeared in the input.
	Neighbours []uint32 // Internal IDs of adjacent vertices. Not sorted, not deduplicated.
}
