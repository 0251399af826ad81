package topology

// AddEdge connects v1 and v2. It is idempotent: adding an already-present
// edge is a no-op. A self-loop (v1 == v2) fails with ErrInvalidEdge, per
// spec.md §3's topology invariant ("no self-loops, no duplicates").
func (g *Graph) AddEdge(v1, v2 VertexHandle) error {
	if v1 == v2 {
		return ErrInvalidEdge
	}
	if _, err := g.vertex(v1); err != nil {
		return err
	}
	if _, err := g.vertex(v2); err != nil {
		return err
	}
	g.edges[normalizedEdge(v1, v2)] = struct{}{}
	return nil
}

// ContainsEdge reports whether v1-v2 is currently an edge.
func (g *Graph) ContainsEdge(v1, v2 VertexHandle) bool {
	if v1 == v2 {
		return false
	}
	_, ok := g.edges[normalizedEdge(v1, v2)]
	return ok
}

// EdgeCount returns the number of edges currently in the topology.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns every edge as a (v1, v2) pair with v1 < v2, in no
// particular order; callers that need determinism should sort the result.
func (g *Graph) Edges() [][2]VertexHandle {
	out := make([][2]VertexHandle, 0, len(g.edges))
	for k := range g.edges {
		out = append(out, [2]VertexHandle{k.a, k.b})
	}
	return out
}

// ConnectedComponents partitions the vertex set into maximal connected
// subsets using breadth-first search over the adjacency lists built by
// Configure (grounded on the teacher library's gridgraph.ConnectedComponents
// visited-array BFS idiom). Configure must have been called since the last
// edge mutation, or the result may be stale.
func (g *Graph) ConnectedComponents() [][]VertexHandle {
	visited := make([]bool, len(g.vertices))
	var components [][]VertexHandle

	for start := range g.vertices {
		if visited[start] {
			continue
		}
		queue := []VertexHandle{VertexHandle(start)}
		visited[start] = true
		var comp []VertexHandle

		for qi := 0; qi < len(queue); qi++ {
			v := queue[qi]
			comp = append(comp, v)
			for _, n := range g.vertices[v].Adjacency {
				if !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}
		components = append(components, comp)
	}
	return components
}
