package topology

import "github.com/reactopo/reactopo/particle"

// NewGraph returns a graph of the given topology type with a single
// vertex bound to (particleIndex, particleType). Every topology begins
// life as a one-particle graph; AppendParticle and AppendTopology grow it.
func NewGraph(typ TopologyTypeID, particleIndex int, particleType particle.TypeID) *Graph {
	g := &Graph{
		typ:              typ,
		edges:            make(map[edgeKey]struct{}),
		particleToVertex: make(map[int]VertexHandle),
	}
	g.addVertex(particleIndex, particleType)
	return g
}

// addVertex appends a new vertex to the arena and returns its handle.
func (g *Graph) addVertex(particleIndex int, particleType particle.TypeID) VertexHandle {
	h := VertexHandle(len(g.vertices))
	g.vertices = append(g.vertices, Vertex{
		ParticleIndex: particleIndex,
		ParticleType:  particleType,
	})
	g.particleToVertex[particleIndex] = h
	return h
}

// Type returns the topology's current type tag.
func (g *Graph) Type() TopologyTypeID { return g.typ }

// SetType changes the topology's type tag (spatial/structural reactions
// retype the topology as a whole; see package engine).
func (g *Graph) SetType(t TopologyTypeID) { g.typ = t }

// NParticles returns the number of vertices (== number of particles) in
// the topology (spec.md §4.2's n_particles()).
func (g *Graph) NParticles() int { return len(g.vertices) }

// Vertices returns all vertex handles in ascending (arena) order.
func (g *Graph) Vertices() []VertexHandle {
	out := make([]VertexHandle, len(g.vertices))
	for i := range g.vertices {
		out[i] = VertexHandle(i)
	}
	return out
}

// VertexForParticle returns the vertex bound to particleIndex.
func (g *Graph) VertexForParticle(particleIndex int) (VertexHandle, bool) {
	h, ok := g.particleToVertex[particleIndex]
	return h, ok
}

// ParticleIndexOf returns the particle index backing v.
func (g *Graph) ParticleIndexOf(v VertexHandle) (int, error) {
	vx, err := g.vertex(v)
	if err != nil {
		return 0, err
	}
	return vx.ParticleIndex, nil
}

// ParticleTypeOf returns the cached particle type of v.
func (g *Graph) ParticleTypeOf(v VertexHandle) (particle.TypeID, error) {
	vx, err := g.vertex(v)
	if err != nil {
		return 0, err
	}
	return vx.ParticleType, nil
}

func (g *Graph) vertex(v VertexHandle) (*Vertex, error) {
	if v < 0 || int(v) >= len(g.vertices) {
		return nil, ErrVertexNotFound
	}
	return &g.vertices[v], nil
}
