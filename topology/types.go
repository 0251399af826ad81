package topology

import (
	"errors"

	"github.com/reactopo/reactopo/particle"
)

// Sentinel errors for topology graph operations (spec.md §4.2, §7).
var (
	// ErrInvalidEdge indicates an attempt to connect a vertex to itself.
	ErrInvalidEdge = errors.New("topology: self-loop is not a valid edge")

	// ErrVertexNotFound indicates a VertexHandle outside the graph's arena.
	ErrVertexNotFound = errors.New("topology: vertex not found")

	// ErrParticleNotFound indicates a particle index with no corresponding vertex.
	ErrParticleNotFound = errors.New("topology: particle index has no vertex in this topology")

	// ErrRateVectorLengthMismatch indicates RateAt was asked for a
	// reaction index outside the rate vector set by the most recent
	// UpdateReactionRates call.
	ErrRateVectorLengthMismatch = errors.New("topology: rate vector length mismatch")
)

// TopologyTypeID is a small unsigned tag governing which structural and
// spatial reactions apply to a topology (see package reaction).
type TopologyTypeID uint16

// VertexHandle addresses one vertex within a single Graph. It is stable
// for the Graph's lifetime and meaningless outside it.
type VertexHandle int

// RateFunc computes a structural reaction's current rate against a
// topology's graph. Graph.UpdateReactionRates accepts a slice of these
// rather than package reaction's StructuralReaction type, which avoids an
// import cycle (reaction imports topology, not the reverse).
type RateFunc func(*Graph) float64

// Vertex is one particle's slot inside a Graph's arena.
type Vertex struct {
	// ParticleIndex is the index into particle.Store this vertex represents.
	ParticleIndex int
	// ParticleType caches the particle's type for fast dispatch without a
	// particle.Store round trip.
	ParticleType particle.TypeID
	// Adjacency lists the handles of vertices connected to this one. It is
	// derived data, rebuilt by Configure from the edge set; callers should
	// treat it read-only.
	Adjacency []VertexHandle
}

type edgeKey struct {
	a, b VertexHandle
}

func normalizedEdge(v1, v2 VertexHandle) edgeKey {
	if v1 <= v2 {
		return edgeKey{v1, v2}
	}
	return edgeKey{v2, v1}
}

// Graph is a single topology's vertex/edge structure plus its current
// per-structural-reaction rate vector (spec.md §3, §4.2).
type Graph struct {
	typ      TopologyTypeID
	vertices []Vertex
	edges    map[edgeKey]struct{}

	particleToVertex map[int]VertexHandle

	rates []float64
}
