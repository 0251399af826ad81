package adapters

import "github.com/reactopo/reactopo/particle"

// NeighborList is the spatial index the event gatherer (package engine,
// component C5) scans each step. Implementations must reflect the state
// of the particle store at the moment Engine.Perform is entered (spec.md
// §6) and must not be mutated while a step is in progress.
type NeighborList interface {
	// NCells returns the number of cells to iterate.
	NCells() int
	// ParticlesInCell returns the indices of particles currently assigned
	// to cell, in a deterministic order.
	ParticlesInCell(cell int) []int
	// ForEachNeighbor invokes f once per spatial neighbor of particle p,
	// which is known to reside in cell. f must not mutate the neighbor
	// list or the particle store.
	ForEachNeighbor(p int, cell int, f func(q int))
}

// Rng is the deterministic random source the executor (component C6)
// draws Bernoulli trials from (spec.md §4.7, §6: "deterministic on seed
// for reproducibility tests").
type Rng interface {
	// UniformReal returns a value in [0, 1).
	UniformReal() float64
	// UniformRealRange returns a value in [a, b).
	UniformRealRange(a, b float64) float64
}

// Context exposes the simulation-wide parameters the engine needs but
// does not own (spec.md §4.7, §6): box geometry, thermal energy, the
// integration time step, a periodicity-aware distance function, and the
// particle-type registry.
type Context interface {
	BoxSize() particle.Vec3
	PeriodicBoundary() [3]bool
	KBT() float64
	TimeStep() float64
	// DistSquared returns the (periodicity-respecting) squared distance
	// between particles p and q.
	DistSquared(p, q int) float64
	TypeRegistry() *particle.TypeRegistry
}
