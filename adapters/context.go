package adapters

import (
	"math"

	"github.com/reactopo/reactopo/particle"
)

// BasicContext is a minimal, dependency-free Context implementation
// suitable for tests and the demo runner: a fixed box, periodicity mask,
// kBT, and time step, with DistSquared resolved against a particle.Store
// using minimum-image convention on periodic axes.
type BasicContext struct {
	Box      particle.Vec3
	Periodic [3]bool
	KbT      float64
	Dt       float64
	Store    *particle.Store
	Types    *particle.TypeRegistry
}

func (c *BasicContext) BoxSize() particle.Vec3        { return c.Box }
func (c *BasicContext) PeriodicBoundary() [3]bool      { return c.Periodic }
func (c *BasicContext) KBT() float64                   { return c.KbT }
func (c *BasicContext) TimeStep() float64              { return c.Dt }
func (c *BasicContext) TypeRegistry() *particle.TypeRegistry { return c.Types }

// DistSquared returns the minimum-image squared distance between
// particles p and q, wrapping displacement on each periodic axis.
func (c *BasicContext) DistSquared(p, q int) float64 {
	ep, _ := c.Store.EntryAt(p)
	eq, _ := c.Store.EntryAt(q)
	var sum float64
	for d := 0; d < 3; d++ {
		diff := ep.Position[d] - eq.Position[d]
		if c.Periodic[d] {
			box := c.Box[d]
			diff -= box * math.Round(diff/box)
		}
		sum += diff * diff
	}
	return sum
}

var _ Context = (*BasicContext)(nil)
