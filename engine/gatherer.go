package engine

import (
	"github.com/reactopo/reactopo/adapters"
	"github.com/reactopo/reactopo/particle"
	"github.com/reactopo/reactopo/reaction"
	"github.com/reactopo/reactopo/topology"
	"github.com/reactopo/reactopo/topostore"
)

// Gatherer produces a step's candidate event list (component C5).
type Gatherer struct {
	Registry   *reaction.Registry
	Particles  *particle.Store
	Topologies *topostore.Store
	Neighbors  adapters.NeighborList
	Ctx        adapters.Context
}

// NewGatherer wires the collaborators a Gather call needs.
func NewGatherer(reg *reaction.Registry, particles *particle.Store, topologies *topostore.Store, neighbors adapters.NeighborList, ctx adapters.Context) *Gatherer {
	return &Gatherer{Registry: reg, Particles: particles, Topologies: topologies, Neighbors: neighbors, Ctx: ctx}
}

// Gather runs the two-phase scan of spec.md §4.4: structural events from
// every active topology's rate vector, then spatial events from the
// neighbor list, in that order, with one running cumulative rate across
// both phases.
func (g *Gatherer) Gather() ([]Event, error) {
	var events []Event
	var cumulative float64

	if err := g.Topologies.Active(func(h topostore.Handle, gr *topology.Graph) error {
		reactions := g.Registry.StructuralReactionsOf(gr.Type())
		if len(reactions) == 0 {
			return nil
		}
		fns := make([]topology.RateFunc, len(reactions))
		for i, r := range reactions {
			fns[i] = r.Rate
		}
		gr.UpdateReactionRates(fns)
		for i := range reactions {
			rate, err := gr.RateAt(i)
			if err != nil {
				return err
			}
			if rate == 0 {
				continue
			}
			cumulative += rate
			events = append(events, Event{
				Kind:           EventStructural,
				TopologyIdx:    h,
				TopologyIdx2:   noTopology,
				ReactionIdx:    i,
				Idx1:           -1,
				Idx2:           -1,
				Rate:           rate,
				CumulativeRate: cumulative,
			})
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if g.Registry.SpatialReactionRegistryEmpty() {
		return events, nil
	}

	var gatherErr error
	for cell := 0; cell < g.Neighbors.NCells() && gatherErr == nil; cell++ {
		for _, p := range g.Neighbors.ParticlesInCell(cell) {
			if gatherErr != nil {
				break
			}
			pEntry, err := g.Particles.EntryAt(p)
			if err != nil {
				gatherErr = err
				break
			}
			if pEntry.Deactivated || !g.Registry.IsSpatialReactionType(pEntry.Type) {
				continue
			}
			pType, pTopType, pHandle, err := g.resolveSide(p)
			if err != nil {
				gatherErr = err
				break
			}
			hasPTop := pTopType != reaction.NoTopologyType

			g.Neighbors.ForEachNeighbor(p, cell, func(q int) {
				if gatherErr != nil {
					return
				}
				qEntry, err := g.Particles.EntryAt(q)
				if err != nil {
					gatherErr = err
					return
				}
				if qEntry.Deactivated {
					return
				}
				qType, qTopType, qHandle, err := g.resolveSide(q)
				if err != nil {
					gatherErr = err
					return
				}
				hasQTop := qTopType != reaction.NoTopologyType

				switch {
				case !hasPTop && !hasQTop:
					// Neither side has a topology: nothing can react.
					return
				case !hasPTop && hasQTop:
					// The topology side is gathered when it plays the role of
					// p, handled by the symmetric traversal from q's cell.
					return
				case hasPTop && hasQTop && p >= q:
					// Both sides have topologies: keep exactly the p < q
					// traversal to avoid double counting the pair.
					return
				}

				matches := g.Registry.SpatialReactionsByType(pType, pTopType, qType, qTopType)
				if len(matches) == 0 {
					return
				}
				distSq := g.Ctx.DistSquared(p, q)

				for ri, m := range matches {
					r := m.Reaction
					if !r.AllowSelfConnection && pHandle == qHandle {
						continue
					}
					if distSq >= r.Radius*r.Radius {
						continue
					}
					cumulative += r.Rate
					ev := Event{
						Kind:           EventSpatial,
						TopologyIdx:    pHandle,
						TopologyIdx2:   noTopology,
						ReactionIdx:    ri,
						Idx1:           p,
						Idx2:           q,
						T1:             pType,
						T2:             qType,
						Rate:           r.Rate,
						CumulativeRate: cumulative,
					}
					if hasQTop {
						ev.TopologyIdx2 = qHandle
					}
					events = append(events, ev)
				}
			})
		}
	}
	if gatherErr != nil {
		return nil, gatherErr
	}

	return events, nil
}

// resolveSide reports p's observed particle type, its topology's type (or
// reaction.NoTopologyType if p has none or its topology is deactivated),
// and the topology handle (noTopology whenever the type is
// reaction.NoTopologyType).
func (g *Gatherer) resolveSide(p int) (particle.TypeID, topology.TopologyTypeID, topostore.Handle, error) {
	entry, err := g.Particles.EntryAt(p)
	if err != nil {
		return 0, reaction.NoTopologyType, noTopology, err
	}
	if entry.TopologyIndex == particle.NoTopology {
		return entry.Type, reaction.NoTopologyType, noTopology, nil
	}
	h := topostore.Handle(entry.TopologyIndex)
	if g.Topologies.IsDeactivated(h) {
		return entry.Type, reaction.NoTopologyType, noTopology, nil
	}
	gr, err := g.Topologies.Get(h)
	if err != nil {
		return 0, reaction.NoTopologyType, noTopology, err
	}
	return entry.Type, gr.Type(), h, nil
}
