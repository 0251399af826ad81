package engine

import (
	"math"

	"github.com/reactopo/reactopo/adapters"
	"github.com/reactopo/reactopo/particle"
	"github.com/reactopo/reactopo/reaction"
	"github.com/reactopo/reactopo/topology"
	"github.com/reactopo/reactopo/topostore"
)

// Executor realizes a step's stochastic trajectory against the event list
// Gatherer.Gather produced (component C6).
type Executor struct {
	Registry   *reaction.Registry
	Particles  *particle.Store
	Topologies *topostore.Store
	Types      *particle.TypeRegistry
	Rng        adapters.Rng
	Ctx        adapters.Context

	newborn []topostore.Handle
}

// NewExecutor wires the collaborators a Perform call needs.
func NewExecutor(reg *reaction.Registry, particles *particle.Store, topologies *topostore.Store, types *particle.TypeRegistry, rng adapters.Rng, ctx adapters.Context) *Executor {
	return &Executor{Registry: reg, Particles: particles, Topologies: topologies, Types: types, Rng: rng, Ctx: ctx}
}

// Perform consumes events with the one-pass, conflict-serial algorithm of
// spec.md §4.5: events are drawn in list order; a still-live event's
// Bernoulli trial (exact probability 1 − exp(−rate·Δt)) decides whether it
// fires; firing applies the reaction and swaps every event depending on
// its topology handle(s) into a dead suffix at the back of the slice. The
// slice is otherwise never reordered. Events is mutated in place.
func (ex *Executor) Perform(events []Event) error {
	ex.newborn = ex.newborn[:0]
	dt := ex.Ctx.TimeStep()

	live := len(events)
	for i := 0; i < live; i++ {
		e := events[i]
		prob := 1 - math.Exp(-e.Rate*dt)
		if ex.Rng.UniformReal() >= prob {
			continue
		}

		if err := ex.apply(e); err != nil {
			return err
		}

		j := i + 1
		for j < live {
			if dependent(e, events[j]) {
				live--
				events[j], events[live] = events[live], events[j]
				continue
			}
			j++
		}
	}

	return ex.reconfigureNewborn()
}

func (ex *Executor) apply(e Event) error {
	switch e.Kind {
	case EventStructural:
		return ex.applyStructural(e)
	case EventSpatial:
		if e.TopologyIdx2 != noTopology {
			return ex.applyTopologyTopology(e)
		}
		return ex.applyTopologyParticle(e)
	default:
		return ErrInvariantViolation
	}
}

// applyStructural implements spec.md §4.5's Structural dispatch: calling
// execute, then either demoting a now-normal survivor, reconfiguring a
// survivor mutated in place, or fissioning into independent topologies
// whose rate vectors are deferred to reconfigureNewborn.
func (ex *Executor) applyStructural(e Event) error {
	if ex.Topologies.IsDeactivated(e.TopologyIdx) {
		return ErrDeactivatedTopology
	}
	gr, err := ex.Topologies.Get(e.TopologyIdx)
	if err != nil {
		return err
	}
	reactions := ex.Registry.StructuralReactionsOf(gr.Type())
	if e.ReactionIdx < 0 || e.ReactionIdx >= len(reactions) {
		return ErrReactionNotFound
	}
	r := reactions[e.ReactionIdx]

	results, err := r.Execute(gr, ex.Ctx)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		isNormal, err := gr.IsNormalParticle(ex.Types)
		if err != nil {
			return err
		}
		if isNormal {
			return ex.Topologies.Demote(ex.Particles, e.TopologyIdx)
		}
		ex.reconfigure(gr)
		return nil
	}

	// Each result gets its rate vector and bond tables before Fission
	// adds it to the store.
	for _, rg := range results {
		ex.reconfigure(rg)
	}
	newHandles, err := ex.Topologies.Fission(ex.Particles, ex.Types, e.TopologyIdx, results)
	if err != nil {
		return err
	}
	ex.newborn = append(ex.newborn, newHandles...)
	return nil
}

// applyTopologyParticle implements spec.md §4.5's Spatial, topology–particle
// dispatch: re-type both educts, bond the free particle in on fusion, and
// transition the topology's type by the matched orientation.
func (ex *Executor) applyTopologyParticle(e Event) error {
	if ex.Topologies.IsDeactivated(e.TopologyIdx) {
		return ErrDeactivatedTopology
	}
	gr, err := ex.Topologies.Get(e.TopologyIdx)
	if err != nil {
		return err
	}

	matches := ex.Registry.SpatialReactionsByType(e.T1, gr.Type(), e.T2, reaction.NoTopologyType)
	if e.ReactionIdx < 0 || e.ReactionIdx >= len(matches) {
		return ErrReactionNotFound
	}
	m := matches[e.ReactionIdx]
	r := m.Reaction

	typeTo1, typeTo2, topTypeTo1 := r.TypeTo1, r.TypeTo2, r.TopTypeTo1
	if m.Swapped {
		typeTo1, typeTo2 = r.TypeTo2, r.TypeTo1
		topTypeTo1 = r.TopTypeTo2
	}

	entry1, err := ex.Particles.EntryAt(e.Idx1)
	if err != nil {
		return err
	}
	entry2, err := ex.Particles.EntryAt(e.Idx2)
	if err != nil {
		return err
	}
	entry1.Type = typeTo1
	entry2.Type = typeTo2

	v1, err := vertexFor(gr, e.Idx1)
	if err != nil {
		return err
	}

	if r.IsFusion {
		if _, err := gr.AppendParticle(v1, typeTo2, e.Idx2, typeTo1); err != nil {
			return err
		}
		if err := ex.Topologies.AdoptParticle(ex.Particles, e.TopologyIdx, e.Idx2); err != nil {
			return err
		}
	} else if err := gr.SetVertexType(v1, typeTo1); err != nil {
		return err
	}

	gr.SetType(topTypeTo1)
	ex.reconfigure(gr)
	return nil
}

// applyTopologyTopology implements spec.md §4.5's Spatial,
// topology–topology dispatch: intra-topology bond creation, cross-topology
// fusion via topostore.Store.Merge, or a non-fusion mutual re-type.
func (ex *Executor) applyTopologyTopology(e Event) error {
	if ex.Topologies.IsDeactivated(e.TopologyIdx) || ex.Topologies.IsDeactivated(e.TopologyIdx2) {
		return ErrDeactivatedTopology
	}
	g1, err := ex.Topologies.Get(e.TopologyIdx)
	if err != nil {
		return err
	}
	g2, err := ex.Topologies.Get(e.TopologyIdx2)
	if err != nil {
		return err
	}

	matches := ex.Registry.SpatialReactionsByType(e.T1, g1.Type(), e.T2, g2.Type())
	if e.ReactionIdx < 0 || e.ReactionIdx >= len(matches) {
		return ErrReactionNotFound
	}
	m := matches[e.ReactionIdx]
	r := m.Reaction

	typeTo1, typeTo2, topTypeTo1, topTypeTo2 := r.TypeTo1, r.TypeTo2, r.TopTypeTo1, r.TopTypeTo2
	if m.Swapped {
		typeTo1, typeTo2 = r.TypeTo2, r.TypeTo1
		topTypeTo1, topTypeTo2 = r.TopTypeTo2, r.TopTypeTo1
	}

	entry1, err := ex.Particles.EntryAt(e.Idx1)
	if err != nil {
		return err
	}
	entry2, err := ex.Particles.EntryAt(e.Idx2)
	if err != nil {
		return err
	}
	entry1.Type = typeTo1
	entry2.Type = typeTo2

	if r.IsFusion {
		if topTypeTo1 == reaction.NoTopologyType {
			return ErrInvariantViolation
		}
		if e.TopologyIdx == e.TopologyIdx2 {
			v1, err := vertexFor(g1, e.Idx1)
			if err != nil {
				return err
			}
			v2, err := vertexFor(g1, e.Idx2)
			if err != nil {
				return err
			}
			if !g1.ContainsEdge(v1, v2) {
				if err := g1.AddEdge(v1, v2); err != nil {
					return err
				}
			}
			g1.SetType(topTypeTo1)
		} else {
			v1, err := vertexFor(g1, e.Idx1)
			if err != nil {
				return err
			}
			v2, err := vertexFor(g2, e.Idx2)
			if err != nil {
				return err
			}
			if err := ex.Topologies.Merge(ex.Particles, e.TopologyIdx, e.TopologyIdx2, v2, v1, typeTo2, typeTo1, topTypeTo1); err != nil {
				return err
			}
		}
	} else {
		v1, err := vertexFor(g1, e.Idx1)
		if err != nil {
			return err
		}
		v2, err := vertexFor(g2, e.Idx2)
		if err != nil {
			return err
		}
		if err := g1.SetVertexType(v1, typeTo1); err != nil {
			return err
		}
		if err := g2.SetVertexType(v2, typeTo2); err != nil {
			return err
		}
		g1.SetType(topTypeTo1)
		g2.SetType(topTypeTo2)
		ex.reconfigure(g2)
	}

	ex.reconfigure(g1)
	return nil
}

// vertexFor adapts topology.Graph.VertexForParticle's (handle, ok) return
// to the error-returning idiom the rest of the executor uses.
func vertexFor(g *topology.Graph, particleIndex int) (topology.VertexHandle, error) {
	v, ok := g.VertexForParticle(particleIndex)
	if !ok {
		return 0, topology.ErrParticleNotFound
	}
	return v, nil
}

// reconfigure recomputes gr's per-reaction rate vector and derived bond
// tables — the per-event half of spec.md §4.5's "after any application,
// call update_reaction_rates and configure on every surviving affected
// topology".
func (ex *Executor) reconfigure(gr *topology.Graph) {
	reactions := ex.Registry.StructuralReactionsOf(gr.Type())
	fns := make([]topology.RateFunc, len(reactions))
	for i, r := range reactions {
		fns[i] = r.Rate
	}
	gr.UpdateReactionRates(fns)
	gr.Configure()
}

// reconfigureNewborn is component C7: every topology a structural fission
// produced during this Perform call gets its rate vector computed and is
// configured before the step is considered complete (spec.md §4.6).
func (ex *Executor) reconfigureNewborn() error {
	for _, h := range ex.newborn {
		gr, err := ex.Topologies.Get(h)
		if err != nil {
			return err
		}
		ex.reconfigure(gr)
	}
	ex.newborn = nil
	return nil
}
