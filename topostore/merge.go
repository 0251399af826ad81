package topostore

import (
	"github.com/reactopo/reactopo/particle"
	"github.com/reactopo/reactopo/topology"
)

// Merge folds the topology at src into the one at dst via
// topology.Graph.AppendTopology, then rewrites the TopologyIndex of
// every particle that was in src to dst and deactivates src — the
// reconciliation append_topology's own contract defers to this package
// (spec.md §4.2: "rewrites the topology_index of every transferred
// particle ... and finally deactivates other").
func (s *Store) Merge(
	particles *particle.Store,
	dst, src Handle,
	vInOther, vInSelf topology.VertexHandle,
	otherNewType, selfNewType particle.TypeID,
	newTopologyType topology.TopologyTypeID,
) error {
	dstGraph, err := s.Get(dst)
	if err != nil {
		return err
	}
	srcGraph, err := s.Get(src)
	if err != nil {
		return err
	}

	// Capture the particle indices src owns before the graph-level merge;
	// AppendTopology does not mutate src, but dst's arena grows underneath it.
	srcVertices := srcGraph.Vertices()
	particleIndices := make([]int, len(srcVertices))
	for i, v := range srcVertices {
		idx, err := srcGraph.ParticleIndexOf(v)
		if err != nil {
			return err
		}
		particleIndices[i] = idx
	}

	if _, err := dstGraph.AppendTopology(srcGraph, vInOther, otherNewType, vInSelf, selfNewType, newTopologyType); err != nil {
		return err
	}

	for _, idx := range particleIndices {
		e, err := particles.EntryAt(idx)
		if err != nil {
			return err
		}
		e.TopologyIndex = int(dst)
	}

	return s.Deactivate(src)
}

// AdoptParticle records that particleIndex now belongs to the topology at
// h, by setting its TopologyIndex. Callers use this after
// topology.Graph.AppendParticle, which only performs the graph-side half
// of a topology–particle fusion (spec.md §4.5).
func (s *Store) AdoptParticle(particles *particle.Store, h Handle, particleIndex int) error {
	if _, err := s.Get(h); err != nil {
		return err
	}
	e, err := particles.EntryAt(particleIndex)
	if err != nil {
		return err
	}
	e.TopologyIndex = int(h)
	return nil
}

// Demote clears the TopologyIndex of h's sole remaining particle and
// deactivates h. Used when a topology has degenerated to a single
// non-topology-flavor particle (spec.md §4.2's is_normal_particle, §4.5's
// demotion rule).
func (s *Store) Demote(particles *particle.Store, h Handle) error {
	g, err := s.Get(h)
	if err != nil {
		return err
	}
	if g.NParticles() != 1 {
		return ErrNotSingleton
	}
	idx, err := g.ParticleIndexOf(topology.VertexHandle(0))
	if err != nil {
		return err
	}
	e, err := particles.EntryAt(idx)
	if err != nil {
		return err
	}
	e.TopologyIndex = particle.NoTopology
	return s.Deactivate(h)
}

// Fission replaces the topology at h with the graphs a structural
// reaction's execute returned: h is deactivated; each result that is a
// degenerate single particle (IsNormalParticle) is demoted directly
// instead of being stored; every other result is added as an independent
// topology with its particles' TopologyIndex rewritten to the new
// handle. It returns the handles Add assigned, in results order, with no
// entry for demoted singletons.
func (s *Store) Fission(
	particles *particle.Store,
	reg *particle.TypeRegistry,
	h Handle,
	results []*topology.Graph,
) ([]Handle, error) {
	if err := s.Deactivate(h); err != nil {
		return nil, err
	}

	var newHandles []Handle
	for _, g := range results {
		isNormal, err := g.IsNormalParticle(reg)
		if err != nil {
			return nil, err
		}
		if isNormal {
			idx, err := g.ParticleIndexOf(topology.VertexHandle(0))
			if err != nil {
				return nil, err
			}
			e, err := particles.EntryAt(idx)
			if err != nil {
				return nil, err
			}
			e.TopologyIndex = particle.NoTopology
			continue
		}

		nh := s.Add(g)
		for _, v := range g.Vertices() {
			idx, err := g.ParticleIndexOf(v)
			if err != nil {
				return nil, err
			}
			e, err := particles.EntryAt(idx)
			if err != nil {
				return nil, err
			}
			e.TopologyIndex = int(nh)
		}
		newHandles = append(newHandles, nh)
	}
	return newHandles, nil
}
