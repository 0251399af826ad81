package topology

import "github.com/reactopo/reactopo/particle"

// AppendParticle adds a new vertex bound to (newParticleIndex,
// newParticleType), bonds it to existingV, and retypes existingV's
// particle to existingVertexNewType in the same operation (spec.md §4.2:
// "add vertex and edge"). This is the graph-level half of a fusion spatial
// reaction's topology-particle case (package engine); the caller is
// responsible for setting the new particle's TopologyIndex in
// particle.Store.
func (g *Graph) AppendParticle(
	existingV VertexHandle,
	newParticleType particle.TypeID,
	newParticleIndex int,
	existingVertexNewType particle.TypeID,
) (VertexHandle, error) {
	existing, err := g.vertex(existingV)
	if err != nil {
		return 0, err
	}
	existing.ParticleType = existingVertexNewType

	newV := g.addVertex(newParticleIndex, newParticleType)
	if err := g.AddEdge(existingV, newV); err != nil {
		return 0, err
	}
	return newV, nil
}

// SetVertexType re-types the particle bound to v.
func (g *Graph) SetVertexType(v VertexHandle, newType particle.TypeID) error {
	vx, err := g.vertex(v)
	if err != nil {
		return err
	}
	vx.ParticleType = newType
	return nil
}

// IsNormalParticle reports whether this topology has degenerated into a
// single particle whose type is a non-topology flavor (spec.md §4.2) — the
// condition under which the engine performs singleton demotion instead of
// inserting the topology into topostore.Store.
func (g *Graph) IsNormalParticle(reg *particle.TypeRegistry) (bool, error) {
	if len(g.vertices) != 1 {
		return false, nil
	}
	info, err := reg.Lookup(g.vertices[0].ParticleType)
	if err != nil {
		return false, err
	}
	return info.Flavor == particle.FlavorNormal, nil
}
