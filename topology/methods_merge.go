package topology

import "github.com/reactopo/reactopo/particle"

// AppendTopology transfers every vertex and edge of other into g,
// re-types the two endpoints of the bridge per the orientation convention
// described at the call site, adds the bridge edge, and sets g's type to
// newTopologyType (spec.md §4.2's append_topology contract).
//
// AppendTopology does not deactivate other and does not touch
// particle.Store: it is a pure graph-structure merge. The returned map
// translates every VertexHandle other used (its own, pre-merge numbering)
// to the corresponding handle inside g; package topostore uses it to
// rewrite the TopologyIndex of every particle that was in other, and to
// retire other's handle, which together satisfy the contract's "rewrites
// the topology_index of every transferred particle ... and finally
// deactivates other".
func (g *Graph) AppendTopology(
	other *Graph,
	vInOther VertexHandle,
	otherNewType particle.TypeID,
	vInSelf VertexHandle,
	selfNewType particle.TypeID,
	newTopologyType TopologyTypeID,
) (map[VertexHandle]VertexHandle, error) {
	if _, err := g.vertex(vInSelf); err != nil {
		return nil, err
	}
	if _, err := other.vertex(vInOther); err != nil {
		return nil, err
	}

	remap := make(map[VertexHandle]VertexHandle, len(other.vertices))
	for oldH, v := range other.vertices {
		newH := g.addVertex(v.ParticleIndex, v.ParticleType)
		remap[VertexHandle(oldH)] = newH
	}
	for ek := range other.edges {
		g.edges[normalizedEdge(remap[ek.a], remap[ek.b])] = struct{}{}
	}

	selfVx, _ := g.vertex(vInSelf)
	selfVx.ParticleType = selfNewType
	bridgeOther := remap[vInOther]
	otherVx, _ := g.vertex(bridgeOther)
	otherVx.ParticleType = otherNewType

	if err := g.AddEdge(vInSelf, bridgeOther); err != nil {
		return nil, err
	}
	g.typ = newTopologyType

	return remap, nil
}
