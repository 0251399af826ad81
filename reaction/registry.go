package reaction

import (
	"github.com/reactopo/reactopo/particle"
	"github.com/reactopo/reactopo/topology"
)

// end is one side of a spatial reaction's educt pair, used as half of the
// registry's canonical, orientation-independent lookup key.
type end struct {
	pType particle.TypeID
	top   topology.TopologyTypeID
}

func (e end) less(o end) bool {
	if e.pType != o.pType {
		return e.pType < o.pType
	}
	return e.top < o.top
}

type spatialKey struct {
	a, b end
}

func canonicalKey(a, b end) spatialKey {
	if a.less(b) || a == b {
		return spatialKey{a, b}
	}
	return spatialKey{b, a}
}

// Registry is the topology registry (component C3): structural reactions
// keyed by topology type, and spatial reactions keyed symmetrically by
// the unordered pair of (particle type, topology type) educt ends.
type Registry struct {
	structural map[topology.TopologyTypeID][]StructuralReaction
	spatial    map[spatialKey][]SpatialReaction
	spatialPT  map[particle.TypeID]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		structural: make(map[topology.TopologyTypeID][]StructuralReaction),
		spatial:    make(map[spatialKey][]SpatialReaction),
		spatialPT:  make(map[particle.TypeID]struct{}),
	}
}

// AddStructuralReaction registers r under r.TopologyType.
func (reg *Registry) AddStructuralReaction(r StructuralReaction) error {
	if r.Execute == nil {
		return ErrNilExecute
	}
	if r.Rate == nil {
		return ErrNilRate
	}
	reg.structural[r.TopologyType] = append(reg.structural[r.TopologyType], r)
	return nil
}

// AddSpatialReaction registers r under the canonical, orientation-free key
// of its two educt ends.
func (reg *Registry) AddSpatialReaction(r SpatialReaction) error {
	if r.Radius <= 0 {
		return ErrNonPositiveRadius
	}
	k := canonicalKey(
		end{r.Type1, r.TopType1},
		end{r.Type2, r.TopType2},
	)
	reg.spatial[k] = append(reg.spatial[k], r)
	reg.spatialPT[r.Type1] = struct{}{}
	reg.spatialPT[r.Type2] = struct{}{}
	return nil
}
