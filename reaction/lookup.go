package reaction

import (
	"github.com/reactopo/reactopo/particle"
	"github.com/reactopo/reactopo/topology"
)

// StructuralReactionsOf returns the structural reactions registered for
// topType, in registration order.
func (reg *Registry) StructuralReactionsOf(topType topology.TopologyTypeID) []StructuralReaction {
	return reg.structural[topType]
}

// SpatialReactionsByType returns every spatial reaction whose educt pair
// matches (t1, top1)/(t2, top2) in either orientation (spec.md §4.3:
// "Lookups must be symmetric in the educt ordering"). Match.Swapped
// reports whether the query order was the reaction's second educt first.
func (reg *Registry) SpatialReactionsByType(
	t1 particle.TypeID, top1 topology.TopologyTypeID,
	t2 particle.TypeID, top2 topology.TopologyTypeID,
) []Match {
	k := canonicalKey(end{t1, top1}, end{t2, top2})
	candidates := reg.spatial[k]
	matches := make([]Match, 0, len(candidates))
	for _, r := range candidates {
		first := end{t1, top1}
		rFirst := end{r.Type1, r.TopType1}
		rSecond := end{r.Type2, r.TopType2}
		switch {
		case first == rFirst:
			matches = append(matches, Match{Reaction: r, Swapped: false})
		case first == rSecond:
			matches = append(matches, Match{Reaction: r, Swapped: true})
		}
	}
	return matches
}

// IsSpatialReactionType reports whether pt participates, on either side,
// in any registered spatial reaction.
func (reg *Registry) IsSpatialReactionType(pt particle.TypeID) bool {
	_, ok := reg.spatialPT[pt]
	return ok
}

// SpatialReactionRegistryEmpty reports whether no spatial reactions are
// registered at all — the event gatherer (component C5) uses this to skip
// the entire spatial scan for a step (spec.md §4.4).
func (reg *Registry) SpatialReactionRegistryEmpty() bool {
	return len(reg.spatial) == 0
}
