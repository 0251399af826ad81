package engine

import (
	"github.com/reactopo/reactopo/particle"
	"github.com/reactopo/reactopo/topostore"
)

// noTopology is the sentinel for an Event's TopologyIdx/TopologyIdx2 when
// that side has no topology or does not apply (spec.md §3: "−1 if none or
// if particle").
const noTopology topostore.Handle = -1

// EventKind distinguishes a structural event from a spatial one.
type EventKind uint8

const (
	// EventStructural is a topology-internal rewrite governed by a
	// per-topology rate.
	EventStructural EventKind = iota
	// EventSpatial is a proximity-triggered reaction between two educts.
	EventSpatial
)

// Event is one candidate reaction the gatherer produced, carrying exactly
// spec.md §3's Event fields (kind, topology_idx, topology_idx2, reaction_idx,
// idx1, idx2, t1, t2, rate, cumulative_rate).
//
// ReactionIdx is not a stable identifier across the whole registry: it is
// the index into whichever reaction slice the gatherer queried to produce
// this event (StructuralReactionsOf(topology type) for structural events,
// SpatialReactionsByType(t1, tt1, t2, tt2) for spatial ones) — the
// executor re-runs the same query at apply time and indexes into it with
// ReactionIdx, which is valid because the dependency discipline guarantees
// the topology(ies) involved have not been retyped since gather.
type Event struct {
	Kind EventKind

	// TopologyIdx is the handle idx1 belongs to; always present.
	TopologyIdx topostore.Handle
	// TopologyIdx2 is the handle idx2 belongs to, or noTopology if idx2
	// has no topology or this is a structural event.
	TopologyIdx2 topostore.Handle

	ReactionIdx int

	// Idx1 always references the particle inside TopologyIdx (spec.md
	// §4.4). Idx2 is the second educt's particle index for spatial
	// events, unused (-1) for structural ones.
	Idx1, Idx2 int
	// T1, T2 are the observed particle types at gather time. Zero for
	// structural events.
	T1, T2 particle.TypeID

	Rate           float64
	CumulativeRate float64
}

// dependent reports whether e1 and e2 share an endpoint topology handle
// (spec.md §4.5's dependency rule).
func dependent(e1, e2 Event) bool {
	if e1.TopologyIdx == e2.TopologyIdx || e1.TopologyIdx == e2.TopologyIdx2 {
		return true
	}
	if e1.TopologyIdx2 != noTopology {
		return e1.TopologyIdx2 == e2.TopologyIdx || e1.TopologyIdx2 == e2.TopologyIdx2
	}
	return false
}
