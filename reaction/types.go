package reaction

import (
	"errors"

	"github.com/reactopo/reactopo/adapters"
	"github.com/reactopo/reactopo/particle"
	"github.com/reactopo/reactopo/topology"
)

// Sentinel errors for registry construction.
var (
	// ErrNilExecute indicates a StructuralReaction was registered without
	// an Execute function.
	ErrNilExecute = errors.New("reaction: structural reaction has a nil Execute function")
	// ErrNilRate indicates a StructuralReaction was registered without a
	// Rate function.
	ErrNilRate = errors.New("reaction: structural reaction has a nil Rate function")
	// ErrNonPositiveRadius indicates a SpatialReaction was registered with
	// radius <= 0.
	ErrNonPositiveRadius = errors.New("reaction: spatial reaction radius must be positive")
)

// NoTopologyType is the TopologyTypeID sentinel spec.md §3 calls "⊥":
// "not inside a topology" on either side of a spatial reaction.
const NoTopologyType topology.TopologyTypeID = 0xFFFF

// StructuralReaction is a topology-internal rewrite governed by a
// per-topology rate (spec.md §3's Structural reaction descriptor).
type StructuralReaction struct {
	// Name identifies the reaction for logging and error messages.
	Name string
	// TopologyType is the topology type this reaction applies to.
	TopologyType topology.TopologyTypeID
	// Rate computes the reaction's current rate against a topology.
	Rate topology.RateFunc
	// Execute applies the reaction. An empty, non-nil result means the
	// topology remains (mutated in place); a non-empty result means the
	// original is deactivated and each returned topology becomes
	// independent (spec.md §4.2).
	Execute func(g *topology.Graph, ctx adapters.Context) ([]*topology.Graph, error)
}

// SpatialReaction is a proximity-triggered reaction between two educts,
// each optionally inside a topology (spec.md §3's Spatial reaction
// descriptor). Fields are authored in one canonical orientation
// (Type1/TopType1 vs Type2/TopType2); Registry.SpatialReactionsByType
// reports whether a query matched that orientation or its swap.
type SpatialReaction struct {
	Name string

	Type1, Type2       particle.TypeID
	TopType1, TopType2 topology.TopologyTypeID // NoTopologyType encodes "not in a topology"

	TypeTo1, TypeTo2       particle.TypeID
	TopTypeTo1, TopTypeTo2 topology.TopologyTypeID

	Rate   float64
	Radius float64

	IsFusion            bool
	AllowSelfConnection bool
}

// Match pairs a SpatialReaction with whether the query educt order
// matched the reaction's authored orientation or its swap — the engine
// uses Swapped to decide which product type/topology-type applies to
// which observed particle (spec.md §4.5, §9's "left wins" tie-break).
type Match struct {
	Reaction SpatialReaction
	Swapped  bool
}
