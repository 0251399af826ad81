// Package reaction implements the topology registry (component C3,
// spec.md §4.3): the catalog of structural reactions keyed by topology
// type, and spatial reactions keyed by the (particle type, topology type)
// pair on each side of the encounter.
//
// Reaction kinds follow a closed tagged variant rather than the original
// C++ source's virtual-dispatch class hierarchy (spec.md §9's design
// notes): StructuralReaction and SpatialReaction are plain structs, and a
// structural reaction's behavior is a captured function value rather than
// a polymorphic method.
package reaction
