// Package config decodes a declarative reaction table document into a
// reaction.Registry (SPEC_FULL.md §4.3.1, C9). It is a construction-time
// convenience: a Registry built directly via reaction.NewRegistry() plus
// AddStructuralReaction/AddSpatialReaction remains fully supported and is
// what the engine package's own tests use.
package config
