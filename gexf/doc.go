// Package gexf exports a single topology.Graph as a GEXF 1.2 XML
// document (spec.md §6): <nodes> listing vertices by particle index and
// <edges> listing unordered pairs with an incrementing edge id. It is
// read-only and has no dependency on the engine beyond topology.Graph.
package gexf
