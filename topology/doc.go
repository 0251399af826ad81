// Package topology implements the undirected labeled graph that backs one
// molecular topology (component C2 of the reactive topology engine,
// spec.md §4.2).
//
// A Graph owns a dense arena of Vertex records addressed by VertexHandle,
// stable for the graph's lifetime; edges are unordered pairs of handles
// with no self-loops and no duplicates. Vertices are owned by their Graph
// (the arena+index discipline from spec.md §9's design notes): a
// reference from elsewhere is always a (topology handle, VertexHandle)
// pair, never a bare pointer, which keeps fission and fusion free of
// dangling references.
//
// Graph is deliberately ignorant of particle.Store and of reaction
// descriptors: it records each vertex's particle index and cached
// particle type, and accepts plain rate functions (RateFunc) rather than
// importing package reaction, which would create an import cycle (reaction
// needs *Graph in its Execute/Rate signatures). Package topostore is the
// layer that reconciles Graph mutations with particle.Store's
// TopologyIndex cross-references.
package topology
