// Package particle implements the dense particle arena (component C1 of the
// reactive topology engine): a store of particle entries addressed by stable
// integer index, supporting deactivation and end-of-step compaction.
//
// Index stability is the core contract: within one simulation step, an
// index returned by Activate never changes meaning and is never reused by
// a different particle. Deactivate only tombstones an entry; the store may
// reclaim tombstoned slots only across a Compact call, which callers invoke
// between steps, never during one.
//
// TopologyIndex on each Entry is owned by the reactive topology engine
// (package topostore); callers outside that engine must treat it read-only.
package particle
