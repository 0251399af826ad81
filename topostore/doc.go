// Package topostore implements the topology store (component C4, spec.md
// §4 data model's Topology store responsibility): the collection of live
// topologies addressed by a stable Handle, each with a deactivation flag.
//
// topostore is the layer topology's doc comment promises: it is the one
// place that reconciles a topology.Graph structural mutation with
// particle.Store's TopologyIndex cross-references, so that package
// topology itself never needs to import particle.Store or package
// reaction. Every operation that moves a particle's topology membership —
// merge, singleton demotion — goes through here.
package topostore
