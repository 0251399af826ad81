// Package engine implements the reactive topology engine's event gatherer
// (component C5), event executor (C6), and rate/configure loop (C7): the
// per-step cycle that turns a particle neighborhood into a stochastic
// sequence of structural and spatial topology reactions.
//
// A step runs single-threaded to completion: Gatherer.Gather builds the
// candidate event list once, then Executor.Perform consumes it with a
// one-pass, dependency-serial algorithm — deliberately not a
// cumulative-rate Gillespie draw, which breaks down under
// topology-topology fusion once an event's educts can vanish mid-step.
package engine
