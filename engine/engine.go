package engine

import (
	"github.com/reactopo/reactopo/adapters"
	"github.com/reactopo/reactopo/particle"
	"github.com/reactopo/reactopo/reaction"
	"github.com/reactopo/reactopo/topostore"
)

// Engine composes the gatherer and executor into the single cooperative
// step spec.md §5 describes: Perform runs the whole gather-then-execute
// cycle to completion, with no suspension points.
type Engine struct {
	gatherer *Gatherer
	executor *Executor
}

// New wires an Engine from its collaborators. neighbors must reflect the
// current particle state at the moment Perform is called (spec.md §6).
func New(
	reg *reaction.Registry,
	particles *particle.Store,
	topologies *topostore.Store,
	types *particle.TypeRegistry,
	neighbors adapters.NeighborList,
	rng adapters.Rng,
	ctx adapters.Context,
) *Engine {
	return &Engine{
		gatherer: NewGatherer(reg, particles, topologies, neighbors, ctx),
		executor: NewExecutor(reg, particles, topologies, types, rng, ctx),
	}
}

// Perform runs one integration step's reactive-topology cycle: gather the
// candidate event list, then execute it. It returns the number of events
// gathered, for callers that want to observe step activity without
// inspecting internals.
func (e *Engine) Perform() (int, error) {
	events, err := e.gatherer.Gather()
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}
	if err := e.executor.Perform(events); err != nil {
		return len(events), err
	}
	return len(events), nil
}
