package topostore

import (
	"errors"

	"github.com/reactopo/reactopo/topology"
)

// Sentinel errors for topology store operations.
var (
	// ErrHandleNotFound indicates a Handle outside the store's current arena.
	ErrHandleNotFound = errors.New("topostore: handle not found")

	// ErrAlreadyDeactivated indicates a Deactivate call on an already-retired handle.
	ErrAlreadyDeactivated = errors.New("topostore: topology already deactivated")

	// ErrNotSingleton indicates Demote was called on a topology with more
	// than one vertex.
	ErrNotSingleton = errors.New("topostore: topology is not a singleton")
)

// Handle addresses one topology within a Store. It is stable for the
// duration of one step (spec.md §5); Reap invalidates every handle and
// must only run at a step boundary.
type Handle int

type slot struct {
	graph       *topology.Graph
	deactivated bool
}
