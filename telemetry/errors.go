package telemetry

import (
	"errors"

	"github.com/reactopo/reactopo/engine"
)

// errorKind maps a step-level error to a short, low-cardinality label
// safe for a Prometheus metric — one of spec.md §7's five fatal kinds, or
// "other" for anything the engine package didn't sentinel.
func errorKind(err error) string {
	switch {
	case errors.Is(err, engine.ErrDeactivatedTopology):
		return "deactivated_topology"
	case errors.Is(err, engine.ErrInvariantViolation):
		return "invariant_violation"
	case errors.Is(err, engine.ErrReactionNotFound):
		return "reaction_not_found"
	case errors.Is(err, engine.ErrOrientationMismatch):
		return "orientation_mismatch"
	case errors.Is(err, engine.ErrEventListCorruption):
		return "event_list_corruption"
	default:
		return "other"
	}
}
