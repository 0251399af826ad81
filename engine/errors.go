package engine

import "errors"

// Sentinel errors for the five fatal kinds a step can raise (spec.md §7).
// Every one is a programming-error signal, not a recoverable condition: a
// step either completes or returns one of these, with no partial-step
// rollback.
var (
	// ErrDeactivatedTopology indicates an attempt to apply or look up a
	// deactivated topology handle — a dependency-tracking bug in the
	// executor, since a correctly computed dependency graph never lets a
	// live event reference a topology another event in the same pass
	// already retired.
	ErrDeactivatedTopology = errors.New("engine: attempt to apply event against a deactivated topology")

	// ErrInvariantViolation indicates a graph contract was broken: a
	// self-loop, an orphan vertex, or a fusion whose target topology type
	// resolved to the "no topology" sentinel.
	ErrInvariantViolation = errors.New("engine: topology invariant violated")

	// ErrReactionNotFound indicates an event's reaction_idx no longer
	// resolves against the registry query it was gathered under.
	ErrReactionNotFound = errors.New("engine: event references a reaction the registry no longer has")

	// ErrOrientationMismatch indicates neither educt of a spatial event
	// matches the reaction's authored first educt under either topology's
	// current type — the topology retyped between gather and apply
	// despite the dependency tracker reporting no conflict.
	ErrOrientationMismatch = errors.New("engine: spatial event educts do not match the reaction's orientation")

	// ErrEventListCorruption indicates the live-prefix/dead-suffix
	// partition was violated: an event thought to be live had already
	// been swapped into the dead suffix.
	ErrEventListCorruption = errors.New("engine: event list partition corrupted")
)
