package config

import (
	"errors"
	"sync"

	"github.com/reactopo/reactopo/adapters"
	"github.com/reactopo/reactopo/topology"
)

// ErrUnknownStructuralKind indicates a StructuralReactionCfg named a Kind
// no StructuralKindBuilder was registered for.
var ErrUnknownStructuralKind = errors.New("config: unknown structural reaction kind")

// StructuralExecuteFunc is the Execute half of a resolved structural
// reaction (spec.md §3's "execute(topology, ctx) -> list<topology>").
type StructuralExecuteFunc func(g *topology.Graph, ctx adapters.Context) ([]*topology.Graph, error)

// StructuralKindBuilder resolves one StructuralReactionCfg into the
// behavior a reaction.StructuralReaction needs. Kinds are behavior, not
// data, so they live in a process-wide catalog the embedding application
// populates at init time rather than in the YAML document itself
// (SPEC_FULL.md §4.3.1).
type StructuralKindBuilder func(cfg StructuralReactionCfg) (topology.RateFunc, StructuralExecuteFunc)

var (
	catalogMu sync.RWMutex
	catalog   = map[string]StructuralKindBuilder{
		"noop": noopKind,
	}
)

// RegisterStructuralKind adds builder to the process-wide catalog under
// name, overwriting any previous registration. Call it during
// application init, before BuildRegistry decodes a document that
// references name.
func RegisterStructuralKind(name string, builder StructuralKindBuilder) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	catalog[name] = builder
}

func lookupStructuralKind(name string) (StructuralKindBuilder, bool) {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	b, ok := catalog[name]
	return b, ok
}

// noopKind is the catalog's one built-in: a constant-rate structural
// reaction whose Execute leaves the topology untouched (an empty,
// non-nil result — spec.md §4.2's "topology remains, possibly mutated in
// place"). Useful as a placeholder while wiring a reaction table before
// its real Execute behavior is registered.
func noopKind(cfg StructuralReactionCfg) (topology.RateFunc, StructuralExecuteFunc) {
	rate := cfg.RateValue
	return func(*topology.Graph) float64 { return rate },
		func(*topology.Graph, adapters.Context) ([]*topology.Graph, error) { return []*topology.Graph{}, nil }
}
