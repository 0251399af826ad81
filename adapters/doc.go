// Package adapters defines the external-collaborator interfaces the
// reactive topology engine consumes (component C8, spec.md §4.7, §6):
// the neighbor list, the RNG, and the simulation context. It also
// provides the engine's one concrete, from-scratch implementation of
// each — a seeded RNG (grounded on the teacher library's own
// math/rand-based stochastic-generator idiom) and a synthetic uniform
// grid neighbor list used for demonstration and tests. Real neighbor-list
// construction, potential evaluation, and diffusion integration remain
// out of scope (spec.md §1's Non-goals) and are expected to be supplied
// by the surrounding simulator.
package adapters
