package adapters

import "math/rand"

// defaultSeed is the fixed "zero" seed used when callers pass seed == 0,
// mirroring the teacher library's tsp.defaultRNGSeed policy: arbitrary but
// stable, so zero-value construction stays reproducible.
const defaultSeed int64 = 1

// SeededRng is the engine's default Rng adapter: a thin, non-goroutine-safe
// wrapper around *rand.Rand. No third-party PRNG crate appears anywhere in
// the retrieved example corpus (see DESIGN.md), so this stays on
// math/rand, exactly as the teacher library's builder and tsp packages do
// for their own stochastic graph generation.
type SeededRng struct {
	r *rand.Rand
}

// NewSeededRng returns a deterministic Rng. seed == 0 selects defaultSeed.
func NewSeededRng(seed int64) *SeededRng {
	if seed == 0 {
		seed = defaultSeed
	}
	return &SeededRng{r: rand.New(rand.NewSource(seed))}
}

// UniformReal returns a value in [0, 1).
func (s *SeededRng) UniformReal() float64 { return s.r.Float64() }

// UniformRealRange returns a value in [a, b).
func (s *SeededRng) UniformRealRange(a, b float64) float64 {
	return a + (b-a)*s.r.Float64()
}

// Derive returns an independent deterministic substream, mixed from this
// Rng's current state and stream via a SplitMix64-style avalanche finalizer
// — grounded on the teacher library's tsp.deriveRNG/deriveSeed helpers,
// used there to give parallel TSP restarts uncorrelated RNG streams.
func (s *SeededRng) Derive(stream uint64) *SeededRng {
	parent := s.r.Int63()
	return &SeededRng{r: rand.New(rand.NewSource(splitMix64Seed(parent, stream)))}
}

func splitMix64Seed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

var _ Rng = (*SeededRng)(nil)
