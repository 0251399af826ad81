package topology_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reactopo/reactopo/particle"
	"github.com/reactopo/reactopo/topology"
)

func TestNewGraphSingleVertex(t *testing.T) {
	require := require.New(t)
	g := topology.NewGraph(1, 42, particle.TypeID(7))
	require.Equal(1, g.NParticles())
	v, ok := g.VertexForParticle(42)
	require.True(ok)
	pt, err := g.ParticleTypeOf(v)
	require.NoError(err)
	require.Equal(particle.TypeID(7), pt)
}

func TestAddEdgeIdempotentAndRejectsSelfLoop(t *testing.T) {
	require := require.New(t)
	g := topology.NewGraph(1, 0, 0)
	v0, _ := g.VertexForParticle(0)
	v1, err := g.AppendParticle(v0, 1, 1, 0)
	require.NoError(err)

	require.True(g.ContainsEdge(v0, v1))
	require.NoError(g.AddEdge(v0, v1)) // idempotent
	require.Equal(1, g.EdgeCount())

	require.ErrorIs(g.AddEdge(v0, v0), topology.ErrInvalidEdge)
}

// TestIntraTopologyBondCreation reproduces spec.md §8 scenario S4: a path
// 0-1-2-3 plus a fusion edge (0,3) leaves one topology, four edges, and the
// graph connected.
func TestIntraTopologyBondCreation(t *testing.T) {
	require := require.New(t)
	g := topology.NewGraph(1, 0, 0)
	v0, _ := g.VertexForParticle(0)
	v1, err := g.AppendParticle(v0, 0, 1, 0)
	require.NoError(err)
	v2, err := g.AppendParticle(v1, 0, 2, 0)
	require.NoError(err)
	v3, err := g.AppendParticle(v2, 0, 3, 0)
	require.NoError(err)

	require.False(g.ContainsEdge(v0, v3))
	require.NoError(g.AddEdge(v0, v3))
	require.True(g.ContainsEdge(v0, v3))
	require.Equal(4, g.EdgeCount())

	g.SetType(9)
	g.Configure()
	comps := g.ConnectedComponents()
	require.Len(comps, 1)
	require.Len(comps[0], 4)
	require.Equal(topology.TopologyTypeID(9), g.Type())
}

func TestAppendTopologyMergesAndBridges(t *testing.T) {
	require := require.New(t)
	a := topology.NewGraph(1, 0, 0)
	b := topology.NewGraph(2, 1, 0)

	va, _ := a.VertexForParticle(0)
	vb, _ := b.VertexForParticle(1)

	remap, err := a.AppendTopology(b, vb, 5, va, 6, 3)
	require.NoError(err)
	require.Len(remap, 1)

	require.Equal(2, a.NParticles())
	require.Equal(topology.TopologyTypeID(3), a.Type())
	pt, err := a.ParticleTypeOf(va)
	require.NoError(err)
	require.Equal(particle.TypeID(6), pt)

	mergedB := remap[vb]
	pt2, err := a.ParticleTypeOf(mergedB)
	require.NoError(err)
	require.Equal(particle.TypeID(5), pt2)

	require.True(a.ContainsEdge(va, mergedB))

	a.Configure()
	comps := a.ConnectedComponents()
	require.Len(comps, 1)
}

func TestIsNormalParticle(t *testing.T) {
	require := require.New(t)
	reg := particle.NewTypeRegistry()
	monomer, err := reg.Register("Monomer", particle.FlavorNormal)
	require.NoError(err)
	head, err := reg.Register("Head", particle.FlavorTopology)
	require.NoError(err)

	single := topology.NewGraph(1, 0, monomer)
	isNormal, err := single.IsNormalParticle(reg)
	require.NoError(err)
	require.True(isNormal)

	v0, _ := single.VertexForParticle(0)
	_, err = single.AppendParticle(v0, head, 1, head)
	require.NoError(err)
	isNormal, err = single.IsNormalParticle(reg)
	require.NoError(err)
	require.False(isNormal, "two-vertex topology is never a normal particle")
}

func TestUpdateReactionRatesAndRateAt(t *testing.T) {
	require := require.New(t)
	g := topology.NewGraph(1, 0, 0)
	fns := []topology.RateFunc{
		func(*topology.Graph) float64 { return 1.5 },
		func(*topology.Graph) float64 { return 0 },
	}
	g.UpdateReactionRates(fns)
	require.Equal([]float64{1.5, 0}, g.Rates())

	r0, err := g.RateAt(0)
	require.NoError(err)
	require.Equal(1.5, r0)

	_, err = g.RateAt(2)
	require.ErrorIs(err, topology.ErrRateVectorLengthMismatch)
}
