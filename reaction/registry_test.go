package reaction_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reactopo/reactopo/adapters"
	"github.com/reactopo/reactopo/particle"
	"github.com/reactopo/reactopo/reaction"
	"github.com/reactopo/reactopo/topology"
)

const (
	headType particle.TypeID = 1
	midType  particle.TypeID = 2
	t1       topology.TopologyTypeID = 10
	t2       topology.TopologyTypeID = 20
)

func TestStructuralReactionsOf(t *testing.T) {
	require := require.New(t)
	reg := reaction.NewRegistry()

	r := reaction.StructuralReaction{
		Name:         "split",
		TopologyType: t1,
		Rate:         func(*topology.Graph) float64 { return 5 },
		Execute: func(g *topology.Graph, ctx adapters.Context) ([]*topology.Graph, error) {
			return nil, nil
		},
	}
	require.NoError(reg.AddStructuralReaction(r))

	got := reg.StructuralReactionsOf(t1)
	require.Len(got, 1)
	require.Equal("split", got[0].Name)
	require.Empty(reg.StructuralReactionsOf(t2))
}

func TestAddStructuralReactionValidation(t *testing.T) {
	require := require.New(t)
	reg := reaction.NewRegistry()

	err := reg.AddStructuralReaction(reaction.StructuralReaction{TopologyType: t1, Rate: func(*topology.Graph) float64 { return 1 }})
	require.ErrorIs(err, reaction.ErrNilExecute)

	err = reg.AddStructuralReaction(reaction.StructuralReaction{
		TopologyType: t1,
		Execute:      func(*topology.Graph, adapters.Context) ([]*topology.Graph, error) { return nil, nil },
	})
	require.ErrorIs(err, reaction.ErrNilRate)
}

func TestSpatialReactionsByTypeSymmetricLookup(t *testing.T) {
	require := require.New(t)
	reg := reaction.NewRegistry()

	fusion := reaction.SpatialReaction{
		Name: "fuse", Type1: headType, TopType1: t1, Type2: headType, TopType2: t1,
		TypeTo1: midType, TypeTo2: midType, TopTypeTo1: t2, TopTypeTo2: t2,
		Rate: 10, Radius: 1.0, IsFusion: true,
	}
	require.NoError(reg.AddSpatialReaction(fusion))

	require.False(reg.SpatialReactionRegistryEmpty())
	require.True(reg.IsSpatialReactionType(headType))
	require.False(reg.IsSpatialReactionType(midType))

	forward := reg.SpatialReactionsByType(headType, t1, headType, t1)
	require.Len(forward, 1)
	require.False(forward[0].Swapped, "identical ends must resolve to the left-wins orientation")
}

func TestSpatialReactionsByTypeDistinguishesOrientation(t *testing.T) {
	require := require.New(t)
	reg := reaction.NewRegistry()

	// (headType, t1) + (midType, NoTopologyType) -> authored in that order.
	r := reaction.SpatialReaction{
		Type1: headType, TopType1: t1,
		Type2: midType, TopType2: reaction.NoTopologyType,
		TypeTo1: midType, TypeTo2: midType,
		TopTypeTo1: t1, TopTypeTo2: reaction.NoTopologyType,
		Rate: 1, Radius: 1.0,
	}
	require.NoError(reg.AddSpatialReaction(r))

	straight := reg.SpatialReactionsByType(headType, t1, midType, reaction.NoTopologyType)
	require.Len(straight, 1)
	require.False(straight[0].Swapped)

	swapped := reg.SpatialReactionsByType(midType, reaction.NoTopologyType, headType, t1)
	require.Len(swapped, 1)
	require.True(swapped[0].Swapped)

	none := reg.SpatialReactionsByType(headType, t2, midType, reaction.NoTopologyType)
	require.Empty(none)
}

func TestAddSpatialReactionRejectsNonPositiveRadius(t *testing.T) {
	require := require.New(t)
	reg := reaction.NewRegistry()
	err := reg.AddSpatialReaction(reaction.SpatialReaction{Type1: headType, Type2: midType, Radius: 0})
	require.ErrorIs(err, reaction.ErrNonPositiveRadius)
}
