package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/reactopo/reactopo/config"
)

const sampleYAML = `
particle_types:
  - name: Head
    flavor: topology
  - name: Mid
    flavor: topology
topology_types:
  - T1
  - T2
structural_reactions:
  - name: stay_put
    topology_type: T1
    kind: noop
    rate: 5
spatial_reactions:
  - name: fuse_heads
    type1: Head
    top_type1: T1
    type2: Head
    top_type2: T1
    type_to1: Mid
    top_type_to1: T2
    type_to2: Mid
    top_type_to2: T2
    rate: 10
    radius: 1.0
    is_fusion: true
`

func TestBuildRegistryFromYAML(t *testing.T) {
	require := require.New(t)

	var doc config.RegistryConfig
	require.NoError(yaml.Unmarshal([]byte(sampleYAML), &doc))

	built, err := config.BuildRegistry(doc)
	require.NoError(err)

	headID, err := built.Types.LookupByName("Head")
	require.NoError(err)
	t1 := built.TopologyTypes["T1"]
	t2 := built.TopologyTypes["T2"]

	structural := built.Registry.StructuralReactionsOf(t1)
	require.Len(structural, 1)
	require.Equal("stay_put", structural[0].Name)

	matches := built.Registry.SpatialReactionsByType(headID.ID, t1, headID.ID, t1)
	require.Len(matches, 1)
	require.True(matches[0].Reaction.IsFusion)
	require.Equal(t2, matches[0].Reaction.TopTypeTo1)
}

func TestBuildRegistryRejectsUnknownStructuralKind(t *testing.T) {
	require := require.New(t)
	doc := config.RegistryConfig{
		ParticleTypes: []config.ParticleTypeConfig{{Name: "Head", Flavor: "topology"}},
		TopologyTypes: []string{"T1"},
		Structural: []config.StructuralReactionCfg{
			{Name: "mystery", TopologyType: "T1", Kind: "does-not-exist"},
		},
	}
	_, err := config.BuildRegistry(doc)
	require.ErrorIs(err, config.ErrUnknownStructuralKind)
}

func TestBuildRegistryRejectsUnknownParticleType(t *testing.T) {
	require := require.New(t)
	doc := config.RegistryConfig{
		TopologyTypes: []string{"T1"},
		Spatial: []config.SpatialReactionCfg{
			{Name: "bad", Type1: "Ghost", Type2: "Ghost", Radius: 1},
		},
	}
	_, err := config.BuildRegistry(doc)
	require.Error(err)
}
