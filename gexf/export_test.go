package gexf_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reactopo/reactopo/gexf"
	"github.com/reactopo/reactopo/particle"
	"github.com/reactopo/reactopo/topology"
)

func TestExportSingleVertex(t *testing.T) {
	require := require.New(t)
	g := topology.NewGraph(1, 42, particle.TypeID(7))

	out, err := gexf.Export(g)
	require.NoError(err)

	doc := string(out)
	require.Equal(1, strings.Count(doc, "<node "))
	require.Equal(0, strings.Count(doc, "<edge "))
	require.Contains(doc, `label="42"`)
}

func TestExportMergedTopologyNodeAndEdgeCounts(t *testing.T) {
	require := require.New(t)

	a := topology.NewGraph(1, 0, particle.TypeID(1))
	_, err := a.AppendParticle(0, particle.TypeID(1), 1, particle.TypeID(1))
	require.NoError(err)

	b := topology.NewGraph(2, 2, particle.TypeID(1))
	_, err = b.AppendParticle(0, particle.TypeID(1), 3, particle.TypeID(1))
	require.NoError(err)

	v0, ok := a.VertexForParticle(0)
	require.True(ok)
	v2, ok := b.VertexForParticle(2)
	require.True(ok)

	_, err = a.AppendTopology(b, v2, particle.TypeID(1), v0, particle.TypeID(1), 3)
	require.NoError(err)
	a.Configure()

	out, err := gexf.Export(a)
	require.NoError(err)
	doc := string(out)

	// S6: |V_A|+|V_B| nodes, |E_A|+|E_B|+1 edges (the merge bridge).
	require.Equal(4, strings.Count(doc, "<node "))
	require.Equal(3, strings.Count(doc, "<edge "))
}
