package adapters_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reactopo/reactopo/adapters"
	"github.com/reactopo/reactopo/particle"
)

func TestUniformGridListFindsNeighborsWithinRadius(t *testing.T) {
	require := require.New(t)
	store := particle.NewStore()
	p0 := store.Activate(particle.Entry{Position: particle.Vec3{1, 1, 1}, TopologyIndex: particle.NoTopology})
	p1 := store.Activate(particle.Entry{Position: particle.Vec3{1.2, 1, 1}, TopologyIndex: particle.NoTopology})
	p2 := store.Activate(particle.Entry{Position: particle.Vec3{5, 5, 5}, TopologyIndex: particle.NoTopology})

	ctx := &adapters.BasicContext{
		Box:      particle.Vec3{10, 10, 10},
		Periodic: [3]bool{true, true, true},
		Store:    store,
	}
	grid, err := adapters.NewUniformGridList(store, ctx, 2.0)
	require.NoError(err)

	cell0 := -1
	for c := 0; c < grid.NCells(); c++ {
		for _, q := range grid.ParticlesInCell(c) {
			if q == p0 {
				cell0 = c
			}
		}
	}
	require.NotEqual(-1, cell0)

	var found []int
	grid.ForEachNeighbor(p0, cell0, func(q int) { found = append(found, q) })
	require.Contains(found, p1)
	require.NotContains(found, p0)
	require.NotContains(found, p2)
}
