package topostore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reactopo/reactopo/particle"
	"github.com/reactopo/reactopo/topology"
	"github.com/reactopo/reactopo/topostore"
)

const (
	headType particle.TypeID = 1
	midType  particle.TypeID = 2
	monomer  particle.TypeID = 3

	chainTopType topology.TopologyTypeID = 1
)

func newRegistry(t *testing.T) *particle.TypeRegistry {
	t.Helper()
	reg := particle.NewTypeRegistry()
	_, err := reg.Register("Head", particle.FlavorTopology)
	require.NoError(t, err)
	_, err = reg.Register("Mid", particle.FlavorTopology)
	require.NoError(t, err)
	_, err = reg.Register("Monomer", particle.FlavorNormal)
	require.NoError(t, err)
	return reg
}

func TestAddGetDeactivate(t *testing.T) {
	require := require.New(t)
	store := particle.NewStore()
	p0 := store.Activate(particle.Entry{Type: headType})

	ts := topostore.NewStore()
	g := topology.NewGraph(chainTopType, p0, headType)
	h := ts.Add(g)

	got, err := ts.Get(h)
	require.NoError(err)
	require.Same(g, got)
	require.False(ts.IsDeactivated(h))

	require.NoError(ts.Deactivate(h))
	require.True(ts.IsDeactivated(h))
	_, err = ts.Get(h)
	require.ErrorIs(err, topostore.ErrAlreadyDeactivated)
	require.ErrorIs(ts.Deactivate(h), topostore.ErrAlreadyDeactivated)
}

func TestActiveIteratesInHandleOrderSkippingDeactivated(t *testing.T) {
	require := require.New(t)
	store := particle.NewStore()
	ts := topostore.NewStore()

	h0 := ts.Add(topology.NewGraph(chainTopType, store.Activate(particle.Entry{Type: headType}), headType))
	h1 := ts.Add(topology.NewGraph(chainTopType, store.Activate(particle.Entry{Type: headType}), headType))
	h2 := ts.Add(topology.NewGraph(chainTopType, store.Activate(particle.Entry{Type: headType}), headType))
	require.NoError(ts.Deactivate(h1))

	var seen []topostore.Handle
	require.NoError(ts.Active(func(h topostore.Handle, _ *topology.Graph) error {
		seen = append(seen, h)
		return nil
	}))
	require.Equal([]topostore.Handle{h0, h2}, seen)
}

func TestReapCompactsAndRemaps(t *testing.T) {
	require := require.New(t)
	pstore := particle.NewStore()
	ts := topostore.NewStore()

	h0 := ts.Add(topology.NewGraph(chainTopType, pstore.Activate(particle.Entry{Type: headType}), headType))
	h1 := ts.Add(topology.NewGraph(chainTopType, pstore.Activate(particle.Entry{Type: headType}), headType))
	h2 := ts.Add(topology.NewGraph(chainTopType, pstore.Activate(particle.Entry{Type: headType}), headType))
	require.NoError(ts.Deactivate(h0))

	remap := ts.Reap()
	require.Equal(2, ts.Len())
	require.Equal(map[topostore.Handle]topostore.Handle{h1: h0, h2: h1}, remap)
	_, stillH1 := remap[h1]
	require.True(stillH1)
}

func TestMergeReconcilesParticleTopologyIndex(t *testing.T) {
	require := require.New(t)
	pstore := particle.NewStore()
	ts := topostore.NewStore()

	pA := pstore.Activate(particle.Entry{Type: headType})
	pB := pstore.Activate(particle.Entry{Type: headType})
	gA := topology.NewGraph(chainTopType, pA, headType)
	gB := topology.NewGraph(chainTopType, pB, headType)
	hA := ts.Add(gA)
	hB := ts.Add(gB)

	entryA, _ := pstore.EntryAt(pA)
	entryA.TopologyIndex = int(hA)
	entryB, _ := pstore.EntryAt(pB)
	entryB.TopologyIndex = int(hB)

	err := ts.Merge(pstore, hA, hB, 0, 0, midType, midType, chainTopType)
	require.NoError(err)

	require.True(ts.IsDeactivated(hB))
	mergedB, err := pstore.EntryAt(pB)
	require.NoError(err)
	require.Equal(int(hA), mergedB.TopologyIndex)

	merged, err := ts.Get(hA)
	require.NoError(err)
	require.Equal(2, merged.NParticles())
	require.Equal(1, merged.EdgeCount())
}

func TestDemoteClearsTopologyIndexAndDeactivates(t *testing.T) {
	require := require.New(t)
	pstore := particle.NewStore()
	ts := topostore.NewStore()

	p := pstore.Activate(particle.Entry{Type: monomer})
	entry, _ := pstore.EntryAt(p)
	g := topology.NewGraph(chainTopType, p, monomer)
	h := ts.Add(g)
	entry.TopologyIndex = int(h)

	require.NoError(ts.Demote(pstore, h))
	require.True(ts.IsDeactivated(h))
	after, err := pstore.EntryAt(p)
	require.NoError(err)
	require.Equal(particle.NoTopology, after.TopologyIndex)
}

func TestDemoteRejectsMultiParticleTopology(t *testing.T) {
	require := require.New(t)
	pstore := particle.NewStore()
	ts := topostore.NewStore()

	p0 := pstore.Activate(particle.Entry{Type: headType})
	p1 := pstore.Activate(particle.Entry{Type: midType})
	g := topology.NewGraph(chainTopType, p0, headType)
	_, err := g.AppendParticle(0, midType, p1, headType)
	require.NoError(err)
	h := ts.Add(g)

	require.ErrorIs(ts.Demote(pstore, h), topostore.ErrNotSingleton)
}

func TestFissionSplitsIntoIndependentTopologiesAndDemotesSingletons(t *testing.T) {
	require := require.New(t)
	reg := newRegistry(t)
	pstore := particle.NewStore()
	ts := topostore.NewStore()

	p0 := pstore.Activate(particle.Entry{Type: headType})
	p1 := pstore.Activate(particle.Entry{Type: monomer})
	original := topology.NewGraph(chainTopType, p0, headType)
	h := ts.Add(original)

	chainResult := topology.NewGraph(chainTopType, p0, headType)
	singletonResult := topology.NewGraph(chainTopType, p1, monomer)

	newHandles, err := ts.Fission(pstore, reg, h, []*topology.Graph{chainResult, singletonResult})
	require.NoError(err)
	require.True(ts.IsDeactivated(h))
	require.Len(newHandles, 1)

	survivor, err := ts.Get(newHandles[0])
	require.NoError(err)
	require.Same(chainResult, survivor)

	e0, err := pstore.EntryAt(p0)
	require.NoError(err)
	require.Equal(int(newHandles[0]), e0.TopologyIndex)

	e1, err := pstore.EntryAt(p1)
	require.NoError(err)
	require.Equal(particle.NoTopology, e1.TopologyIndex)
}
