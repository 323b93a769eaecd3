package routing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qcompiler/telesabre/arch"
	"github.com/qcompiler/telesabre/arch/archfixtures"
	"github.com/qcompiler/telesabre/circuit"
	"github.com/qcompiler/telesabre/config"
	"github.com/qcompiler/telesabre/layout"
	"github.com/qcompiler/telesabre/pqueue"
	"github.com/qcompiler/telesabre/routing"
)

func naiveLayout(t *testing.T, a *arch.Architecture, numVirtual int) *layout.Layout {
	t.Helper()
	p2v := make([]int, a.NumQubits)
	for p := range p2v {
		p2v[p] = p
	}
	l, err := layout.New(a, p2v, numVirtual)
	require.NoError(t, err)
	return l
}

func TestShortestPath_AcrossBridge(t *testing.T) {
	a, err := arch.New(archfixtures.TwoCoreLine())
	require.NoError(t, err)
	l := naiveLayout(t, a, 3)
	cfg := config.Default()
	queues := pqueue.NewRegistry()

	g := routing.BuildContractedGraph(a, l, queues, cfg, [2]int{3, 4})
	path, dist := g.ShortestPath(3, 4)
	require.NotNil(t, path)
	assert.Equal(t, []int{3, 4}, path)
	assert.Equal(t, 2.0, dist)
}

func TestApplyTraffic_IncreasesSubsequentCost(t *testing.T) {
	a, err := arch.New(archfixtures.TwoCoreLine())
	require.NoError(t, err)
	l := naiveLayout(t, a, 3)
	cfg := config.Default()
	queues := pqueue.NewRegistry()

	g := routing.BuildContractedGraph(a, l, queues, cfg, [2]int{3, 4})
	_, before := g.ShortestPath(3, 4)
	g.ApplyTraffic([]int{3, 4})
	_, after := g.ShortestPath(3, 4)
	assert.Greater(t, after, before)
}

func TestEnergy_ZeroForEmptyCircuit(t *testing.T) {
	a, err := arch.New(archfixtures.SingleCore6())
	require.NoError(t, err)
	l := naiveLayout(t, a, 4)
	c, err := circuit.New(4, nil)
	require.NoError(t, err)
	cfg := config.Default()
	queues := pqueue.NewRegistry()

	e := routing.Energy(c, map[int]bool{}, l, a, queues, 1.0, cfg, routing.ModeExtendedSet, false)
	assert.Equal(t, 0.0, e)
}

func TestEnergy_PositiveWhenGateNotAdjacent(t *testing.T) {
	a, err := arch.New(archfixtures.SingleCore6())
	require.NoError(t, err)
	l := naiveLayout(t, a, 4)
	c, err := circuit.New(4, []circuit.Gate{{Targets: []int{0, 3}, Op: "cx"}})
	require.NoError(t, err)
	cfg := config.Default()
	queues := pqueue.NewRegistry()

	e := routing.Energy(c, map[int]bool{}, l, a, queues, 1.0, cfg, routing.ModeExtendedSet, false)
	assert.Greater(t, e, 0.0)
}

func TestEnumerate_SingleCoreProducesOnlySwaps(t *testing.T) {
	a, err := arch.New(archfixtures.SingleCore6())
	require.NoError(t, err)
	l := naiveLayout(t, a, 4)
	c, err := circuit.New(4, []circuit.Gate{{Targets: []int{0, 3}, Op: "cx"}})
	require.NoError(t, err)
	cfg := config.Default()
	queues := pqueue.NewRegistry()

	cands := routing.Enumerate(a, l, []int{0}, c, queues, cfg)
	require.NotEmpty(t, cands)
	for _, cand := range cands {
		assert.Equal(t, routing.KindSwap, cand.Kind)
	}
}

func TestEnumerate_TwoCoreLineProducesTeleportOrTelegate(t *testing.T) {
	a, err := arch.New(archfixtures.TwoCoreLine())
	require.NoError(t, err)
	// Mediators 3 and 4 are the only free slots; virtual 2 sits at phys 2
	// and virtual 5 at phys 5, each next to its core's mediator.
	l, err := layout.New(a, []int{0, 1, 2, 6, 7, 5, 3, 4}, 6)
	require.NoError(t, err)
	c, err := circuit.New(6, []circuit.Gate{{Targets: []int{2, 5}, Op: "cx"}})
	require.NoError(t, err)
	cfg := config.Default()
	queues := pqueue.NewRegistry()

	cands := routing.Enumerate(a, l, []int{0}, c, queues, cfg)
	var sawNonSwap bool
	for _, cand := range cands {
		if cand.Kind == routing.KindTeleport || cand.Kind == routing.KindTelegate {
			sawNonSwap = true
		}
	}
	assert.True(t, sawNonSwap)
}
