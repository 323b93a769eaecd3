package arch_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qcompiler/telesabre/arch"
	"github.com/qcompiler/telesabre/arch/archfixtures"
)

func TestNew_SingleCore(t *testing.T) {
	a, err := arch.New(archfixtures.SingleCore4())
	require.NoError(t, err)
	assert.Equal(t, 4, a.NumQubits)
	assert.Equal(t, 1, a.NumCores)
	assert.Empty(t, a.InterCoreEdges)
	assert.Empty(t, a.TeleportEdges)
	assert.Empty(t, a.CommunicationQubits)
}

func TestNew_TwoCoreLine(t *testing.T) {
	a, err := arch.New(archfixtures.TwoCoreLine())
	require.NoError(t, err)
	assert.Len(t, a.InterCoreEdges, 1)
	assert.True(t, a.IsCommQubit(3))
	assert.True(t, a.IsCommQubit(4))
	assert.False(t, a.IsCommQubit(0))

	// Teleport edges: neighbors of 3 are {2}; neighbors of 4 are {5}.
	// So triples: (2,3,4) source-side, (5,4,3) target-side.
	var sawForward, sawBackward bool
	for _, te := range a.TeleportEdges {
		if te.Source == 2 && te.Mediator == 3 && te.Target == 4 {
			sawForward = true
		}
		if te.Source == 5 && te.Mediator == 4 && te.Target == 3 {
			sawBackward = true
		}
	}
	assert.True(t, sawForward)
	assert.True(t, sawBackward)
}

func TestNew_DistanceMatrices(t *testing.T) {
	a, err := arch.New(archfixtures.SingleCore4())
	require.NoError(t, err)
	assert.Equal(t, 1.0, a.LocalDist.At(0, 1))
	assert.Equal(t, 3.0, a.LocalDist.At(0, 3))
	assert.Equal(t, 0.0, a.LocalDist.At(0, 0))
}

func TestNew_RejectsSameCoreInterEdge(t *testing.T) {
	spec := archfixtures.TwoCoreLine()
	spec.InterCoreEdges = []arch.Edge{{P1: 0, P2: 1}} // both in core 0
	_, err := arch.New(spec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, arch.ErrInterCoreEdgeSameCore))
}

func TestNew_RejectsOutOfRangeQubit(t *testing.T) {
	spec := archfixtures.SingleCore4()
	spec.IntraCoreEdges = append(spec.IntraCoreEdges, arch.Edge{P1: 0, P2: 99})
	_, err := arch.New(spec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, arch.ErrQubitOutOfRange))
}

func TestNew_RejectsEmptyCore(t *testing.T) {
	spec := archfixtures.TwoCoreLine()
	spec.NumCores = 3
	spec.QubitToCore = []int{0, 0, 0, 0, 1, 1, 1, 1} // core 2 has no qubits
	_, err := arch.New(spec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, arch.ErrEmptyCore))
}

func TestFixtureA_Builds(t *testing.T) {
	a, err := arch.New(archfixtures.A())
	require.NoError(t, err)
	assert.Equal(t, 36, a.NumQubits)
	assert.Equal(t, 4, a.NumCores)
	assert.Len(t, a.InterCoreEdges, 4)
}
