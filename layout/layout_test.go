package layout_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qcompiler/telesabre/arch"
	"github.com/qcompiler/telesabre/arch/archfixtures"
	"github.com/qcompiler/telesabre/circuit"
	"github.com/qcompiler/telesabre/layout"
)

// naiveLayout places one virtual qubit per physical qubit in the first
// numVirtual slots of a.
func naiveLayout(t *testing.T, a *arch.Architecture, numVirtual int) *layout.Layout {
	t.Helper()
	physToVirt := make([]int, a.NumQubits)
	for p := range physToVirt {
		physToVirt[p] = p
	}
	l, err := layout.New(a, physToVirt, numVirtual)
	require.NoError(t, err)
	return l
}

func TestNew_RejectsNonPermutation(t *testing.T) {
	a, err := arch.New(archfixtures.SingleCore4())
	require.NoError(t, err)
	_, err = layout.New(a, []int{0, 0, 2, 3}, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, layout.ErrBadMapping))
}

func TestNew_RejectsInsufficientFreeSlots(t *testing.T) {
	a, err := arch.New(archfixtures.SingleCore4())
	require.NoError(t, err)
	// numVirtual == NumQubits: zero free slots machine-wide.
	_, err = layout.New(a, []int{0, 1, 2, 3}, 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, layout.ErrInsufficientFreeSlots))
}

func TestNew_IsPermutationInvariant(t *testing.T) {
	a, err := arch.New(archfixtures.TwoCoreLine())
	require.NoError(t, err)
	l := naiveLayout(t, a, 3)
	for p := 0; p < a.NumQubits; p++ {
		v := l.GetVirt(p)
		assert.Equal(t, p, l.GetPhys(v))
	}
}

func TestSwap_AdjacencyPostcondition(t *testing.T) {
	a, err := arch.New(archfixtures.SingleCore4())
	require.NoError(t, err)
	l := naiveLayout(t, a, 2)

	v0, v1 := l.GetVirt(0), l.GetVirt(1)
	require.NoError(t, l.Swap(0, 1))
	assert.Equal(t, v1, l.GetVirt(0))
	assert.Equal(t, v0, l.GetVirt(1))
	assert.Equal(t, 0, l.GetPhys(v1))
	assert.Equal(t, 1, l.GetPhys(v0))
}

func TestSwap_RejectsNonEdge(t *testing.T) {
	a, err := arch.New(archfixtures.SingleCore4())
	require.NoError(t, err)
	l := naiveLayout(t, a, 2)
	err = l.Swap(0, 3) // chain 0-1-2-3: not adjacent
	require.Error(t, err)
	assert.True(t, errors.Is(err, layout.ErrNotAnEdge))
}

func TestTeleport_MovesLogicalQubitAndFreesSource(t *testing.T) {
	a, err := arch.New(archfixtures.TwoCoreLine())
	require.NoError(t, err)
	// Chain 0-1-2-3 | 4-5-6-7 with inter-core edge 3-4.
	l := naiveLayout(t, a, 3) // phys 0..2 occupied, 3..7 free
	vAt2 := l.GetVirt(2)

	require.NoError(t, l.Teleport(2, 3, 4))
	assert.True(t, l.IsPhysFree(2))
	assert.True(t, l.IsPhysFree(3))
	assert.False(t, l.IsPhysFree(4))
	assert.Equal(t, vAt2, l.GetVirt(4))
	assert.Equal(t, 4, l.GetPhys(vAt2))
}

func TestTeleport_RejectsOccupiedTarget(t *testing.T) {
	a, err := arch.New(archfixtures.TwoCoreLine())
	require.NoError(t, err)
	// Slots 3 (core 0) and 7 (core 1) are free; target 4 holds virtual 3.
	l, err := layout.New(a, []int{0, 1, 2, 6, 3, 4, 5, 7}, 6)
	require.NoError(t, err)
	err = l.Teleport(2, 3, 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, layout.ErrSlotNotFree))
}

func TestTeleport_RejectsFreeSource(t *testing.T) {
	a, err := arch.New(archfixtures.TwoCoreLine())
	require.NoError(t, err)
	l := naiveLayout(t, a, 3)
	err = l.Teleport(6, 4, 7) // 6 is free
	require.Error(t, err)
	assert.True(t, errors.Is(err, layout.ErrSourceNotOccupied))
}

func TestCanExecuteGate(t *testing.T) {
	a, err := arch.New(archfixtures.SingleCore6())
	require.NoError(t, err)
	l := naiveLayout(t, a, 4)

	assert.True(t, l.CanExecuteGate(circuit.Gate{Targets: []int{0, 1}, Op: "cx"}))
	assert.False(t, l.CanExecuteGate(circuit.Gate{Targets: []int{0, 3}, Op: "cx"}))
	assert.True(t, l.CanExecuteGate(circuit.Gate{Targets: []int{2}, Op: "h"}))
}

func TestClone_IsIndependent(t *testing.T) {
	a, err := arch.New(archfixtures.SingleCore4())
	require.NoError(t, err)
	l := naiveLayout(t, a, 2)
	clone := l.Clone()

	require.NoError(t, l.Swap(0, 1))
	assert.NotEqual(t, l.PhysToVirt, clone.PhysToVirt)
}

func TestApplySwap_UndoRestoresState(t *testing.T) {
	a, err := arch.New(archfixtures.SingleCore4())
	require.NoError(t, err)
	l := naiveLayout(t, a, 2)
	before := append([]int(nil), l.PhysToVirt...)

	undo, err := l.ApplySwap(0, 1)
	require.NoError(t, err)
	assert.NotEqual(t, before, l.PhysToVirt)
	undo()
	assert.Equal(t, before, l.PhysToVirt)
}

func TestApplyTeleport_UndoRestoresState(t *testing.T) {
	a, err := arch.New(archfixtures.TwoCoreLine())
	require.NoError(t, err)
	l := naiveLayout(t, a, 3)
	before := append([]int(nil), l.PhysToVirt...)

	undo, err := l.ApplyTeleport(2, 3, 4)
	require.NoError(t, err)
	undo()
	assert.Equal(t, before, l.PhysToVirt)
}

func TestCoreCapacity(t *testing.T) {
	a, err := arch.New(archfixtures.TwoCoreLine())
	require.NoError(t, err)
	l := naiveLayout(t, a, 3)
	assert.Equal(t, 1, l.CoreCapacity(0))
	assert.Equal(t, 4, l.CoreCapacity(1))
}
