// Package layout models the mutable bijection between virtual (logical)
// and physical qubits, plus the two primitives — SWAP and TELEPORT — that
// change it.
//
// A physical slot p is free iff PhysToVirt[p] >= NumVirtual: free slots are
// encoded as distinct sentinel indices >= NumVirtual (one per slot) rather
// than a single shared sentinel, so PhysToVirt/VirtToPhys remain true
// permutations of [0, P) and invariant I1 (phys_to_virt[virt_to_phys[v]] ==
// v for all v, including free-slot sentinels) always holds.
//
// Layout is not safe for concurrent use: per spec.md §5 the routing pass is
// single-threaded, and candidate scoring applies and undoes moves on one
// Layout (ApplySwap/ApplyTeleport) rather than sharing it across goroutines.
package layout

import (
	"fmt"

	"github.com/qcompiler/telesabre/arch"
	"github.com/qcompiler/telesabre/circuit"
)

// Layout is the mutable virtual<->physical qubit bijection for one
// architecture.
type Layout struct {
	PhysToVirt []int // len == P; entries >= NumVirtual mean "free"
	VirtToPhys []int // len == P; inverse of PhysToVirt

	NumVirtual int
	arch       *arch.Architecture
}

// New builds a Layout from an explicit phys-to-virt assignment.
//
// physToVirt must be a permutation of [0, P) where P = arch.NumQubits;
// entries in [numVirtual, P) denote free slots (invariant I1). Invariant I2
// is validated here: at least two free slots machine-wide, and at least one
// free slot per core.
func New(a *arch.Architecture, physToVirt []int, numVirtual int) (*Layout, error) {
	p := a.NumQubits
	if len(physToVirt) != p {
		return nil, fmt.Errorf("layout: phys_to_virt has %d entries, want %d: %w", len(physToVirt), p, ErrBadMapping)
	}

	virtToPhys := make([]int, p)
	seen := make([]bool, p)
	for phys, v := range physToVirt {
		if v < 0 || v >= p {
			return nil, fmt.Errorf("layout: phys_to_virt[%d]=%d out of range: %w", phys, v, ErrBadMapping)
		}
		if seen[v] {
			return nil, fmt.Errorf("layout: phys_to_virt[%d]=%d duplicated: %w", phys, v, ErrBadMapping)
		}
		seen[v] = true
		virtToPhys[v] = phys
	}

	l := &Layout{
		PhysToVirt: append([]int(nil), physToVirt...),
		VirtToPhys: virtToPhys,
		NumVirtual: numVirtual,
		arch:       a,
	}
	if err := l.validateCapacity(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Layout) validateCapacity() error {
	total := 0
	perCore := make([]int, l.arch.NumCores)
	for phys, v := range l.PhysToVirt {
		if v >= l.NumVirtual {
			total++
			perCore[l.arch.CoreOf(phys)]++
		}
	}
	if total < 2 {
		return ErrInsufficientFreeSlots
	}
	for c, n := range perCore {
		if n == 0 {
			return fmt.Errorf("layout: core %d: %w", c, ErrCoreHasNoFreeSlot)
		}
	}
	return nil
}

// IsPhysFree reports whether physical slot p currently holds no virtual
// qubit.
func (l *Layout) IsPhysFree(p int) bool {
	return l.PhysToVirt[p] >= l.NumVirtual
}

// GetPhys returns the physical slot currently holding virtual qubit v.
func (l *Layout) GetPhys(v int) int {
	return l.VirtToPhys[v]
}

// GetVirt returns the virtual qubit (or a free-slot sentinel >= NumVirtual)
// occupying physical slot p.
func (l *Layout) GetVirt(p int) int {
	return l.PhysToVirt[p]
}

// FreeQubits returns every currently free physical slot, in ascending
// order.
func (l *Layout) FreeQubits() []int {
	var free []int
	for p, v := range l.PhysToVirt {
		if v >= l.NumVirtual {
			free = append(free, p)
		}
	}
	return free
}

// CoreCapacity returns the number of free physical slots in core c.
func (l *Layout) CoreCapacity(core int) int {
	n := 0
	for _, p := range l.arch.CoreQubits[core] {
		if l.IsPhysFree(p) {
			n++
		}
	}
	return n
}

// VirtCore returns the core currently hosting virtual qubit v.
func (l *Layout) VirtCore(v int) int {
	return l.arch.CoreOf(l.VirtToPhys[v])
}

// Swap exchanges the contents of two adjacent physical slots.
//
// Legal only if (p1, p2) is an intra-core coupling edge (spec.md §4.2).
func (l *Layout) Swap(p1, p2 int) error {
	if !l.arch.HasEdge(p1, p2) {
		return fmt.Errorf("layout: swap(%d,%d): %w", p1, p2, ErrNotAnEdge)
	}
	l.rawSwap(p1, p2)
	return nil
}

func (l *Layout) rawSwap(p1, p2 int) {
	v1, v2 := l.PhysToVirt[p1], l.PhysToVirt[p2]
	l.PhysToVirt[p1], l.PhysToVirt[p2] = v2, v1
	l.VirtToPhys[v1], l.VirtToPhys[v2] = p2, p1
}

// Teleport moves the virtual qubit at pSrc to pTgt via mediator pMed.
//
// Preconditions (spec.md §4.2): pSrc occupied; pMed and pTgt free; (pSrc,
// pMed) an intra-core edge; (pMed, pTgt) an inter-core edge. Effect: the
// logical qubit at pSrc moves to pTgt; pSrc becomes free; pMed stays free.
func (l *Layout) Teleport(pSrc, pMed, pTgt int) error {
	if l.IsPhysFree(pSrc) {
		return fmt.Errorf("layout: teleport(%d,%d,%d): source: %w", pSrc, pMed, pTgt, ErrSourceNotOccupied)
	}
	if !l.IsPhysFree(pMed) {
		return fmt.Errorf("layout: teleport(%d,%d,%d): mediator: %w", pSrc, pMed, pTgt, ErrSlotNotFree)
	}
	if !l.IsPhysFree(pTgt) {
		return fmt.Errorf("layout: teleport(%d,%d,%d): target: %w", pSrc, pMed, pTgt, ErrSlotNotFree)
	}
	if !l.arch.HasEdge(pSrc, pMed) {
		return fmt.Errorf("layout: teleport(%d,%d,%d): %w", pSrc, pMed, pTgt, ErrNotATeleportEdge)
	}
	if !l.arch.HasInterCoreEdge(pMed, pTgt) {
		return fmt.Errorf("layout: teleport(%d,%d,%d): %w", pSrc, pMed, pTgt, ErrNotATeleportEdge)
	}
	// The mediator never changes occupancy: the net effect of a teleport is
	// identical to swapping source and target directly.
	l.rawSwap(pSrc, pTgt)
	return nil
}

// CanExecuteGate reports whether g is ready to run under this layout: a
// one-qubit gate always is; a two-qubit gate is iff its physical qubits are
// intra-core adjacent.
func (l *Layout) CanExecuteGate(g circuit.Gate) bool {
	if !g.IsTwoQubit() {
		return true
	}
	p1, p2 := l.VirtToPhys[g.Targets[0]], l.VirtToPhys[g.Targets[1]]
	return l.arch.HasEdge(p1, p2)
}

// Clone returns a deep, independent copy of l.
//
// Used for deadlock snapshots and between initial-layout passes; candidate
// scoring uses ApplySwap/ApplyTeleport instead.
func (l *Layout) Clone() *Layout {
	return &Layout{
		PhysToVirt: append([]int(nil), l.PhysToVirt...),
		VirtToPhys: append([]int(nil), l.VirtToPhys...),
		NumVirtual: l.NumVirtual,
		arch:       l.arch,
	}
}

// ApplySwap mutates l in place and returns an undo function that restores
// the prior state. Used by the driver's candidate-scoring loop to avoid a
// full Clone per candidate (spec.md §9's suggested re-architecture): swap
// is its own inverse.
func (l *Layout) ApplySwap(p1, p2 int) (undo func(), err error) {
	if err = l.Swap(p1, p2); err != nil {
		return nil, err
	}
	return func() { l.rawSwap(p1, p2) }, nil
}

// ApplyTeleport mutates l in place and returns an undo function. A
// teleport's inverse is another teleport with source and target swapped.
func (l *Layout) ApplyTeleport(pSrc, pMed, pTgt int) (undo func(), err error) {
	if err = l.Teleport(pSrc, pMed, pTgt); err != nil {
		return nil, err
	}
	return func() { l.rawSwap(pSrc, pTgt) }, nil
}
