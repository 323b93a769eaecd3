// File: build.go
// Role: New validates a Spec and derives every table on Architecture.
//
// Derivation order (each stage consumes only earlier stages' output):
//  1. validate shape (qubit/core counts, per-qubit core assignment)
//  2. validate and index edges (QubitToEdges, duplicate/self-loop checks)
//  3. validate inter-core edges (distinct cores) and derive comm qubits
//  4. build triadic teleport edges and their reverse indices (spec.md §4.1)
//  5. compute LocalDist (intra-core APSP) and CoreDist (quotient-graph APSP)
package arch

import (
	"fmt"
	"sort"
)

// New validates spec and builds the immutable Architecture it describes.
//
// Returns a wrapped sentinel from errors.go on any invariant violation;
// validation happens before any table is built (spec.md §7: "validation
// errors fail at driver entry before any mutation").
func New(spec Spec) (*Architecture, error) {
	if err := validateShape(spec); err != nil {
		return nil, err
	}

	a := &Architecture{
		Name:        spec.Name,
		NumQubits:   spec.NumQubits,
		NumCores:    spec.NumCores,
		QubitToCore: append([]int(nil), spec.QubitToCore...),
		isCommQubit: make(map[int]bool),
	}

	if err := a.buildEdges(spec.IntraCoreEdges); err != nil {
		return nil, err
	}
	if err := a.buildInterCoreEdges(spec.InterCoreEdges); err != nil {
		return nil, err
	}
	a.buildCoreQubits()
	if err := a.validateCoreOccupancy(); err != nil {
		return nil, err
	}
	a.buildTeleportEdges()
	a.buildDistances()

	return a, nil
}

func validateShape(spec Spec) error {
	if spec.NumQubits <= 0 || spec.NumCores <= 0 {
		return ErrInvalidQubitCount
	}
	if len(spec.QubitToCore) != spec.NumQubits {
		return fmt.Errorf("arch: QubitToCore has %d entries, want %d: %w", len(spec.QubitToCore), spec.NumQubits, ErrInvalidQubitCount)
	}
	for p, c := range spec.QubitToCore {
		if c < 0 || c >= spec.NumCores {
			return fmt.Errorf("arch: qubit %d assigned to core %d: %w", p, c, ErrCoreOutOfRange)
		}
	}
	return nil
}

func (a *Architecture) inRange(p int) bool {
	return p >= 0 && p < a.NumQubits
}

func (a *Architecture) buildEdges(edges []Edge) error {
	seen := make(map[[2]int]bool, len(edges))
	a.Edges = make([]Edge, 0, len(edges))
	for _, e := range edges {
		if !a.inRange(e.P1) || !a.inRange(e.P2) {
			return fmt.Errorf("arch: intra-core edge (%d,%d): %w", e.P1, e.P2, ErrQubitOutOfRange)
		}
		if e.P1 == e.P2 {
			return fmt.Errorf("arch: intra-core edge (%d,%d): %w", e.P1, e.P2, ErrSelfLoopEdge)
		}
		key := normalizedPair(e.P1, e.P2)
		if seen[key] {
			return fmt.Errorf("arch: intra-core edge (%d,%d): %w", e.P1, e.P2, ErrDuplicateEdge)
		}
		seen[key] = true
		a.Edges = append(a.Edges, e)
	}
	a.edgeSet = seen

	a.QubitToEdges = make([][]int, a.NumQubits)
	for i := range a.QubitToEdges {
		a.QubitToEdges[i] = nil
	}
	for i, e := range a.Edges {
		a.QubitToEdges[e.P1] = append(a.QubitToEdges[e.P1], i)
		a.QubitToEdges[e.P2] = append(a.QubitToEdges[e.P2], i)
	}
	return nil
}

func (a *Architecture) buildInterCoreEdges(edges []Edge) error {
	seen := make(map[[2]int]bool, len(edges))
	a.InterCoreEdges = make([]Edge, 0, len(edges))
	commSet := make(map[int]bool)
	for _, e := range edges {
		if !a.inRange(e.P1) || !a.inRange(e.P2) {
			return fmt.Errorf("arch: inter-core edge (%d,%d): %w", e.P1, e.P2, ErrQubitOutOfRange)
		}
		if e.P1 == e.P2 {
			return fmt.Errorf("arch: inter-core edge (%d,%d): %w", e.P1, e.P2, ErrSelfLoopEdge)
		}
		if a.QubitToCore[e.P1] == a.QubitToCore[e.P2] {
			return fmt.Errorf("arch: inter-core edge (%d,%d): %w", e.P1, e.P2, ErrInterCoreEdgeSameCore)
		}
		key := normalizedPair(e.P1, e.P2)
		if seen[key] {
			return fmt.Errorf("arch: inter-core edge (%d,%d): %w", e.P1, e.P2, ErrDuplicateEdge)
		}
		seen[key] = true
		a.InterCoreEdges = append(a.InterCoreEdges, e)
		commSet[e.P1] = true
		commSet[e.P2] = true
	}
	a.interSet = seen

	a.CommunicationQubits = make([]int, 0, len(commSet))
	for p := range commSet {
		a.CommunicationQubits = append(a.CommunicationQubits, p)
		a.isCommQubit[p] = true
	}
	sort.Ints(a.CommunicationQubits)
	return nil
}

func (a *Architecture) buildCoreQubits() {
	a.CoreQubits = make([][]int, a.NumCores)
	for p, c := range a.QubitToCore {
		a.CoreQubits[c] = append(a.CoreQubits[c], p)
	}
	a.CoreCommQubits = make([][]int, a.NumCores)
	for _, p := range a.CommunicationQubits {
		c := a.QubitToCore[p]
		a.CoreCommQubits[c] = append(a.CoreCommQubits[c], p)
	}
}

func (a *Architecture) validateCoreOccupancy() error {
	for c, qs := range a.CoreQubits {
		if len(qs) == 0 {
			return fmt.Errorf("arch: core %d: %w", c, ErrEmptyCore)
		}
	}
	return nil
}

// buildTeleportEdges implements spec.md §4.1's triadic rule: for every
// inter-core pair (a,b) and every intra-core neighbor s of a, emit (s,a,b);
// and symmetrically for b.
func (a *Architecture) buildTeleportEdges() {
	a.TeleportEdges = nil
	for _, ic := range a.InterCoreEdges {
		p1, p2 := ic.P1, ic.P2
		for _, ei := range a.QubitToEdges[p1] {
			neighbor := otherEndpoint(a.Edges[ei], p1)
			a.TeleportEdges = append(a.TeleportEdges, TeleportEdge{Source: neighbor, Mediator: p1, Target: p2})
		}
		for _, ei := range a.QubitToEdges[p2] {
			neighbor := otherEndpoint(a.Edges[ei], p2)
			a.TeleportEdges = append(a.TeleportEdges, TeleportEdge{Source: neighbor, Mediator: p2, Target: p1})
		}
	}

	a.QubitToTeleportEdgesAsSource = make([][]int, a.NumQubits)
	a.QubitToTeleportEdgesAsMed = make([][]int, a.NumQubits)
	a.QubitToTeleportEdgesAsTarget = make([][]int, a.NumQubits)
	for i, te := range a.TeleportEdges {
		a.QubitToTeleportEdgesAsSource[te.Source] = append(a.QubitToTeleportEdgesAsSource[te.Source], i)
		a.QubitToTeleportEdgesAsMed[te.Mediator] = append(a.QubitToTeleportEdgesAsMed[te.Mediator], i)
		a.QubitToTeleportEdgesAsTarget[te.Target] = append(a.QubitToTeleportEdgesAsTarget[te.Target], i)
	}
}

// buildDistances computes LocalDist (intra-core APSP) and CoreDist
// (quotient-graph APSP over cores, per spec.md §4.1's last sentence).
func (a *Architecture) buildDistances() {
	a.LocalDist = NewMatrix(a.NumQubits)
	for _, e := range a.Edges {
		a.LocalDist.AddEdge(e.P1, e.P2, 1)
	}
	a.LocalDist.Closure()

	a.CoreDist = NewMatrix(a.NumCores)
	for _, e := range a.InterCoreEdges {
		a.CoreDist.AddEdge(a.QubitToCore[e.P1], a.QubitToCore[e.P2], 1)
	}
	a.CoreDist.Closure()
}

func normalizedPair(p1, p2 int) [2]int {
	if p1 <= p2 {
		return [2]int{p1, p2}
	}
	return [2]int{p2, p1}
}

func otherEndpoint(e Edge, p int) int {
	if e.P1 == p {
		return e.P2
	}
	return e.P1
}
