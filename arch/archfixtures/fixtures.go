// Package archfixtures provides a subset of the named test-fixture
// topologies from the TeleSABRE prototype (architecture.py's
// Architecture.A(), .B(), .D(), plus two single-core chains and a
// two-core line used directly by spec.md's scenarios), reproduced here as
// plain arch.Spec builders for this module's own tests. It is never
// imported by non-test code.
package archfixtures

import "github.com/qcompiler/telesabre/arch"

// gridSpec lays out coreX*coreY cores, each a gridX*gridY grid of qubits,
// numbered core-major then row-major within the core — the same numbering
// scheme as the Python prototype's _init_with_cores, so the literal
// inter-core edge lists from architecture.py's fixtures line up unchanged.
func gridSpec(name string, gridX, gridY, coreX, coreY int) arch.Spec {
	numCores := coreX * coreY
	perCore := gridX * gridY
	numQubits := perCore * numCores

	qubitToCore := make([]int, numQubits)
	var intra []arch.Edge

	for cy := 0; cy < coreY; cy++ {
		for cx := 0; cx < coreX; cx++ {
			core := cy*coreX + cx
			coreStart := core * perCore
			for y := 0; y < gridY; y++ {
				for x := 0; x < gridX; x++ {
					node := coreStart + y*gridX + x
					qubitToCore[node] = core
					if x < gridX-1 {
						intra = append(intra, arch.Edge{P1: node, P2: node + 1})
					}
					if y < gridY-1 {
						intra = append(intra, arch.Edge{P1: node, P2: node + gridX})
					}
				}
			}
		}
	}

	return arch.Spec{
		Name:           name,
		NumQubits:      numQubits,
		NumCores:       numCores,
		QubitToCore:    qubitToCore,
		IntraCoreEdges: intra,
	}
}

// A is a 2x2 grid of cores, each a 3x3 grid of qubits ("2x2C 3x3Q", 36
// qubits), the fixture used by spec.md's scenario S3.
func A() arch.Spec {
	s := gridSpec("2x2C 3x3Q", 3, 3, 2, 2)
	s.InterCoreEdges = []arch.Edge{
		{P1: 5, P2: 12},
		{P1: 16, P2: 28},
		{P1: 7, P2: 19},
		{P1: 23, P2: 30},
	}
	return s
}

// B is a 1x3-core strip of 2x2-qubit cores ("2x2C 3x1Q").
func B() arch.Spec {
	s := gridSpec("2x2C 3x1Q", 2, 2, 3, 1)
	s.InterCoreEdges = []arch.Edge{
		{P1: 3, P2: 4},
		{P1: 7, P2: 8},
	}
	return s
}

// D is a 2x2 grid of 2x2-qubit cores ("2x2C 2x2Q") — the smallest
// multi-core fixture, convenient for deadlock/full-core unit tests.
func D() arch.Spec {
	s := gridSpec("2x2C 2x2Q", 2, 2, 2, 2)
	s.InterCoreEdges = []arch.Edge{
		{P1: 1, P2: 4},
		{P1: 2, P2: 8},
		{P1: 7, P2: 13},
		{P1: 11, P2: 14},
	}
	return s
}

// SingleCore4 is a single-core 1x4 chain (no inter-core edges at all) —
// spec.md scenario S1.
func SingleCore4() arch.Spec {
	return arch.Spec{
		Name:        "1x4 chain",
		NumQubits:   4,
		NumCores:    1,
		QubitToCore: []int{0, 0, 0, 0},
		IntraCoreEdges: []arch.Edge{
			{P1: 0, P2: 1},
			{P1: 1, P2: 2},
			{P1: 2, P2: 3},
		},
	}
}

// SingleCore6 is a single-core 1x6 chain (no inter-core edges) — large
// enough to host 4 virtual qubits while leaving the 2 free slots invariant
// I2 requires machine-wide, unlike SingleCore4 which only has room for 2.
func SingleCore6() arch.Spec {
	return arch.Spec{
		Name:        "1x6 chain",
		NumQubits:   6,
		NumCores:    1,
		QubitToCore: []int{0, 0, 0, 0, 0, 0},
		IntraCoreEdges: []arch.Edge{
			{P1: 0, P2: 1},
			{P1: 1, P2: 2},
			{P1: 2, P2: 3},
			{P1: 3, P2: 4},
			{P1: 4, P2: 5},
		},
	}
}

// TwoCoreLine is two 4-qubit chain cores joined by a single inter-core edge
// between qubit 3 (core 0) and qubit 4 (core 1) — spec.md scenario S2.
func TwoCoreLine() arch.Spec {
	return arch.Spec{
		Name:        "2x1C 4x1Q line",
		NumQubits:   8,
		NumCores:    2,
		QubitToCore: []int{0, 0, 0, 0, 1, 1, 1, 1},
		IntraCoreEdges: []arch.Edge{
			{P1: 0, P2: 1}, {P1: 1, P2: 2}, {P1: 2, P2: 3},
			{P1: 4, P2: 5}, {P1: 5, P2: 6}, {P1: 6, P2: 7},
		},
		InterCoreEdges: []arch.Edge{
			{P1: 3, P2: 4},
		},
	}
}
