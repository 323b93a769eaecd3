// Package circuitgen generates pseudo-random circuits for tests, grounded
// on the Python prototype's Circuit.generate_gates.
//
// Generation is seeded with math/rand exactly like the teacher package's
// tsp.rngFromSeed: same seed and parameters always produce the same gate
// sequence, on any platform.
package circuitgen

import (
	"math/rand"

	"github.com/qcompiler/telesabre/circuit"
)

// Options configures Generate.
type Options struct {
	NumQubits         int
	NumGates          int
	SingleQubitGateProb float64 // probability a given gate is single-qubit ("h")
	Seed              int64
}

// Generate builds a random circuit: each gate is a single-qubit "h" with
// probability SingleQubitGateProb, else a two-qubit "cx" on a uniformly
// chosen ordered pair of distinct qubits.
func Generate(opts Options) (*circuit.Circuit, error) {
	rng := rand.New(rand.NewSource(opts.Seed))
	gates := make([]circuit.Gate, 0, opts.NumGates)
	for i := 0; i < opts.NumGates; i++ {
		if rng.Float64() < opts.SingleQubitGateProb {
			gates = append(gates, circuit.Gate{Targets: []int{rng.Intn(opts.NumQubits)}, Op: "h"})
			continue
		}
		q1 := rng.Intn(opts.NumQubits)
		q2 := rng.Intn(opts.NumQubits - 1)
		if q2 >= q1 {
			q2++
		}
		gates = append(gates, circuit.Gate{Targets: []int{q1, q2}, Op: "cx"})
	}
	return circuit.New(opts.NumQubits, gates)
}
