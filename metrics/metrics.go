// Package metrics computes circuit depth and inter-core depth from an
// emitted operation schedule (spec.md §4.9).
//
// Grounded on the teacher's accumulate-then-reduce shape for cost
// aggregation (tsp package's solution-cost helpers): walk the schedule
// once, accumulate a per-physical-qubit completion time, then reduce to a
// single scalar.
package metrics

// OpKind mirrors sabre.OpKind without importing the sabre package (which
// imports metrics), keeping the dependency one-directional.
type OpKind int

const (
	OpGate OpKind = iota
	OpSwap
	OpTeleport
	OpTelegate
)

// Op is the minimal shape metrics needs from an emitted schedule entry.
type Op struct {
	Kind   OpKind
	Qubits []int
}

// durations per spec.md §4.9: gate=1, swap=1 (already compiled to a single
// primitive by this point), teleport=5, telegate=5.
func duration(k OpKind) int {
	switch k {
	case OpTeleport, OpTelegate:
		return 5
	default:
		return 1
	}
}

// Summary holds the reduced depth metrics.
type Summary struct {
	Depth          int
	InterCoreDepth int
}

// Compute walks ops in emission order, accumulating completion time per
// physical qubit, and reduces to overall depth and inter-core depth (the
// latter counting only teleport/telegate durations).
func Compute(ops []Op) Summary {
	completion := make(map[int]int)
	interCompletion := make(map[int]int)

	for _, op := range ops {
		d := duration(op.Kind)
		isInterCore := op.Kind == OpTeleport || op.Kind == OpTelegate

		start := 0
		for _, q := range op.Qubits {
			if completion[q] > start {
				start = completion[q]
			}
		}
		end := start + d
		for _, q := range op.Qubits {
			completion[q] = end
		}

		if isInterCore {
			interStart := 0
			for _, q := range op.Qubits {
				if interCompletion[q] > interStart {
					interStart = interCompletion[q]
				}
			}
			interEnd := interStart + d
			for _, q := range op.Qubits {
				interCompletion[q] = interEnd
			}
		}
	}

	var s Summary
	for _, t := range completion {
		if t > s.Depth {
			s.Depth = t
		}
	}
	for _, t := range interCompletion {
		if t > s.InterCoreDepth {
			s.InterCoreDepth = t
		}
	}
	return s
}
