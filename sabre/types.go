// Package sabre implements the TeleSABRE driver (spec.md §4.6-§4.8, C8):
// the main execute/enumerate/score/commit loop, deadlock detection and
// recovery, and the three-pass initial-layout refinement.
package sabre

import "encoding/json"

// OpKind identifies what an emitted Op represents.
type OpKind int

const (
	OpGate OpKind = iota
	OpSwap
	OpTeleport
	OpTelegate
)

func (k OpKind) String() string {
	switch k {
	case OpGate:
		return "gate"
	case OpSwap:
		return "swap"
	case OpTeleport:
		return "teleport"
	case OpTelegate:
		return "telegate"
	default:
		return "unknown"
	}
}

// MarshalJSON renders an OpKind by name rather than its numeric value, so
// a printed schedule reads like "swap" instead of "1".
func (k OpKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Op is one emitted schedule entry.
type Op struct {
	Kind     OpKind
	Qubits   []int // physical qubits touched
	GateNode int   // DAG node index for OpGate/OpTelegate, -1 otherwise
}

// Pass identifies which phase of initial-layout refinement produced an
// event, for Hooks.OnPass.
type Pass int

const (
	PassMain Pass = iota
	InitialPass0
	InitialPass1
	InitialPass2
)

// Hooks are optional, nil-checked, synchronously invoked observability
// callbacks — the idiomatic replacement for the prototype's print(...)
// debug statements (spec.md §1.3 ambient instrumentation).
type Hooks struct {
	OnIteration func(iter int, frontierSize int)
	OnCommit    func(op Op)
	OnDeadlock  func(iter int, rollbackToIter int)
	OnPass      func(pass Pass)
}

func (h Hooks) iteration(iter, frontierSize int) {
	if h.OnIteration != nil {
		h.OnIteration(iter, frontierSize)
	}
}

func (h Hooks) commit(op Op) {
	if h.OnCommit != nil {
		h.OnCommit(op)
	}
}

func (h Hooks) deadlock(iter, rollbackTo int) {
	if h.OnDeadlock != nil {
		h.OnDeadlock(iter, rollbackTo)
	}
}

func (h Hooks) pass(p Pass) {
	if h.OnPass != nil {
		h.OnPass(p)
	}
}

// Result is the complete output of Run.
type Result struct {
	Ops []Op

	Swaps, Teleports, Telegates int
	Depth, InterCoreDepth       int
	DeadlocksRecovered          int
	Aborted                     bool

	FirstLayout []int
}
