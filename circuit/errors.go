package circuit

import "errors"

var (
	// ErrInvalidNumQubits indicates a non-positive qubit count.
	ErrInvalidNumQubits = errors.New("circuit: num_qubits must be positive")

	// ErrGateQubitOutOfRange indicates a gate targets a qubit outside
	// [0, NumQubits).
	ErrGateQubitOutOfRange = errors.New("circuit: gate targets qubit out of range")

	// ErrGateArity indicates a gate targets neither one nor two qubits.
	ErrGateArity = errors.New("circuit: gate must target one or two qubits")

	// ErrDuplicateTarget indicates a two-qubit gate names the same qubit
	// twice.
	ErrDuplicateTarget = errors.New("circuit: gate targets the same qubit twice")
)
