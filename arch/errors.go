// Package arch: sentinel error set.
//
// Every validation failure in this package returns one of these sentinels,
// optionally wrapped with fmt.Errorf("%w") for positional context. Callers
// match with errors.Is. Error priority: shape/range checks first (qubit
// indices, core count), then structural checks (edge symmetry), then
// per-core checks (every core has at least one qubit) — mirroring lvlath/matrix's
// documented "shape -> nil -> dimension -> structural" error priority.
package arch

import "errors"

var (
	// ErrInvalidQubitCount indicates NumQubits <= 0 or NumCores <= 0.
	ErrInvalidQubitCount = errors.New("arch: invalid qubit or core count")

	// ErrQubitOutOfRange indicates an edge or core assignment references a
	// qubit index outside [0, NumQubits).
	ErrQubitOutOfRange = errors.New("arch: qubit index out of range")

	// ErrCoreOutOfRange indicates a qubit-to-core assignment references a
	// core index outside [0, NumCores).
	ErrCoreOutOfRange = errors.New("arch: core index out of range")

	// ErrUnassignedQubit indicates a qubit was never assigned to a core.
	ErrUnassignedQubit = errors.New("arch: qubit not assigned to any core")

	// ErrSelfLoopEdge indicates an edge connects a qubit to itself.
	ErrSelfLoopEdge = errors.New("arch: self-loop edge not allowed")

	// ErrDuplicateEdge indicates the same unordered pair appears twice in
	// the same edge list.
	ErrDuplicateEdge = errors.New("arch: duplicate edge")

	// ErrInterCoreEdgeSameCore indicates an inter-core edge's two endpoints
	// resolve to the same core.
	ErrInterCoreEdgeSameCore = errors.New("arch: inter-core edge endpoints share a core")

	// ErrEmptyCore indicates a core with zero qubits assigned to it.
	ErrEmptyCore = errors.New("arch: core has no qubits")
)
