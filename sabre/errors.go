package sabre

import "errors"

var (
	// ErrEmptyCandidateSet indicates no gate is ready and no swap,
	// teleport, or telegate is admissible: architecture/circuit mismatch
	// (spec.md §7).
	ErrEmptyCandidateSet = errors.New("sabre: no ready gate and no admissible candidate move")

	// ErrInconsistentLayout indicates an internal invariant failed after a
	// commit; must never fire in a correct implementation.
	ErrInconsistentLayout = errors.New("sabre: layout invariant violated after commit")
)
