package layout

import "errors"

var (
	// ErrBadMapping indicates the supplied phys-to-virt mapping is not a
	// permutation of [0, P), violating invariant I1.
	ErrBadMapping = errors.New("layout: phys_to_virt is not a permutation")

	// ErrInsufficientFreeSlots indicates fewer than two physical slots are
	// free machine-wide, violating invariant I2.
	ErrInsufficientFreeSlots = errors.New("layout: fewer than two free slots across the machine")

	// ErrCoreHasNoFreeSlot indicates a core has zero free slots at
	// construction, violating invariant I2.
	ErrCoreHasNoFreeSlot = errors.New("layout: core has no free slot")

	// ErrNotAnEdge indicates a requested SWAP's endpoints are not an
	// intra-core coupling edge.
	ErrNotAnEdge = errors.New("layout: not an intra-core edge")

	// ErrNotATeleportEdge indicates a requested TELEPORT's (source,
	// mediator, target) triple is not a valid teleport edge shape.
	ErrNotATeleportEdge = errors.New("layout: invalid teleport edge")

	// ErrSourceNotOccupied indicates a TELEPORT's source slot is free.
	ErrSourceNotOccupied = errors.New("layout: teleport source is free")

	// ErrSlotNotFree indicates a TELEPORT's mediator or target slot is
	// occupied.
	ErrSlotNotFree = errors.New("layout: slot is occupied, expected free")

	// ErrQubitOutOfRange indicates a physical or virtual index outside its
	// valid range was requested.
	ErrQubitOutOfRange = errors.New("layout: index out of range")
)
