package repository

import "errors"

// Outcome kinds the stores report back to the service and handler layers.
// Callers branch with errors.Is; anything not matching one of these is an
// unexpected store failure and maps to a 500 at the boundary.
var (
	// ErrNotFound means no row exists for the given id.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyBooked means the customer already holds a rental. It is
	// raised both by the admission read check and by the unique index on
	// rentals.customer_id, whichever fires first.
	ErrAlreadyBooked = errors.New("customer already has a rental")

	// ErrForeignKey means a write referenced a customer or court that does
	// not exist.
	ErrForeignKey = errors.New("referenced record does not exist")

	// ErrInUse means a delete was blocked because other rows still
	// reference the target.
	ErrInUse = errors.New("record is still referenced")
)
