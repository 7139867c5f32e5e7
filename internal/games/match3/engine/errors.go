package engine

import "errors"

var (
	// ErrOutOfBounds is returned for coordinates outside the grid.
	// The operation that returns it performs no mutation.
	ErrOutOfBounds = errors.New("engine: coordinate out of bounds")

	// ErrInvalidTransition is reserved for state machine misuse. The turn
	// engine is total over in-bounds picks and never returns it today.
	ErrInvalidTransition = errors.New("engine: invalid transition")

	// ErrCascadeLimit is returned when the resolving loop hits its round cap
	// while the board still has matches. The board remains valid.
	ErrCascadeLimit = errors.New("engine: cascade round limit exceeded")

	// ErrInvalidOptions is returned by New for unusable options.
	ErrInvalidOptions = errors.New("engine: invalid options")
)
