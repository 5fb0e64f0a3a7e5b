package board

import "errors"

var (
	// ErrUnknownCoord indicates an atom used as a coordinate has no x/y.
	ErrUnknownCoord = errors.New("board: atom is not a coordinate")

	// ErrNoBinding indicates a puzzle names none of the per-state bindings.
	ErrNoBinding = errors.New("board: puzzle has no per-state binding")

	// ErrBounds indicates an empty x or y range.
	ErrBounds = errors.New("board: lower bound exceeds upper bound")

	// ErrMarker indicates a synthetic cell without a marker name.
	ErrMarker = errors.New("board: marker name is empty")
)
