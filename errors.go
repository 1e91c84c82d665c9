package gds

import "errors"

// Sentinel errors for the gds package.
var (
	// ErrDegenerate is returned when shape parameters produce zero-area or
	// self-overlapping geometry.
	ErrDegenerate = errors.New("gds: degenerate shape parameters")

	// ErrDuplicateCell is returned when a cell name already exists in the
	// library.
	ErrDuplicateCell = errors.New("gds: duplicate cell name")

	// ErrNoCells is returned when an operation needs at least one cell and
	// the library has none.
	ErrNoCells = errors.New("gds: library has no cells")

	// ErrCellNotFound is returned when a named cell does not exist.
	ErrCellNotFound = errors.New("gds: cell not found")
)
