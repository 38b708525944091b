package world

import "errors"

var (
	// ErrInvalidUTF8 indicates the input cannot be decoded as UTF-8 text.
	ErrInvalidUTF8 = errors.New("world: input is not valid UTF-8 text")
	// ErrBadHeader indicates a missing, non-integer, or non-positive
	// dimension header line.
	ErrBadHeader = errors.New("world: malformed dimension header")
	// ErrRowCount indicates the grid has fewer rows than declared, or
	// non-blank content after the declared rows.
	ErrRowCount = errors.New("world: grid row count does not match header")
	// ErrRowLength indicates a grid row whose cell count differs from the
	// declared column count.
	ErrRowLength = errors.New("world: grid row length does not match header")
	// ErrAgentCount indicates zero or more than one agent start marker.
	ErrAgentCount = errors.New("world: grid must contain exactly one agent marker")
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("world: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("world: all grid rows must have the same length")
	// ErrCellBounds indicates a position outside the grid bounds.
	ErrCellBounds = errors.New("world: position outside grid bounds")
	// ErrStartOnWall indicates an agent start placed on a wall cell.
	ErrStartOnWall = errors.New("world: agent start on a wall cell")
	// ErrDirtOnWall indicates a dirty position placed on a wall cell.
	ErrDirtOnWall = errors.New("world: dirty position on a wall cell")
	// ErrDirtDuplicate indicates the same dirty position listed twice.
	ErrDirtDuplicate = errors.New("world: duplicate dirty position")
)
