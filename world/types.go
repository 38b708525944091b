// Package world defines the core types for a vacuum-world problem instance:
// cell kinds, grid positions, and the immutable World itself.
package world

import "fmt"

// Cell enumerates the kinds a grid cell can have. Dirt is not a cell kind:
// dirty cells are open cells listed in the World's dirty set.
type Cell uint8

const (
	// Open is a traversable cell.
	Open Cell = iota
	// Wall is an impassable cell.
	Wall
)

// Position identifies a grid cell by row and column, zero-based from the
// top-left corner. It is a plain value type: two Positions are equal iff
// both coordinates are equal.
type Position struct {
	Row, Col int
}

// String renders the position as "(row,col)" for diagnostics.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// World is an immutable vacuum-world instance: a rectangular grid of Cell
// kinds, the agent start position, and the cells that begin dirty.
// Construct one via New, Parse, or ParseFile; a World that exists is always
// well-formed (start and dirty positions are in bounds and on open cells).
type World struct {
	rows, cols int
	cells      []Cell           // row-major, rows*cols entries
	start      Position
	dirty      []Position       // initial dirty cells, in construction order
	dirtIdx    map[Position]int // position → index into dirty
}
