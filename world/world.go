package world

import "fmt"

// New constructs a World from a rectangular grid of cells, an agent start
// position, and the initial dirty positions. The input is deep-copied so the
// World cannot be mutated through the caller's slices.
//
// Validation (in order):
//  1. grid non-empty (ErrEmptyGrid) and rectangular (ErrNonRectangular);
//  2. start in bounds (ErrCellBounds) and open (ErrStartOnWall);
//  3. every dirty position in bounds (ErrCellBounds), open (ErrDirtOnWall),
//     and unique (ErrDirtDuplicate).
//
// Dirty positions keep their given order; DirtIndex reports the index of a
// position within that order.
//
// Complexity: O(R×C + D) time and memory.
func New(cells [][]Cell, start Position, dirty []Position) (*World, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])

	w := &World{
		rows:    rows,
		cols:    cols,
		cells:   make([]Cell, 0, rows*cols),
		start:   start,
		dirty:   make([]Position, len(dirty)),
		dirtIdx: make(map[Position]int, len(dirty)),
	}
	for _, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: got a row of %d cells, want %d", ErrNonRectangular, len(row), cols)
		}
		w.cells = append(w.cells, row...)
	}

	if !w.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrCellBounds, start)
	}
	if w.cells[w.index(start)] == Wall {
		return nil, fmt.Errorf("%w: %v", ErrStartOnWall, start)
	}

	copy(w.dirty, dirty)
	for i, p := range w.dirty {
		if !w.InBounds(p) {
			return nil, fmt.Errorf("%w: dirty %v", ErrCellBounds, p)
		}
		if w.cells[w.index(p)] == Wall {
			return nil, fmt.Errorf("%w: %v", ErrDirtOnWall, p)
		}
		if _, dup := w.dirtIdx[p]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDirtDuplicate, p)
		}
		w.dirtIdx[p] = i
	}

	return w, nil
}

// Rows reports the number of grid rows.
func (w *World) Rows() int { return w.rows }

// Cols reports the number of grid columns.
func (w *World) Cols() int { return w.cols }

// Start reports the agent start position.
func (w *World) Start() Position { return w.start }

// Dirty returns a copy of the initial dirty positions, in construction order
// (row-major for parsed worlds).
func (w *World) Dirty() []Position {
	out := make([]Position, len(w.dirty))
	copy(out, w.dirty)

	return out
}

// DirtCount reports how many cells begin dirty.
func (w *World) DirtCount() int { return len(w.dirty) }

// DirtIndex reports the index of p within the initial dirty set, and whether
// p begins dirty at all. Indices are stable for the World's lifetime and
// enumerate the dirty set 0..DirtCount()-1.
func (w *World) DirtIndex(p Position) (int, bool) {
	i, ok := w.dirtIdx[p]

	return i, ok
}

// InBounds reports whether p lies within the grid.
func (w *World) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < w.rows && p.Col >= 0 && p.Col < w.cols
}

// At reports the cell kind at p, with ok=false when p is out of bounds.
func (w *World) At(p Position) (Cell, bool) {
	if !w.InBounds(p) {
		return Open, false
	}

	return w.cells[w.index(p)], true
}

// String renders the instance in its text form: `@` start, `*` dirty,
// `#` wall, `.` open. One line per row, each ending in a newline.
// The rendering shows the initial dirty layout, not any search state.
func (w *World) String() string {
	buf := make([]byte, 0, w.rows*(w.cols+1))
	for r := 0; r < w.rows; r++ {
		for c := 0; c < w.cols; c++ {
			p := Position{Row: r, Col: c}
			switch {
			case p == w.start:
				buf = append(buf, '@')
			case w.cells[w.index(p)] == Wall:
				buf = append(buf, '#')
			default:
				if _, dirty := w.dirtIdx[p]; dirty {
					buf = append(buf, '*')
				} else {
					buf = append(buf, '.')
				}
			}
		}
		buf = append(buf, '\n')
	}

	return string(buf)
}

// index maps p to its row-major offset: Row*cols + Col.
func (w *World) index(p Position) int {
	return p.Row*w.cols + p.Col
}
