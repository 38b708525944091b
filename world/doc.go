// Package world models a vacuum-world problem instance: a rectangular grid
// of open and wall cells, a single agent start position, and the set of
// cells that begin dirty.
//
// What:
//
//   - World wraps a rectangular grid of Cell kinds together with the agent
//     start Position and the initial dirty-cell layout. It is immutable once
//     built; every accessor returns copies or values.
//   - Parse / ParseFile read the plain-text format: line 1 is the column
//     count, line 2 the row count, followed by exactly that many grid rows.
//     `#` marks a wall, `@` the agent start (the cell itself is open),
//     `*` a dirty open cell, and any other character an open cell.
//   - New builds a World programmatically with the same invariant checks.
//
// Why:
//
//   - One validated, immutable problem instance can feed any number of
//     independent search runs without defensive copying on the hot path.
//   - Parsing failures are separated from search failures: a World that
//     exists is always well-formed.
//
// Input handling:
//
//   - UTF-8 only; a leading byte-order mark is tolerated and stripped.
//   - Windows line endings are tolerated (a trailing CR is removed per line).
//   - Grid rows are measured in runes, not bytes.
//   - Rows must have exactly the declared number of cells; content after the
//     declared rows must be blank.
//
// Complexity:
//
//   - Parse / New:  O(R×C) time and memory.
//   - Accessors:    O(1), except Dirty (O(D)) and String (O(R×C)).
//
// Errors:
//
//   - ErrInvalidUTF8     input cannot be decoded as UTF-8 text.
//   - ErrBadHeader       missing or non-positive integer header lines.
//   - ErrRowCount        fewer rows than declared, or trailing content.
//   - ErrRowLength       a row whose cell count differs from the header.
//   - ErrAgentCount      zero or more than one `@` marker.
//   - ErrEmptyGrid, ErrNonRectangular, ErrCellBounds, ErrStartOnWall,
//     ErrDirtOnWall, ErrDirtDuplicate: invariant violations in New.
package world
