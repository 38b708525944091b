package world

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Grid markers recognized by Parse. Any other rune is a plain open cell.
const (
	markWall  = '#'
	markAgent = '@'
	markDirt  = '*'
)

// headerLines is the number of dimension lines preceding the grid body.
const headerLines = 2

// Parse reads a world description from r.
//
// Format: line 1 is the column count, line 2 the row count, followed by
// exactly that many grid rows. Within a row, `#` is a wall, `@` the agent
// start (the cell itself is open), `*` a dirty open cell, and any other
// rune an open cell. Rows are measured in runes and must have exactly the
// declared number of cells. Exactly one `@` must be present.
//
// Input must be UTF-8; a leading byte-order mark is stripped, and a trailing
// CR per line (Windows endings) is tolerated. Blank lines after the declared
// rows are ignored; any other trailing content fails with ErrRowCount.
//
// Complexity: O(R×C) time and memory.
func Parse(r io.Reader) (*World, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("world: read input: %w", err)
	}
	if !utf8.Valid(raw) {
		return nil, ErrInvalidUTF8
	}
	// Tolerate and strip a UTF-8 byte-order mark.
	text := strings.TrimPrefix(string(raw), "\uFEFF")

	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}

	if len(lines) < headerLines {
		return nil, fmt.Errorf("%w: want %d dimension lines", ErrBadHeader, headerLines)
	}
	cols, err := parseDimension(lines[0], "column")
	if err != nil {
		return nil, err
	}
	rows, err := parseDimension(lines[1], "row")
	if err != nil {
		return nil, err
	}

	body := lines[headerLines:]
	if len(body) < rows {
		return nil, fmt.Errorf("%w: declared %d rows, found %d", ErrRowCount, rows, len(body))
	}
	for _, extra := range body[rows:] {
		if strings.TrimSpace(extra) != "" {
			return nil, fmt.Errorf("%w: non-blank content after row %d", ErrRowCount, rows)
		}
	}

	var (
		cells  = make([][]Cell, rows)
		start  Position
		agents int
		dirty  []Position
	)
	for r := 0; r < rows; r++ {
		runes := []rune(body[r])
		if len(runes) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRowLength, r, len(runes), cols)
		}
		cells[r] = make([]Cell, cols)
		for c, ch := range runes {
			switch ch {
			case markWall:
				cells[r][c] = Wall
			case markAgent:
				agents++
				start = Position{Row: r, Col: c}
			case markDirt:
				dirty = append(dirty, Position{Row: r, Col: c})
			}
			// Open is the zero Cell; non-marker runes need no assignment.
		}
	}
	if agents != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrAgentCount, agents)
	}

	return New(cells, start, dirty)
}

// ParseFile opens path and parses its contents as a world description.
// The returned error carries the path for diagnostics; sentinel matching
// with errors.Is is unaffected.
func ParseFile(path string) (*World, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("world: open %s: %w", path, err)
	}
	defer f.Close()

	w, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return w, nil
}

// parseDimension parses one header line as a strictly positive integer.
func parseDimension(line, name string) (int, error) {
	trimmed := strings.TrimSpace(line)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %s count %q", ErrBadHeader, name, trimmed)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %s count must be positive, got %d", ErrBadHeader, name, n)
	}

	return n, nil
}
