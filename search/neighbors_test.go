package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZAXBIE/vacplan/search"
	"github.com/ZAXBIE/vacplan/world"
)

// Emission order is fixed: N, S, E, W, then Vacuum.
func TestSuccessors_Order(t *testing.T) {
	// Agent standing on a dirty center cell of an open 3×3 grid: all five
	// successors emit. Built via New because the text form cannot mark the
	// agent's own cell dirty.
	center := world.Position{Row: 1, Col: 1}
	cells := make([][]world.Cell, 3)
	for r := range cells {
		cells[r] = make([]world.Cell, 3)
	}
	w, err := world.New(cells, center, []world.Position{center})
	require.NoError(t, err)

	s := search.StartState(w)
	steps := search.Successors(w, s)
	require.Len(t, steps, 5)

	wantActions := []search.Action{
		search.MoveNorth,
		search.MoveSouth,
		search.MoveEast,
		search.MoveWest,
		search.Vacuum,
	}
	wantPos := []world.Position{
		{Row: 0, Col: 1},
		{Row: 2, Col: 1},
		{Row: 1, Col: 2},
		{Row: 1, Col: 0},
		center,
	}
	for i, step := range steps {
		assert.Equal(t, wantActions[i], step.Action, "step %d", i)
		assert.Equal(t, wantPos[i], step.State.Pos, "step %d", i)
	}

	// Moves keep the dirt set; the vacuum clears exactly the center.
	for _, step := range steps[:4] {
		assert.Equal(t, s.Dirt, step.State.Dirt)
	}
	assert.True(t, steps[4].State.Dirt.Empty())
}

// No successor may step into a wall or off the grid, from any open cell.
func TestSuccessors_NeverBlocked(t *testing.T) {
	w := mustParse(t, "4\n3\n@.#.\n##..\n.*..")

	for r := 0; r < w.Rows(); r++ {
		for c := 0; c < w.Cols(); c++ {
			p := world.Position{Row: r, Col: c}
			cell, ok := w.At(p)
			require.True(t, ok)
			if cell == world.Wall {
				continue
			}

			s := search.State{Pos: p, Dirt: search.FullDirtSet(w.DirtCount())}
			for _, step := range search.Successors(w, s) {
				got, inside := w.At(step.State.Pos)
				assert.True(t, inside, "from %s via %s", p, step.Action)
				assert.Equal(t, world.Open, got, "from %s via %s", p, step.Action)
			}
		}
	}
}

func TestSuccessors_VacuumRequiresDirt(t *testing.T) {
	w := mustParse(t, "2\n1\n@*")
	dirtIdx, ok := w.DirtIndex(world.Position{Row: 0, Col: 1})
	require.True(t, ok)

	// On a clean cell: move successors only.
	onClean := search.StartState(w)
	for _, step := range search.Successors(w, onClean) {
		assert.NotEqual(t, search.Vacuum, step.Action)
	}

	// On the dirty cell: vacuum emits once, and only while the bit is set.
	onDirt := search.State{Pos: world.Position{Row: 0, Col: 1}, Dirt: onClean.Dirt}
	var vacuums int
	for _, step := range search.Successors(w, onDirt) {
		if step.Action == search.Vacuum {
			vacuums++
			assert.False(t, step.State.Dirt.Has(dirtIdx))
		}
	}
	assert.Equal(t, 1, vacuums)

	cleaned := search.State{Pos: onDirt.Pos, Dirt: onDirt.Dirt.Without(dirtIdx)}
	for _, step := range search.Successors(w, cleaned) {
		assert.NotEqual(t, search.Vacuum, step.Action)
	}
}

// Successors is a pure function: repeated calls agree and the input state
// is never modified.
func TestSuccessors_Pure(t *testing.T) {
	w := mustParse(t, "3\n3\n.*.\n*@.\n..#")
	s := search.StartState(w)
	before := s

	first := search.Successors(w, s)
	second := search.Successors(w, s)

	assert.Equal(t, first, second)
	assert.Equal(t, before, s)
}
