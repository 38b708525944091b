package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZAXBIE/vacplan/search"
	"github.com/ZAXBIE/vacplan/world"
)

// bfsPlanLength is an independent oracle for the minimum number of actions
// that clears all dirt, or -1 when no plan exists. Breadth-first over the
// same successor generator; with every action costing 1, its depth equals
// the optimal cost.
func bfsPlanLength(w *world.World, start search.State) int {
	if start.Goal() {
		return 0
	}

	type node struct {
		s     search.State
		depth int
	}
	seen := map[search.State]bool{start: true}
	queue := []node{{s: start}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, step := range search.Successors(w, cur.s) {
			if seen[step.State] {
				continue
			}
			if step.State.Goal() {
				return cur.depth + 1
			}
			seen[step.State] = true
			queue = append(queue, node{s: step.State, depth: cur.depth + 1})
		}
	}

	return -1
}

func TestUniformCost_NilWorld(t *testing.T) {
	res, err := search.UniformCost(nil, search.State{})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, search.ErrWorldNil)
}

func TestUniformCost_BadStart(t *testing.T) {
	w := mustParse(t, "2\n1\n@#")

	_, err := search.UniformCost(w, search.State{Pos: world.Position{Row: 0, Col: 1}})
	assert.ErrorIs(t, err, search.ErrStartPosition)

	_, err = search.UniformCost(w, search.State{Pos: world.Position{Row: -1, Col: 0}})
	assert.ErrorIs(t, err, search.ErrStartPosition)
}

func TestUniformCost_BadDirtSet(t *testing.T) {
	w := mustParse(t, "2\n1\n@.")

	start := search.State{Pos: w.Start(), Dirt: search.FullDirtSet(1)}
	_, err := search.UniformCost(w, start)
	assert.ErrorIs(t, err, search.ErrDirtIndex)
}

func TestUniformCost_AlreadyClean(t *testing.T) {
	w := mustParse(t, "2\n1\n@.")

	res, err := search.UniformCost(w, search.StartState(w))
	require.NoError(t, err)
	assert.True(t, res.Found)
	require.NotNil(t, res.Actions)
	assert.Empty(t, res.Actions)
	assert.Equal(t, 1, res.Expanded)
	assert.Equal(t, 0, res.Generated)
}

// The 1×3 corridor pins the exact counter bookkeeping: the east move and the
// vacuum are generated, and three pops happen before the goal surfaces (the
// west move regenerates the start state, which the cost map rejects).
func TestUniformCost_Corridor(t *testing.T) {
	w := mustParse(t, "3\n1\n@*#")

	res, err := search.UniformCost(w, search.StartState(w))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []search.Action{search.MoveEast, search.Vacuum}, res.Actions)
	assert.Equal(t, 2, res.Generated)
	assert.Equal(t, 3, res.Expanded)
}

func TestUniformCost_OpenSquare(t *testing.T) {
	w := mustParse(t, "2\n2\n@*\n..")

	res, err := search.UniformCost(w, search.StartState(w))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []search.Action{search.MoveEast, search.Vacuum}, res.Actions)
	assert.Equal(t, 4, res.Generated)
	assert.Equal(t, 5, res.Expanded)
}

func TestUniformCost_NoSolution(t *testing.T) {
	w := mustParse(t, "3\n1\n@#*")

	res, err := search.UniformCost(w, search.StartState(w))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Actions)
	assert.Equal(t, 1, res.Expanded)
	assert.Equal(t, 0, res.Generated)
}

// Plan length must match an independent breadth-first oracle on a spread of
// small worlds, and every plan must replay to a clean world.
func TestUniformCost_OptimalOnSmallWorlds(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"open square", "2\n2\n@*\n.."},
		{"walled diagonal", "3\n3\n@.*\n.#.\n*.."},
		{"symmetric corridor", "5\n1\n*.@.*"},
		{"two rooms", "4\n2\n@..*\n.#*."},
		{"ring", "3\n3\n@**\n*#*\n***"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := mustParse(t, tc.text)
			start := search.StartState(w)

			res, err := search.UniformCost(w, start)
			require.NoError(t, err)
			require.True(t, res.Found)

			want := bfsPlanLength(w, start)
			assert.Equal(t, want, len(res.Actions))

			end, err := search.Replay(w, start, res.Actions)
			require.NoError(t, err)
			assert.True(t, end.Goal())
		})
	}
}

// Equal-cost ties break on insertion order, so repeated runs agree exactly
// even when several optimal plans exist.
func TestUniformCost_Deterministic(t *testing.T) {
	w := mustParse(t, "5\n1\n*.@.*")

	first, err := search.UniformCost(w, search.StartState(w))
	require.NoError(t, err)
	second, err := search.UniformCost(w, search.StartState(w))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestUniformCost_ExpandHook(t *testing.T) {
	w := mustParse(t, "3\n3\n@.*\n.#.\n*..")
	start := search.StartState(w)

	var seen []search.State
	res, err := search.UniformCost(w, start, search.WithOnExpand(func(s search.State) {
		seen = append(seen, s)
	}))
	require.NoError(t, err)
	require.True(t, res.Found)

	assert.Len(t, seen, res.Expanded)
	assert.Equal(t, start, seen[0])
	assert.True(t, seen[len(seen)-1].Goal())
}

func TestUniformCost_Cancelled(t *testing.T) {
	w := mustParse(t, "3\n1\n@*.")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := search.UniformCost(w, search.StartState(w), search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.False(t, res.Found)
}

func TestUniformCost_SingleCellFullDirt(t *testing.T) {
	cell := [][]world.Cell{{world.Open}}
	origin := world.Position{}
	w, err := world.New(cell, origin, []world.Position{origin})
	require.NoError(t, err)

	res, err := search.UniformCost(w, search.StartState(w))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []search.Action{search.Vacuum}, res.Actions)
	assert.Equal(t, 1, res.Generated)
	assert.Equal(t, 2, res.Expanded)
}

// DepthFirst may legally return a longer plan than UniformCost; both must
// still replay to a clean world. The open square is the smallest world where
// they split.
func TestStrategies_Divergence(t *testing.T) {
	w := mustParse(t, "2\n2\n@*\n..")
	start := search.StartState(w)

	deep, err := search.DepthFirst(w, start)
	require.NoError(t, err)
	short, err := search.UniformCost(w, start)
	require.NoError(t, err)

	require.True(t, deep.Found)
	require.True(t, short.Found)
	assert.Greater(t, len(deep.Actions), len(short.Actions))

	for _, res := range []*search.Result{deep, short} {
		end, err := search.Replay(w, start, res.Actions)
		require.NoError(t, err)
		assert.True(t, end.Goal())
	}
}
