package search

import (
	"fmt"

	"github.com/ZAXBIE/vacplan/world"
)

// Replay applies actions to start in order, validating each strictly: a
// move must land inside the grid on an open cell, a vacuum must hit a cell
// that is still dirty. It returns the state after the final action, so a
// plan is verified by replaying it and checking Goal() on the result,
// independently of whichever strategy produced it.
//
// The first invalid action aborts the replay; the returned error wraps
// ErrMoveBlocked, ErrVacuumClean or ErrUnknownAction and names the
// offending position in the plan.
//
// Complexity: O(len(actions)) applications.
func Replay(w *world.World, start State, actions []Action) (State, error) {
	if err := validateSearch(w, start); err != nil {
		return State{}, err
	}

	cur := start
	for i, a := range actions {
		next, err := apply(w, cur, a)
		if err != nil {
			return State{}, fmt.Errorf("action %d (%s): %w", i, a, err)
		}
		cur = next
	}

	return cur, nil
}

// apply performs a single action on s, enforcing its precondition.
func apply(w *world.World, s State, a Action) (State, error) {
	switch a {
	case MoveNorth, MoveSouth, MoveEast, MoveWest:
		d := moveDeltas[a]
		cand := world.Position{Row: s.Pos.Row + d.dr, Col: s.Pos.Col + d.dc}
		if cell, ok := w.At(cand); !ok || cell != world.Open {
			return State{}, fmt.Errorf("%w: %s to %s", ErrMoveBlocked, s.Pos, cand)
		}

		return State{Pos: cand, Dirt: s.Dirt}, nil

	case Vacuum:
		i, ok := w.DirtIndex(s.Pos)
		if !ok || !s.Dirt.Has(i) {
			return State{}, fmt.Errorf("%w: at %s", ErrVacuumClean, s.Pos)
		}

		return State{Pos: s.Pos, Dirt: s.Dirt.Without(i)}, nil

	default:
		return State{}, fmt.Errorf("%w: %d", ErrUnknownAction, uint8(a))
	}
}
