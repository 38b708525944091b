package search

import (
	"github.com/ZAXBIE/vacplan/world"
)

// Successors enumerates every state reachable from s by one action, each
// paired with that action. Emission order is fixed and load-bearing for
// depth-first tie-breaking: MoveNorth, MoveSouth, MoveEast, MoveWest (each
// only when the destination cell is inside the grid and open), then Vacuum
// (only when the agent stands on a still-dirty cell).
//
// Pure function of its inputs: neither w nor s is mutated, and repeated
// calls return equal slices.
//
// Complexity: O(1) candidate actions; each Vacuum successor copies the dirt
// bitset, O(d/8) bytes for d initially-dirty cells.
func Successors(w *world.World, s State) []Step {
	steps := make([]Step, 0, len(moveDeltas)+1)

	for a, d := range moveDeltas {
		cand := world.Position{Row: s.Pos.Row + d.dr, Col: s.Pos.Col + d.dc}
		if cell, ok := w.At(cand); ok && cell == world.Open {
			steps = append(steps, Step{
				Action: Action(a),
				State:  State{Pos: cand, Dirt: s.Dirt},
			})
		}
	}

	if i, ok := w.DirtIndex(s.Pos); ok && s.Dirt.Has(i) {
		steps = append(steps, Step{
			Action: Vacuum,
			State:  State{Pos: s.Pos, Dirt: s.Dirt.Without(i)},
		})
	}

	return steps
}
