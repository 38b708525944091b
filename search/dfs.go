package search

import (
	"github.com/ZAXBIE/vacplan/world"
)

// dfsFrame is one stack entry: a state plus the full action path that
// produced it. Paths are copied on push, never shared between frames.
type dfsFrame struct {
	state State
	path  []Action
}

// DepthFirst explores the state space with a last-in-first-out frontier and
// a visited set. The visited set guarantees termination on the finite
// vacuum-world graph; no guarantee is made about plan length (use
// UniformCost for shortest plans).
//
// Successors are pushed in reverse emission order, so pops examine them in
// the order Successors emits (N, S, E, W, Vacuum). Membership is checked at
// pop: a frame whose state was expanded through another route in the
// meantime is discarded without counting as an expansion.
//
// On success the Result carries the plan (empty, non-nil, for an
// already-clean start) and both counters. When the stack empties with dirt
// remaining, Found is false, Actions is nil and the counters remain valid.
//
// Complexity: Time O(S·A) for S reachable states and A ≤ 5 actions each;
// Memory O(S·L) dominated by the copied paths of length ≤ L.
func DepthFirst(w *world.World, start State, opts ...Option) (*Result, error) {
	// 1) Validate inputs and apply options.
	if err := validateSearch(w, start); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2) Seed the stack with the start frame; the root path is empty.
	res := &Result{}
	stack := []dfsFrame{{state: start}}
	visited := make(map[State]bool)

	// 3) Pop, expand, push until the goal surfaces or the stack drains.
	for len(stack) > 0 {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[top.state] {
			continue
		}
		visited[top.state] = true

		res.Expanded++
		if o.OnExpand != nil {
			o.OnExpand(top.state)
		}

		if top.state.Goal() {
			res.Actions = top.path
			if res.Actions == nil {
				res.Actions = []Action{}
			}
			res.Found = true

			return res, nil
		}

		steps := Successors(w, top.state)
		for i := len(steps) - 1; i >= 0; i-- {
			if visited[steps[i].State] {
				continue
			}
			stack = append(stack, dfsFrame{
				state: steps[i].State,
				path:  extend(top.path, steps[i].Action),
			})
			res.Generated++
		}
	}

	// 4) Frontier exhausted with dirt remaining.
	return res, nil
}

// extend returns a fresh copy of path with a appended, so sibling frames
// never alias one backing array.
func extend(path []Action, a Action) []Action {
	out := make([]Action, len(path)+1)
	copy(out, path)
	out[len(path)] = a

	return out
}
