// Package search implements uninformed state-space search for vacuum-world
// instances: an agent walks a grid of open and wall cells and vacuums dirty
// cells until none remain. Both strategies consume the same successor
// generator and produce the same Result shape (plan + counters), so they are
// interchangeable from the caller's side.
//
// The strategies offered are:
//
//   - DepthFirst
//
//   - Frontier: explicit stack (last-in-first-out) of (state, action path).
//
//   - Guarantees termination on the finite state space via a visited set;
//     gives no guarantee on plan length.
//
//   - Time: O(S·A), Memory: O(S·L) for copied paths
//     (S reachable states, A ≤ 5 actions, L longest retained path).
//
//   - UniformCost
//
//   - Frontier: min-heap keyed by (cumulative cost, insertion sequence);
//     every action costs 1, so the first goal popped is a shortest plan.
//
//   - The insertion sequence is a monotone counter assigned at push time;
//     it breaks cost ties by creation order, so states need no ordering.
//
//   - Time: O(G log G), Memory: O(G) (G generated states).
//
// # State model
//
// A State is a comparable value: agent Position plus a DirtSet bitset of the
// cells still dirty. Equality is structural over both fields, so routes that
// reach the same configuration deduplicate in maps regardless of history.
// Successors emits move successors in the fixed order North, South, East,
// West (skipping walls and the grid edge), then a Vacuum successor when the
// agent stands on a still-dirty cell.
//
// # Counters
//
// Every run reports Generated (states pushed onto the frontier) and Expanded
// (frontier pops examined). DepthFirst expands each distinct state at most
// once; UniformCost counts every pop, including entries made stale by a
// cheaper route discovered after they were pushed.
//
// # Options
//
// Both strategies accept functional options:
//
//   - WithContext(ctx) allows cancellation; an aborted run returns the
//     partial Result together with the context's error.
//   - WithOnExpand(fn) registers an observational hook invoked once per
//     expansion.
//
// # Errors
//
//   - ErrWorldNil       nil world.
//   - ErrStartPosition  start out of bounds or on a wall.
//   - ErrDirtIndex      dirt set wider than the world's dirty-cell count.
//   - ErrMoveBlocked, ErrVacuumClean, ErrUnknownAction: Replay validation.
//   - context.Canceled / context.DeadlineExceeded: aborted runs.
//
// An exhausted frontier is not an error: the Result reports Found=false and
// the counters stay valid.
package search
