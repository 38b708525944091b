package search

import (
	"container/heap"

	"github.com/ZAXBIE/vacplan/world"
)

// pathStep records how a state was first reached at its best known cost:
// the action taken and the predecessor state. origin marks the search root,
// which has no predecessor.
type pathStep struct {
	action Action
	prev   State
	origin bool
}

// ucsRunner bundles the per-call state of one UniformCost run.
type ucsRunner struct {
	world    *world.World
	opts     Options
	frontier ucsFrontier
	seq      uint64
	cost     map[State]int
	cameFrom map[State]pathStep
	res      *Result
}

// UniformCost explores the state space in order of increasing path cost,
// every action costing 1, so the first goal state popped carries a shortest
// plan. The frontier is a min-heap keyed by (cumulative cost, insertion
// sequence); the sequence is a monotone counter assigned at push time, which
// breaks cost ties by creation order and spares State any ordering of its
// own.
//
// When a cheaper route to an already-pushed state is found, the old heap
// entry stays put and the state is pushed again; the stale entry is
// re-expanded when popped rather than skipped. With every edge costing
// exactly 1 the first pop of a state already carries a minimal cost, so a
// stale re-expansion can never improve a successor and only the Expanded
// counter observes it. That uniform-cost assumption is what makes omitting
// a popped-set safe here; non-uniform costs would require one.
//
// On success the Result carries the plan (empty, non-nil, for an
// already-clean start) and both counters. When the frontier empties with
// dirt remaining, Found is false, Actions is nil and the counters remain
// valid.
//
// Complexity: Time O(G log G), Memory O(G), where G counts heap pushes.
func UniformCost(w *world.World, start State, opts ...Option) (*Result, error) {
	// 1) Validate inputs and apply options.
	if err := validateSearch(w, start); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2) Seed the frontier with the start at cost 0.
	r := &ucsRunner{
		world:    w,
		opts:     o,
		cost:     map[State]int{start: 0},
		cameFrom: map[State]pathStep{start: {origin: true}},
		res:      &Result{},
	}
	heap.Init(&r.frontier)
	r.push(0, start)

	// 3) Run to goal, exhaustion or cancellation.
	err := r.run()

	return r.res, err
}

// run is the pop-expand loop.
func (r *ucsRunner) run() error {
	for r.frontier.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		entry := heap.Pop(&r.frontier).(ucsEntry)
		r.res.Expanded++
		if r.opts.OnExpand != nil {
			r.opts.OnExpand(entry.state)
		}

		if entry.state.Goal() {
			r.res.Actions = r.reconstruct(entry.state)
			r.res.Found = true

			return nil
		}

		r.relax(entry)
	}

	return nil
}

// relax generates the successors of entry and records every strictly
// cheaper (or first) route found.
func (r *ucsRunner) relax(entry ucsEntry) {
	for _, step := range Successors(r.world, entry.state) {
		next := entry.cost + 1
		if old, seen := r.cost[step.State]; seen && next >= old {
			continue
		}
		r.cost[step.State] = next
		r.cameFrom[step.State] = pathStep{action: step.Action, prev: entry.state}
		r.push(next, step.State)
		r.res.Generated++
	}
}

// push stamps the next insertion sequence onto the entry and adds it.
func (r *ucsRunner) push(cost int, s State) {
	heap.Push(&r.frontier, ucsEntry{cost: cost, seq: r.seq, state: s})
	r.seq++
}

// reconstruct walks predecessor links from goal back to the origin and
// returns the actions in execution order. Iterative on purpose: plans can
// be as long as the state space is deep.
func (r *ucsRunner) reconstruct(goal State) []Action {
	path := []Action{}
	for cur := r.cameFrom[goal]; !cur.origin; cur = r.cameFrom[cur.prev] {
		path = append(path, cur.action)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// ucsEntry is one frontier element: cumulative cost, insertion sequence and
// the state itself.
type ucsEntry struct {
	cost  int
	seq   uint64
	state State
}

// ucsFrontier is a min-heap of ucsEntry ordered by cost, then insertion
// sequence. It implements heap.Interface.
type ucsFrontier []ucsEntry

func (f ucsFrontier) Len() int { return len(f) }

func (f ucsFrontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}

	return f[i].seq < f[j].seq
}

func (f ucsFrontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *ucsFrontier) Push(x interface{}) { *f = append(*f, x.(ucsEntry)) }

func (f *ucsFrontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
