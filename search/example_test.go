package search_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZAXBIE/vacplan/search"
	"github.com/ZAXBIE/vacplan/world"
)

// ExampleUniformCost plans the 1×3 corridor:
//
//	@*#
//
// The agent steps east onto the dirt and vacuums. Three states are popped
// (start, after the move, after the vacuum) and two are generated; the west
// move from the middle cell recreates the start state, which the cost map
// rejects, so it is never generated.
func ExampleUniformCost() {
	w, err := world.Parse(strings.NewReader("3\n1\n@*#"))
	if err != nil {
		fmt.Println("parse failed:", err)
		return
	}

	res, err := search.UniformCost(w, search.StartState(w))
	if err != nil {
		fmt.Println("search failed:", err)
		return
	}
	_ = res.Report(os.Stdout)

	// Output:
	// E
	// V
	// 2 nodes generated
	// 3 nodes expanded
}

// ExampleDepthFirst runs the stack-based strategy on an open 2×2 square with
// dirt one step east:
//
//	@*
//	..
//
// Depth-first dives south before the east branch is considered, so the plan
// walks the whole square. UniformCost finds the two-action plan (E, V) on
// the same world.
func ExampleDepthFirst() {
	w, err := world.Parse(strings.NewReader("2\n2\n@*\n.."))
	if err != nil {
		fmt.Println("parse failed:", err)
		return
	}

	res, err := search.DepthFirst(w, search.StartState(w))
	if err != nil {
		fmt.Println("search failed:", err)
		return
	}
	_ = res.Report(os.Stdout)

	// Output:
	// S
	// E
	// N
	// V
	// 5 nodes generated
	// 5 nodes expanded
}

// ExampleReplay validates a hand-written plan against a world and reports
// whether it leaves the world clean.
func ExampleReplay() {
	w, err := world.Parse(strings.NewReader("3\n1\n@*#"))
	if err != nil {
		fmt.Println("parse failed:", err)
		return
	}

	plan := []search.Action{search.MoveEast, search.Vacuum}
	end, err := search.Replay(w, search.StartState(w), plan)
	if err != nil {
		fmt.Println("invalid plan:", err)
		return
	}
	fmt.Println("clean:", end.Goal())
	fmt.Println("agent:", end.Pos)

	// Output:
	// clean: true
	// agent: (0,1)
}
