package search

import (
	"fmt"
	"math/bits"

	"github.com/ZAXBIE/vacplan/world"
)

// Action is one primitive agent move: a step in a compass direction or a
// vacuum of the current cell. The zero value is MoveNorth.
type Action uint8

const (
	// MoveNorth steps one row up.
	MoveNorth Action = iota
	// MoveSouth steps one row down.
	MoveSouth
	// MoveEast steps one column right.
	MoveEast
	// MoveWest steps one column left.
	MoveWest
	// Vacuum cleans the cell the agent stands on.
	Vacuum
)

// moveDeltas maps each move action to its row/col offset. Index order is the
// emission order of Successors: N, S, E, W.
var moveDeltas = [...]struct{ dr, dc int }{
	MoveNorth: {-1, 0},
	MoveSouth: {+1, 0},
	MoveEast:  {0, +1},
	MoveWest:  {0, -1},
}

// String returns the single-letter plan label: "N", "S", "E", "W" or "V".
func (a Action) String() string {
	switch a {
	case MoveNorth:
		return "N"
	case MoveSouth:
		return "S"
	case MoveEast:
		return "E"
	case MoveWest:
		return "W"
	case Vacuum:
		return "V"
	default:
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
}

// DirtSet is an immutable set of still-dirty cells, stored as a bitset over
// the world's dirty-cell indices (world.DirtIndex). The string backing keeps
// the type comparable, so a State can key maps directly.
//
// The representation is canonical: trailing zero bytes are stripped, so two
// sets with the same members compare == no matter how each was derived. In
// particular the empty set is always the empty string.
type DirtSet string

// FullDirtSet returns the set {0, …, n-1}. n <= 0 yields the empty set.
func FullDirtSet(n int) DirtSet {
	if n <= 0 {
		return ""
	}
	buf := make([]byte, (n+7)/8)
	for i := range buf {
		buf[i] = 0xFF
	}
	if rem := n % 8; rem != 0 {
		buf[len(buf)-1] = byte(1<<rem) - 1
	}

	return DirtSet(buf)
}

// Has reports whether index i is a member.
func (d DirtSet) Has(i int) bool {
	if i < 0 || i/8 >= len(d) {
		return false
	}

	return d[i/8]&(1<<(i%8)) != 0
}

// Without returns a copy of d with index i removed; d itself is untouched.
// Removing a non-member returns d unchanged.
func (d DirtSet) Without(i int) DirtSet {
	if !d.Has(i) {
		return d
	}
	buf := []byte(d)
	buf[i/8] &^= 1 << (i % 8)

	// Keep the form canonical: no trailing zero bytes.
	end := len(buf)
	for end > 0 && buf[end-1] == 0 {
		end--
	}

	return DirtSet(buf[:end])
}

// Count returns the number of members.
func (d DirtSet) Count() int {
	n := 0
	for i := 0; i < len(d); i++ {
		n += bits.OnesCount8(d[i])
	}

	return n
}

// Empty reports whether no members remain. Canonical form makes this a
// length check.
func (d DirtSet) Empty() bool {
	return len(d) == 0
}

// maxIndex returns the largest member, or -1 when empty.
func (d DirtSet) maxIndex() int {
	for b := len(d) - 1; b >= 0; b-- {
		if d[b] != 0 {
			return b*8 + 7 - bits.LeadingZeros8(d[b])
		}
	}

	return -1
}

// State is one node of the search graph: where the agent stands and which
// cells are still dirty. It is a comparable value; two States are equal iff
// both fields match, regardless of the route that produced each.
type State struct {
	// Pos is the agent's cell.
	Pos world.Position
	// Dirt is the set of still-dirty cells, indexed per world.DirtIndex.
	Dirt DirtSet
}

// Goal reports whether no dirt remains.
func (s State) Goal() bool {
	return s.Dirt.Empty()
}

// StartState is the canonical search root for w: the agent at w.Start()
// with every initially-dirty cell still dirty.
func StartState(w *world.World) State {
	return State{Pos: w.Start(), Dirt: FullDirtSet(w.DirtCount())}
}

// Step pairs an Action with the State that applying it yields.
type Step struct {
	Action Action
	State  State
}
