package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/ZAXBIE/vacplan/world"
)

var (
	// ErrWorldNil is returned when the world is nil.
	ErrWorldNil = errors.New("search: world is nil")

	// ErrStartPosition is returned when the start state's position lies
	// outside the grid or on a wall cell.
	ErrStartPosition = errors.New("search: start position out of bounds or on a wall")

	// ErrDirtIndex is returned when the start state's dirt set contains an
	// index beyond the world's dirty-cell count.
	ErrDirtIndex = errors.New("search: dirt set exceeds the world's dirty cells")

	// ErrMoveBlocked is returned by Replay when a move action leaves the
	// grid or lands on a wall.
	ErrMoveBlocked = errors.New("search: move blocked by wall or grid edge")

	// ErrVacuumClean is returned by Replay when a vacuum action targets a
	// cell that is not (or no longer) dirty.
	ErrVacuumClean = errors.New("search: vacuum on a clean cell")

	// ErrUnknownAction is returned by Replay for an action value outside
	// the defined set.
	ErrUnknownAction = errors.New("search: unknown action")
)

// Options holds the tunables shared by DepthFirst and UniformCost.
// Zero value is not ready to use; start from DefaultOptions.
type Options struct {
	// Ctx cancels a run between expansions. An aborted run returns the
	// partial Result together with the context's error.
	// Defaults to context.Background().
	Ctx context.Context

	// OnExpand, when non-nil, fires once per expansion, right after the
	// Expanded counter is bumped. Purely observational.
	OnExpand func(State)
}

// Option adjusts Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: background context,
// no hooks.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext overrides the run's context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers an observational hook invoked once per expansion.
// A nil fn is ignored.
func WithOnExpand(fn func(State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// validateSearch checks the inputs shared by DepthFirst, UniformCost and
// Replay before any frontier work starts.
func validateSearch(w *world.World, start State) error {
	// 1) World must exist.
	if w == nil {
		return ErrWorldNil
	}

	// 2) Start cell must be inside the grid and open.
	if cell, ok := w.At(start.Pos); !ok || cell != world.Open {
		return fmt.Errorf("%w: %s", ErrStartPosition, start.Pos)
	}

	// 3) Dirt bits must all refer to cells the world knows as dirty.
	if hi := start.Dirt.maxIndex(); hi >= w.DirtCount() {
		return fmt.Errorf("%w: index %d of %d", ErrDirtIndex, hi, w.DirtCount())
	}

	return nil
}
