// Package optimize defines core types and sentinel errors for the layout
// optimizers of github.com/skylinegame/skyline.
package optimize

import (
	"errors"

	"github.com/skylinegame/skyline/layout"
	"github.com/skylinegame/skyline/reach"
)

// Sentinel errors for optimizer operations.
var (
	// ErrNilEngine indicates a nil reachability engine.
	ErrNilEngine = errors.New("optimize: engine is nil")
	// ErrNilOptimizer indicates a nil optimizer passed to Plan.
	ErrNilOptimizer = errors.New("optimize: optimizer is nil")
	// ErrNilCity indicates a nil grid descriptor.
	ErrNilCity = errors.New("optimize: city descriptor is nil")
	// ErrBadSetting indicates a recognized settings key holding a value of an
	// unsupported type.
	ErrBadSetting = errors.New("optimize: bad setting value")
	// ErrNoSolution indicates the solver proved the constraint set empty or
	// was interrupted before producing any model.
	ErrNoSolution = errors.New("optimize: no layout satisfies the constraints")
	// ErrInternal indicates a solver model that violates its own constraints.
	// It must never occur.
	ErrInternal = errors.New("optimize: internal consistency failure")
)

// Settings carries optimizer tuning as loosely typed key/value pairs; see the
// package documentation for the recognized keys of each optimizer.
type Settings map[string]any

// Metadata describes how an Optimizer arrived at its layout.
type Metadata struct {
	// Optimal is true when the layout is proven best under the optimizer's
	// model, false for baselines, exhausted budgets and interruptions.
	Optimal bool
	// Rounds counts solver invocations; zero for optimizers that need none.
	Rounds int
}

// Optimizer produces a candidate layout to hand to Plan. Implementations are
// single-shot: each Produce call runs a fresh search.
type Optimizer interface {
	Produce() (*layout.Layout, Metadata, error)
}

// Result is a fully verified optimization outcome: the layout, its total
// score, and a replayable move sequence constructing it from the empty grid.
type Result struct {
	Layout  *layout.Layout
	Score   int
	Moves   []reach.Move
	Optimal bool
}
