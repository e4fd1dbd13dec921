package optimize

import (
	"github.com/skylinegame/skyline/reach"
)

// Plan runs opt and verifies its layout through the engine, returning the
// layout together with its score and a replay-checked move sequence. The
// optimizer must be built over the same city descriptor as eng. An optimizer
// that gave up on a still-conflicted incumbent surfaces here as
// reach.ErrInfeasible.
func Plan(eng *reach.Engine, opt Optimizer) (*Result, error) {
	if eng == nil {
		return nil, ErrNilEngine
	}
	if opt == nil {
		return nil, ErrNilOptimizer
	}

	l, meta, err := opt.Produce()
	if err != nil {
		return nil, err
	}
	moves, err := eng.MovesFor(l)
	if err != nil {
		return nil, err
	}

	return &Result{Layout: l, Score: l.Score(), Moves: moves, Optimal: meta.Optimal}, nil
}
