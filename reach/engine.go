package reach

import (
	"fmt"

	"github.com/skylinegame/skyline/city"
	"github.com/skylinegame/skyline/layout"
)

// Engine reconstructs move sequences for target layouts over a fixed grid
// descriptor. It is stateless between calls; every invocation works on its
// own deep copies.
type Engine struct {
	grid *city.City
}

// New constructs an Engine bound to c. Returns ErrNilCity if c is nil.
func New(c *city.City) (*Engine, error) {
	if c == nil {
		return nil, ErrNilCity
	}

	return &Engine{grid: c}, nil
}

// City returns the grid descriptor the engine is bound to.
func (e *Engine) City() *city.City { return e.grid }

// validate rejects nil layouts and layouts bound to a different descriptor.
func (e *Engine) validate(l *layout.Layout) error {
	if l == nil {
		return ErrNilLayout
	}
	if l.City() != e.grid {
		return ErrGridMismatch
	}

	return nil
}

// MovesFor computes a forward move sequence that reproduces target from the
// all-zero layout, replaying every move through Layout.Place with
// verification before returning success. If no sequence exists it returns an
// *InfeasibleError carrying the discovered conflict. A replay mismatch or the
// failure of a proven-safe reduction surfaces as ErrInternal and must never
// occur.
func (e *Engine) MovesFor(target *layout.Layout) ([]Move, error) {
	if err := e.validate(target); err != nil {
		return nil, err
	}

	residual, moves, err := e.reduceFully(target.Clone())
	if err != nil {
		return nil, err
	}
	if !e.replays(residual, moves, target) {
		return nil, fmt.Errorf("reach: computed move sequence does not replay to the target: %w", ErrInternal)
	}
	if !residual.AllZero() {
		return nil, &InfeasibleError{Conflict: residual}
	}

	return moves, nil
}

// FindConflict is the oracle form of the engine for external optimizers: it
// never reports infeasibility as an error. It returns an all-zero layout when
// this pass found no obstruction (the candidate may still be infeasible) or a
// non-empty conflict layout proving the candidate unreachable. Each call is
// independent and stateless with respect to prior calls.
func (e *Engine) FindConflict(candidate *layout.Layout) (*layout.Layout, error) {
	if err := e.validate(candidate); err != nil {
		return nil, err
	}

	residual, _, err := e.reduceFully(candidate.Clone())
	if err != nil {
		return nil, err
	}

	return residual, nil
}

// Reduce applies the non-recursive fixpoint sweep to work in place and
// returns the forward moves from the reduced state back to the original one.
// Exposed so callers can check conflict minimality or build their own cuts;
// MovesFor and FindConflict additionally run the speculative search.
func (e *Engine) Reduce(work *layout.Layout) ([]Move, error) {
	if err := e.validate(work); err != nil {
		return nil, err
	}

	return e.sweep(work)
}

// replays verifies that applying moves to start, with placement verification,
// reproduces end exactly.
func (e *Engine) replays(start *layout.Layout, moves []Move, end *layout.Layout) bool {
	cur := start.Clone()
	for _, m := range moves {
		if err := cur.Place(m.Row, m.Col, m.Level, true); err != nil {
			return false
		}
	}
	ord, err := cur.Compare(end)

	return err == nil && ord == layout.Equal
}
