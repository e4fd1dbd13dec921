// Package reach defines core types and sentinel errors for the reachability
// engine of github.com/skylinegame/skyline.
package reach

import (
	"errors"
	"fmt"

	"github.com/skylinegame/skyline/layout"
)

// Sentinel errors for engine operations.
var (
	// ErrNilCity indicates a nil grid descriptor.
	ErrNilCity = errors.New("reach: city descriptor is nil")
	// ErrNilLayout indicates a nil layout argument.
	ErrNilLayout = errors.New("reach: layout is nil")
	// ErrGridMismatch indicates a layout bound to a different descriptor than the engine.
	ErrGridMismatch = errors.New("reach: layout is bound to a different descriptor")
	// ErrInfeasible indicates the target layout cannot be reached from the
	// all-zero layout; errors.As to *InfeasibleError for the conflict.
	ErrInfeasible = errors.New("reach: target layout is unreachable")
	// ErrInternal indicates a replay mismatch or the failure of a reduction
	// that was proven safe. It must never occur and is not a recoverable
	// condition.
	ErrInternal = errors.New("reach: internal consistency failure")
)

// Move sets cell (Row, Col) to Level. Sequences are produced in the forward
// temporal order in which they must be applied starting from the all-zero
// layout.
type Move struct {
	Row, Col, Level int
}

// String renders the move as (row,col)->level.
func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)->%d", m.Row, m.Col, m.Level)
}

// InfeasibleError reports an unreachable target together with the locally
// minimal conflict sub-layout proving it: zeroing any single nonzero cell of
// the conflict lets the fixpoint sweep collapse the rest.
type InfeasibleError struct {
	// Conflict is the residual layout that resisted every reduction.
	Conflict *layout.Layout
}

// Error implements the error interface.
func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("reach: target layout is unreachable; minimal conflict:\n%s", e.Conflict)
}

// Unwrap lets errors.Is(err, ErrInfeasible) succeed.
func (e *InfeasibleError) Unwrap() error { return ErrInfeasible }
