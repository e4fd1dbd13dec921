package reach

import (
	"fmt"

	"github.com/skylinegame/skyline/layout"
)

// promotion records a speculative, reversible elevation of a level-0 neighbor
// chosen to justify a reduction.
type promotion struct {
	row, col, level int
}

// hasNeighborAt reports whether some neighbor of the in-bounds cell
// (row, col) currently holds level. Unchecked hot-path helper.
func (e *Engine) hasNeighborAt(work *layout.Layout, row, col, level int) bool {
	for _, d := range e.grid.NeighborOffsets() {
		nr, nc := row+d[0], col+d[1]
		if e.grid.InBounds(nr, nc) && work.At(nr, nc) == level {
			return true
		}
	}

	return false
}

// neighborCountAt counts neighbors of the in-bounds cell (row, col) currently
// at level. Unchecked hot-path helper.
func (e *Engine) neighborCountAt(work *layout.Layout, row, col, level int) int {
	n := 0
	for _, d := range e.grid.NeighborOffsets() {
		nr, nc := row+d[0], col+d[1]
		if e.grid.InBounds(nr, nc) && work.At(nr, nc) == level {
			n++
		}
	}

	return n
}

// sweep repeatedly scans the grid in row-major order and safely reduces every
// reducible nonzero cell until a full pass makes no change. work is mutated;
// the returned moves lead from the reduced state back to the original one in
// forward order. A non-nil error is an internal inconsistency.
func (e *Engine) sweep(work *layout.Layout) ([]Move, error) {
	var moves []Move
	for changed := true; changed; {
		changed = false
		for row := 0; row < e.grid.Rows(); row++ {
			for col := 0; col < e.grid.Cols(); col++ {
				cellMoves, err := e.reduceCell(work, row, col)
				if err != nil {
					return nil, err
				}
				if len(cellMoves) > 0 {
					changed = true
					moves = append(cellMoves, moves...)
				}
			}
		}
	}

	return moves, nil
}

// reduceCell attempts to safely reduce the tower at (row, col) to level 0.
//
// The reduction succeeds when (row, col) currently neighbors every level it
// would need to be built now, possibly after promoting unused level-0
// neighbors: a 1-promotion is always reversible because the reduced cell
// itself becomes the promoted cell's level-0 neighbor; a 2-promotion is
// reversible only when the promoted cell has another 0/1 neighbor besides
// (row, col). One level-0 neighbor is never consumed so it can justify the
// reduction of (row, col) itself. Missing levels of 3 and above are never
// manufactured.
//
// On success work holds the reduced state and the returned moves lead from it
// back to the pre-call state, promotions first, then the (row, col) move,
// then the promotion undos. On failure work is untouched and the returned
// slice is nil. A non-nil error means the mandatory undo of a committed
// promotion failed, which the safety rules make unreachable.
func (e *Engine) reduceCell(work *layout.Layout, row, col int) ([]Move, error) {
	level := work.At(row, col)
	if level == 0 {
		return nil, nil
	}
	if !e.hasNeighborAt(work, row, col, 0) {
		return nil, nil
	}
	// One zero neighbor stays reserved for (row, col) itself.
	spare := e.neighborCountAt(work, row, col, 0) - 1

	// Plan promotions for the missing levels, most constrained first.
	var promos []promotion
	var used [4][2]int
	for needed := level - 1; needed >= 1; needed-- {
		if e.hasNeighborAt(work, row, col, needed) {
			continue
		}
		if spare == 0 {
			return nil, nil
		}
		found := false
		for _, d := range e.grid.NeighborOffsets() {
			nr, nc := row+d[0], col+d[1]
			if !e.grid.InBounds(nr, nc) || inUse(used[:len(promos)], nr, nc) {
				continue
			}
			if e.safelyPromotable(work, row, col, nr, nc, needed) {
				used[len(promos)] = [2]int{nr, nc}
				promos = append(promos, promotion{row: nr, col: nc, level: needed})
				found = true
				break
			}
		}
		if !found {
			return nil, nil
		}
		spare--
	}

	// Commit: raise the promoted neighbors, demolish (row, col), then reduce
	// every promotion back to zero. Moves are assembled backwards in time, so
	// each step prepends to the forward sequence.
	var moves []Move
	for _, p := range promos {
		work.Set(p.row, p.col, p.level)
		moves = prepend(moves, Move{Row: p.row, Col: p.col, Level: 0})
	}
	work.Set(row, col, 0)
	moves = prepend(moves, Move{Row: row, Col: col, Level: level})
	for _, p := range promos {
		undo, err := e.reduceCell(work, p.row, p.col)
		if err != nil {
			return nil, err
		}
		if len(undo) == 0 {
			return nil, fmt.Errorf("reach: undoing promotion of (%d,%d): %w", p.row, p.col, ErrInternal)
		}
		moves = append(undo, moves...)
	}

	return moves, nil
}

// safelyPromotable reports whether the neighbor (proRow, proCol) of the cell
// being reduced at (redRow, redCol) can be raised to level and provably
// lowered again afterwards.
func (e *Engine) safelyPromotable(work *layout.Layout, redRow, redCol, proRow, proCol, level int) bool {
	if work.At(proRow, proCol) != 0 {
		return false
	}
	switch level {
	case 1:
		// The reduced cell itself supplies the required level-0 neighbor.
		return true
	case 2:
		// Undoing needs a 0/1 neighbor that is not the reduced cell.
		for _, d := range e.grid.NeighborOffsets() {
			vr, vc := proRow+d[0], proCol+d[1]
			if !e.grid.InBounds(vr, vc) || (vr == redRow && vc == redCol) {
				continue
			}
			if work.At(vr, vc) <= 1 {
				return true
			}
		}

		return false
	default:
		// Promotions above level 2 are never manufactured.
		return false
	}
}

// inUse reports whether (row, col) already backs a planned promotion.
func inUse(used [][2]int, row, col int) bool {
	for _, u := range used {
		if u[0] == row && u[1] == col {
			return true
		}
	}

	return false
}

// prepend pushes m onto the front of moves.
func prepend(moves []Move, m Move) []Move {
	out := make([]Move, 0, len(moves)+1)
	out = append(out, m)

	return append(out, moves...)
}
