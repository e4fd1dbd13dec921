package reach

import (
	"github.com/skylinegame/skyline/city"
	"github.com/skylinegame/skyline/layout"
)

// reduceFully runs the fixpoint sweep and, for whatever resists it, the
// recursive speculative search. work is consumed: the caller must pass an
// owned clone. The returned residual layout (all-zero on full success) is
// owned by the caller, and the moves lead from the residual to the original
// state of work in forward order.
func (e *Engine) reduceFully(work *layout.Layout) (*layout.Layout, []Move, error) {
	moves, err := e.sweep(work)
	if err != nil {
		return nil, nil, err
	}
	if work.AllZero() {
		return work, moves, nil
	}

	// The sweep left top-level towers it cannot justify directly. Try every
	// useful level-2 promotion on its own deep copy, ranking residuals under
	// the partial order and stopping at the first fully cleared branch.
	best, bestMoves := work, moves
	for _, cand := range e.usefulPromotions(work) {
		trial := work.Clone()
		trial.Set(cand.Row, cand.Col, 2)
		residual, subMoves, err := e.reduceFully(trial)
		if err != nil {
			return nil, nil, err
		}

		// Forward order: build up to the speculative state, undo the
		// promotion, then proceed as before the speculation.
		trialMoves := make([]Move, 0, len(subMoves)+1+len(moves))
		trialMoves = append(trialMoves, subMoves...)
		trialMoves = append(trialMoves, Move{Row: cand.Row, Col: cand.Col, Level: 0})
		trialMoves = append(trialMoves, moves...)

		if residual.AllZero() {
			return residual, trialMoves, nil
		}
		if ord, cmpErr := residual.Compare(best); cmpErr == nil && ord == layout.Less {
			best, bestMoves = residual, trialMoves
		}
	}

	return best, bestMoves, nil
}

// usefulPromotions collects, in row-major order, the level-0 cells whose
// hypothetical promotion to level 2 would newly satisfy the safe-reduction
// precondition of some top-level neighbor: a tower at level L-1 with no
// level-2 neighbor yet and either at least two level-0 neighbors plus a
// level-1 neighbor, or at least three level-0 neighbors.
func (e *Engine) usefulPromotions(work *layout.Layout) []city.Cell {
	if e.grid.Levels() < 3 {
		// No level 2 exists to promote to.
		return nil
	}
	top := e.grid.Levels() - 1

	rows, cols := e.grid.Rows(), e.grid.Cols()
	marked := make([][]bool, rows)
	for r := range marked {
		marked[r] = make([]bool, cols)
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if work.At(row, col) != top {
				continue
			}
			zeros := e.neighborCountAt(work, row, col, 0)
			ones := e.neighborCountAt(work, row, col, 1)
			if e.hasNeighborAt(work, row, col, 2) {
				continue
			}
			if !(zeros >= 2 && ones >= 1) && zeros < 3 {
				continue
			}
			for _, d := range e.grid.NeighborOffsets() {
				nr, nc := row+d[0], col+d[1]
				if e.grid.InBounds(nr, nc) && work.At(nr, nc) == 0 {
					marked[nr][nc] = true
				}
			}
		}
	}

	var cands []city.Cell
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if marked[row][col] {
				cands = append(cands, city.Cell{Row: row, Col: col})
			}
		}
	}

	return cands
}
