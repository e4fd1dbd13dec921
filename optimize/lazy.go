package optimize

import (
	"fmt"
	"time"

	"github.com/crillab/gophersat/solver"

	"github.com/skylinegame/skyline/city"
	"github.com/skylinegame/skyline/layout"
	"github.com/skylinegame/skyline/reach"
)

// Settings keys recognized by NewLazy.
const (
	settingTimeLimit = "time_limit"
	settingMaxRounds = "max_rounds"
	settingVerbose   = "verbose"
)

// Lazy maximizes the layout score with a pseudo-Boolean solver and lazy
// no-good cuts: the solver only knows necessary conditions for
// reachability, so every incumbent is checked against the engine oracle and,
// if it hides a conflict, that conflict is forbidden and the solve repeats.
type Lazy struct {
	grid   *city.City
	oracle *reach.Engine

	timeLimit time.Duration
	maxRounds int
	verbose   bool
	warnings  []string
}

// NewLazy constructs a Lazy optimizer using oracle for feasibility checks.
// See the package documentation for the recognized settings keys;
// unrecognized keys are collected in Warnings rather than rejected.
func NewLazy(oracle *reach.Engine, settings Settings) (*Lazy, error) {
	if oracle == nil {
		return nil, ErrNilEngine
	}
	l := &Lazy{grid: oracle.City(), oracle: oracle}

	for _, key := range settings.unknownKeys(settingTimeLimit, settingMaxRounds, settingVerbose) {
		l.warnings = append(l.warnings, fmt.Sprintf("%q is not a recognized setting and will be ignored", key))
	}

	var err error
	if l.timeLimit, err = settings.duration(settingTimeLimit, 0); err != nil {
		return nil, err
	}
	if l.maxRounds, err = settings.integer(settingMaxRounds, 0); err != nil {
		return nil, err
	}
	if l.verbose, err = settings.boolean(settingVerbose, false); err != nil {
		return nil, err
	}

	return l, nil
}

// Warnings returns the messages accumulated while parsing the settings.
func (l *Lazy) Warnings() []string { return l.warnings }

// Produce runs the cut loop. On success the layout is reachable and proven
// score-optimal. When the round or time budget runs out first, the best
// incumbent so far is returned with Metadata.Optimal false; such a layout may
// still hide a conflict, which Plan will surface.
func (l *Lazy) Produce() (*layout.Layout, Metadata, error) {
	stop := make(chan struct{})
	if l.timeLimit > 0 {
		timer := time.AfterFunc(l.timeLimit, func() { close(stop) })
		defer timer.Stop()
	}

	constrs := l.baseConstraints()
	costLits, costWeights := l.costFunc()

	var best *layout.Layout
	meta := Metadata{}
	for round := 1; l.maxRounds <= 0 || round <= l.maxRounds; round++ {
		meta.Rounds = round
		res := l.solveRound(constrs, costLits, costWeights, stop)
		switch res.Status {
		case solver.Sat:
			cand, err := l.decode(res.Model)
			if err != nil {
				return nil, meta, err
			}
			conflict, err := l.oracle.FindConflict(cand)
			if err != nil {
				return nil, meta, err
			}
			if conflict.AllZero() {
				meta.Optimal = true

				return cand, meta, nil
			}
			best = cand
			if l.expired(stop) {
				return best, meta, nil
			}
			constrs = append(constrs, l.noGood(conflict))
		case solver.Unsat:
			return nil, meta, ErrNoSolution
		default:
			// Interrupted mid-round.
			if best != nil {
				return best, meta, nil
			}

			return nil, meta, fmt.Errorf("optimize: interrupted before any model was found: %w", ErrNoSolution)
		}
	}

	return best, meta, nil
}

// lit numbers the solver variable for "cell (row, col) ends at level". The
// numbering is 1-based as pseudo-Boolean literals require.
func (l *Lazy) lit(row, col, level int) int {
	return (row*l.grid.Cols()+col)*l.grid.Levels() + level + 1
}

// degree counts the in-bounds neighbors of (row, col).
func (l *Lazy) degree(row, col int) int {
	n := 0
	for _, d := range l.grid.NeighborOffsets() {
		if l.grid.InBounds(row+d[0], col+d[1]) {
			n++
		}
	}

	return n
}

// baseConstraints builds the necessary conditions every reachable layout
// satisfies: one level per cell, no level dominated by demolition, no level
// exceeding a cell's neighbor count, no adjacent pair of degree-3 cells both
// at level 3, at most three level-3 towers in any 2x2 square, and at least
// one level-0 cell.
func (l *Lazy) baseConstraints() []solver.PBConstr {
	rows, cols, levels := l.grid.Rows(), l.grid.Cols(), l.grid.Levels()
	scores := l.grid.Scores()

	var constrs []solver.PBConstr

	// Exactly one level per cell.
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			lits := make([]int, levels)
			for k := 0; k < levels; k++ {
				lits[k] = l.lit(row, col, k)
			}
			constrs = append(constrs, solver.PropClause(lits...), solver.AtMost(lits, 1))
		}
	}

	// A level scoring no more than level 0 is never worth building.
	for k := 1; k < levels; k++ {
		if scores[k] > scores[0] {
			continue
		}
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				constrs = append(constrs, solver.PropClause(-l.lit(row, col, k)))
			}
		}
	}

	// A tower needs one neighbor per level below it at construction time.
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			for k := l.degree(row, col) + 1; k < levels; k++ {
				constrs = append(constrs, solver.PropClause(-l.lit(row, col, k)))
			}
		}
	}

	if levels >= 4 {
		// Two adjacent degree-3 cells cannot both end at level 3: whichever
		// was built last saw at most two usable neighbor levels.
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				if l.degree(row, col) != 3 {
					continue
				}
				for _, d := range l.grid.NeighborOffsets() {
					nr, nc := row+d[0], col+d[1]
					if !l.grid.InBounds(nr, nc) || l.degree(nr, nc) != 3 {
						continue
					}
					if nr < row || (nr == row && nc < col) {
						continue // each pair once
					}
					constrs = append(constrs, solver.AtMost([]int{l.lit(row, col, 3), l.lit(nr, nc, 3)}, 1))
				}
			}
		}

		// No 2x2 square holds four level-3 towers.
		for row := 0; row+1 < rows; row++ {
			for col := 0; col+1 < cols; col++ {
				constrs = append(constrs, solver.PropClause(
					-l.lit(row, col, 3),
					-l.lit(row, col+1, 3),
					-l.lit(row+1, col, 3),
					-l.lit(row+1, col+1, 3),
				))
			}
		}
	}

	// The last tower built needed a level-0 neighbor.
	zeroLits := make([]int, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			zeroLits = append(zeroLits, l.lit(row, col, 0))
		}
	}
	constrs = append(constrs, solver.PropClause(zeroLits...))

	return constrs
}

// costFunc translates score maximization into the solver's cost minimization:
// each assignment pays the gap between its score and the best level score, so
// a zero-cost model is a maximum-score layout.
func (l *Lazy) costFunc() ([]solver.Lit, []int) {
	scores := l.grid.Scores()
	maxScore := scores[0]
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}

	var lits []solver.Lit
	var weights []int
	for row := 0; row < l.grid.Rows(); row++ {
		for col := 0; col < l.grid.Cols(); col++ {
			for k := 0; k < l.grid.Levels(); k++ {
				if w := maxScore - scores[k]; w > 0 {
					lits = append(lits, solver.IntToLit(int32(l.lit(row, col, k))))
					weights = append(weights, w)
				}
			}
		}
	}

	return lits, weights
}

// solveRound solves the current constraint set to optimality, honoring stop.
func (l *Lazy) solveRound(constrs []solver.PBConstr, costLits []solver.Lit, costWeights []int, stop chan struct{}) solver.Result {
	pb := solver.ParsePBConstrs(constrs)
	if len(costLits) > 0 {
		pb.SetCostFunc(costLits, costWeights)
	}
	s := solver.New(pb)
	s.Verbose = l.verbose

	return s.Optimal(nil, stop)
}

// decode turns a solver model back into a layout.
func (l *Lazy) decode(model []bool) (*layout.Layout, error) {
	out, err := layout.New(l.grid)
	if err != nil {
		return nil, err
	}
	for row := 0; row < l.grid.Rows(); row++ {
		for col := 0; col < l.grid.Cols(); col++ {
			assigned := false
			for k := 0; k < l.grid.Levels(); k++ {
				if model[l.lit(row, col, k)-1] {
					out.Set(row, col, k)
					assigned = true
					break
				}
			}
			if !assigned {
				return nil, fmt.Errorf("optimize: model leaves cell (%d,%d) unassigned: %w", row, col, ErrInternal)
			}
		}
	}

	return out, nil
}

// noGood forbids every layout that reproduces conflict on its nonzero cells.
func (l *Lazy) noGood(conflict *layout.Layout) solver.PBConstr {
	var negated []int
	for row := 0; row < l.grid.Rows(); row++ {
		for col := 0; col < l.grid.Cols(); col++ {
			if level := conflict.At(row, col); level != 0 {
				negated = append(negated, -l.lit(row, col, level))
			}
		}
	}

	return solver.PropClause(negated...)
}

// expired reports whether the time budget has run out.
func (l *Lazy) expired(stop chan struct{}) bool {
	select {
	case <-stop:
		return true
	default:
		return false
	}
}
