package city

// neighborOffsets lists the orthogonal directions in a fixed order:
// up, down, left, right. Precomputed once and shared by every City.
var neighborOffsets = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// City is the immutable grid descriptor: dimensions, level count, and score
// table. It is shared by reference by every Layout built against it.
type City struct {
	rows, cols int
	levels     int
	scores     []int
}

// New constructs a City with rows × cols cells and the given options.
// Returns ErrBadDimensions, ErrBadLevelCount, or ErrBadScoreTable on invalid
// input. The score table defaults to 1..levels, matching the base game.
// Complexity: O(L) time and memory.
func New(rows, cols int, opts ...Option) (*City, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrBadDimensions
	}
	co := cityOptions{levels: DefaultLevels}
	for _, fn := range opts {
		fn(&co)
	}
	if co.levels < 1 || co.levels > MaxLevels {
		return nil, ErrBadLevelCount
	}
	if co.scores != nil && len(co.scores) != co.levels {
		return nil, ErrBadScoreTable
	}
	// Deep copy the score table to guarantee immutability.
	scores := make([]int, co.levels)
	if co.scores != nil {
		copy(scores, co.scores)
	} else {
		for k := range scores {
			scores[k] = k + 1
		}
	}

	return &City{rows: rows, cols: cols, levels: co.levels, scores: scores}, nil
}

// Rows returns the number of grid rows.
func (c *City) Rows() int { return c.rows }

// Cols returns the number of grid columns.
func (c *City) Cols() int { return c.cols }

// Levels returns the number of tower levels L; cell levels range over [0, L).
func (c *City) Levels() int { return c.levels }

// Scores returns a copy of the per-level score table.
// Complexity: O(L).
func (c *City) Scores() []int {
	out := make([]int, len(c.scores))
	copy(out, c.scores)

	return out
}

// Score returns the score awarded for a tower at the given level.
// Returns ErrBadLevel if level is outside [0, Levels()).
func (c *City) Score(level int) (int, error) {
	if level < 0 || level >= c.levels {
		return 0, ErrBadLevel
	}

	return c.scores[level], nil
}

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (c *City) InBounds(row, col int) bool {
	return row >= 0 && row < c.rows && col >= 0 && col < c.cols
}

// NeighborOffsets returns the shared orthogonal offset slice in fixed order
// (up, down, left, right). Callers must not modify it; it is the allocation-free
// way to walk a neighborhood together with InBounds.
// Complexity: O(1).
func (c *City) NeighborOffsets() [][2]int {
	return neighborOffsets
}

// Neighbors returns the orthogonal neighbors of (row, col) clipped to the grid
// bounds, in the fixed offset order. Returns ErrCellOutOfRange if the queried
// cell itself is outside the grid; otherwise it never fails.
// Complexity: O(1) time, O(1) memory (at most four cells).
func (c *City) Neighbors(row, col int) ([]Cell, error) {
	if !c.InBounds(row, col) {
		return nil, ErrCellOutOfRange
	}
	out := make([]Cell, 0, 4)
	for _, d := range neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if c.InBounds(nr, nc) {
			out = append(out, Cell{Row: nr, Col: nc})
		}
	}

	return out, nil
}
