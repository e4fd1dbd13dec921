package layout

import (
	"fmt"
	"strings"

	"github.com/skylinegame/skyline/city"
)

// Layout is a mutable R×C grid of tower levels bound to a City descriptor.
// The zero level means an empty cell; levels range over [0, city.Levels()).
type Layout struct {
	grid  *city.City
	cells [][]int
}

// New constructs an all-zero Layout bound to c.
// Returns ErrNilCity if c is nil.
// Complexity: O(R×C).
func New(c *city.City) (*Layout, error) {
	if c == nil {
		return nil, ErrNilCity
	}
	cells := make([][]int, c.Rows())
	for r := range cells {
		cells[r] = make([]int, c.Cols())
	}

	return &Layout{grid: c, cells: cells}, nil
}

// FromLevels constructs a Layout from an explicit level grid, deep-copying the
// input. Returns ErrShapeMismatch if the shape differs from c, or an error
// wrapping city.ErrBadLevel if any level is outside [0, c.Levels()).
// Complexity: O(R×C).
func FromLevels(c *city.City, levels [][]int) (*Layout, error) {
	l, err := New(c)
	if err != nil {
		return nil, err
	}
	if len(levels) != c.Rows() {
		return nil, ErrShapeMismatch
	}
	for r, row := range levels {
		if len(row) != c.Cols() {
			return nil, ErrShapeMismatch
		}
		for col, v := range row {
			if v < 0 || v >= c.Levels() {
				return nil, fmt.Errorf("layout: cell (%d,%d) level %d: %w", r, col, v, city.ErrBadLevel)
			}
			l.cells[r][col] = v
		}
	}

	return l, nil
}

// City returns the shared grid descriptor this layout is bound to.
func (l *Layout) City() *city.City { return l.grid }

// Level returns the level at (row, col), or city.ErrCellOutOfRange if the
// cell lies outside the grid.
func (l *Layout) Level(row, col int) (int, error) {
	if !l.grid.InBounds(row, col) {
		return 0, city.ErrCellOutOfRange
	}

	return l.cells[row][col], nil
}

// At returns the level at (row, col) without bounds checking.
// Hot-path accessor; see Level for the checked variant.
func (l *Layout) At(row, col int) int { return l.cells[row][col] }

// Set writes level into (row, col) without bounds or legality checking.
// Hot-path mutator used by the engine during reductions; see Place for the
// checked variant.
func (l *Layout) Set(row, col, level int) { l.cells[row][col] = level }

// Place sets cell (row, col) to level. It returns an error wrapping
// city.ErrCellOutOfRange or city.ErrBadLevel for out-of-range arguments.
// With verify set, it additionally enforces the construction rule against the
// current state and returns an error wrapping ErrIllegalPlacement on
// violation; level 0 (demolition) is always legal. No other cell changes.
func (l *Layout) Place(row, col, level int, verify bool) error {
	if !l.grid.InBounds(row, col) {
		return fmt.Errorf("layout: place (%d,%d): %w", row, col, city.ErrCellOutOfRange)
	}
	if level < 0 || level >= l.grid.Levels() {
		return fmt.Errorf("layout: place (%d,%d) level %d: %w", row, col, level, city.ErrBadLevel)
	}
	if verify && !l.legalPlacement(row, col, level) {
		return fmt.Errorf("layout: place (%d,%d) level %d: %w", row, col, level, ErrIllegalPlacement)
	}
	l.cells[row][col] = level

	return nil
}

// legalPlacement reports whether building (row, col) to level is legal in the
// current state: every level in [0, level) must be present among the cell's
// neighbors at this moment.
func (l *Layout) legalPlacement(row, col, level int) bool {
	counts := l.neighborCounts(row, col)
	for k := 0; k < level; k++ {
		if counts[k] == 0 {
			return false
		}
	}

	return true
}

// neighborCounts tallies the current neighbor levels of an in-bounds cell.
func (l *Layout) neighborCounts(row, col int) []int {
	counts := make([]int, l.grid.Levels())
	for _, d := range l.grid.NeighborOffsets() {
		nr, nc := row+d[0], col+d[1]
		if l.grid.InBounds(nr, nc) {
			counts[l.cells[nr][nc]]++
		}
	}

	return counts
}

// NeighborLevelCounts returns, for each level k, how many neighbors of
// (row, col) currently hold level k. Returns city.ErrCellOutOfRange if the
// cell lies outside the grid.
// Complexity: O(L) memory, O(1) neighbor visits.
func (l *Layout) NeighborLevelCounts(row, col int) ([]int, error) {
	if !l.grid.InBounds(row, col) {
		return nil, city.ErrCellOutOfRange
	}

	return l.neighborCounts(row, col), nil
}

// HasNeighborAt reports whether some neighbor of (row, col) currently holds
// the given level. Returns city.ErrCellOutOfRange for cells outside the grid.
func (l *Layout) HasNeighborAt(row, col, level int) (bool, error) {
	if !l.grid.InBounds(row, col) {
		return false, city.ErrCellOutOfRange
	}
	for _, d := range l.grid.NeighborOffsets() {
		nr, nc := row+d[0], col+d[1]
		if l.grid.InBounds(nr, nc) && l.cells[nr][nc] == level {
			return true, nil
		}
	}

	return false, nil
}

// Score sums the descriptor's score table entry for every cell's level.
// Complexity: O(R×C).
func (l *Layout) Score() int {
	scores := l.grid.Scores()
	total := 0
	for _, row := range l.cells {
		for _, v := range row {
			total += scores[v]
		}
	}

	return total
}

// AllZero reports whether every cell is at level 0.
// Complexity: O(R×C).
func (l *Layout) AllZero() bool {
	for _, row := range l.cells {
		for _, v := range row {
			if v != 0 {
				return false
			}
		}
	}

	return true
}

// Clone returns an independent deep copy sharing the same descriptor.
// Complexity: O(R×C).
func (l *Layout) Clone() *Layout {
	cells := make([][]int, len(l.cells))
	for r, row := range l.cells {
		cells[r] = make([]int, len(row))
		copy(cells[r], row)
	}

	return &Layout{grid: l.grid, cells: cells}
}

// Snapshot returns a deep copy of the level grid as a plain [][]int.
// Complexity: O(R×C).
func (l *Layout) Snapshot() [][]int {
	return l.Clone().cells
}

// String renders the layout as space-separated level digits, one row per line.
func (l *Layout) String() string {
	var b strings.Builder
	for r, row := range l.cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, v := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", v)
		}
	}

	return b.String()
}
