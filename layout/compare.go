package layout

// Compare relates l to other under the cell-wise partial order:
// Less means the layouts differ and no cell of l exceeds the corresponding
// cell of other; Greater is the mirror image; Equal means all cells match;
// Incomparable means each layout exceeds the other somewhere.
// Returns ErrNilLayout for a nil argument and ErrGridMismatch when the two
// layouts are bound to different descriptors.
// Complexity: O(R×C).
func (l *Layout) Compare(other *Layout) (Ordering, error) {
	if other == nil {
		return Incomparable, ErrNilLayout
	}
	if l.grid != other.grid {
		return Incomparable, ErrGridMismatch
	}

	var above, below bool // l exceeds other somewhere / other exceeds l somewhere
	for r, row := range l.cells {
		for c, v := range row {
			switch w := other.cells[r][c]; {
			case v > w:
				above = true
			case v < w:
				below = true
			}
		}
	}

	switch {
	case above && below:
		return Incomparable, nil
	case above:
		return Greater, nil
	case below:
		return Less, nil
	default:
		return Equal, nil
	}
}
