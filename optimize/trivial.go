package optimize

import (
	"github.com/skylinegame/skyline/city"
	"github.com/skylinegame/skyline/layout"
)

// Trivial is the baseline optimizer: it proposes the all-zero layout, which
// is always buildable with zero moves and sets the floor every other
// optimizer must beat.
type Trivial struct {
	grid *city.City
}

// NewTrivial constructs a Trivial optimizer over c.
func NewTrivial(c *city.City) (*Trivial, error) {
	if c == nil {
		return nil, ErrNilCity
	}

	return &Trivial{grid: c}, nil
}

// Produce returns a fresh all-zero layout. The result is never marked
// optimal.
func (o *Trivial) Produce() (*layout.Layout, Metadata, error) {
	l, err := layout.New(o.grid)
	if err != nil {
		return nil, Metadata{}, err
	}

	return l, Metadata{}, nil
}
