// Package layout defines core types and sentinel errors for the level grid
// of github.com/skylinegame/skyline.
package layout

import "errors"

// Sentinel errors for layout operations.
var (
	// ErrNilCity indicates a nil grid descriptor.
	ErrNilCity = errors.New("layout: city descriptor is nil")
	// ErrNilLayout indicates a nil layout argument.
	ErrNilLayout = errors.New("layout: layout is nil")
	// ErrShapeMismatch indicates a level grid whose shape differs from the descriptor.
	ErrShapeMismatch = errors.New("layout: level grid does not match city dimensions")
	// ErrIllegalPlacement indicates a verified placement that violates the construction rule.
	ErrIllegalPlacement = errors.New("layout: placement violates construction rules")
	// ErrGridMismatch indicates layouts bound to different descriptors.
	ErrGridMismatch = errors.New("layout: layouts are bound to different descriptors")
)

// Ordering is the outcome of comparing two layouts under the cell-wise
// partial order. The order is not total: Incomparable is a first-class
// result, not a disguised "false".
type Ordering int

const (
	// Less: the layouts differ and no cell of the receiver exceeds the other's.
	Less Ordering = iota
	// Equal: every cell matches.
	Equal
	// Greater: the layouts differ and no cell of the other exceeds the receiver's.
	Greater
	// Incomparable: each layout exceeds the other somewhere.
	Incomparable
)

// String returns a human-readable name for the ordering.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	case Incomparable:
		return "Incomparable"
	default:
		return "Unknown"
	}
}
