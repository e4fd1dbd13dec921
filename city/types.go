// Package city defines core types, options, and sentinel errors
// for the grid descriptor of github.com/skylinegame/skyline.
package city

import "errors"

const (
	// MaxLevels bounds the number of tower levels. The promotion-safety
	// analysis in the reach package is a hand-derived case split for levels
	// 0..3 and does not extend beyond it.
	MaxLevels = 4

	// DefaultLevels is the level count used when WithLevels is not given.
	DefaultLevels = 4
)

// Sentinel errors for descriptor construction and queries.
var (
	// ErrBadDimensions indicates a grid with fewer than one row or column.
	ErrBadDimensions = errors.New("city: rows and cols must be at least 1")
	// ErrBadLevelCount indicates a level count outside 1..MaxLevels.
	ErrBadLevelCount = errors.New("city: level count must be between 1 and 4")
	// ErrBadScoreTable indicates a score table whose length differs from the level count.
	ErrBadScoreTable = errors.New("city: score table length must equal the level count")
	// ErrCellOutOfRange indicates a queried cell outside the grid bounds.
	ErrCellOutOfRange = errors.New("city: cell outside grid bounds")
	// ErrBadLevel indicates a level outside the declared range.
	ErrBadLevel = errors.New("city: level outside declared range")
)

// Cell identifies one grid position by row and column.
type Cell struct {
	Row, Col int
}

// Option configures optional City parameters. Use with New.
type Option func(*cityOptions)

type cityOptions struct {
	levels int
	scores []int
}

// WithLevels sets the number of tower levels (1..MaxLevels).
func WithLevels(n int) Option {
	return func(o *cityOptions) {
		o.levels = n
	}
}

// WithScores sets the per-level score table. Its length must equal the level
// count; the value for level 0 is commonly 0 or the minimum but need not be.
func WithScores(scores ...int) Option {
	return func(o *cityOptions) {
		o.scores = scores
	}
}
