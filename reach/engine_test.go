package reach_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylinegame/skyline/city"
	"github.com/skylinegame/skyline/layout"
	"github.com/skylinegame/skyline/reach"
)

// mustEngine builds a city of the given shape and an engine bound to it.
func mustEngine(t *testing.T, rows, cols int, opts ...city.Option) (*city.City, *reach.Engine) {
	t.Helper()
	c, err := city.New(rows, cols, opts...)
	require.NoError(t, err)
	e, err := reach.New(c)
	require.NoError(t, err)

	return c, e
}

// mustLayout wraps layout.FromLevels with a test failure on error.
func mustLayout(t *testing.T, c *city.City, levels [][]int) *layout.Layout {
	t.Helper()
	l, err := layout.FromLevels(c, levels)
	require.NoError(t, err)

	return l
}

// replay applies moves to the all-zero layout with verification and returns
// the resulting layout, failing the test on any illegal placement.
func replay(t *testing.T, c *city.City, moves []reach.Move) *layout.Layout {
	t.Helper()
	l, err := layout.New(c)
	require.NoError(t, err)
	for i, m := range moves {
		require.NoError(t, l.Place(m.Row, m.Col, m.Level, true), "move %d: %s", i, m)
	}

	return l
}

//----------------------------------------------------------------------------//
// Construction & Validation Tests
//----------------------------------------------------------------------------//

func TestNew_NilCity(t *testing.T) {
	_, err := reach.New(nil)
	assert.ErrorIs(t, err, reach.ErrNilCity)
}

func TestValidation(t *testing.T) {
	_, e := mustEngine(t, 2, 2)
	other, err := city.New(2, 2)
	require.NoError(t, err)
	foreign, err := layout.New(other)
	require.NoError(t, err)

	_, err = e.MovesFor(nil)
	assert.ErrorIs(t, err, reach.ErrNilLayout)
	_, err = e.MovesFor(foreign)
	assert.ErrorIs(t, err, reach.ErrGridMismatch)
	_, err = e.FindConflict(nil)
	assert.ErrorIs(t, err, reach.ErrNilLayout)
	_, err = e.Reduce(foreign)
	assert.ErrorIs(t, err, reach.ErrGridMismatch)
}

//----------------------------------------------------------------------------//
// Feasible Target Tests
//----------------------------------------------------------------------------//

func TestMovesFor_AllZeroTarget(t *testing.T) {
	c, e := mustEngine(t, 5, 5)
	target, err := layout.New(c)
	require.NoError(t, err)

	moves, err := e.MovesFor(target)
	require.NoError(t, err)
	assert.Empty(t, moves)
}

func TestMovesFor_SingleLevelOne(t *testing.T) {
	c, e := mustEngine(t, 3, 3)
	target := mustLayout(t, c, [][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})

	moves, err := e.MovesFor(target)
	require.NoError(t, err)
	assert.Equal(t, []reach.Move{{Row: 1, Col: 1, Level: 1}}, moves)
}

func TestMovesFor_PromotionOrder(t *testing.T) {
	c, e := mustEngine(t, 2, 2)
	target := mustLayout(t, c, [][]int{{2, 1}, {0, 0}})

	// The level-2 tower needs its level-1 neighbor first.
	moves, err := e.MovesFor(target)
	require.NoError(t, err)
	assert.Equal(t, []reach.Move{
		{Row: 0, Col: 1, Level: 1},
		{Row: 0, Col: 0, Level: 2},
	}, moves)
}

// TestMovesFor_ReplayLaw checks the engine contract on feasible targets: the
// returned sequence, applied with full verification to the empty grid, lands
// exactly on the target.
func TestMovesFor_ReplayLaw(t *testing.T) {
	cases := []struct {
		name   string
		rows   int
		cols   int
		levels [][]int
	}{
		{
			name: "lone top tower via nested promotions",
			rows: 3, cols: 3,
			levels: [][]int{
				{0, 3, 0},
				{0, 0, 0},
				{0, 0, 0},
			},
		},
		{
			name: "dense mixed grid",
			rows: 5, cols: 5,
			levels: [][]int{
				{2, 3, 2, 3, 0},
				{3, 1, 3, 2, 3},
				{2, 3, 3, 3, 1},
				{3, 2, 3, 1, 3},
				{1, 3, 1, 3, 2},
			},
		},
		{
			name: "center tower with shared support",
			rows: 3, cols: 3,
			levels: [][]int{
				{0, 1, 0},
				{1, 3, 2},
				{0, 0, 0},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, e := mustEngine(t, tc.rows, tc.cols)
			target := mustLayout(t, c, tc.levels)

			moves, err := e.MovesFor(target)
			require.NoError(t, err)
			require.NotEmpty(t, moves)

			got := replay(t, c, moves)
			ord, err := got.Compare(target)
			require.NoError(t, err)
			assert.Equal(t, layout.Equal, ord)

			// MovesFor never mutates its argument.
			ord, err = target.Compare(mustLayout(t, c, tc.levels))
			require.NoError(t, err)
			assert.Equal(t, layout.Equal, ord)
		})
	}
}

// TestMovesFor_RingNeedsSearch pins the case the fixpoint sweep alone cannot
// decide: a ring of top-level towers around an empty center. No single tower
// is safely reducible, yet a speculative level-2 promotion of a corner opens
// the whole ring up.
func TestMovesFor_RingNeedsSearch(t *testing.T) {
	ring := [][]int{
		{0, 3, 0},
		{3, 0, 3},
		{0, 3, 0},
	}
	c, e := mustEngine(t, 3, 3)

	// The sweep on its own gets stuck immediately.
	work := mustLayout(t, c, ring)
	moves, err := e.Reduce(work)
	require.NoError(t, err)
	assert.Empty(t, moves)
	ord, err := work.Compare(mustLayout(t, c, ring))
	require.NoError(t, err)
	assert.Equal(t, layout.Equal, ord)

	// The full engine finds a construction.
	moves, err = e.MovesFor(mustLayout(t, c, ring))
	require.NoError(t, err)
	require.NotEmpty(t, moves)
	got := replay(t, c, moves)
	ord, err = got.Compare(mustLayout(t, c, ring))
	require.NoError(t, err)
	assert.Equal(t, layout.Equal, ord)

	// And the oracle agrees there is no obstruction.
	residual, err := e.FindConflict(mustLayout(t, c, ring))
	require.NoError(t, err)
	assert.True(t, residual.AllZero())
}

//----------------------------------------------------------------------------//
// Infeasible Target Tests
//----------------------------------------------------------------------------//

func TestMovesFor_CornerTopTowerInfeasible(t *testing.T) {
	c, e := mustEngine(t, 2, 2)

	// A corner has two neighbors; a level-3 tower needs three distinct lower
	// levels next to it at construction time.
	target := mustLayout(t, c, [][]int{{3, 0}, {0, 0}})

	_, err := e.MovesFor(target)
	require.Error(t, err)
	assert.ErrorIs(t, err, reach.ErrInfeasible)

	var infErr *reach.InfeasibleError
	require.ErrorAs(t, err, &infErr)
	require.NotNil(t, infErr.Conflict)
	assert.Equal(t, 3, infErr.Conflict.At(0, 0))
	assert.False(t, infErr.Conflict.AllZero())
}

func TestMovesFor_AllOnesTwoLevelsInfeasible(t *testing.T) {
	c, e := mustEngine(t, 2, 2, city.WithLevels(2))
	target := mustLayout(t, c, [][]int{{1, 1}, {1, 1}})

	// Every cell is occupied, so the last tower had no level-0 neighbor.
	_, err := e.MovesFor(target)
	assert.ErrorIs(t, err, reach.ErrInfeasible)

	var infErr *reach.InfeasibleError
	require.ErrorAs(t, err, &infErr)
	ord, cmpErr := infErr.Conflict.Compare(target)
	require.NoError(t, cmpErr)
	assert.Equal(t, layout.Equal, ord)
}

// TestFindConflict_Idempotent diagnoses the same target twice and expects the
// identical conflict both times; the engine keeps no state between calls.
func TestFindConflict_Idempotent(t *testing.T) {
	c, e := mustEngine(t, 2, 2)
	target := mustLayout(t, c, [][]int{{3, 0}, {0, 0}})

	first, err := e.FindConflict(target)
	require.NoError(t, err)
	require.False(t, first.AllZero())

	second, err := e.FindConflict(target)
	require.NoError(t, err)
	ord, err := first.Compare(second)
	require.NoError(t, err)
	assert.Equal(t, layout.Equal, ord)
}

// TestConflict_LocallyMinimal verifies the minimality promise: zeroing any
// single nonzero cell of a reported conflict lets the plain sweep collapse
// everything that remains.
func TestConflict_LocallyMinimal(t *testing.T) {
	c, e := mustEngine(t, 2, 2, city.WithLevels(2))
	target := mustLayout(t, c, [][]int{{1, 1}, {1, 1}})

	conflict, err := e.FindConflict(target)
	require.NoError(t, err)
	require.False(t, conflict.AllZero())

	for row := 0; row < c.Rows(); row++ {
		for col := 0; col < c.Cols(); col++ {
			if conflict.At(row, col) == 0 {
				continue
			}
			relaxed := conflict.Clone()
			relaxed.Set(row, col, 0)
			_, err := e.Reduce(relaxed)
			require.NoError(t, err)
			assert.True(t, relaxed.AllZero(), "conflict not minimal at (%d,%d)", row, col)
		}
	}
}

//----------------------------------------------------------------------------//
// Sweep Tests
//----------------------------------------------------------------------------//

func TestReduce_InPlace(t *testing.T) {
	c, e := mustEngine(t, 2, 2)
	work := mustLayout(t, c, [][]int{{2, 1}, {0, 0}})

	moves, err := e.Reduce(work)
	require.NoError(t, err)
	assert.True(t, work.AllZero())
	assert.Len(t, moves, 2)

	got := replay(t, c, moves)
	ord, err := got.Compare(mustLayout(t, c, [][]int{{2, 1}, {0, 0}}))
	require.NoError(t, err)
	assert.Equal(t, layout.Equal, ord)
}
