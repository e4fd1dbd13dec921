package optimize_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylinegame/skyline/city"
	"github.com/skylinegame/skyline/optimize"
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

//----------------------------------------------------------------------------//
// Trivial Optimizer Tests
//----------------------------------------------------------------------------//

func TestNewTrivial_NilCity(t *testing.T) {
	_, err := optimize.NewTrivial(nil)
	assert.ErrorIs(t, err, optimize.ErrNilCity)
}

func TestTrivial_Produce(t *testing.T) {
	c, _ := mustEngine(t, 3, 3)
	opt, err := optimize.NewTrivial(c)
	require.NoError(t, err)

	l, meta, err := opt.Produce()
	require.NoError(t, err)
	assert.True(t, l.AllZero())
	assert.False(t, meta.Optimal)
	assert.Zero(t, meta.Rounds)
}

//----------------------------------------------------------------------------//
// Plan Tests
//----------------------------------------------------------------------------//

func TestPlan_Validation(t *testing.T) {
	c, e := mustEngine(t, 2, 2)
	opt, err := optimize.NewTrivial(c)
	require.NoError(t, err)

	_, err = optimize.Plan(nil, opt)
	assert.ErrorIs(t, err, optimize.ErrNilEngine)
	_, err = optimize.Plan(e, nil)
	assert.ErrorIs(t, err, optimize.ErrNilOptimizer)
}

func TestPlan_Trivial(t *testing.T) {
	c, e := mustEngine(t, 4, 3, city.WithScores(7, 10, 20, 40))
	opt, err := optimize.NewTrivial(c)
	require.NoError(t, err)

	res, err := optimize.Plan(e, opt)
	require.NoError(t, err)
	assert.Equal(t, 4*3*7, res.Score)
	assert.Empty(t, res.Moves)
	assert.False(t, res.Optimal)
	assert.True(t, res.Layout.AllZero())
}

//----------------------------------------------------------------------------//
// Settings Tests
//----------------------------------------------------------------------------//

func TestNewLazy_Warnings(t *testing.T) {
	_, e := mustEngine(t, 2, 2)

	opt, err := optimize.NewLazy(e, optimize.Settings{
		"max_rounds": 5,
		"print_log":  true,
	})
	require.NoError(t, err)
	require.Len(t, opt.Warnings(), 1)
	assert.Contains(t, opt.Warnings()[0], "print_log")

	opt, err = optimize.NewLazy(e, optimize.Settings{
		"time_limit": time.Minute,
		"max_rounds": 3,
		"verbose":    false,
	})
	require.NoError(t, err)
	assert.Empty(t, opt.Warnings())
}

func TestNewLazy_BadSettings(t *testing.T) {
	_, e := mustEngine(t, 2, 2)

	cases := []struct {
		name     string
		settings optimize.Settings
	}{
		{name: "time limit as string", settings: optimize.Settings{"time_limit": "fast"}},
		{name: "max rounds as string", settings: optimize.Settings{"max_rounds": "ten"}},
		{name: "max rounds fractional", settings: optimize.Settings{"max_rounds": 2.5}},
		{name: "verbose as int", settings: optimize.Settings{"verbose": 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := optimize.NewLazy(e, tc.settings)
			assert.ErrorIs(t, err, optimize.ErrBadSetting)
		})
	}

	// Integral floats pass, matching loosely typed settings sources.
	opt, err := optimize.NewLazy(e, optimize.Settings{"max_rounds": 3.0})
	require.NoError(t, err)
	assert.Empty(t, opt.Warnings())
}

func TestNewLazy_NilEngine(t *testing.T) {
	_, err := optimize.NewLazy(nil, nil)
	assert.ErrorIs(t, err, optimize.ErrNilEngine)
}
