package fixpoint_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/optstop/fixpoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// averagedMin builds the reference fixture from three capped lines:
// ( min(0.5x+0.5, 2) + min(0.4x+1, 3) + min(0.6x+2, 1.5) ) / 3.
func averagedMin() fixpoint.Expr {
	f := fixpoint.Min(linear(0.5, 0.5), fixpoint.Constant(2.0))
	g := fixpoint.Min(linear(0.4, 1.0), fixpoint.Constant(3.0))
	h := fixpoint.Min(linear(0.6, 2.0), fixpoint.Constant(1.5))

	return fixpoint.Div(fixpoint.Add(fixpoint.Add(f, g), h), 3.0)
}

// TestBisect_AveragedMinFixture checks the fixed-point residual on the
// reference three-branch fixture: |Eval(x*) - x*| < 1e-6.
func TestBisect_AveragedMinFixture(t *testing.T) {
	e := averagedMin()

	x, err := fixpoint.Bisect(e)
	require.NoError(t, err, "well-posed fixture must converge")
	assert.Less(t, math.Abs(e.Eval(x)-x), 1e-6, "residual at the fixed point must vanish")
}

// TestBisect_KnownFixedPoint solves x = min(0.5x + 1, 4), whose fixed
// point is exactly 2 (the affine branch is still active there).
func TestBisect_KnownFixedPoint(t *testing.T) {
	e := fixpoint.Min(linear(0.5, 1.0), fixpoint.Constant(4.0))

	x, err := fixpoint.Bisect(e)
	require.NoError(t, err, "capped line must converge")
	assert.InDelta(t, 2.0, x, 1e-9, "fixed point of x = min(0.5x+1, 4) is 2")
}

// TestBisect_ZeroSlopeEquation covers the degenerate case the Position
// Solver relies on: a constant equation's fixed point is the constant.
func TestBisect_ZeroSlopeEquation(t *testing.T) {
	x, err := fixpoint.Bisect(fixpoint.Constant(3.456))
	require.NoError(t, err, "constant equation must converge")
	assert.InDelta(t, 3.456, x, 1e-9, "fixed point of x = c is c")
}

// TestBisect_BracketIndependence re-derives the fixture solution from
// deliberately skewed bracket seeds; a well-posed equation must yield the
// same fixed point regardless of where bracketing starts.
func TestBisect_BracketIndependence(t *testing.T) {
	base, err := fixpoint.Bisect(averagedMin())
	require.NoError(t, err, "default seeds must converge")

	seeds := [][2]float64{{0.125, 0.25}, {0.001, 0.002}, {3.0, 50.0}, {0.25, 1024.0}}
	for _, seed := range seeds {
		x, err := fixpoint.Bisect(averagedMin(), fixpoint.WithBracket(seed[0], seed[1]))
		require.NoError(t, err, "seeds %v must converge", seed)
		assert.InDelta(t, base, x, 1e-9, "fixed point must not depend on bracket seeds %v", seed)
	}
}

// TestBisect_ToleranceOption verifies a coarse tolerance still lands near
// the fixed point (within the widened bracket).
func TestBisect_ToleranceOption(t *testing.T) {
	e := fixpoint.Min(linear(0.5, 1.0), fixpoint.Constant(4.0))

	x, err := fixpoint.Bisect(e, fixpoint.WithTolerance(1e-3))
	require.NoError(t, err, "coarse tolerance must converge")
	assert.InDelta(t, 2.0, x, 1e-2, "coarse solve must stay near the true fixed point")
}

// TestBisect_BadTolerance ensures non-positive tolerances are rejected.
func TestBisect_BadTolerance(t *testing.T) {
	_, err := fixpoint.Bisect(fixpoint.Constant(1.0), fixpoint.WithTolerance(0))
	assert.ErrorIs(t, err, fixpoint.ErrBadTolerance, "zero tolerance must error")

	_, err = fixpoint.Bisect(fixpoint.Constant(1.0), fixpoint.WithTolerance(-1e-6))
	assert.ErrorIs(t, err, fixpoint.ErrBadTolerance, "negative tolerance must error")
}

// TestBisect_BadBracket ensures malformed bracket seeds are rejected.
func TestBisect_BadBracket(t *testing.T) {
	_, err := fixpoint.Bisect(fixpoint.Constant(1.0), fixpoint.WithBracket(0, 1))
	assert.ErrorIs(t, err, fixpoint.ErrBadBracket, "lo = 0 must error")

	_, err = fixpoint.Bisect(fixpoint.Constant(1.0), fixpoint.WithBracket(-1, 1))
	assert.ErrorIs(t, err, fixpoint.ErrBadBracket, "negative lo must error")

	_, err = fixpoint.Bisect(fixpoint.Constant(1.0), fixpoint.WithBracket(2, 1))
	assert.ErrorIs(t, err, fixpoint.ErrBadBracket, "inverted bracket must error")
}

// TestBisect_NoConvergence feeds an equation that never crosses the
// identity line (x + 1); the upward bracket saturates and Bisect must
// report ErrNoConvergence instead of spinning or returning +Inf.
func TestBisect_NoConvergence(t *testing.T) {
	_, err := fixpoint.Bisect(linear(1.0, 1.0))
	assert.ErrorIs(t, err, fixpoint.ErrNoConvergence, "x = x + 1 has no fixed point")
}
