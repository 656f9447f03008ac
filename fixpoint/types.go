// Package fixpoint defines options and sentinel errors for the
// self-consistent expression solver.
package fixpoint

import "errors"

const (
	// DefaultTolerance is the absolute width of the final bisection
	// bracket: Bisect stops once hi-lo <= DefaultTolerance.
	DefaultTolerance = 1e-12

	// defaultLo and defaultHi seed the bracketing phase. They are
	// deliberately modest: Bisect widens (or narrows) them on its own
	// until the fixed point is enclosed.
	defaultLo = 0.5
	defaultHi = 1.0

	// maxBracketSteps bounds each bracketing loop. The downward phase
	// naturally terminates once lo underflows to zero (~1075 halvings
	// from 0.5), so the cap only fires for equations that violate the
	// monotone single-crossing precondition.
	maxBracketSteps = 2048
)

// Sentinel errors returned by Bisect.
var (
	// ErrBadTolerance indicates a non-positive tolerance option.
	ErrBadTolerance = errors.New("fixpoint: tolerance must be positive")

	// ErrBadBracket indicates an initial bracket with lo <= 0 or hi < lo.
	ErrBadBracket = errors.New("fixpoint: bracket must satisfy 0 < lo <= hi")

	// ErrNoConvergence indicates that no finite bracket enclosing a fixed
	// point could be established. This is the signature of an equation
	// whose g(x) = Eval(x) - x is not monotone non-increasing with a
	// single positive crossing, e.g. Eval(x) = x + 1.
	ErrNoConvergence = errors.New("fixpoint: failed to bracket a fixed point")
)

// Option customizes a single Bisect call.
type Option func(*options)

// options carries the resolved Bisect configuration.
type options struct {
	tol float64 // final bracket width
	lo  float64 // initial lower bracket seed
	hi  float64 // initial upper bracket seed
}

// defaultOptions returns the configuration used when no Option is given.
func defaultOptions() options {
	return options{tol: DefaultTolerance, lo: defaultLo, hi: defaultHi}
}

// WithTolerance sets the absolute convergence tolerance (must be > 0).
func WithTolerance(eps float64) Option {
	return func(o *options) { o.tol = eps }
}

// WithBracket sets the initial bracket seeds. The seeds need not enclose
// the fixed point; Bisect still halves lo and doubles hi as required.
// Must satisfy 0 < lo <= hi. The solved value is independent of the seeds
// for any well-posed equation, which makes this the natural regression
// hook for bracket-independence tests.
func WithBracket(lo, hi float64) Option {
	return func(o *options) {
		o.lo = lo
		o.hi = hi
	}
}
