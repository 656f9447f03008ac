package fixpoint

import "math"

// Bisect finds x* such that e.Eval(x*) = x* within the configured absolute
// tolerance (DefaultTolerance unless overridden via WithTolerance).
//
// Precondition: g(x) = e.Eval(x) - x must be monotone non-increasing and
// cross zero exactly once for x > 0. Under that assumption the three
// stages below maintain the invariant Eval(lo) >= lo and Eval(hi) <= hi.
//
// Blueprint:
//
//	Stage 1 (Options):   resolve and validate tolerance and bracket seeds.
//	Stage 2 (Bracket):   halve lo while Eval(lo) < lo; double hi while
//	                     hi < Eval(hi). Both loops are step-capped, and a
//	                     bracket that escapes to +Inf is rejected, so a
//	                     malformed equation surfaces as ErrNoConvergence
//	                     instead of spinning.
//	Stage 3 (Search):    classic bisection on the sign of Eval(mid) - mid
//	                     until the bracket is narrower than the tolerance
//	                     or floating-point resolution, then return hi.
//
// Returns the upper bracket end, matching the invariant Eval(hi) <= hi:
// the result never undershoots the fixed point by more than the final
// bracket width.
//
// Complexity: O(log((hi-lo)/tol)) evaluations of e.
func Bisect(e Expr, opts ...Option) (float64, error) {
	// Stage 1: resolve options, fail fast on invalid configuration.
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.tol <= 0 {
		return 0, ErrBadTolerance
	}
	if cfg.lo <= 0 || cfg.hi < cfg.lo {
		return 0, ErrBadBracket
	}

	// Stage 2a: walk lo downward until Eval(lo) >= lo. For well-posed
	// equations with a fixed point at or above zero this terminates
	// (at the latest when lo underflows to 0); the cap catches the rest.
	lo := cfg.lo
	for steps := 0; e.Eval(lo) < lo; steps++ {
		if steps >= maxBracketSteps {
			return 0, ErrNoConvergence
		}
		lo /= 2
	}

	// Stage 2b: walk hi upward until Eval(hi) <= hi. An equation that
	// stays above the identity line (e.g. Eval(x) = x + 1) saturates hi
	// at +Inf, which is rejected below.
	hi := cfg.hi
	for steps := 0; hi < e.Eval(hi); steps++ {
		if steps >= maxBracketSteps {
			return 0, ErrNoConvergence
		}
		hi *= 2
	}
	if math.IsInf(hi, 1) {
		return 0, ErrNoConvergence
	}

	// Stage 3: binary search. The midpoint test preserves the bracket
	// invariant; the mid <= lo || mid >= hi guard stops once the bracket
	// has collapsed to adjacent floats, whatever the tolerance.
	for hi-lo > cfg.tol {
		mid := (hi + lo) / 2
		if mid <= lo || mid >= hi {
			break
		}
		if e.Eval(mid) < mid {
			hi = mid
		} else {
			lo = mid
		}
	}

	return hi, nil
}
