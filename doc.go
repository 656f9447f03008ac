// Package optstop computes optimal-stopping values for a turn-based dice
// race: from every board position, the minimum expected number of turns to
// reach the finish line under the best bank-or-continue policy.
//
// 🚀 What is optstop?
//
//	A small, focused pair of packages:
//		• fixpoint/ — an expression algebra over one implicit free variable
//		  (affine terms, nested minima) with a bisection fixed-point solver
//		• race/     — the board model: die enumeration, bank-or-continue
//		  equations built by mutual recursion, and a permanent memo of
//		  solved positions
//
// ✨ Why a library and not a script?
//
//   - The hard part is genuinely reusable: equations whose right-hand
//     side contains the very value being solved for show up in any
//     press-your-luck analysis, and fixpoint expresses them without
//     unbounded expansion.
//   - Validation-first APIs with sentinel errors — malformed boards and
//     ill-posed equations fail loudly instead of spinning.
//   - Pure Go core, deterministic, single-threaded.
//
// Quick taste:
//
//	s, err := race.NewSolver(6, 20)       // d6, finish line at 20
//	v, err := s.ExpectedTurns(0)          // expected turns from the start
//	d, err := s.Strategy(0, 6)            // first roll was a 6: press on?
//
// The cmd/optstop binary wraps this into the classic two-table printout:
// per-position expected turns, then per-position-per-face (total, stop)
// decision pairs. Configuration comes from OPTSTOP_FACES / OPTSTOP_GOAL
// or the -faces / -goal flags.
package optstop
