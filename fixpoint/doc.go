// Package fixpoint provides a minimal expression algebra over one implicit
// free variable and a bisection solver for self-consistent equations
// x = Eval(x).
//
// 🚀 What is fixpoint?
//
//	A tiny algebra for equations that refer to their own answer:
//	  • Leaves: Constant(c) and SelfConsistent(k) — the free variable itself
//	  • Combinators: Add, Scale, Div, Min — closed, no simplification
//	  • Eval(x): evaluate the whole tree at a candidate answer x
//	  • Bisect: find x* with Eval(x*) = x* by bracketing + binary search
//
// The single free variable is the whole point: an equation built here may
// embed "the value this equation produces" as a leaf, and Bisect closes
// the loop numerically. There is no named-variable system, no symbolic
// simplification and no exact arithmetic — for the heavyweight numeric
// toolbox see katalvlaran/lvlath's matrix package; fixpoint is
// deliberately the opposite.
//
// ⚙️ Usage:
//
//	// x = min(0.5·x + 1, 4)  →  x* = 2
//	e := fixpoint.Min(
//	    fixpoint.Add(fixpoint.SelfConsistent(0.5), fixpoint.Constant(1)),
//	    fixpoint.Constant(4),
//	)
//	x, err := fixpoint.Bisect(e)
//
// Preconditions (documented, not guarded):
//   - Scale/Div distribute into Min branches, valid only for s >= 0
//     (Div additionally requires s != 0).
//   - Bisect assumes g(x) = Eval(x) - x is monotone non-increasing with a
//     single crossing at some x* > 0. Equations violating this yield
//     ErrNoConvergence (when no finite bracket exists) or an unspecified
//     root-adjacent value.
//   - Combinators consume their operands; never reuse an Expr after
//     passing it to Add, Scale, Div or Min.
//
// Complexity:
//
//   - Eval:   O(n) over the n nodes of the tree.
//   - Bisect: O(n · log((hi-lo)/tol)) — one Eval per probe.
//
// See example_test.go for runnable scenarios.
package fixpoint
