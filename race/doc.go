// Package race solves the expected-turns optimal-stopping problem for a
// turn-based dice race on a linear board.
//
// 🚀 The game:
//
//	Each turn the player rolls a fair die with F faces and moves that many
//	steps. They may then keep pressing their luck: every continuation
//	re-applies the same face with probability 1/F and otherwise forfeits
//	the entire turn's progress, sending the player back to where the turn
//	began. The race ends at the goal position.
//
// The question answered here: from every position below the goal, what is
// the minimum expected number of turns to finish, and — per first die
// face — should the player bank or roll on?
//
// ✨ Why a fixed point?
//
//	The cost of a failed continuation is "one turn plus the expected cost
//	of starting over from this very position" — the quantity the equation
//	is computing. Each position therefore yields a self-referential
//	equation; package fixpoint represents it with a single implicit free
//	variable and closes it by bisection, while dynamic programming over
//	positions (solved values depend only on strictly larger positions)
//	keeps the recursion finite and the memo permanent.
//
// ⚙️ Usage:
//
//	s, err := race.NewSolver(6, 20)   // d6, finish line at 20
//	if err != nil { ... }
//	v, _ := s.ExpectedTurns(0)        // expected turns from the start
//	d, _ := s.Strategy(0, 6)          // rolled a 6: bank or continue?
//	if d.Continue() { ... }
//
// Complexity:
//
//   - First solve of position p: the mid-roll recursion fans out once per
//     face and chains toward the goal, O((goal-p)·faces) equation nodes
//     per position, memoized thereafter.
//   - Full Table(): O(goal²·faces) equation nodes in the worst case.
//
// A Solver is single-threaded by design: the memo is the only mutable
// state and is owned exclusively by the solving recursion.
package race
