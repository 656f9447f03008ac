package race

import (
	"fmt"

	"github.com/katalvlaran/optstop/fixpoint"
)

// Solver computes minimum expected turn counts for a linear race board:
// each turn the player rolls a fair die with `faces` sides, then may keep
// re-rolling to double down on the same face — every continuation succeeds
// with probability 1/faces and otherwise forfeits the whole turn's
// progress. The race ends at position `goal`.
//
// Solved resting positions are memoized for the Solver's lifetime; the
// memo is only ever appended to, because each position's equation depends
// solely on strictly larger positions. A Solver is not safe for concurrent
// use.
type Solver struct {
	faces int
	goal  int
	memo  map[int]float64
}

// NewSolver validates the board configuration and returns a Solver with an
// empty memo.
//
// Errors (sentinel):
//   - ErrBadFaces if faces < 1.
//   - ErrBadGoal if goal < 1.
func NewSolver(faces, goal int) (*Solver, error) {
	if faces < 1 {
		return nil, ErrBadFaces
	}
	if goal < 1 {
		return nil, ErrBadGoal
	}

	return &Solver{faces: faces, goal: goal, memo: make(map[int]float64, goal)}, nil
}

// Faces returns the configured die face count.
func (s *Solver) Faces() int { return s.faces }

// Goal returns the configured goal position.
func (s *Solver) Goal() int { return s.goal }

// ExpectedTurns returns the minimum expected number of turns to finish
// from the resting position pos under the optimal go/stop policy.
// Positions at or past the goal cost zero turns; negative positions are
// rejected with ErrBadPosition.
//
// Complexity: O((goal-pos)·faces) equation nodes on a cold memo; O(1)
// after the position has been solved once.
func (s *Solver) ExpectedTurns(pos int) (float64, error) {
	if pos < 0 {
		return 0, ErrBadPosition
	}

	return s.restingValue(resting(pos))
}

// Strategy returns the diagnostic Decision for the mid-roll state reached
// from resting position pos by rolling face: the expected turns under the
// optimal policy alongside the expected turns when banking immediately.
//
// Errors (sentinel):
//   - ErrBadPosition if pos is outside [0, goal).
//   - ErrBadFace if face is outside [1, faces].
func (s *Solver) Strategy(pos, face int) (Decision, error) {
	if pos < 0 || pos >= s.goal {
		return Decision{}, ErrBadPosition
	}
	if face < 1 || face > s.faces {
		return Decision{}, ErrBadFace
	}

	st := resting(pos).roll(face)
	stop, err := s.restingValue(st.bank())
	if err != nil {
		return Decision{}, err
	}
	eq, err := s.midRollEquation(st)
	if err != nil {
		return Decision{}, err
	}
	total, err := fixpoint.Bisect(eq)
	if err != nil {
		return Decision{}, fmt.Errorf("Strategy(%d, %d): %w", pos, face, err)
	}

	return Decision{Total: total, Stop: stop}, nil
}

// Table returns ExpectedTurns for every position 0..goal-1 in order.
func (s *Solver) Table() ([]float64, error) {
	out := make([]float64, s.goal)
	for pos := 0; pos < s.goal; pos++ {
		v, err := s.ExpectedTurns(pos)
		if err != nil {
			return nil, err
		}
		out[pos] = v
	}

	return out, nil
}

// StrategyTable returns, for every position 0..goal-1, the Decision for
// each die face 1..faces.
func (s *Solver) StrategyTable() ([][]Decision, error) {
	out := make([][]Decision, s.goal)
	for pos := 0; pos < s.goal; pos++ {
		row := make([]Decision, s.faces)
		for face := 1; face <= s.faces; face++ {
			d, err := s.Strategy(pos, face)
			if err != nil {
				return nil, err
			}
			row[face-1] = d
		}
		out[pos] = row
	}

	return out, nil
}

// restingValue solves the resting equation for st.pos:
//
//	value = 1 + Σ_{face=1..faces} midRollEquation(roll(face)) / faces
//
// The equation is closed with Bisect even though its own top-level
// free-variable coefficient is zero — the self-reference lives inside the
// mid-roll children, where a failed continuation costs "one turn plus the
// value being solved for".
func (s *Solver) restingValue(st state) (float64, error) {
	if st.pos >= s.goal {
		return 0, nil
	}
	if v, ok := s.memo[st.pos]; ok {
		return v, nil
	}

	// One turn is about to be spent regardless of the outcome.
	eq := fixpoint.Constant(1)
	faces := float64(s.faces)
	for face := 1; face <= s.faces; face++ {
		branch, err := s.midRollEquation(st.roll(face))
		if err != nil {
			return 0, err
		}
		eq = fixpoint.Add(eq, fixpoint.Div(branch, faces))
	}

	v, err := fixpoint.Bisect(eq)
	if err != nil {
		return 0, fmt.Errorf("position %d: %w", st.pos, err)
	}
	s.memo[st.pos] = v

	return v, nil
}

// midRollEquation builds the bank-or-continue equation for a mid-roll
// state. Landing at or past the goal ends the race at no further cost.
// Otherwise the player picks the cheaper of:
//
//   - banking: the already-solved resting value at the landing position,
//     a plain constant;
//   - continuing: with probability 1/faces the same face advances the
//     player again (recursively, strictly closer to the goal), and with
//     probability (faces-1)/faces the turn is forfeited — one turn spent
//     plus a restart from the turn's origin, which is exactly the value
//     the enclosing equation solves for (SelfConsistent).
func (s *Solver) midRollEquation(st state) (fixpoint.Expr, error) {
	if st.pos >= s.goal {
		return fixpoint.Constant(0), nil
	}

	stop, err := s.restingValue(st.bank())
	if err != nil {
		return nil, err
	}
	success, err := s.midRollEquation(st.advance())
	if err != nil {
		return nil, err
	}

	faces := float64(s.faces)
	failure := fixpoint.Add(fixpoint.SelfConsistent(1), fixpoint.Constant(1))
	goOn := fixpoint.Add(
		fixpoint.Div(success, faces),
		fixpoint.Scale(failure, (faces-1)/faces),
	)

	return fixpoint.Min(goOn, fixpoint.Constant(stop)), nil
}
