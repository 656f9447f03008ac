// Package race defines the solver configuration surface and sentinel
// errors for the dice race expected-turns solver.
package race

import "errors"

// Sentinel errors returned by NewSolver and the query methods.
var (
	// ErrBadFaces indicates a non-positive die face count.
	ErrBadFaces = errors.New("race: dice faces must be positive")

	// ErrBadGoal indicates a non-positive goal position.
	ErrBadGoal = errors.New("race: goal must be positive")

	// ErrBadPosition indicates a board position outside [0, goal).
	ErrBadPosition = errors.New("race: position out of range")

	// ErrBadFace indicates a die face outside [1, faces].
	ErrBadFace = errors.New("race: die face out of range")
)

// Decision is the per-(position, die-face) diagnostic pair: the expected
// number of turns under the optimal go/stop policy versus the expected
// number when banking immediately.
type Decision struct {
	// Total is the expected turns under the optimal continue/stop policy
	// after this die face has been rolled.
	Total float64

	// Stop is the expected turns when the player banks right away and
	// plays on from the landing position.
	Stop float64
}

// Continue reports whether the optimal policy strictly prefers rolling on
// over banking at this point.
func (d Decision) Continue() bool {
	return d.Total < d.Stop
}
