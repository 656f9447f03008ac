package race

// state is a transient snapshot of one player's turn.
//
// Two flavors exist, told apart by midRoll:
//
//   - resting: the player stands at pos (== origin), about to roll.
//     face is meaningless here.
//   - mid-roll: a die showing face has just been rolled; the player stands
//     at pos and must choose between banking and rolling on.
//
// origin is the position the current turn sequence started from: a failed
// continuation forfeits all progress back to it.
type state struct {
	origin  int
	pos     int
	face    int
	midRoll bool
}

// resting returns the about-to-roll state at pos.
func resting(pos int) state {
	return state{origin: pos, pos: pos}
}

// roll enters the mid-roll state after the die came up face: the player
// now stands face steps past the turn's origin.
func (s state) roll(face int) state {
	return state{origin: s.origin, pos: s.origin + face, face: face, midRoll: true}
}

// advance models one further successful continuation: the same pending
// face moves the player face steps further, still mid-roll ("double or
// nothing").
func (s state) advance() state {
	return state{origin: s.origin, pos: s.pos + s.face, face: s.face, midRoll: true}
}

// bank locks in the current progress: the landing position becomes the
// origin of a fresh resting state.
func (s state) bank() state {
	return resting(s.pos)
}
