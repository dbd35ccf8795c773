package sim

// MoveStage applies the tick's resolved input direction to the active
// piece. Left, Right and SoftDrop are checked against the collision
// detector and commit atomically; a blocked candidate leaves the piece
// exactly where it was.
type MoveStage struct{}

func (s *MoveStage) Step(f *Frame) {
	b := f.Board
	if b.gameOver || b.active == nil {
		return
	}

	switch f.Input {
	case Left:
		b.tryShift(-1, 0)
	case Right:
		b.tryShift(1, 0)
	case SoftDrop:
		// A held soft drop substitutes for gravity this tick, whether or
		// not the step commits.
		f.softDropped = true
		b.tryShift(0, -1)
	case Rise:
		// Unconditional while the origin is below the top row. No collision
		// check: a non-physical escape hatch, kept for parity.
		if b.active.Origin.Y < b.height-1 {
			b.active.translate(0, 1)
		}
	}
}
