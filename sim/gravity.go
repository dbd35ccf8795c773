package sim

// FallStage is the automatic one-row descent, once per fixed tick. It runs
// after the move stage so it sees the post-movement position, and it skips
// its step entirely when a held soft drop already stood in for gravity
// this tick.
type FallStage struct{}

func (s *FallStage) Step(f *Frame) {
	b := f.Board
	if b.gameOver || b.active == nil {
		return
	}
	if f.softDropped {
		return
	}
	b.tryShift(0, -1)
}
