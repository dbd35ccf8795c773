package sim

// Buttons is the raw state of the four logical inputs for one sampled
// frame.
type Buttons struct {
	Left, Right, Down, Up bool
}

// Sampler turns raw button state into at most one direction per frame.
// Left, Right and Up are edge triggered and fire once on press; Down is
// level triggered and fires on every frame while held. When several
// buttons fire in the same frame the priority is Left, Right, Down, Up.
type Sampler struct {
	prev Buttons
}

// Sample resolves the direction for the current frame and records the
// button state for the next edge comparison.
func (s *Sampler) Sample(cur Buttons) Direction {
	prev := s.prev
	s.prev = cur

	switch {
	case cur.Left && !prev.Left:
		return Left
	case cur.Right && !prev.Right:
		return Right
	case cur.Down:
		return SoftDrop
	case cur.Up && !prev.Up:
		return Rise
	}
	return None
}

// Reset forgets the previously sampled button state.
func (s *Sampler) Reset() {
	s.prev = Buttons{}
}
