package sim

// Frame carries the per-tick context handed to each stage.
type Frame struct {
	// DeltaTime is the fixed timestep covered by this tick, in time units.
	DeltaTime float64
	// Now is the simulation time at the end of this tick.
	Now float64
	// Input is the single direction resolved for this tick. Unrecognized
	// values have already been normalized to None.
	Input Direction
	Board *Board

	// softDropped is set by the move stage when the tick's input was a held
	// soft drop; the fall stage then skips its own step so the piece never
	// descends twice in one tick.
	softDropped bool
}

func newFrame(dt, now float64, input Direction, board *Board) *Frame {
	return &Frame{
		DeltaTime: dt,
		Now:       now,
		Input:     input.Normalize(),
		Board:     board,
	}
}
