package sim

// Stage is one step of the fixed-tick rule pipeline. Stages run in
// registration order; each observes the board state committed by the
// stages before it in the same tick.
type Stage interface {
	Step(f *Frame)
}

// InputSource yields at most one direction per fixed tick. Pipeline.Run
// polls it once per tick; anything outside the recognized set is treated
// as None.
type InputSource interface {
	Poll() Direction
}
