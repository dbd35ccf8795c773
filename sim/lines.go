package sim

// ClearStage removes fully occupied rows and settles everything above
// them. Rows are scanned from the floor up and each full row shifts the
// whole stack above its own height down by one, so stacked full rows
// compound correctly.
type ClearStage struct{}

func (s *ClearStage) Step(f *Frame) {
	b := f.Board
	if b.gameOver {
		return
	}

	for y := 0; y < b.height; {
		if b.rowCount(y) == b.width {
			// Re-scan the same height: the row above has settled into it.
			b.clearRow(y)
		} else {
			y++
		}
	}
}
