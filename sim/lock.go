package sim

// LockStage converts the active piece into locked cells once it rests on
// the floor or on the stack. Locking is atomic over the whole piece; a
// partially locked piece never exists. The lock event also arms the
// respawn clock.
type LockStage struct{}

func (s *LockStage) Step(f *Frame) {
	b := f.Board
	if b.gameOver || b.active == nil {
		return
	}
	if !shouldLock(b) {
		return
	}

	b.Lock(b.active.Cells...)
	b.active = nil
	b.lockedAt = f.Now
}

// shouldLock reports whether the piece has come to rest: any cell sits on
// the floor, or has a locked cell directly beneath it.
func shouldLock(b *Board) bool {
	for _, c := range b.active.Cells {
		if c.Y <= 0 {
			return true
		}
		if b.IsLocked(Cell{X: c.X, Y: c.Y - 1}) {
			return true
		}
	}
	return false
}
