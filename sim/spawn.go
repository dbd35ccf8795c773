package sim

import "math/rand/v2"

// SpawnStage introduces a new active piece once no piece exists and the
// respawn delay has elapsed since the last lock. The delay keeps a freshly
// locked piece from being replaced in the same instant.
type SpawnStage struct {
	catalog Catalog
	origin  Cell
	delay   float64
	rng     *rand.Rand
}

// NewSpawnStage creates a spawn stage selecting uniformly from catalog,
// placing pieces at origin after delay time units past each lock.
func NewSpawnStage(catalog Catalog, origin Cell, delay float64, rng *rand.Rand) *SpawnStage {
	return &SpawnStage{catalog: catalog, origin: origin, delay: delay, rng: rng}
}

func (s *SpawnStage) Step(f *Frame) {
	b := f.Board
	if b.gameOver || b.active != nil {
		return
	}
	if f.Now < b.lockedAt+s.delay {
		return
	}
	b.Spawn(s.catalog.Pick(s.rng), s.origin)
}
