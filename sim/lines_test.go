package sim_test

import (
	"testing"

	"github.com/plus3/blockfall/sim"
	"github.com/stretchr/testify/assert"
)

func clearPass(b *sim.Board) {
	f := &sim.Frame{DeltaTime: 0.5, Board: b}
	(&sim.ClearStage{}).Step(f)
}

func fillRow(b *sim.Board, y int) {
	for x := 0; x < b.Width(); x++ {
		b.Lock(sim.Cell{X: x, Y: y})
	}
}

func TestClearFullRow(t *testing.T) {
	// Scenario: a full row at y=3 plus a lone cell at (0,5). One pass
	// empties row 3 and settles the lone cell to (0,4).
	b := sim.NewBoard(10, 20)
	fillRow(b, 3)
	b.Lock(sim.Cell{X: 0, Y: 5})

	clearPass(b)

	assert.Equal(t, 1, b.LockedCount())
	assert.True(t, b.IsLocked(sim.Cell{X: 0, Y: 4}))
	assert.False(t, b.IsLocked(sim.Cell{X: 0, Y: 5}))
	for x := 0; x < 10; x++ {
		assert.False(t, b.IsLocked(sim.Cell{X: x, Y: 3}))
	}
	assert.Equal(t, 1, b.Lines())
}

func TestClearLeavesLowerRowsUntouched(t *testing.T) {
	b := sim.NewBoard(10, 20)
	b.Lock(sim.Cell{X: 2, Y: 0}, sim.Cell{X: 7, Y: 1})
	fillRow(b, 2)
	b.Lock(sim.Cell{X: 4, Y: 6})

	clearPass(b)

	assert.True(t, b.IsLocked(sim.Cell{X: 2, Y: 0}))
	assert.True(t, b.IsLocked(sim.Cell{X: 7, Y: 1}))
	assert.True(t, b.IsLocked(sim.Cell{X: 4, Y: 5}))
	assert.Equal(t, 3, b.LockedCount())
}

func TestClearStackedFullRows(t *testing.T) {
	// Two adjacent full rows compound: everything above drops two rows.
	b := sim.NewBoard(10, 20)
	fillRow(b, 2)
	fillRow(b, 3)
	b.Lock(sim.Cell{X: 9, Y: 4})

	clearPass(b)

	assert.Equal(t, 1, b.LockedCount())
	assert.True(t, b.IsLocked(sim.Cell{X: 9, Y: 2}))
	assert.Equal(t, 2, b.Lines())
}

func TestClearNonAdjacentFullRows(t *testing.T) {
	// Full rows at y=1 and y=3 with a partial row between them: the
	// partial row drops one, the top cell drops two.
	b := sim.NewBoard(10, 20)
	fillRow(b, 1)
	b.Lock(sim.Cell{X: 0, Y: 2})
	fillRow(b, 3)
	b.Lock(sim.Cell{X: 5, Y: 4})

	clearPass(b)

	assert.Equal(t, 2, b.LockedCount())
	assert.True(t, b.IsLocked(sim.Cell{X: 0, Y: 1}))
	assert.True(t, b.IsLocked(sim.Cell{X: 5, Y: 2}))
	assert.Equal(t, 2, b.Lines())
}

func TestPartialRowDoesNotClear(t *testing.T) {
	b := sim.NewBoard(10, 20)
	for x := 0; x < 9; x++ {
		b.Lock(sim.Cell{X: x, Y: 0})
	}

	clearPass(b)

	assert.Equal(t, 9, b.LockedCount())
	assert.Equal(t, 0, b.Lines())
}
