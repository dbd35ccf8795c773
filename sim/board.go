package sim

import (
	"math"

	"github.com/kamstrup/intmap"
)

// Board owns the full simulation state: the set of locked cells and the
// zero-or-one active piece. Stages mutate it directly; there is no global
// registry and no implicit query system.
type Board struct {
	width, height int

	locked *intmap.Map[uint64, Cell]
	active *Piece

	// lockedAt is the simulation time of the last lock event. Spawning is
	// gated until the respawn delay has elapsed past it.
	lockedAt float64
	lines    int
	gameOver bool
}

// NewBoard creates an empty board of the given dimensions.
func NewBoard(width, height int) *Board {
	b := &Board{
		width:  width,
		height: height,
		locked: intmap.New[uint64, Cell](width * height),
	}
	b.lockedAt = math.Inf(-1)
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of visible rows.
func (b *Board) Height() int { return b.height }

// Active returns the falling piece, or nil while none exists.
func (b *Board) Active() *Piece { return b.active }

// Over reports whether the board reached the terminal full state: a spawn
// whose cells overlapped locked cells was rejected.
func (b *Board) Over() bool { return b.gameOver }

// Lines returns the number of rows cleared since the board was created or
// last reset.
func (b *Board) Lines() int { return b.lines }

// IsLocked reports whether c is part of the settled stack.
func (b *Board) IsLocked(c Cell) bool {
	_, ok := b.locked.Get(cellKey(c))
	return ok
}

// LockedCount returns the number of locked cells.
func (b *Board) LockedCount() int { return b.locked.Len() }

// LockedCells returns the locked cells in unspecified order.
func (b *Board) LockedCells() []Cell {
	cells := make([]Cell, 0, b.locked.Len())
	for _, c := range b.locked.All() {
		cells = append(cells, c)
	}
	return cells
}

// Snapshot returns every occupied cell tagged with its kind. Render sinks
// consume this; any coordinate-to-pixel mapping is theirs.
func (b *Board) Snapshot() []BoardCell {
	n := b.locked.Len()
	if b.active != nil {
		n += len(b.active.Cells)
	}
	cells := make([]BoardCell, 0, n)
	for _, c := range b.locked.All() {
		cells = append(cells, BoardCell{Cell: c, Kind: Locked})
	}
	if b.active != nil {
		for _, c := range b.active.Cells {
			cells = append(cells, BoardCell{Cell: c, Kind: Active})
		}
	}
	return cells
}

// Blocked reports whether any candidate cell is outside the side walls,
// below the floor, or already locked. There is deliberately no upper bound
// on Y: live pieces may briefly occupy rows at or above the visible height;
// only the floor, the walls and the stack block motion.
func (b *Board) Blocked(cells []Cell) bool {
	for _, c := range cells {
		if c.X < 0 || c.X >= b.width || c.Y < 0 {
			return true
		}
		if b.IsLocked(c) {
			return true
		}
	}
	return false
}

// tryShift commits a whole-piece translation when no candidate cell is
// blocked. The move is atomic: a single blocked cell rejects all of it.
func (b *Board) tryShift(dx, dy int) bool {
	if b.active == nil {
		return false
	}
	if b.Blocked(b.active.shifted(dx, dy)) {
		return false
	}
	b.active.translate(dx, dy)
	return true
}

// lockCell adds c to the settled stack. Re-locking an occupied position
// is a no-op, so no two locked cells ever share a position.
func (b *Board) lockCell(c Cell) {
	b.locked.Put(cellKey(c), c)
}

// Lock settles the given cells into the stack. Cells below the floor are
// clamped to y=0; cells still at or above the visible height are dropped,
// so every locked cell satisfies 0 <= y < height.
func (b *Board) Lock(cells ...Cell) {
	for _, c := range cells {
		if c.Y < 0 {
			c.Y = 0
		}
		if c.Y >= b.height {
			continue
		}
		b.lockCell(c)
	}
}

// Spawn installs a new active piece of the given shape at origin. It is a
// no-op returning false while a piece already exists. A spawn whose cells
// overlap the stack is rejected and flips the board into its terminal
// game-over state instead of violating the no-overlap invariant.
func (b *Board) Spawn(shape Shape, origin Cell) bool {
	if b.gameOver || b.active != nil {
		return false
	}
	piece := newPiece(shape, origin)
	for _, c := range piece.Cells {
		if b.IsLocked(c) {
			// The stack has reached the spawn rows: board full.
			b.gameOver = true
			return false
		}
	}
	b.active = piece
	return true
}

// rowCount returns the number of locked cells at height y.
func (b *Board) rowCount(y int) int {
	n := 0
	for _, c := range b.locked.All() {
		if c.Y == y {
			n++
		}
	}
	return n
}

// clearRow removes every locked cell at height y and settles all cells
// above it down by one row. Cells below y are untouched.
func (b *Board) clearRow(y int) {
	cells := b.LockedCells()
	b.locked.Clear()
	for _, c := range cells {
		switch {
		case c.Y == y:
			// cleared
		case c.Y > y:
			b.lockCell(Cell{X: c.X, Y: c.Y - 1})
		default:
			b.lockCell(c)
		}
	}
	b.lines++
}

// Reset returns the board to its initial empty state.
func (b *Board) Reset() {
	b.locked.Clear()
	b.active = nil
	b.lockedAt = math.Inf(-1)
	b.lines = 0
	b.gameOver = false
}
