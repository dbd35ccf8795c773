package sim

// Piece is the single currently falling tetromino. At most one exists per
// board; it is created by the spawn stage and destroyed by the lock stage.
type Piece struct {
	Shape  Shape
	Origin Cell
	// Cells holds the piece's absolute board positions, kept in sync with
	// Origin on every committed move.
	Cells []Cell
}

func newPiece(shape Shape, origin Cell) *Piece {
	p := &Piece{Shape: shape, Origin: origin, Cells: make([]Cell, len(shape.Offsets))}
	for i, off := range shape.Offsets {
		p.Cells[i] = Cell{X: origin.X + off.X, Y: origin.Y + off.Y}
	}
	return p
}

// shifted returns the piece's cells translated by (dx, dy) without moving
// the piece.
func (p *Piece) shifted(dx, dy int) []Cell {
	cells := make([]Cell, len(p.Cells))
	for i, c := range p.Cells {
		cells[i] = Cell{X: c.X + dx, Y: c.Y + dy}
	}
	return cells
}

// translate commits a whole-piece move.
func (p *Piece) translate(dx, dy int) {
	p.Origin.X += dx
	p.Origin.Y += dy
	for i := range p.Cells {
		p.Cells[i].X += dx
		p.Cells[i].Y += dy
	}
}
