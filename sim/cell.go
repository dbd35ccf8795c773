package sim

// Cell is an integer board coordinate. X grows to the right from the left
// wall, Y grows upward from the floor at Y=0. Cells are value types and
// compare by coordinates, never by identity.
type Cell struct {
	X, Y int
}

// CellKind tags a snapshot cell as part of the falling piece or the
// settled stack.
type CellKind int

const (
	Active CellKind = iota
	Locked
)

func (k CellKind) String() string {
	switch k {
	case Active:
		return "active"
	case Locked:
		return "locked"
	}
	return "unknown"
}

// BoardCell is one occupied cell in a render snapshot.
type BoardCell struct {
	Cell
	Kind CellKind
}

// cellKey packs a cell into a single integer for the locked-cell map.
// Negative coordinates stay distinct through the uint32 conversion.
func cellKey(c Cell) uint64 {
	return uint64(uint32(c.Y))<<32 | uint64(uint32(c.X))
}
