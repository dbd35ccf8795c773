package sim

// Direction is the single input command resolved for a tick.
type Direction int

const (
	None Direction = iota
	Left
	Right
	// SoftDrop is one extra step toward the floor, produced while the Down
	// button is held.
	SoftDrop
	// Rise moves the piece one row up while below the top row. It is mapped
	// from the Up button and has no collision check.
	Rise
)

// Normalize maps any value outside the five recognized directions to None.
func (d Direction) Normalize() Direction {
	switch d {
	case Left, Right, SoftDrop, Rise:
		return d
	}
	return None
}

func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Left:
		return "left"
	case Right:
		return "right"
	case SoftDrop:
		return "softdrop"
	case Rise:
		return "rise"
	}
	return "none"
}
