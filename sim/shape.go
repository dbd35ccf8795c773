package sim

import "math/rand/v2"

// Shape is a named, immutable list of cell offsets relative to a piece
// origin.
type Shape struct {
	Name    string
	Offsets []Cell
}

// Catalog is an ordered, read-only table of shapes. Random selection is
// always uniform over the live table size, never a hardcoded count.
type Catalog struct {
	shapes []Shape
}

// NewCatalog builds a catalog from the given shapes. The slice is copied so
// the catalog stays stable for the lifetime of a run.
func NewCatalog(shapes ...Shape) Catalog {
	c := Catalog{shapes: make([]Shape, len(shapes))}
	copy(c.shapes, shapes)
	return c
}

// DefaultCatalog returns the standard shape table: a single block plus the
// seven classic tetrominoes.
func DefaultCatalog() Catalog {
	return NewCatalog(
		Shape{Name: "Dot", Offsets: []Cell{{0, 0}}},
		Shape{Name: "O", Offsets: []Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
		Shape{Name: "S", Offsets: []Cell{{-1, 0}, {0, 0}, {0, 1}, {1, 1}}},
		Shape{Name: "Z", Offsets: []Cell{{1, 0}, {0, 0}, {0, 1}, {-1, 1}}},
		Shape{Name: "J", Offsets: []Cell{{-1, 0}, {0, 0}, {1, 0}, {-1, 1}}},
		Shape{Name: "L", Offsets: []Cell{{-1, 0}, {0, 0}, {1, 0}, {1, 1}}},
		Shape{Name: "T", Offsets: []Cell{{-1, 0}, {0, 0}, {1, 0}, {0, 1}}},
		Shape{Name: "I", Offsets: []Cell{{-1, 0}, {0, 0}, {1, 0}, {2, 0}}},
	)
}

// Size returns the number of shapes in the catalog.
func (c Catalog) Size() int {
	return len(c.shapes)
}

// At returns the shape at index i. It is total over [0, Size()).
func (c Catalog) At(i int) Shape {
	return c.shapes[i]
}

// Pick returns a uniformly random shape from the catalog.
func (c Catalog) Pick(rng *rand.Rand) Shape {
	return c.shapes[rng.IntN(len(c.shapes))]
}
