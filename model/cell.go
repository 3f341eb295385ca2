package model

const (
	cellGlyphAlive = "█"
	cellGlyphDead  = " "
)

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// CellOf converts a boolean liveness into a Cell
func CellOf(alive bool) Cell {
	if alive {
		return Alive
	}
	return Dead
}

// IsAlive reports whether the cell is Alive
func (c Cell) IsAlive() bool {
	return c == Alive
}

// String returns the single glyph used to draw the cell
func (c Cell) String() string {
	if c == Alive {
		return cellGlyphAlive
	}
	return cellGlyphDead
}
