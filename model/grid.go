package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/termlife/rules"
)

// ErrInvalidDimensions is returned when a grid is requested with a non-positive width or height
var ErrInvalidDimensions = errors.New("grid dimensions must be positive")

var cellPool = NewBufferPool()

// Grid is a bounded board stored as a single row-major slice of cells
type Grid struct {
	width  int
	height int
	cells  []Cell // len(cells) == width*height
	pool   *BufferPool
}

// NewGrid creates a new grid with the specified dimensions, every cell Dead
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] got %dx%d", width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		pool:   cellPool,
	}, nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// GetIndex returns the flat index of (row, col), or false when it lies outside the grid
func (g *Grid) GetIndex(row, col int) (int, bool) {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return 0, false
	}
	return row*g.width + col, true
}

// GetCell returns the cell at (row, col), or false when it lies outside the grid
func (g *Grid) GetCell(row, col int) (Cell, bool) {
	idx, ok := g.GetIndex(row, col)
	if !ok {
		return Dead, false
	}
	return g.cells[idx], true
}

// SetCell writes the cell at (row, col). Out of range writes are dropped and report false.
func (g *Grid) SetCell(row, col int, c Cell) bool {
	idx, ok := g.GetIndex(row, col)
	if !ok {
		return false
	}
	g.cells[idx] = c
	return true
}

// CountNeighbors counts living cells in the Moore neighborhood of (row, col).
// The window is clipped to the grid, nothing wraps.
func (g *Grid) CountNeighbors(row, col int) int {
	if _, ok := g.GetIndex(row, col); !ok {
		return 0
	}

	var (
		count = 0
		minR  = max(0, row-1)
		maxR  = min(g.height-1, row+1)
		minC  = max(0, col-1)
		maxC  = min(g.width-1, col+1)
	)
	for r := minR; r <= maxR; r++ {
		for c := minC; c <= maxC; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r*g.width+c] == Alive {
				count++
			}
		}
	}
	return count
}

// Tick advances the grid by one generation.
// Every next state is read from the current cells and written to a separate buffer,
// which then replaces the current one.
func (g *Grid) Tick() {
	next := g.pool.Get(len(g.cells))
	for row := range g.height {
		for col := range g.width {
			idx := row*g.width + col
			next[idx] = CellOf(rules.ApplyConwayRules(g.CountNeighbors(row, col), g.cells[idx].IsAlive()))
		}
	}

	prev := g.cells
	g.cells = next
	g.pool.Put(prev)
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		if c == Alive {
			count++
		}
	}
	return
}

// Clear kills every cell
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Dead
	}
}

// Seed sets every listed coordinate Alive and returns how many were inside the grid
func (g *Grid) Seed(coords []Coord) (written int) {
	for _, c := range coords {
		if g.SetCell(c.Row, c.Col, Alive) {
			written++
		}
	}
	return
}

// Randomize assigns every cell independently, Alive with probability density
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for i := range g.cells {
		g.cells[i] = CellOf(rng.Float64() < density)
	}
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		width:  g.width,
		height: g.height,
		cells:  cells,
		pool:   g.pool,
	}
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil {
		return false
	}
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, c := range g.cells {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders one line per row, each terminated by a newline
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width*len(cellGlyphAlive) + 1) * g.height)
	for row := range g.height {
		for _, c := range g.cells[row*g.width : (row+1)*g.width] {
			sb.WriteString(c.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
