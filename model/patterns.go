package model

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned when a pattern name is not registered
var ErrUnknownPattern = errors.New("unknown pattern")

// Coord is a (row, col) position on the grid
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Pattern is a named list of live cells
type Pattern struct {
	Name   string
	Coords []Coord
}

// At returns the pattern coordinates shifted by (row, col)
func (p Pattern) At(row, col int) []Coord {
	out := make([]Coord, len(p.Coords))
	for i, c := range p.Coords {
		out[i] = Coord{Row: c.Row + row, Col: c.Col + col}
	}
	return out
}

var (
	// Glider is placed where the classic fixed seed puts it on a 40x40 board
	Glider = Pattern{
		Name: "glider",
		Coords: []Coord{
			{Row: 9, Col: 10},
			{Row: 10, Col: 11},
			{Row: 10, Col: 12},
			{Row: 9, Col: 12},
			{Row: 8, Col: 12},
		},
	}

	// Blinker is a period 2 oscillator
	Blinker = Pattern{
		Name:   "blinker",
		Coords: []Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	}

	// Block is the 2x2 still life
	Block = Pattern{
		Name:   "block",
		Coords: []Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}},
	}

	patterns = map[string]Pattern{
		Glider.Name:  Glider,
		Blinker.Name: Blinker,
		Block.Name:   Block,
	}
)

// PatternByName looks up a registered pattern
func PatternByName(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[PatternByName] %q", name)
	}
	return p, nil
}

// PatternNames returns the registered pattern names in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
