package model

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

const clearCmd = "clear"

// TerminalRenderer draws grids and status lines to a writer
type TerminalRenderer struct {
	out        io.Writer
	aliveGlyph string
	deadGlyph  string
}

// NewTerminalRenderer returns a renderer writing to out, coloring live cells when color is set
func NewTerminalRenderer(out io.Writer, color bool) *TerminalRenderer {
	au := aurora.NewAurora(color)
	return &TerminalRenderer{
		out:        out,
		aliveGlyph: au.Green(Alive.String()).String(),
		deadGlyph:  Dead.String(),
	}
}

// Display renders the grid, one line per row
func (r *TerminalRenderer) Display(g *Grid) error {
	w := bufio.NewWriter(r.out)
	for row := range g.height {
		for _, c := range g.cells[row*g.width : (row+1)*g.width] {
			if c == Alive {
				w.WriteString(r.aliveGlyph)
			} else {
				w.WriteString(r.deadGlyph)
			}
		}
		w.WriteByte('\n')
	}
	return errors.Wrap(w.Flush(), "[Display] failed to write grid")
}

// Printf writes a status line
func (r *TerminalRenderer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format, args...)
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.out
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}
