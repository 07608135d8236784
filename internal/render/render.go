// Package render paints a chosen set of piece placements into a labeled H x 5
// char grid: one letter per occupied cell, blank elsewhere.
package render

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/kpitt/pentomino/internal/board"
	"github.com/kpitt/pentomino/internal/cover"
)

// pieceColors cycles a small, visually distinct palette across pieces so
// adjacent letters in the printed grid are easy to tell apart.
var pieceColors = []*color.Color{
	color.New(color.FgHiYellow),
	color.New(color.FgHiGreen),
	color.New(color.FgHiCyan),
	color.New(color.FgHiMagenta),
	color.New(color.FgHiBlue),
	color.New(color.FgHiRed),
}

// Grid is the H x 5 char grid produced from a chosen set of placements.
type Grid struct {
	Height int
	cells  [][board.Width]byte
}

// Paint allocates an H x 5 grid of spaces and writes each placement's piece
// letter into every cell the placement occupies. Placements that fall
// outside the grid are a fatal internal invariant breach (matrix
// corruption), never a normal runtime condition.
func Paint(h int, placements []cover.Placement, nameOf func(identity int) byte) *Grid {
	g := &Grid{Height: h}
	g.cells = make([][board.Width]byte, h)
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c] = ' '
		}
	}

	for _, p := range placements {
		letter := nameOf(p.Orientation.Identity)
		for _, cell := range p.Orientation.Shape.Cells() {
			rr, cc := p.Row+cell[0], p.Col+cell[1]
			if rr < 0 || rr >= g.Height || cc < 0 || cc >= board.Width {
				placementBoundsError(fmt.Sprintf("placement of %c at (%d,%d) wrote cell (%d,%d) out of bounds",
					letter, p.Row, p.Col, rr, cc))
			}
			g.cells[rr][cc] = letter
		}
	}
	return g
}

// Println prints the grid to stdout: H lines, each W letters separated by
// single spaces, with a trailing space after each letter. This exact format
// is part of the program's stdout contract, so it never goes through the
// color package -- color escapes would corrupt the byte-exact format when
// captured by something other than a terminal.
func (g *Grid) Println() {
	for r := 0; r < g.Height; r++ {
		for c := 0; c < board.Width; c++ {
			fmt.Printf("%c ", g.cells[r][c])
		}
		fmt.Println()
	}
}

// PrintColored renders the same grid to stderr with a distinct color per
// piece letter, for interactive/debug use; it never touches stdout.
func (g *Grid) PrintColored() {
	assigned := make(map[byte]*color.Color)
	next := 0
	colorFor := func(letter byte) *color.Color {
		if letter == ' ' {
			return nil
		}
		c, ok := assigned[letter]
		if !ok {
			c = pieceColors[next%len(pieceColors)]
			assigned[letter] = c
			next++
		}
		return c
	}

	for r := 0; r < g.Height; r++ {
		for c := 0; c < board.Width; c++ {
			letter := g.cells[r][c]
			if col := colorFor(letter); col != nil {
				fmt.Fprint(os.Stderr, col.Sprintf("%c ", letter))
			} else {
				fmt.Fprint(os.Stderr, "  ")
			}
		}
		fmt.Fprintln(os.Stderr)
	}
}

func placementBoundsError(msg string) {
	fmt.Fprintf(os.Stderr, "error: internal placement out of bounds: %s\n", msg)
	os.Exit(1)
}
