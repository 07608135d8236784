// Package board holds the rectangular cell map the pieces are packed into:
// a width-5, height-H grid in which every cell is active.
package board

import (
	"fmt"
	"os"

	"github.com/kpitt/pentomino/internal/piece"
)

const Width = 5

// Board is a H x 5 grid of active cells, plus the bijection between active
// (row, col) coordinates and a linear cell index.
type Board struct {
	Height int
	cells  [][Width]bool
}

// New creates a board of height h (width is always 5) with every cell
// active.
func New(h int) *Board {
	if h <= 0 {
		boardStateError(fmt.Sprintf("invalid board height %d", h))
	}
	b := &Board{Height: h, cells: make([][Width]bool, h)}
	for r := range b.cells {
		for c := range b.cells[r] {
			b.cells[r][c] = true
		}
	}
	return b
}

// TotalCells returns the number of active cells on the board, 5*Height.
func (b *Board) TotalCells() int {
	return b.Height * Width
}

// CanPlace reports whether every occupied cell of shape, anchored so its
// top-left corner sits at (r, c), lands on the board and on an active cell.
func (b *Board) CanPlace(s piece.Shape, r, c int) bool {
	for _, cell := range s.Cells() {
		rr, cc := r+cell[0], c+cell[1]
		if rr < 0 || rr >= b.Height || cc < 0 || cc >= Width {
			return false
		}
		if !b.cells[rr][cc] {
			return false
		}
	}
	return true
}

// CellIndex returns the row-major ordinal of cell (r, c) among active
// cells. It is fatal to ask for the index of an out-of-range or inactive
// cell, since every caller in this program first establishes legality via
// CanPlace.
func (b *Board) CellIndex(r, c int) int {
	if r < 0 || r >= b.Height || c < 0 || c >= Width || !b.cells[r][c] {
		cellPositionError(fmt.Sprintf("invalid cell position (%d,%d)", r, c))
	}
	return r*Width + c
}

func boardStateError(msg string) {
	fatalError("invalid board state", msg)
}

func cellPositionError(msg string) {
	fatalError("invalid cell position", msg)
}

func fatalError(kind, msg string) {
	fmt.Fprintf(os.Stderr, "error: %s: %s\n", kind, msg)
	os.Exit(1)
}
