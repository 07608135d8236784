package render

import (
	"testing"

	"github.com/kpitt/pentomino/internal/catalog"
	"github.com/kpitt/pentomino/internal/cover"
	"github.com/kpitt/pentomino/internal/piece"
)

func TestPaintWritesPieceLetters(t *testing.T) {
	orient := catalog.Orientation{Shape: piece.Shape{Rows: []uint8{31}}, Identity: 0}
	placements := []cover.Placement{{Orientation: orient, Row: 0, Col: 0}}

	nameOf := func(identity int) byte {
		if identity == 0 {
			return 'I'
		}
		return '?'
	}

	g := Paint(1, placements, nameOf)
	for c := 0; c < 5; c++ {
		if g.cells[0][c] != 'I' {
			t.Errorf("cell (0,%d) = %q, want 'I'", c, g.cells[0][c])
		}
	}
}

func TestPaintLeavesUnoccupiedCellsBlank(t *testing.T) {
	g := Paint(2, nil, func(int) byte { return '?' })
	for r := 0; r < 2; r++ {
		for c := 0; c < 5; c++ {
			if g.cells[r][c] != ' ' {
				t.Errorf("cell (%d,%d) = %q, want blank", r, c, g.cells[r][c])
			}
		}
	}
}
