// Package cover builds the exact-cover matrix rows for a pentomino packing
// problem: one row per legal (orientation, anchor) placement.
package cover

import (
	"github.com/kpitt/pentomino/internal/board"
	"github.com/kpitt/pentomino/internal/catalog"
	"github.com/kpitt/pentomino/internal/dlx"
)

// Placement is the row payload the solver hands back for each chosen row:
// which orientation was placed, and its anchor.
type Placement struct {
	Orientation catalog.Orientation
	Row, Col    int
}

// Build constructs the full DLX matrix for the given catalog over the given
// board. Columns [0, TotalCells) are cell-cover constraints; columns
// [TotalCells, TotalCells+P) are piece-identity constraints.
//
// Enumeration order is: outer loop over orientation handles in catalog
// order, inner loop over anchors (r, c) in row-major order. This is what
// makes the insertion order into the matrix -- and hence MRV tie-breaking --
// a deterministic function of the selected letters.
func Build(cat *catalog.Catalog, b *board.Board) *dlx.Matrix {
	totalCells := b.TotalCells()
	numCols := totalCells + cat.NumPieces()
	m := dlx.NewMatrix(numCols)

	for _, orient := range cat.Orientation {
		for r := 0; r < b.Height; r++ {
			for c := 0; c < board.Width; c++ {
				if !b.CanPlace(orient.Shape, r, c) {
					continue
				}
				cols := make([]int, 0, 6)
				for _, cell := range orient.Shape.Cells() {
					cols = append(cols, b.CellIndex(r+cell[0], c+cell[1]))
				}
				cols = append(cols, totalCells+orient.Identity)
				m.AddRow(cols, Placement{Orientation: orient, Row: r, Col: c})
			}
		}
	}
	return m
}
