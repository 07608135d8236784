package board

import (
	"testing"

	"github.com/kpitt/pentomino/internal/piece"
)

func TestTotalCells(t *testing.T) {
	b := New(6)
	if got := b.TotalCells(); got != 30 {
		t.Errorf("TotalCells() = %d, want 30", got)
	}
}

func TestCellIndexIsRowMajor(t *testing.T) {
	b := New(3)
	tests := []struct {
		r, c, want int
	}{
		{0, 0, 0}, {0, 4, 4}, {1, 0, 5}, {2, 4, 14},
	}
	for _, tt := range tests {
		if got := b.CellIndex(tt.r, tt.c); got != tt.want {
			t.Errorf("CellIndex(%d,%d) = %d, want %d", tt.r, tt.c, got, tt.want)
		}
	}
}

func TestCanPlaceRejectsOutOfBounds(t *testing.T) {
	b := New(2)
	i := piece.Shape{Rows: []uint8{31}} // 1x5 line
	if b.CanPlace(i, 0, 1) {
		t.Error("expected placement shifted right by 1 to run off the board")
	}
	if !b.CanPlace(i, 0, 0) {
		t.Error("expected placement at origin to be legal")
	}
	if !b.CanPlace(i, 1, 0) {
		t.Error("expected placement on row 1 to be legal")
	}
	if b.CanPlace(i, 2, 0) {
		t.Error("expected placement on row 2 (out of range) to be illegal")
	}
}
