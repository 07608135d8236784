package render

import (
	"strings"
	"testing"

	"github.com/kpitt/pentomino/internal/board"
	"github.com/kpitt/pentomino/internal/catalog"
	"github.com/kpitt/pentomino/internal/cover"
	"github.com/kpitt/pentomino/internal/set"
)

// solve runs the full catalog -> board -> cover -> dlx -> render pipeline for
// a piece selection and returns the rendered grid, or nil if no tiling
// exists.
func solve(t *testing.T, letters string) *Grid {
	t.Helper()

	var sel *set.Set[byte]
	if letters != "" {
		sel = set.NewSet[byte]([]byte(letters)...)
	}

	cat, err := catalog.Load(sel)
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}

	b := board.New(cat.NumPieces())
	matrix := cover.Build(cat, b)

	solution := matrix.Solve()
	if solution == nil {
		return nil
	}

	placements := make([]cover.Placement, len(solution))
	for i, p := range solution {
		placements[i] = p.(cover.Placement)
	}
	return Paint(b.Height, placements, cat.Name)
}

func gridRows(g *Grid) []string {
	rows := make([]string, g.Height)
	for r := 0; r < g.Height; r++ {
		var sb strings.Builder
		for c := 0; c < board.Width; c++ {
			sb.WriteByte(g.cells[r][c])
			if c < board.Width-1 {
				sb.WriteByte(' ')
			}
		}
		rows[r] = sb.String()
	}
	return rows
}

func TestSingleIPieceHasUniqueSolution(t *testing.T) {
	g := solve(t, "I")
	if g == nil {
		t.Fatal("expected a solution for {I} on a 1x5 board")
	}
	rows := gridRows(g)
	if len(rows) != 1 || rows[0] != "I I I I I" {
		t.Errorf("got rows %v, want [\"I I I I I\"]", rows)
	}
}

func TestSingleXPieceHasNoSolution(t *testing.T) {
	g := solve(t, "X")
	if g != nil {
		t.Errorf("expected no solution for {X} on a 1x5 board, got %v", gridRows(g))
	}
}

func TestSixPieceSelectionSolves(t *testing.T) {
	g := solve(t, "LYVTWZ")
	if g == nil {
		t.Fatal("expected a solution for {L,Y,V,T,W,Z} on a 6x5 board")
	}
	if g.Height != 6 {
		t.Fatalf("expected 6 rows, got %d", g.Height)
	}

	seen := set.NewSet[byte]()
	for _, row := range gridRows(g) {
		for _, ch := range row {
			if ch != ' ' {
				seen.Add(byte(ch))
			}
		}
	}
	for _, letter := range []byte("LYVTWZ") {
		if !seen.Contains(letter) {
			t.Errorf("expected letter %c to appear in the rendered grid", letter)
		}
	}
}

func TestEmptySelectionDefaultsToAllTwelveAndSolves(t *testing.T) {
	g := solve(t, "")
	if g == nil {
		t.Fatal("expected the classic all-twelve-pentomino tiling to have a solution")
	}
	if g.Height != 12 {
		t.Fatalf("expected 12 rows (P=12), got %d", g.Height)
	}

	seen := set.NewSet[byte]()
	for _, row := range gridRows(g) {
		for _, ch := range row {
			if ch != ' ' {
				seen.Add(byte(ch))
			}
		}
	}
	for _, letter := range []byte("FILNPTUVWXYZ") {
		if !seen.Contains(letter) {
			t.Errorf("expected letter %c to appear in the all-twelve tiling", letter)
		}
	}
}
