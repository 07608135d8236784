// Command pentomino reduces a pentomino packing problem to exact cover and
// solves it with Dancing Links / Algorithm X.
//
// Piece letters are selected from argv: "-l -y -v -t -w -z" and "-lyvtwz"
// are equivalent; an empty selection uses all twelve pieces. A "--debug"
// flag prints solving statistics to stderr after the normal stdout report.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/kpitt/pentomino/internal/board"
	"github.com/kpitt/pentomino/internal/catalog"
	"github.com/kpitt/pentomino/internal/cliflags"
	"github.com/kpitt/pentomino/internal/cover"
	"github.com/kpitt/pentomino/internal/dlx"
	"github.com/kpitt/pentomino/internal/render"
)

func main() {
	opts := cliflags.Parse(os.Args[1:])

	if opts.Letters.Size() == 0 && isInteractiveTTY() {
		fmt.Fprintln(os.Stderr, color.HiBlackString("No piece letters given; solving with all twelve pentominoes."))
	}

	cat, err := catalog.Load(opts.Letters)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	b := board.New(cat.NumPieces())
	matrix := cover.Build(cat, b)

	var solution []any
	var stats *dlx.Stats
	if opts.Debug {
		solution, stats = matrix.SolveWithStats()
	} else {
		solution = matrix.Solve()
	}

	if solution != nil {
		color.HiWhite("Solution found!")
		placements := make([]cover.Placement, len(solution))
		for i, p := range solution {
			placements[i] = p.(cover.Placement)
		}
		grid := render.Paint(b.Height, placements, cat.Name)
		grid.Println()
	} else {
		color.HiWhite("No solution found.")
	}

	fmt.Printf("boardField is %d, %d\n", board.Width, cat.NumPieces())

	if opts.Debug && stats != nil {
		stats.Print()
	}
}

// isInteractiveTTY reports whether both stdin and stdout are terminals, the
// condition under which the "no letters given" banner is worth printing.
func isInteractiveTTY() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
