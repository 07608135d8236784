package dlx

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
)

// Stats tracks solving statistics for a single Solve call. It is entirely
// for reporting: it never changes search behavior (the search always runs
// to completion or exhaustion, with no timeout -- see the resource model).
type Stats struct {
	NodesVisited   int
	BacktrackCount int
	TimeElapsed    time.Duration
	Matrix         MatrixInfo
}

// MatrixInfo summarizes the static shape of the constraint matrix.
type MatrixInfo struct {
	Columns int
	Rows    int
}

func (m *Matrix) info() MatrixInfo {
	return MatrixInfo{Columns: m.NumColumns(), Rows: m.NumRows()}
}

// SolveWithStats behaves exactly like Solve but additionally counts nodes
// visited and backtracks taken, and times the search.
func (m *Matrix) SolveWithStats() ([]any, *Stats) {
	stats := &Stats{Matrix: m.info()}
	start := time.Now()

	m.solution = m.solution[:0]
	solved := m.searchWithStats(stats)

	stats.TimeElapsed = time.Since(start)

	if !solved {
		return nil, stats
	}
	result := make([]any, len(m.solution))
	for i, rowID := range m.solution {
		result[i] = m.payloads[rowID]
	}
	return result, stats
}

func (m *Matrix) searchWithStats(stats *Stats) bool {
	stats.NodesVisited++

	if m.Header.Right == &m.Header.Node {
		return true
	}

	col := m.chooseColumn()
	if col == nil || col.Size == 0 {
		return false
	}

	m.cover(col)
	for r := col.Down; r != &col.Node; r = r.Down {
		m.solution = append(m.solution, r.RowID)

		for j := r.Right; j != r; j = j.Right {
			m.cover(j.Column)
		}

		if m.searchWithStats(stats) {
			return true
		}

		for j := r.Left; j != r; j = j.Left {
			m.uncover(j.Column)
		}
		m.solution = m.solution[:len(m.solution)-1]
		stats.BacktrackCount++
	}
	m.uncover(col)

	return false
}

// Print renders a colorized solving-statistics report to stderr.
func (s *Stats) Print() {
	fmt.Fprintf(os.Stderr, "\n%s\n", color.HiCyanString("Dancing Links Statistics"))
	fmt.Fprintf(os.Stderr, "%s\n", color.HiCyanString("========================"))
	fmt.Fprintf(os.Stderr, "Matrix:  %s columns, %s rows\n",
		color.HiYellowString("%d", s.Matrix.Columns), color.HiYellowString("%d", s.Matrix.Rows))
	fmt.Fprintf(os.Stderr, "Search:  %s nodes visited, %s backtracks\n",
		color.HiGreenString("%d", s.NodesVisited), color.HiRedString("%d", s.BacktrackCount))
	fmt.Fprintf(os.Stderr, "Time:    %s\n", color.HiBlueString("%v", s.TimeElapsed))
}

func columnIndex(m *Matrix, col *ColumnHeader) int {
	for i, c := range m.Columns {
		if c == col {
			return i
		}
	}
	return -1
}

// ValidateTiling checks that the rows named by rowIDs (as returned by
// LastSolutionRowIDs) form a legal exact cover of this matrix's columns: every column
// must be hit by exactly one row, with none missed or doubly covered.
func ValidateTiling(m *Matrix, rowIDs []int) error {
	covered := make([]bool, len(m.Columns))
	for _, rowID := range rowIDs {
		row := m.rows[rowID]
		n := row
		for {
			idx := columnIndex(m, n.Column)
			if covered[idx] {
				return fmt.Errorf("column %s covered more than once", n.Column.Name)
			}
			covered[idx] = true
			n = n.Right
			if n == row {
				break
			}
		}
	}
	for i, ok := range covered {
		if !ok {
			return fmt.Errorf("column %s not covered", m.Columns[i].Name)
		}
	}
	return nil
}
