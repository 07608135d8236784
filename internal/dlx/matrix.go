// Package dlx implements Knuth's Dancing Links data structure and Algorithm
// X: a four-way doubly linked torus of nodes supporting O(1) cover/uncover,
// and a recursive exact-cover search over it that stops at the first
// solution found.
package dlx

import "fmt"

// Node is a single cell of the sparse exact-cover matrix. Every node
// participates in a vertical cyclic list through its column header and a
// horizontal cyclic list through its row.
type Node struct {
	Left, Right, Up, Down *Node
	Column                *ColumnHeader
	RowID                 int
}

// ColumnHeader is a sentinel node for one column: it tracks the live node
// count in the column and whether the column is optional (never true in
// this program -- every column is mandatory). All headers are chained
// horizontally through the matrix's root sentinel.
type ColumnHeader struct {
	Node
	Size     int
	Name     string
	Optional bool
}

// Matrix is the full exact-cover constraint matrix: a root sentinel, a
// fixed set of column headers, and the rows added via AddRow.
type Matrix struct {
	Header   *ColumnHeader
	Columns  []*ColumnHeader
	rows     []*Node // first node of each row, indexed by row ID
	payloads []any   // payload for each row, indexed by row ID

	solution []int // stack of chosen row IDs during search
}

// NewMatrix creates an empty matrix with numCols mandatory column headers
// and no rows.
func NewMatrix(numCols int) *Matrix {
	m := &Matrix{Columns: make([]*ColumnHeader, numCols)}

	root := &ColumnHeader{Name: "root"}
	root.Left = &root.Node
	root.Right = &root.Node
	m.Header = root

	for i := 0; i < numCols; i++ {
		col := &ColumnHeader{Name: fmt.Sprintf("col%d", i)}
		col.Up = &col.Node
		col.Down = &col.Node
		col.Column = col

		col.Left = root.Left
		col.Right = &root.Node
		root.Left.Right = &col.Node
		root.Left = &col.Node

		m.Columns[i] = col
	}
	return m
}

// AddRow creates one node per column index in cols, inserts each at the
// bottom of its column's vertical list, links the new nodes into a single
// horizontal cyclic list in the order given, and records payload as the row
// payload shared by every node of the row. cols must contain no duplicates.
func (m *Matrix) AddRow(cols []int, payload any) {
	rowID := len(m.rows)
	nodes := make([]*Node, len(cols))

	for i, colIdx := range cols {
		col := m.Columns[colIdx]
		n := &Node{Column: col, RowID: rowID}

		// Insert at the bottom: between the column's current up-neighbor
		// (its last node) and the header itself.
		n.Up = col.Up
		n.Down = &col.Node
		col.Up.Down = n
		col.Up = n
		col.Size++

		nodes[i] = n
	}

	for i := range nodes {
		nodes[i].Left = nodes[(i-1+len(nodes))%len(nodes)]
		nodes[i].Right = nodes[(i+1)%len(nodes)]
	}

	m.rows = append(m.rows, nodes[0])
	m.payloads = append(m.payloads, payload)
}

// cover removes column h from the header list and removes every row that
// has a node in h from all of their other columns.
func (m *Matrix) cover(h *ColumnHeader) {
	h.Right.Left = h.Left
	h.Left.Right = h.Right

	for i := h.Down; i != &h.Node; i = i.Down {
		for j := i.Right; j != i; j = j.Right {
			j.Down.Up = j.Up
			j.Up.Down = j.Down
			j.Column.Size--
		}
	}
}

// uncover is the exact inverse of cover.
func (m *Matrix) uncover(h *ColumnHeader) {
	for i := h.Up; i != &h.Node; i = i.Up {
		for j := i.Left; j != i; j = j.Left {
			j.Column.Size++
			j.Down.Up = j
			j.Up.Down = j
		}
	}

	h.Right.Left = &h.Node
	h.Left.Right = &h.Node
}

// chooseColumn implements the MRV heuristic: scan the horizontal list
// through the root and return the non-optional header with the fewest live
// nodes, breaking ties by earliest position (insertion order).
func (m *Matrix) chooseColumn() *ColumnHeader {
	var chosen *ColumnHeader
	minSize := int(^uint(0) >> 1)

	for col := m.Header.Right; col != &m.Header.Node; col = col.Right {
		ch := col.Column
		if ch.Optional {
			continue
		}
		if ch.Size < minSize {
			chosen = ch
			minSize = ch.Size
		}
	}
	return chosen
}

// Solve runs Algorithm X and returns the row payloads of the first solution
// found, in the order they were chosen, or nil if no solution exists.
func (m *Matrix) Solve() []any {
	m.solution = m.solution[:0]
	if !m.search() {
		return nil
	}
	result := make([]any, len(m.solution))
	for i, rowID := range m.solution {
		result[i] = m.payloads[rowID]
	}
	return result
}

func (m *Matrix) search() bool {
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

		if m.search() {
			return true
		}

		for j := r.Left; j != r; j = j.Left {
			m.uncover(j.Column)
		}
		m.solution = m.solution[:len(m.solution)-1]
	}
	m.uncover(col)

	return false
}

// LastSolutionRowIDs returns the row IDs chosen by the most recent Solve or
// SolveWithStats call, for callers that want to re-validate the tiling via
// ValidateTiling.
func (m *Matrix) LastSolutionRowIDs() []int {
	return append([]int(nil), m.solution...)
}

// NumRows returns the number of rows added to the matrix.
func (m *Matrix) NumRows() int {
	return len(m.rows)
}

// NumColumns returns the number of column headers in the matrix.
func (m *Matrix) NumColumns() int {
	return len(m.Columns)
}
