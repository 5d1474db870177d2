/*
Package sparse implements a sparse integer matrix, adapted from gorgo's
lr/sparse package. It backs the LR(1) ACTION and GOTO tables (package lr1):
most (state, symbol) cells are empty, so a dense matrix would waste memory
on grammars with many states and a wide terminal/non-terminal alphabet.

This implementation uses the COO (coordinate / triplet) encoding, keeping
entries sorted by (row, col) so lookups and conflict detection are a binary
search over the cell list.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package sparse

import "fmt"

// DefaultNull is the conventional empty-cell marker (minimum int32), used
// when callers have no more specific null value in mind.
const DefaultNull = -2147483648

// cell holds up to two competing values at one matrix position — exactly
// enough to represent a shift/reduce or reduce/reduce conflict before it is
// reported as an error.
type cell struct {
	row, col int
	a, b     int32
}

// IntMatrix is a sparse matrix of int32, where each populated cell carries
// up to two values (so that writing a second, conflicting value to an
// already-occupied cell is representable rather than silently lost).
type IntMatrix struct {
	cells []cell
	rows  int
	cols  int
	null  int32
}

// NewIntMatrix creates an m x n matrix whose unpopulated cells read as
// nullValue.
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{rows: m, cols: n, null: nullValue}
}

// NullValue returns the matrix's empty-cell marker.
func (m *IntMatrix) NullValue() int32 {
	return m.null
}

// Rows returns the row count.
func (m *IntMatrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *IntMatrix) Cols() int { return m.cols }

// ValueCount returns the number of populated cells.
func (m *IntMatrix) ValueCount() int { return len(m.cells) }

func (m *IntMatrix) find(i, j int) int {
	lo, hi := 0, len(m.cells)
	for lo < hi {
		mid := (lo + hi) / 2
		c := m.cells[mid]
		if c.row < i || (c.row == i && c.col < j) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(m.cells) && m.cells[lo].row == i && m.cells[lo].col == j {
		return lo
	}
	return -1
}

func (m *IntMatrix) insertionPoint(i, j int) int {
	lo, hi := 0, len(m.cells)
	for lo < hi {
		mid := (lo + hi) / 2
		c := m.cells[mid]
		if c.row < i || (c.row == i && c.col < j) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// Value returns the primary value at (i,j), or NullValue if unset.
func (m *IntMatrix) Value(i, j int) int32 {
	if k := m.find(i, j); k >= 0 {
		return m.cells[k].a
	}
	return m.null
}

// Values returns both values stored at (i,j) — the second is NullValue
// unless a conflicting write occurred there.
func (m *IntMatrix) Values(i, j int) (int32, int32) {
	if k := m.find(i, j); k >= 0 {
		return m.cells[k].a, m.cells[k].b
	}
	return m.null, m.null
}

// Set overwrites the primary value at (i,j).
func (m *IntMatrix) Set(i, j int, v int32) {
	if k := m.find(i, j); k >= 0 {
		m.cells[k].a = v
		return
	}
	m.insert(i, j, v)
}

// Add records v at (i,j), preserving any value already there as the
// secondary value (a conflict). If both slots are already occupied, the
// secondary value is overwritten, so a third competing value replaces the
// second. Package lr1 does not use Add: it reads the cell with Value and
// reports a conflict itself before writing with Set.
func (m *IntMatrix) Add(i, j int, v int32) {
	if k := m.find(i, j); k >= 0 {
		if m.cells[k].a == m.null {
			m.cells[k].a = v
		} else if m.cells[k].b == m.null {
			m.cells[k].b = v
		} else {
			m.cells[k].b = v
		}
		return
	}
	m.insert(i, j, v)
}

func (m *IntMatrix) insert(i, j int, v int32) {
	at := m.insertionPoint(i, j)
	m.cells = append(m.cells, cell{})
	copy(m.cells[at+1:], m.cells[at:])
	m.cells[at] = cell{row: i, col: j, a: v, b: m.null}
}

func (c cell) String() string {
	return fmt.Sprintf("[%d,%d]", c.a, c.b)
}
