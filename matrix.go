package isam

// minRows and minCols mirror the original isam::SparseMatrix's
// MIN_NUM_ROWS / MIN_NUM_COLS: initial capacity floors that make the
// amortized-doubling growth well-behaved for small matrices too.
const (
	minRows = 10
	minCols = 10
)

// SparseMatrix owns an ordered sequence of SparseVectors, one per row,
// conceptually numRows x numCols. Each row is exclusively owned by the
// matrix: callers may borrow a row via GetRow but must not hold that
// borrow across any mutating call on the same matrix.
type SparseMatrix struct {
	rows    []*SparseVector
	numRows int
	numCols int
	capRows int
	capCols int
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// NewSparseMatrix allocates an empty numRows x numCols matrix. Initial
// row and column capacity is max(minRows, 2*numRows) / max(minCols,
// 2*numCols), so appending up to that many more rows/cols is amortized
// O(1) before the next doubling.
func NewSparseMatrix(numRows, numCols int) *SparseMatrix {
	require(numRows >= 0 && numCols >= 0, "NewSparseMatrix: negative dimension (%d, %d)", numRows, numCols)
	m := &SparseMatrix{
		numRows: numRows,
		numCols: numCols,
		capRows: maxInt(minRows, 2*numRows),
		capCols: maxInt(minCols, 2*numCols),
	}
	m.rows = make([]*SparseVector, numRows, m.capRows)
	for r := range m.rows {
		m.rows[r] = NewSparseVector()
	}
	return m
}

// NumRows returns the current row count.
func (m *SparseMatrix) NumRows() int { return m.numRows }

// NumCols returns the current (advisory) column count.
func (m *SparseMatrix) NumCols() int { return m.numCols }

// Submatrix returns a deep copy of a numRows x numCols window of src
// starting at (firstRow, firstCol). Column indices are copied as-is
// from the source rows, not shifted by firstCol: the window is a row
// slice with its own column count, not a fully re-based 2D extraction.
// A caller wanting indices re-based into the window's own coordinate
// frame must shift them itself after the call.
func Submatrix(src *SparseMatrix, numRows, numCols, firstRow, firstCol int) *SparseMatrix {
	require(firstRow >= 0 && firstCol >= 0, "Submatrix: negative window origin (%d, %d)", firstRow, firstCol)
	require(firstRow+numRows <= src.numRows, "Submatrix: row window out of range")
	_ = firstCol
	out := NewSparseMatrix(numRows, numCols)
	for r := 0; r < numRows; r++ {
		srcRow := src.rows[r+firstRow]
		for it := srcRow.Iterator(); it.Valid(); it.Next() {
			c := it.Index()
			if c >= numCols {
				continue
			}
			out.rows[r].Append(c, it.Value())
		}
	}
	return out
}

// Get returns the value at (r, c), bounds-checked against the current
// dimensions, or 0.0 if no entry is stored there.
func (m *SparseMatrix) Get(r, c int) float64 {
	require(r >= 0 && r < m.numRows && c >= 0 && c < m.numCols,
		"SparseMatrix.Get: index (%d, %d) out of range for %dx%d matrix", r, c, m.numRows, m.numCols)
	return m.rows[r].Get(c)
}

// Set writes val at (r, c). If grow is true, the matrix is grown to fit
// (r, c) first via EnsureRows/EnsureCols; otherwise the index is
// bounds-checked against the current dimensions. Column growth is
// metadata-only: it never touches per-row storage, since rows are
// indexed by column number, not by dense slot.
func (m *SparseMatrix) Set(r, c int, val float64, grow bool) {
	require(r >= 0 && c >= 0, "SparseMatrix.Set: negative index (%d, %d)", r, c)
	if grow {
		m.EnsureRows(r + 1)
		m.EnsureCols(c + 1)
	} else {
		require(r < m.numRows && c < m.numCols,
			"SparseMatrix.Set: index (%d, %d) out of range for %dx%d matrix", r, c, m.numRows, m.numCols)
	}
	m.rows[r].Set(c, val)
}

// AppendInRow delegates to row r's O(1) Append. The caller asserts c is
// strictly greater than any column already stored in row r.
func (m *SparseMatrix) AppendInRow(r, c int, val float64) {
	require(r >= 0 && c >= 0 && r < m.numRows && c < m.numCols,
		"SparseMatrix.AppendInRow: index (%d, %d) out of range for %dx%d matrix", r, c, m.numRows, m.numCols)
	m.rows[r].Append(c, val)
}

// AppendNewRows grows the matrix by n empty rows, doubling row capacity
// when it would otherwise overflow: new_cap = max(2*cap, cur+n).
func (m *SparseMatrix) AppendNewRows(n int) {
	require(n >= 1, "SparseMatrix.AppendNewRows: cannot add %d rows", n)
	if m.numRows+n > m.capRows {
		newCap := maxInt(2*m.capRows, m.numRows+n)
		grown := make([]*SparseVector, m.numRows, newCap)
		copy(grown, m.rows)
		m.rows = grown
		m.capRows = newCap
	}
	for i := 0; i < n; i++ {
		m.rows = append(m.rows, NewSparseVector())
	}
	m.numRows += n
}

// AppendNewCols grows the column count by n. Column capacity is
// advisory bookkeeping only (used by callers such as an ordering
// translation table); it never allocates per-row storage.
func (m *SparseMatrix) AppendNewCols(n int) {
	require(n >= 1, "SparseMatrix.AppendNewCols: cannot add %d columns", n)
	if m.numCols+n > m.capCols {
		m.capCols = maxInt(2*m.capCols, m.numCols+n)
	}
	m.numCols += n
}

// EnsureRows grows the matrix so NumRows() >= numRows, if it isn't already.
func (m *SparseMatrix) EnsureRows(numRows int) {
	require(numRows > 0, "SparseMatrix.EnsureRows: numRows must be positive, got %d", numRows)
	if m.numRows < numRows {
		m.AppendNewRows(numRows - m.numRows)
	}
}

// EnsureCols grows the matrix so NumCols() >= numCols, if it isn't already.
func (m *SparseMatrix) EnsureCols(numCols int) {
	require(numCols > 0, "SparseMatrix.EnsureCols: numCols must be positive, got %d", numCols)
	if m.numCols < numCols {
		m.AppendNewCols(numCols - m.numCols)
	}
}

// RemoveRow deletes the last row. It panics if the matrix has no rows.
func (m *SparseMatrix) RemoveRow() {
	require(m.numRows > 0, "SparseMatrix.RemoveRow: called on a zero-row matrix")
	m.rows[m.numRows-1] = nil
	m.rows = m.rows[:m.numRows-1]
	m.numRows--
}

// GetRow returns the SparseVector stored at row r. The returned pointer
// must not be retained across a mutating call on m.
func (m *SparseMatrix) GetRow(r int) *SparseVector {
	require(r >= 0 && r < m.numRows, "SparseMatrix.GetRow: index %d out of range for %d rows", r, m.numRows)
	return m.rows[r]
}

// SetRow overwrites row r with newRow, replacing whatever was stored
// there. SetRow takes ownership of newRow; the caller must not continue
// to mutate it afterward.
func (m *SparseMatrix) SetRow(r int, newRow *SparseVector) {
	require(r >= 0 && r < m.numRows, "SparseMatrix.SetRow: index %d out of range for %d rows", r, m.numRows)
	m.rows[r] = newRow
}

// ImportRows replaces the matrix's entire row storage with rows,
// consuming the slice: the caller relinquishes its handles and must not
// reuse rows or its elements afterward.
func (m *SparseMatrix) ImportRows(rows []*SparseVector, numCols int) {
	m.rows = rows
	m.numRows = len(rows)
	m.numCols = numCols
	m.capRows = len(rows)
	m.capCols = numCols
}

// NNZ returns the total number of stored entries across all rows.
func (m *SparseMatrix) NNZ() int {
	nnz := 0
	for _, row := range m.rows {
		nnz += row.NNZ()
	}
	return nnz
}

// Stats returns (numRows, numCols, nnz), the summary line used by
// callers that print matrix diagnostics.
func (m *SparseMatrix) Stats() (rows, cols, nnz int) {
	return m.numRows, m.numCols, m.NNZ()
}
