package isam

// State is the triangulation state of a Triangulator's R factor.
type State int

const (
	// General is the state after AppendRow or AppendCols: arbitrary
	// structure, not necessarily upper-triangular. A Set (growing or
	// not) made directly on R() does not change the state.
	General State = iota
	// UpperTriangular holds once Triangulate has run to completion:
	// for every row r, the row is empty or its smallest stored column
	// index is >= r.
	UpperTriangular
)

func (s State) String() string {
	if s == UpperTriangular {
		return "UpperTriangular"
	}
	return "General"
}

// Triangulator drives the incremental QR core: it owns the evolving R
// factor as a SparseMatrix and applies Givens rotations to restore
// upper-triangular structure as new measurement rows and state columns
// arrive. A freshly constructed Triangulator is vacuously
// UpperTriangular (it has no rows).
type Triangulator struct {
	r     *SparseMatrix
	state State
}

// NewTriangulator returns a Triangulator over an empty R factor with
// numCols state columns.
func NewTriangulator(numCols int) *Triangulator {
	return &Triangulator{
		r:     NewSparseMatrix(0, numCols),
		state: UpperTriangular,
	}
}

// R exposes the underlying R factor for read access (GetRow,
// back-substitution, residual computation). Mutating it directly
// bypasses the Triangulator's state tracking; prefer AppendRow/AppendCols.
func (t *Triangulator) R() *SparseMatrix { return t.r }

// State reports whether R is currently known to be upper-triangular.
func (t *Triangulator) State() State { return t.state }

// AppendRow appends a new row (a linearized measurement's nonzero
// coefficients) to R and returns its row index. coeffs must have its
// column indices strictly ascending, matching SparseVector.Append's
// monotonicity requirement, since the new row is copied in with
// AppendInRow. Appending a row always returns R to the General state:
// the new row's leading column may be below its own row index.
func (t *Triangulator) AppendRow(coeffs *SparseVector) int {
	t.r.AppendNewRows(1)
	row := t.r.NumRows() - 1
	for it := coeffs.Iterator(); it.Valid(); it.Next() {
		t.r.AppendInRow(row, it.Index(), it.Value())
	}
	t.state = General
	return row
}

// AppendCols extends R by n state columns.
func (t *Triangulator) AppendCols(n int) {
	t.r.AppendNewCols(n)
	t.state = General
}

// Triangulate restores the upper-triangular invariant: for every row r,
// the row is empty or its smallest stored column index is >= r. It
// returns the number of Givens rotations applied, a diagnostic count
// that is also the function's idempotence witness — calling Triangulate
// again on an already-triangular R returns 0 and leaves it unchanged.
//
// Rows are processed in ascending index order. The pivot row for the
// rotation that zeros row r's offending column c is always row c
// itself, which keeps every row above r in canonical R-form throughout
// — by the time row r is reached, rows 0..r-1 are already triangular,
// and rotating a pivot row c < r against row r rewrites that pivot row
// but leaves its smallest stored column index >= c.
func (t *Triangulator) Triangulate() int {
	count := 0
	for row := 0; row < t.r.NumRows(); row++ {
		for {
			col := t.r.rows[row].First()
			if col < 0 || col >= row {
				break
			}
			ApplyGivens(t.r, col, row, col)
			count++
		}
	}
	t.state = UpperTriangular
	return count
}

// MulVector computes R * x, iterating only stored entries. It panics if
// len(x) != R.NumCols().
func (t *Triangulator) MulVector(x []float64) []float64 {
	require(len(x) == t.r.NumCols(), "Triangulator.MulVector: x has length %d, want %d", len(x), t.r.NumCols())
	res := make([]float64, t.r.NumRows())
	for row := 0; row < t.r.NumRows(); row++ {
		for it := t.r.rows[row].Iterator(); it.Valid(); it.Next() {
			res[row] += it.Value() * x[it.Index()]
		}
	}
	return res
}

// MulTransposeVector computes R^T * x via the same row-iteration,
// accumulating into column indices instead of row indices. It panics if
// len(x) != R.NumRows().
func (t *Triangulator) MulTransposeVector(x []float64) []float64 {
	require(len(x) == t.r.NumRows(), "Triangulator.MulTransposeVector: x has length %d, want %d", len(x), t.r.NumRows())
	res := make([]float64, t.r.NumCols())
	for row := 0; row < t.r.NumRows(); row++ {
		for it := t.r.rows[row].Iterator(); it.Valid(); it.Next() {
			res[it.Index()] += it.Value() * x[row]
		}
	}
	return res
}

// MulVector computes m * x for a standalone SparseMatrix, iterating
// only stored entries and allocating a dense result of length
// m.NumRows(). It panics on a dimension mismatch.
func MulVector(m *SparseMatrix, x []float64) []float64 {
	require(len(x) == m.NumCols(), "MulVector: x has length %d, want %d", len(x), m.NumCols())
	res := make([]float64, m.NumRows())
	for row := 0; row < m.NumRows(); row++ {
		for it := m.rows[row].Iterator(); it.Valid(); it.Next() {
			res[row] += it.Value() * x[it.Index()]
		}
	}
	return res
}

// MulTransposeVector computes m^T * x for a standalone SparseMatrix.
// It panics on a dimension mismatch.
func MulTransposeVector(m *SparseMatrix, x []float64) []float64 {
	require(len(x) == m.NumRows(), "MulTransposeVector: x has length %d, want %d", len(x), m.NumRows())
	res := make([]float64, m.NumCols())
	for row := 0; row < m.NumRows(); row++ {
		for it := m.rows[row].Iterator(); it.Valid(); it.Next() {
			res[it.Index()] += it.Value() * x[row]
		}
	}
	return res
}
