package isam

// DenseMatrix is the narrow interface this package expects of an
// external, BLAS-style dense matrix collaborator; the dense Matrix and
// Vector primitives themselves live outside this package, and this
// interface is the seam between them and the sparse core.
type DenseMatrix interface {
	NumRows() int
	NumCols() int
	At(i, j int) float64
	Set(i, j int, v float64)
}

// DenseVector is the narrow interface this package expects of an
// external dense vector collaborator.
type DenseVector interface {
	Len() int
	At(i int) float64
	Set(i int, v float64)
}

// Dense is a minimal row-major DenseMatrix used by this package's own
// tests; production front-ends are expected to supply their own
// BLAS-backed implementation instead.
type Dense struct {
	rows, cols int
	data       []float64
}

// NewDense allocates a rows x cols Dense matrix of zeros.
func NewDense(rows, cols int) *Dense {
	require(rows >= 0 && cols >= 0, "NewDense: negative dimension (%d, %d)", rows, cols)
	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

func (d *Dense) NumRows() int { return d.rows }
func (d *Dense) NumCols() int { return d.cols }

func (d *Dense) At(i, j int) float64 {
	require(i >= 0 && i < d.rows && j >= 0 && j < d.cols, "Dense.At: index (%d, %d) out of range for %dx%d matrix", i, j, d.rows, d.cols)
	return d.data[i*d.cols+j]
}

func (d *Dense) Set(i, j int, v float64) {
	require(i >= 0 && i < d.rows && j >= 0 && j < d.cols, "Dense.Set: index (%d, %d) out of range for %dx%d matrix", i, j, d.rows, d.cols)
	d.data[i*d.cols+j] = v
}

// SparseFromDense writes every entry of d (zeros included) into a new
// SparseMatrix with SparseMatrix.Set, the reimplementation of the
// original's sparseMatrix_of_matrix free function. Because Set removes
// rather than stores an exact zero, only d's nonzeros end up stored.
func SparseFromDense(d DenseMatrix) *SparseMatrix {
	rows, cols := d.NumRows(), d.NumCols()
	s := NewSparseMatrix(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			s.Set(r, c, d.At(r, c), false)
		}
	}
	return s
}

// DenseFromSparse fills dst with s's values, zeros filled explicitly —
// the reimplementation of the original's matrix_of_sparseMatrix free
// function. dst must already have s's dimensions.
func DenseFromSparse(s *SparseMatrix, dst DenseMatrix) {
	require(dst.NumRows() == s.NumRows() && dst.NumCols() == s.NumCols(),
		"DenseFromSparse: dst is %dx%d, want %dx%d", dst.NumRows(), dst.NumCols(), s.NumRows(), s.NumCols())
	for r := 0; r < s.NumRows(); r++ {
		for it := s.rows[r].Iterator(); it.Valid(); it.Next() {
			dst.Set(r, it.Index(), it.Value())
		}
	}
}
