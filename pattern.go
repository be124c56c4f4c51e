package isam

import (
	"io"

	"github.com/bits-and-blooms/bitset"
)

// PrintPattern writes an ASCII grid of the matrix's sparsity pattern to
// w, one "x"/"." row per line: "x" where a nonzero is stored, "." where
// none is. Each row's occupied columns are loaded into a bitset once so
// testing column membership while scanning the row is O(1), instead of
// re-walking the row's sparse entries once per column.
func PrintPattern(w io.Writer, m *SparseMatrix) error {
	cols := m.NumCols()
	line := make([]byte, cols+1)
	line[cols] = '\n'
	occupied := bitset.New(uint(maxInt(cols, 1)))
	for r := 0; r < m.NumRows(); r++ {
		occupied.ClearAll()
		for it := m.rows[r].Iterator(); it.Valid(); it.Next() {
			occupied.Set(uint(it.Index()))
		}
		for c := 0; c < cols; c++ {
			if occupied.Test(uint(c)) {
				line[c] = 'x'
			} else {
				line[c] = '.'
			}
		}
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}
