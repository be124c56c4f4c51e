package isam

import "math"

// Givens computes the (c, s) pair of a numerically stable 2x2 Givens
// rotation that zeros b: [[c, -s], [s, c]] * [a; b] = [±sqrt(a^2+b^2); 0].
// The sign of the first component depends on the branch taken (for
// example a=3, b=4 gives -5). c^2 + s^2 == 1 by construction.
func Givens(a, b float64) (c, s float64) {
	if b == 0 {
		return 1, 0
	}
	if math.Abs(b) > math.Abs(a) {
		t := -a / b
		s = 1 / math.Sqrt(1+t*t)
		c = s * t
		return c, s
	}
	t := -b / a
	c = 1 / math.Sqrt(1+t*t)
	s = c * t
	return c, s
}

// ApplyGivens zeros mat[targetRow][pivotCol] against mat[pivotRow][pivotCol]
// by rotating the two rows together and rewriting both in place. It
// requires targetRow > pivotRow and pivotCol < mat.NumCols().
//
// The merge walks both source rows in a single ascending pass, using
// only SparseVector.Append on the two freshly built rows — this is the
// dominant inner loop of Triangulate and the only reason SparseVector
// privileges O(1) Append over arbitrary Set. Any rotated value with
// absolute magnitude below NumericalZero is dropped rather than stored,
// trading bit-exactness for sparsity. The returned (c, s) are the
// rotation applied, useful to a caller accumulating Q.
func ApplyGivens(mat *SparseMatrix, pivotRow, targetRow, pivotCol int) (c, s float64) {
	require(targetRow > pivotRow, "ApplyGivens: targetRow %d must be greater than pivotRow %d", targetRow, pivotRow)
	require(pivotCol >= 0 && pivotCol < mat.NumCols(), "ApplyGivens: pivotCol %d out of range for %d columns", pivotCol, mat.NumCols())
	require(pivotRow >= 0 && targetRow < mat.NumRows(), "ApplyGivens: row index out of range")

	top := mat.rows[pivotRow]
	bot := mat.rows[targetRow]
	a := top.Get(pivotCol)
	b := bot.Get(pivotCol)
	c, s = Givens(a, b)

	newTop := NewSparseVector()
	newBot := NewSparseVector()

	topIt := top.Iterator()
	botIt := bot.Iterator()
	for topIt.Valid() || botIt.Valid() {
		idx := -1
		switch {
		case topIt.Valid() && botIt.Valid():
			idx = minInt(topIt.Index(), botIt.Index())
		case topIt.Valid():
			idx = topIt.Index()
		default:
			idx = botIt.Index()
		}

		var valTop, valBot float64
		if topIt.Valid() && topIt.Index() == idx {
			valTop = topIt.Value()
			topIt.Next()
		}
		if botIt.Valid() && botIt.Index() == idx {
			valBot = botIt.Value()
			botIt.Next()
		}

		newTopVal := c*valTop - s*valBot
		newBotVal := s*valTop + c*valBot
		if math.Abs(newTopVal) >= NumericalZero {
			newTop.Append(idx, newTopVal)
		}
		if math.Abs(newBotVal) >= NumericalZero {
			newBot.Append(idx, newBotVal)
		}
	}

	// By construction this entry is analytically zero; scrub any
	// residual numerical fuzz left by the rotation above.
	newBot.Remove(pivotCol)

	mat.rows[pivotRow] = newTop
	mat.rows[targetRow] = newBot
	return c, s
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
