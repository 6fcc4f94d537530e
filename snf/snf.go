package snf

import "github.com/katalvlaran/cubhom/assembler"

// SmithNormalForm diagonalizes m over ℤ via iterative extended-Euclid
// row/column elimination, returning the nonzero diagonal entries (in the
// order produced) and the matrix rank. diag forms a divisibility chain
// d_1 | d_2 | ... | d_rank, the standard invariant-factor decomposition.
// m is not modified; the elimination runs on a clone.
// Complexity: O(min(rows,cols) * rows * cols) amortized across fixups.
func SmithNormalForm(m *assembler.IntMatrix) (diag []int64, rank int, err error) {
	if m == nil {
		return nil, 0, ErrNilMatrix
	}
	work := m.Clone()
	rows, cols := work.Rows(), work.Cols()

	t := 0
	for t < rows && t < cols {
		if !movePivot(work, t) {
			break // remaining submatrix is all zero
		}
		eliminateAround(work, t)
		t++
	}

	diag = make([]int64, t)
	for i := 0; i < t; i++ {
		v, _ := work.At(i, i)
		if v < 0 {
			v = -v
		}
		diag[i] = v
	}
	return diag, t, nil
}

// movePivot finds a nonzero entry in the submatrix [t:, t:] and swaps it
// into position (t, t). Returns false if the submatrix is entirely zero.
func movePivot(m *assembler.IntMatrix, t int) bool {
	for i := t; i < m.Rows(); i++ {
		for j := t; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			if v != 0 {
				m.SwapRows(t, i)
				m.SwapCols(t, j)
				return true
			}
		}
	}
	return false
}

// eliminateAround clears column t below row t and row t right of column t,
// then repeatedly folds in any submatrix entry the pivot fails to divide,
// until the pivot at (t, t) divides every remaining entry.
func eliminateAround(m *assembler.IntMatrix, t int) {
	for {
		// Clear column t below row t and row t right of column t. Either
		// step can reintroduce a nonzero in the other, so repeat both until
		// a full pass changes nothing.
		for {
			again := false
			for i := t + 1; i < m.Rows(); i++ {
				if v, _ := m.At(i, t); v != 0 {
					combineRowsGCD(m, t, i)
					again = true
				}
			}
			for j := t + 1; j < m.Cols(); j++ {
				if v, _ := m.At(t, j); v != 0 {
					combineColsGCD(m, t, j)
					again = true
				}
			}
			if !again {
				break
			}
		}

		pivot, _ := m.At(t, t)
		if pivot == 0 {
			return
		}
		i, _, found := findNonDivisible(m, t, pivot)
		if !found {
			return
		}
		m.CombineRows(t, i, 1, 1, 0, 1) // fold row i into the pivot row, then re-clear
	}
}

// findNonDivisible locates an entry in the submatrix [t:, t:] not evenly
// divisible by pivot.
func findNonDivisible(m *assembler.IntMatrix, t int, pivot int64) (i, j int, found bool) {
	for i := t; i < m.Rows(); i++ {
		for j := t; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			if v%pivot != 0 {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// combineRowsGCD zeroes m[i][t] using the column-t entries of rows t and i
// via the extended-Euclid unimodular combination.
func combineRowsGCD(m *assembler.IntMatrix, t, i int) {
	a, _ := m.At(t, t)
	b, _ := m.At(i, t)
	g, x, y := extGCD(a, b)
	if g == 0 {
		return
	}
	p, q := a/g, b/g
	m.CombineRows(t, i, x, y, -q, p)
}

// combineColsGCD zeroes m[t][j] using the row-t entries of columns t and j
// via the extended-Euclid unimodular combination.
func combineColsGCD(m *assembler.IntMatrix, t, j int) {
	a, _ := m.At(t, t)
	b, _ := m.At(t, j)
	g, x, y := extGCD(a, b)
	if g == 0 {
		return
	}
	p, q := a/g, b/g
	m.CombineCols(t, j, x, y, -q, p)
}

// extGCD returns (g, x, y) with a*x + b*y = g = gcd(a, b), g >= 0.
// When a divides b it returns x = ±1, y = 0, so the pivot row/column is only
// rescaled and the partner row/column absorbs the elimination.
func extGCD(a, b int64) (g, x, y int64) {
	if a != 0 && b%a == 0 {
		if a < 0 {
			return -a, -1, 0
		}
		return a, 1, 0
	}
	if b == 0 {
		if a < 0 {
			return -a, -1, 0
		}
		return a, 1, 0
	}
	g, x1, y1 := extGCD(b, a%b)
	return g, y1, x1 - (a/b)*y1
}
