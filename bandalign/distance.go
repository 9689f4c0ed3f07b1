package bandalign

// Distance computes the optimal cost of aligning u against v with every
// path restricted to band, without building the alignment.
//
// mode selects the oracle: FullMatrix fills the whole edit matrix, Linear
// rolls a single band-wide column. Both return the same value for the same
// input. A band violating ValidateBand yields (Unreachable, nil).
//
// Errors:
//   - ErrBadCosts — a cost is negative, or an alignment could overflow Cost.
//   - ErrBadMode  — mode is neither FullMatrix nor Linear.
//
// Complexity: O((|u|+|v|)·w) time for w = band width; memory O(|u|·|v|)
// (FullMatrix) or O(w) (Linear).
func Distance(u, v []byte, band Band, costs Costs, mode MemoryMode) (Cost, error) {
	if err := costs.ValidateFor(len(u), len(v)); err != nil {
		return Unreachable, err
	}
	switch mode {
	case FullMatrix:
		return FullMatrixDistance(u, v, band, costs), nil
	case Linear:
		return LinearDistance(u, v, band, costs), nil
	default:
		return Unreachable, ErrBadMode
	}
}

// FullMatrixDistance is the square-space oracle. Cells outside the band keep
// the value Unreachable.
//
// Algorithm outline:
//  1. E[0][0] = 0; E[i][0] = i·gap down to the band's lowest row in column 0.
//  2. For each column j and each row i inside the band window:
//     E[i][j] = min(E[i][j−1]+gap, E[i−1][j]+gap, E[i−1][j−1]+subst(u[i−1], v[j−1])).
//  3. Return E[ulen][vlen].
func FullMatrixDistance(u, v []byte, band Band, costs Costs) Cost {
	m, n := len(u), len(v)
	if !ValidateBand(band, m, n) {
		return Unreachable
	}
	band = band.Clamp(m, n)

	e := make([][]Cost, m+1)
	for i := range e {
		e[i] = make([]Cost, n+1)
		for j := range e[i] {
			e[i][j] = Unreachable
		}
	}

	// first column
	e[0][0] = 0
	_, hi := band.rows(0, m)
	for i := 1; i <= hi; i++ {
		e[i][0] = e[i-1][0].Add(costs.Gap)
	}

	// next columns
	var lo int
	for j := 1; j <= n; j++ {
		lo, hi = band.rows(j, m)
		for i := lo; i <= hi; i++ {
			best := e[i][j-1].Add(costs.Gap)
			if i > 0 {
				best = min(best, e[i-1][j-1].Add(costs.subst(u[i-1], v[j-1])))
				best = min(best, e[i-1][j].Add(costs.Gap))
			}
			e[i][j] = best
		}
	}

	return e[m][n]
}

// LinearDistance is the linear-space oracle. It keeps one column of
// Right−Left+1 cells, slot k holding the cell of diagonal Left+k. Rows of a
// column are processed top-down, so while cell (i, j) is computed
//
//	slot k−1 still holds the west cell (i, j−1),
//	slot k   still holds the northwest cell (i−1, j−1),
//	slot k+1 already holds the north cell (i−1, j).
func LinearDistance(u, v []byte, band Band, costs Costs) Cost {
	m, n := len(u), len(v)
	if !ValidateBand(band, m, n) {
		return Unreachable
	}
	band = band.Clamp(m, n)

	col := make([]Cost, band.Width())
	for k := range col {
		col[k] = Unreachable
	}

	// first column: slot of (i, 0) is −i−Left
	base := -band.Left
	col[base] = 0
	_, hi := band.rows(0, m)
	for i := 1; i <= hi; i++ {
		col[base-i] = col[base-i+1].Add(costs.Gap)
	}

	var lo, k int
	var best Cost
	for j := 1; j <= n; j++ {
		lo, hi = band.rows(j, m)
		for i := lo; i <= hi; i++ {
			k = j - i - band.Left
			best = Unreachable
			if k > 0 {
				best = col[k-1].Add(costs.Gap)
			}
			if i > 0 {
				best = min(best, col[k].Add(costs.subst(u[i-1], v[j-1])))
				if i > lo {
					best = min(best, col[k+1].Add(costs.Gap))
				}
			}
			col[k] = best
		}
	}

	return col[n-m-band.Left]
}
