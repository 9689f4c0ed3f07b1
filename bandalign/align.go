package bandalign

// Align computes an optimal global alignment of u against v whose path stays
// inside band, in space proportional to the band width.
//
// Algorithm outline:
//  1. Clamp band to [−|u|, |v|] and reject it if it cannot hold a path
//     from (0,0) to (|u|,|v|).
//  2. Allocate the crosspoint table, one entry per column of v.
//  3. Solve recursively: each pass finds where the optimal path crosses the
//     band's main diagonal; the regions between crossings are solved inside
//     narrower sub-bands until every column's entry row is known.
//  4. Reconstruct the operations from the table in one backward pass.
//
// The result's score under costs equals Distance(u, v, band, costs, …).
//
// Errors:
//   - ErrInvalidBand — the band violates ValidateBand after clamping.
//   - ErrBadCosts    — a cost is negative, or an alignment could overflow Cost.
//
// Both are reported before any computation. A panic from Align signals a
// broken internal invariant, never bad input.
//
// Complexity: O((|u|+|v|)·w) time per recursion level for band width w,
// O(|v| + w) memory.
func Align(u, v []byte, band Band, costs Costs) (*Alignment, error) {
	m, n := len(u), len(v)
	band = band.Clamp(m, n)
	if !ValidateBand(band, m, n) {
		return nil, ErrInvalidBand
	}
	if err := costs.ValidateFor(m, n); err != nil {
		return nil, err
	}

	tab, _ := align(u, v, band, costs)

	return &Alignment{U: u, V: v, Ops: reconstruct(tab, m)}, nil
}

// align runs the solver over a clamped, valid band and returns the finished
// crosspoint table together with the solver for inspection.
func align(u, v []byte, band Band, costs Costs) ([]crosspoint, *solver) {
	tab := make([]crosspoint, len(v)+1)
	for j := range tab {
		tab[j] = crosspoint{row: noPoint, edge: edgeUnknown, pred: noPoint}
	}
	tab[0].row = 0

	s := &solver{eval: newEvaluator(costs, band.Width())}
	s.solve(subproblem{
		u:    wholeWindow(u),
		v:    wholeWindow(v),
		band: band,
		edge: edgeUnknown,
	}, tab)

	return tab, s
}
