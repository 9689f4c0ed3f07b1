package bandalign

// evaluator computes one forward pass over a subproblem and records where
// the optimal paths cross the band's main diagonal.
//
// It owns two rolling columns of the band width: cost holds the edit
// distance of each cell of the current column, last holds the column of the
// most recent main-diagonal crossing on the optimal path into that cell
// (noPoint if the path has not crossed yet). Both are indexed by diagonal
// slot k = j−i−Left, as in LinearDistance. The columns are sized for the
// top-level band and reused by every subproblem, whose bands are never wider.
type evaluator struct {
	costs Costs
	cost  []Cost
	last  []int
}

func newEvaluator(costs Costs, width int) *evaluator {
	return &evaluator{
		costs: costs,
		cost:  make([]Cost, width),
		last:  make([]int, width),
	}
}

// firstColumn initialises column 0 of p: gap costs down to the lowest band
// row, and the seed crosspoint if the main diagonal starts inside column 0.
func (e *evaluator) firstColumn(p subproblem, tab []crosspoint) {
	var (
		b      = p.band
		d      = b.Diagonal()
		base   = -b.Left
		_, hi  = b.rows(0, p.u.n)
		from   = noPoint
		c      Cost
		via    edge
		rowIdx int
	)
	for rowIdx = 0; rowIdx <= hi; rowIdx++ {
		if rowIdx == 0 {
			c, via = 0, p.edge
		} else {
			c, via = c.Add(e.costs.Gap), edgeDelete
		}
		if rowIdx == -d {
			tab[0] = crosspoint{row: p.u.start + rowIdx, edge: via, pred: noPoint}
			from = 0
		}
		e.cost[base-rowIdx] = c
		e.last[base-rowIdx] = from
	}
}

// evaluate runs the crosspoint pass over p and returns the column of the
// last main-diagonal crossing on the optimal path to (ulen, vlen), or noPoint
// when that path never touches the main diagonal.
//
// tab must have p.v.n+1 entries. Every reachable main-diagonal cell (i, j)
// overwrites tab[j] with its row, the move that entered it and the previous
// crossing on its optimal path. Ties are broken replace > deletion >
// insertion, which fixes the reported path among equal-cost ones.
//
// Complexity: O((ulen+vlen)·w) time, no allocation.
func (e *evaluator) evaluate(p subproblem, tab []crosspoint) int {
	var (
		m, n   = p.u.n, p.v.n
		b      = p.band
		d      = b.Diagonal()
		gap    = e.costs.Gap
		lo, hi int
		k      int
		best   Cost
		c      Cost
		from   int
		via    edge
		vj     byte
	)

	e.firstColumn(p, tab)

	for j := 1; j <= n; j++ {
		lo, hi = b.rows(j, m)
		vj = p.v.at(j - 1)
		for i := lo; i <= hi; i++ {
			k = j - i - b.Left
			best, from, via = Unreachable, noPoint, edgeUnknown

			// insertion from (i, j−1)
			if k > 0 {
				best, from, via = e.cost[k-1].Add(gap), e.last[k-1], edgeInsert
			}
			if i > 0 {
				// deletion from (i−1, j)
				if i > lo {
					if c = e.cost[k+1].Add(gap); c != Unreachable && c <= best {
						best, from, via = c, e.last[k+1], edgeDelete
					}
				}
				// replacement from (i−1, j−1)
				if c = e.cost[k].Add(e.costs.subst(p.u.at(i-1), vj)); c != Unreachable && c <= best {
					best, from, via = c, e.last[k], edgeReplace
				}
			}

			switch {
			case best == Unreachable:
				from = noPoint
			case j-i == d:
				tab[j] = crosspoint{row: p.u.start + i, edge: via, pred: from}
				from = j
			}
			e.cost[k] = best
			e.last[k] = from
		}
	}

	return e.last[n-m-b.Left]
}
