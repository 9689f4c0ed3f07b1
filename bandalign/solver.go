package bandalign

import "fmt"

// solver drives the banded divide-and-conquer over one top-level call.
type solver struct {
	eval *evaluator

	// narrowings counts band narrowings in the current solve frame and
	// maxNarrowings the largest count seen by any frame.
	maxNarrowings int
}

// touch is a main-diagonal crossing of the optimal path, copied out of the
// crosspoint table before any recursive call rewrites it.
type touch struct {
	col  int // local column
	row  int // global row
	edge edge
}

// internalf reports a broken solver invariant.
func internalf(format string, args ...any) {
	panic(fmt.Sprintf("bandalign: internal: "+format, args...))
}

// solve fills tab[1:] with the entry cell of the optimal path in every
// column of p: the topmost row of the path in that column and the move
// (replace or insert) that entered it. tab has p.v.n+1 entries; tab[0]
// belongs to the caller and is left as found.
//
// Steps:
//  1. Base cases: no rows left (pure insertions) or no columns left.
//  2. Evaluate crosspoints on the band's main diagonal d. If the path never
//     touches d, drop the outermost diagonal on the side of d away from the
//     path and evaluate again.
//  3. Copy the chain of crossings into a local list and restore tab[0].
//  4. Between consecutive crossings, and before the first and after the last,
//     the path stays strictly on one side of d. Each such region is solved
//     recursively inside the part of the band on that side.
//  5. Crossings entered by replace or insert are entry cells; store them.
func (s *solver) solve(p subproblem, tab []crosspoint) {
	m, n := p.u.n, p.v.n
	if m == 0 {
		for j := 1; j <= n; j++ {
			tab[j] = crosspoint{row: p.u.start, edge: edgeInsert, pred: j - 1}
		}
		return
	}
	if n == 0 {
		return
	}

	p.band = p.band.Clamp(m, n)
	if !ValidateBand(p.band, m, n) {
		internalf("subproblem %dx%d with band [%d,%d]", m, n, p.band.Left, p.band.Right)
	}

	saved := tab[0]
	last := s.eval.evaluate(p, tab)
	narrowings := 0
	for last == noPoint {
		// The path lies strictly on the side of d that holds diagonal 0,
		// so the farthest diagonal on the other side is unused.
		d := p.band.Diagonal()
		switch {
		case d < 0:
			p.band.Left++
		case d > 0:
			p.band.Right--
		default:
			internalf("main diagonal 0 has no crossing")
		}
		narrowings++
		last = s.eval.evaluate(p, tab)
	}
	s.maxNarrowings = max(s.maxNarrowings, narrowings)

	chain := s.chain(tab, last)
	tab[0] = saved

	var (
		d     = p.band.Diagonal()
		first = chain[0]
		final = chain[len(chain)-1]
	)

	s.head(p, tab, d, first)
	for idx := 1; idx < len(chain); idx++ {
		s.interior(p, tab, d, chain[idx-1], chain[idx])
	}
	s.tail(p, tab, d, final)

	for _, t := range chain {
		if t.col > 0 && (t.edge == edgeReplace || t.edge == edgeInsert) {
			tab[t.col] = crosspoint{row: t.row, edge: t.edge, pred: t.col - 1}
		}
	}
}

// chain follows the predecessor links from column last and returns the
// crossings in increasing column order.
func (s *solver) chain(tab []crosspoint, last int) []touch {
	var out []touch
	for c := last; c != noPoint; c = tab[c].pred {
		out = append(out, touch{col: c, row: tab[c].row, edge: tab[c].edge})
		if tab[c].pred != noPoint && tab[c].pred >= c {
			internalf("crosspoint %d points forward to %d", c, tab[c].pred)
		}
	}
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}

	return out
}

// head solves the region from the origin of p to its first crossing.
func (s *solver) head(p subproblem, tab []crosspoint, d int, first touch) {
	if first.col == 0 {
		// Column 0 down to the crossing: deletions only.
		return
	}
	rows := first.row - p.u.start
	switch first.edge {
	case edgeInsert:
		// below the diagonal: origin to (rows, col−1), then insert
		s.solve(subproblem{
			u:    p.u.sub(0, rows),
			v:    p.v.sub(0, first.col-1),
			band: Band{Left: p.band.Left, Right: d - 1},
			edge: p.edge,
		}, tab[:first.col])
	case edgeDelete:
		// above the diagonal: origin to (rows−1, col), then delete
		s.solve(subproblem{
			u:    p.u.sub(0, rows-1),
			v:    p.v.sub(0, first.col),
			band: Band{Left: d + 1, Right: p.band.Right},
			edge: p.edge,
		}, tab[:first.col+1])
	default:
		internalf("first crossing at column %d entered by edge %d", first.col, first.edge)
	}
}

// interior solves the region strictly between crossings a and b.
func (s *solver) interior(p subproblem, tab []crosspoint, d int, a, b touch) {
	size := b.col - a.col - 1
	switch b.edge {
	case edgeReplace:
		if size != 0 {
			internalf("replace crossing %d follows crossing %d", b.col, a.col)
		}
	case edgeInsert:
		// below: delete out of a, solve, insert into b
		s.solve(subproblem{
			u:    p.u.sub(a.row-p.u.start+1, size),
			v:    p.v.sub(a.col, size),
			band: Band{Left: p.band.Left - d + 1, Right: 0},
			edge: edgeDelete,
		}, tab[a.col:b.col])
	case edgeDelete:
		// above: insert out of a, solve, delete into b
		s.solve(subproblem{
			u:    p.u.sub(a.row-p.u.start, size),
			v:    p.v.sub(a.col+1, size),
			band: Band{Left: 0, Right: p.band.Right - d - 1},
			edge: edgeInsert,
		}, tab[a.col+1:b.col+1])
		tab[a.col+1] = crosspoint{row: a.row, edge: edgeInsert, pred: a.col}
	default:
		internalf("crossing %d entered by edge %d", b.col, b.edge)
	}
}

// tail solves the region from the last crossing to the end of p.
func (s *solver) tail(p subproblem, tab []crosspoint, d int, last touch) {
	m, n := p.u.n, p.v.n
	if last.col == n {
		// Column n below the crossing: deletions only.
		return
	}
	rows := last.row - p.u.start
	switch delta := n - m; {
	case delta > d:
		// above: insert out of the crossing, then solve to the end
		s.solve(subproblem{
			u:    p.u.sub(rows, m-rows),
			v:    p.v.sub(last.col+1, n-last.col-1),
			band: Band{Left: 0, Right: p.band.Right - d - 1},
			edge: edgeInsert,
		}, tab[last.col+1:])
		tab[last.col+1] = crosspoint{row: last.row, edge: edgeInsert, pred: last.col}
	case delta < d:
		// below: delete out of the crossing, then solve to the end
		s.solve(subproblem{
			u:    p.u.sub(rows+1, m-rows-1),
			v:    p.v.sub(last.col, n-last.col),
			band: Band{Left: p.band.Left - d + 1, Right: 0},
			edge: edgeDelete,
		}, tab[last.col:])
	default:
		internalf("end diagonal %d is the main diagonal but the last crossing is column %d", d, last.col)
	}
}
