// Package bandalign defines the band, cost model and edit script types.
package bandalign

import "math"

// Cost is an alignment cost. The value Unreachable stands for +∞ and marks
// cells that no path inside the band can reach.
type Cost int

// Unreachable is the saturating +∞ of the cost arithmetic.
const Unreachable Cost = math.MaxInt

// Add returns c+d. The sum saturates: if either operand is Unreachable, or
// the sum would overflow, the result is Unreachable.
func (c Cost) Add(d Cost) Cost {
	if c == Unreachable || d == Unreachable {
		return Unreachable
	}
	if d > 0 && c > Unreachable-d {
		return Unreachable
	}

	return c + d
}

// IsUnreachable reports whether c is the +∞ sentinel.
func (c Cost) IsUnreachable() bool { return c == Unreachable }

// Costs is the unit-gap cost model: one cost for aligned equal symbols, one
// for aligned different symbols and one shared by insertions and deletions.
type Costs struct {
	Match    Cost
	Mismatch Cost
	Gap      Cost
}

// UnitCosts returns the Levenshtein model {Match: 0, Mismatch: 1, Gap: 1}.
func UnitCosts() Costs {
	return Costs{Match: 0, Mismatch: 1, Gap: 1}
}

// Validate returns ErrBadCosts unless every cost is finite and non-negative.
func (c Costs) Validate() error {
	for _, x := range [...]Cost{c.Match, c.Mismatch, c.Gap} {
		if x < 0 || x == Unreachable {
			return ErrBadCosts
		}
	}

	return nil
}

// ValidateFor is Validate plus an overflow bound: no alignment of a ulen-
// against a vlen-symbol sequence may cost Unreachable or more. A path has at
// most ulen+vlen operations, each costing at most max(Match, Mismatch, Gap).
func (c Costs) ValidateFor(ulen, vlen int) error {
	if err := c.Validate(); err != nil {
		return err
	}
	steps := Cost(ulen + vlen)
	if worst := max(c.Match, c.Mismatch, c.Gap); steps > 0 && worst > (Unreachable-1)/steps {
		return ErrBadCosts
	}

	return nil
}

// subst returns the cost of aligning a against b.
func (c Costs) subst(a, b byte) Cost {
	if a == b {
		return c.Match
	}

	return c.Mismatch
}

// Band selects the diagonals Left ≤ j−i ≤ Right of the (ulen+1)×(vlen+1)
// edit matrix, where i indexes U (rows) and j indexes V (columns).
//
// A band admits a global alignment only if it contains both the start
// diagonal 0 and the end diagonal vlen−ulen; see ValidateBand.
type Band struct {
	Left  int
	Right int
}

// FullBand returns the band covering the whole matrix.
func FullBand(ulen, vlen int) Band {
	return Band{Left: -ulen, Right: vlen}
}

// Diagonal returns the band's main diagonal ⌊(Left+Right)/2⌋.
func (b Band) Diagonal() int {
	return (b.Left + b.Right) >> 1
}

// Width returns the number of diagonals in the band.
func (b Band) Width() int {
	return b.Right - b.Left + 1
}

// Clamp bounds the band to the diagonals that exist in a ulen×vlen matrix.
func (b Band) Clamp(ulen, vlen int) Band {
	return Band{Left: max(b.Left, -ulen), Right: min(b.Right, vlen)}
}

// MemoryMode selects the storage of a distance oracle.
//
//   - FullMatrix — keep the whole (ulen+1)×(vlen+1) matrix. Memory: O(ulen·vlen).
//   - Linear     — keep one column of Right−Left+1 cells. Memory: O(band width).
type MemoryMode int

const (
	// FullMatrix stores every cell of the edit matrix.
	FullMatrix MemoryMode = iota

	// Linear stores a single rolling column across the band.
	Linear
)

// Op is one column of an alignment.
type Op uint8

const (
	// OpReplace aligns U[i] with V[j]; a match when the symbols are equal.
	OpReplace Op = iota
	// OpInsert consumes V[j] only.
	OpInsert
	// OpDelete consumes U[i] only.
	OpDelete
)

// String returns a one-word name of the operation.
func (o Op) String() string {
	switch o {
	case OpReplace:
		return "replace"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// edge labels how the optimal path entered a crosspoint cell.
type edge uint8

const (
	edgeReplace edge = iota // from the northwest neighbour
	edgeDelete              // from the north neighbour
	edgeInsert              // from the west neighbour
	edgeUnknown             // root of the top-level call
)

// noPoint marks an undetermined row or an absent predecessor.
const noPoint = -1

// crosspoint is one entry of the crosspoint table, indexed by column.
type crosspoint struct {
	row  int  // matrix row of the path in this column
	edge edge // move that entered (row, column)
	pred int  // column of the previous crosspoint, or noPoint
}

// window is a read-only view of seq[start : start+n], addressed relative to start.
type window struct {
	seq   []byte
	start int
	n     int
}

func wholeWindow(seq []byte) window {
	return window{seq: seq, start: 0, n: len(seq)}
}

// at returns the i-th symbol of the window.
func (w window) at(i int) byte { return w.seq[w.start+i] }

// sub returns the n symbols starting at offset from w.start.
func (w window) sub(offset, n int) window {
	return window{seq: w.seq, start: w.start + offset, n: n}
}

// subproblem is an alignment of two windows inside a band given in the
// windows' local coordinates. edge is the move that entered the origin.
type subproblem struct {
	u, v window
	band Band
	edge edge
}
