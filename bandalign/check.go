package bandalign

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/diagband/edist"
)

// GapSymbol is the byte reserved for gaps in rendered alignments; input
// sequences must not contain it.
const GapSymbol byte = 0xFF

// CheckBand returns the band Check aligns in: the minimal band widened by
// two diagonals above the end diagonal when V is longer, and by one diagonal
// below it otherwise.
func CheckBand(ulen, vlen int) Band {
	delta := vlen - ulen
	if delta > 0 {
		return Band{Left: 0, Right: delta + 2}
	}

	return Band{Left: delta - 1, Right: 0}
}

// Check cross-validates every computation of this package on one pair of
// sequences under unit costs:
//
//  1. LinearDistance and FullMatrixDistance agree inside CheckBand.
//  2. The score of Align inside CheckBand equals that distance.
//  3. LinearDistance over the full band equals the unbanded edit distance.
//
// Errors:
//   - ErrGapSymbol      — u or v contains GapSymbol.
//   - ErrOracleMismatch — a comparison failed; the message carries both values.
func Check(u, v []byte) error {
	if bytes.IndexByte(u, GapSymbol) >= 0 {
		return fmt.Errorf("check u: %w", ErrGapSymbol)
	}
	if bytes.IndexByte(v, GapSymbol) >= 0 {
		return fmt.Errorf("check v: %w", ErrGapSymbol)
	}

	costs := UnitCosts()
	band := CheckBand(len(u), len(v))

	lin := LinearDistance(u, v, band, costs)
	sq := FullMatrixDistance(u, v, band, costs)
	if lin != sq {
		return fmt.Errorf("%w: linear distance %d != full matrix distance %d", ErrOracleMismatch, lin, sq)
	}

	a, err := Align(u, v, band, costs)
	if err != nil {
		return fmt.Errorf("check align: %w", err)
	}
	if err = a.Validate(); err != nil {
		return fmt.Errorf("check align: %w", err)
	}
	if score := a.Score(costs); score != sq {
		return fmt.Errorf("%w: full matrix distance %d != alignment score %d", ErrOracleMismatch, sq, score)
	}

	full := LinearDistance(u, v, FullBand(len(u), len(v)), costs)
	ref, _, err := edist.Distance(u, v, nil)
	if err != nil {
		return fmt.Errorf("check edist: %w", err)
	}
	if full != Cost(ref) {
		return fmt.Errorf("%w: full band distance %d != edit distance %d", ErrOracleMismatch, full, ref)
	}

	return nil
}
