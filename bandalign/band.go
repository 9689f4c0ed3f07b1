package bandalign

// ValidateBand reports whether band can hold a global alignment of a
// ulen-symbol U against a vlen-symbol V, i.e. whether
//
//	band.Left ≤ min(0, vlen−ulen)  and  band.Right ≥ max(0, vlen−ulen).
//
// Negative lengths are never valid. Callers choose a band with this check
// before committing to Align.
//
// Complexity: O(1).
func ValidateBand(band Band, ulen, vlen int) bool {
	if ulen < 0 || vlen < 0 {
		return false
	}
	delta := vlen - ulen

	return band.Left <= min(0, delta) && band.Right >= max(0, delta)
}

// MinimalBand returns the narrowest band around the diagonals 0 and
// vlen−ulen, widened by margin diagonals on both sides.
func MinimalBand(ulen, vlen, margin int) Band {
	delta := vlen - ulen
	margin = max(margin, 0)

	return Band{Left: min(0, delta) - margin, Right: max(0, delta) + margin}
}

// rows returns the band window [lo, hi] of rows in column j of a
// ulen-row matrix. The band is assumed clamped and valid, so lo ≤ hi.
func (b Band) rows(j, ulen int) (lo, hi int) {
	return max(0, j-b.Right), min(ulen, j-b.Left)
}
