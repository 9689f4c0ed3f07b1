// Package bandalign computes optimal global alignments of two byte sequences
// whose edit path is known to lie inside a diagonal band of the edit matrix,
// using memory proportional to the band width instead of the matrix size.
//
// 🚀 What is a banded alignment?
//
//	Cell (i, j) of the edit matrix pairs prefix U[:i] with prefix V[:j].
//	A band keeps only the diagonals Left ≤ j−i ≤ Right. When two reads are
//	known to differ by few indels, a narrow band holds the optimal path and
//	the work drops from O(|U|·|V|) to O((|U|+|V|)·width).
//
//	    j−i = Left          j−i = Right
//	       \ . . . . .\
//	        \ . . . . .\
//	         \ . . . . .\
//
// ✨ Key features:
//   - Align: banded Hirschberg-style recursion, O(|V| + width) memory,
//     returns the full edit script
//   - Distance: two independent oracles, FullMatrix and Linear (one rolling
//     column), for the score only
//   - ValidateBand / MinimalBand to choose a band before aligning
//   - saturating Cost arithmetic with the Unreachable sentinel
//   - Check: cross-validates all of the above on one pair
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/diagband/bandalign"
//
//	band := bandalign.MinimalBand(len(u), len(v), 2)
//	aln, err := bandalign.Align(u, v, band, bandalign.UnitCosts())
//	if err != nil {
//	  // ErrInvalidBand or ErrBadCosts
//	}
//	fmt.Println(aln.Cigar())
//
// How the recursion works:
//
//	A forward pass over the band records, for each column, where the
//	optimal path crosses the band's main diagonal and which crossing came
//	before. Between two consecutive crossings the path stays on one side of
//	the diagonal, so each gap is solved again inside the half-band on that
//	side. Crossings are kept in a table with one entry per column of V; the
//	finished table is turned into operations in one backward pass.
//
// Performance:
//
//   - Time:   O((|U|+|V|)·width) per recursion level
//   - Memory: O(|V| + width) for Align, O(width) for the Linear oracle
package bandalign
