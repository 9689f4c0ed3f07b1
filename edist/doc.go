// Package edist computes unrestricted edit distances between byte
// sequences, with optional alignment path and memory optimizations.
//
// 🚀 What is the edit distance?
//
//	The edit distance is the cheapest way to turn sequence a into sequence b
//	with three operations, each with its own cost:
//	  • keep or substitute a symbol (Match / Mismatch)
//	  • insert a symbol of b         (Gap)
//	  • delete a symbol of a         (Gap)
//	With the unit model {0, 1, 1} it is the Levenshtein distance.
//
// ✨ Key features:
//   - full-matrix mode: exact O(N·M) time & memory, supports path recovery
//   - two-rows mode: O(M) memory, distance only (choose via MemoryMode)
//   - arbitrary non-negative match/mismatch/gap costs
//   - on-demand edit path (ReturnPath=true)
//
// No band is applied: every cell of the matrix is considered. The package is
// the reference the banded oracles of package bandalign are checked against
// when their band covers the whole matrix.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/diagband/edist"
//
//	opts := edist.DefaultOptions()
//	opts.ReturnPath = true
//
//	dist, path, err := edist.Distance(a, b, &opts)
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows)
package edist
