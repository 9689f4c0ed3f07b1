// Package diagband is a toolkit for optimal global alignment of sequence
// pairs whose edit path is known to stay close to a diagonal, such as
// overlapping reads of the same DNA region.
//
// 🚀 What is diagband?
//
//	A small library and command that bring together:
//		• Banded alignment in linear space: Align returns the full edit
//		  script while storing only O(|V| + band width) cells
//		• Two banded distance oracles: full matrix and one rolling column
//		• Unbanded edit distance as the reference for the banded code
//		• Rendering: CIGAR strings and three-line text alignments
//		• Self-check: all of the above cross-validated on any pair
//
// ✨ Why a band?
//
//   - Reads that differ by a few indels have their optimal path near the
//     diagonal j−i = |V|−|U|; a band of width w cuts the work from
//     O(|U|·|V|) to O((|U|+|V|)·w)
//   - The divide-and-conquer keeps memory linear, so long reads fit
//   - Pure Go, no cgo
//
// Packages:
//
//	bandalign/       — Band, Costs, Align, Distance, ValidateBand, Check
//	edist/           — unbanded edit distance (FullMatrix, TwoRows)
//	internal/config  — defaults, YAML file and BANDALIGN_* environment
//	internal/seqio   — FASTA records read as consecutive pairs
//	internal/batch   — bounded concurrent processing of many pairs
//	cmd/bandalign    — the command line: align, distance, check
//
// Quick ASCII example, band [−1, 1] over a 4×3 matrix:
//
//	      A  G  C
//	   .  .  .
//	A  .  .  .  .
//	G     .  .  .
//	T        .  .
//	C           .
//
//	go get github.com/katalvlaran/diagband/bandalign
package diagband
