// Package edist defines options, modes and steps for edit distance.
package edist

// MemoryMode controls how Distance stores its DP matrix.
//
//   - FullMatrix — keep the entire (n+1)x(m+1) matrix in memory.
//     Allows distance + full backtrace for the optimal edit path.
//     Memory: O(n·m).
//
//   - TwoRows    — only keep two rows (current and previous).
//     Reduces memory to O(m), but cannot recover the path.
//     Use when you only need the distance.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support path recovery, uses O(N·M) memory.
	FullMatrix MemoryMode = iota

	// TwoRows mode: keep only two rows, no path recovery, uses O(M) memory.
	TwoRows
)

// Options configures Distance.
//
// Fields:
//   - Match      — cost of aligning two equal symbols.
//   - Mismatch   — cost of aligning two different symbols.
//   - Gap        — cost of one inserted or deleted symbol.
//   - ReturnPath — if true, Distance will backtrack and return the edit path.
//     Requires MemoryMode=FullMatrix.
//   - MemoryMode — choose FullMatrix or TwoRows storage.
//
// All costs must be non-negative.
type Options struct {
	Match      int
	Mismatch   int
	Gap        int
	ReturnPath bool
	MemoryMode MemoryMode
}

// DefaultOptions returns the Levenshtein model {Match: 0, Mismatch: 1, Gap: 1}
// in FullMatrix mode without path recovery.
func DefaultOptions() Options {
	return Options{
		Match:      0,
		Mismatch:   1,
		Gap:        1,
		ReturnPath: false,
		MemoryMode: FullMatrix,
	}
}

// Step is one operation of an edit path.
type Step uint8

const (
	// StepMatch aligns two equal symbols.
	StepMatch Step = iota
	// StepMismatch aligns two different symbols.
	StepMismatch
	// StepInsert consumes one symbol of b.
	StepInsert
	// StepDelete consumes one symbol of a.
	StepDelete
)

// String returns the extended CIGAR letter of the step.
func (s Step) String() string {
	switch s {
	case StepMatch:
		return "="
	case StepMismatch:
		return "X"
	case StepInsert:
		return "I"
	case StepDelete:
		return "D"
	default:
		return "?"
	}
}
