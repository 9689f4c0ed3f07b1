package edist

import "errors"

// Distance — edit distance
//
// Description:
//
//	Distance measures how many (weighted) edit operations are needed to
//	turn a into b. It is the unrestricted counterpart of a banded
//	alignment: every cell of the DP matrix is reachable.
//
// Algorithm Outline (Full-Matrix):
//  1. Let n = len(a), m = len(b). Allocate (n+1)x(m+1) DP matrix D.
//  2. Initialize:
//     D[0][0] = 0
//     D[i][0] = i·Gap for i=1..n
//     D[0][j] = j·Gap for j=1..m
//  3. For i = 1..n:
//     For j = 1..m:
//     sub   = Match if a[i-1]==b[j-1] else Mismatch
//     del   = D[i-1][j]   + Gap
//     ins   = D[i][j-1]   + Gap
//     diag  = D[i-1][j-1] + sub
//     D[i][j] = min(del, ins, diag)
//  4. distance = D[n][m].
//  5. If ReturnPath && MemoryMode==FullMatrix, backtrack from (n,m) to (0,0)
//     preferring the diagonal, then deletion, then insertion.
//
// Memory Modes:
//   - FullMatrix — store full D, support ReturnPath. Memory: O(n·m).
//   - TwoRows    — store only two rows (current & previous). Memory: O(m).
//     ReturnPath is not supported.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m) (FullMatrix) or O(m) (TwoRows)
//
// Errors:
//   - ErrBadInput         — if a cost is negative or the mode is unknown.
//   - ErrPathNeedsMatrix  — if ReturnPath=true with TwoRows mode.
var (
	// ErrBadInput indicates invalid options.
	ErrBadInput = errors.New("edist: costs must be non-negative and mode known")

	// ErrPathNeedsMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsMatrix = errors.New("edist: ReturnPath requires MemoryMode=FullMatrix")
)

// Distance computes the edit distance between a and b.
// Returns (distance, path, error). A nil opts means DefaultOptions().
//
// If opts.ReturnPath is true, opts.MemoryMode must be FullMatrix.
//
// Example:
//
//	opts := edist.DefaultOptions()
//	opts.ReturnPath = true
//	dist, path, err := edist.Distance([]byte("kitten"), []byte("sitting"), &opts)
func Distance(a, b []byte, opts *Options) (distance int, path []Step, err error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Match < 0 || o.Mismatch < 0 || o.Gap < 0 {
		return 0, nil, ErrBadInput
	}
	if o.MemoryMode != FullMatrix && o.MemoryMode != TwoRows {
		return 0, nil, ErrBadInput
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}

	n, m := len(a), len(b)

	// Prepare DP storage
	var dp [][]int
	if o.MemoryMode == FullMatrix {
		dp = make([][]int, n+1)
		for i := range dp {
			dp[i] = make([]int, m+1)
		}
	} else {
		dp = make([][]int, 2)
		dp[0] = make([]int, m+1)
		dp[1] = make([]int, m+1)
	}

	// Initialize first row
	for j := 1; j <= m; j++ {
		dp[0][j] = j * o.Gap
	}

	// Fill DP
	for i := 1; i <= n; i++ {
		curr, prev := i, i-1
		if o.MemoryMode == TwoRows {
			curr, prev = i%2, (i-1)%2
		}
		dp[curr][0] = i * o.Gap
		for j := 1; j <= m; j++ {
			del := dp[prev][j] + o.Gap
			ins := dp[curr][j-1] + o.Gap
			diag := dp[prev][j-1] + o.subst(a[i-1], b[j-1])
			dp[curr][j] = min(del, ins, diag)
		}
	}

	// Extract final distance
	if o.MemoryMode == FullMatrix {
		distance = dp[n][m]
	} else {
		distance = dp[n%2][m]
	}

	// Backtrack path if requested
	if o.ReturnPath {
		path = backtrack(a, b, dp, o)
	}

	return distance, path, nil
}

// backtrack walks the full matrix from (n,m) to (0,0) and returns the steps
// in forward order.
func backtrack(a, b []byte, dp [][]int, o Options) []Step {
	i, j := len(a), len(b)
	path := make([]Step, 0, i+j)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && dp[i][j] == dp[i-1][j-1]+o.subst(a[i-1], b[j-1]):
			if a[i-1] == b[j-1] {
				path = append(path, StepMatch)
			} else {
				path = append(path, StepMismatch)
			}
			i--
			j--
		case i > 0 && dp[i][j] == dp[i-1][j]+o.Gap:
			path = append(path, StepDelete)
			i--
		default:
			path = append(path, StepInsert)
			j--
		}
	}
	// reverse path in-place
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// subst returns the cost of aligning x against y.
func (o Options) subst(x, y byte) int {
	if x == y {
		return o.Match
	}

	return o.Mismatch
}
