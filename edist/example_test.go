package edist_test

import (
	"fmt"

	"github.com/katalvlaran/diagband/edist"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDistance
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Classic Levenshtein distance between two words.
//	  a = "kitten"
//	  b = "sitting"
//
// Options:
//   - DefaultOptions (Match=0, Mismatch=1, Gap=1)
//   - ReturnPath = true  (retrieve edit path)
//   - MemoryMode = FullMatrix (O(N·M) mem)
//
// Complexity: O(N·M) time, O(N·M) memory
func ExampleDistance() {
	opts := edist.DefaultOptions()
	opts.ReturnPath = true

	dist, path, err := edist.Distance([]byte("kitten"), []byte("sitting"), &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%d\npath=%v\n", dist, path)
	// Output:
	// distance=3
	// path=[X = = = X = I]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDistance_twoRows
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Distance only, for long reads where memory matters.
//
// Options:
//   - MemoryMode = TwoRows (O(M) mem), no path
//   - Gap = 2 (indels twice as expensive as substitutions)
func ExampleDistance_twoRows() {
	opts := edist.DefaultOptions()
	opts.MemoryMode = edist.TwoRows
	opts.Gap = 2

	dist, _, err := edist.Distance([]byte("GATTACA"), []byte("GACTATA"), &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%d\n", dist)
	// Output:
	// distance=2
}
