// Command bandalign aligns DNA reads inside a diagonal band of the edit
// matrix.
//
// Usage:
//
//	bandalign align -u AGTC -v AGC
//	bandalign distance --fasta pairs.fa --mode matrix --workers 8
//	bandalign check -u ACGTT -v ACTT
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bandalign:", err)
		os.Exit(1)
	}
}
