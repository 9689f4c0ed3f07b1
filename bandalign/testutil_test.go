package bandalign_test

import (
	"math/rand"

	"github.com/katalvlaran/diagband/bandalign"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the deterministic seed for generated cases.
	seedDet = int64(20150701)

	// randomCases is the number of generated (u, v, band, costs) cases.
	randomCases = 400

	// maxLen bounds the length of generated sequences.
	maxLen = 14

	// maxMargin bounds how far generated bands extend past the minimal band.
	maxMargin = 5
)

// dnaCase is one generated alignment input.
type dnaCase struct {
	u, v  []byte
	band  bandalign.Band
	costs bandalign.Costs
}

// randomSeq returns n symbols drawn from alphabet.
func randomSeq(rng *rand.Rand, n int, alphabet string) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[rng.Intn(len(alphabet))]
	}

	return out
}

// mutate derives a sequence from src with a few substitutions and indels,
// so that generated pairs look like overlapping reads rather than noise.
func mutate(rng *rand.Rand, src []byte, edits int, alphabet string) []byte {
	out := append([]byte(nil), src...)
	for e := 0; e < edits; e++ {
		pos := 0
		if len(out) > 0 {
			pos = rng.Intn(len(out) + 1)
		}
		switch rng.Intn(3) {
		case 0: // substitution
			if pos < len(out) {
				out[pos] = alphabet[rng.Intn(len(alphabet))]
			}
		case 1: // insertion
			out = append(out[:pos], append([]byte{alphabet[rng.Intn(len(alphabet))]}, out[pos:]...)...)
		case 2: // deletion
			if pos < len(out) {
				out = append(out[:pos], out[pos+1:]...)
			}
		}
	}

	return out
}

// randomCasesFor returns count deterministic cases: random or mutated pairs,
// valid bands of random extra width (sometimes exceeding the matrix), and
// random non-negative costs.
func randomCasesFor(count int) []dnaCase {
	const alphabet = "ACGT"
	rng := rand.New(rand.NewSource(seedDet))
	cases := make([]dnaCase, 0, count)
	for c := 0; c < count; c++ {
		u := randomSeq(rng, rng.Intn(maxLen+1), alphabet)
		var v []byte
		if rng.Intn(2) == 0 {
			v = mutate(rng, u, rng.Intn(4), alphabet)
		} else {
			v = randomSeq(rng, rng.Intn(maxLen+1), alphabet)
		}
		band := bandalign.MinimalBand(len(u), len(v), 0)
		band.Left -= rng.Intn(maxMargin + 1)
		band.Right += rng.Intn(maxMargin + 1)
		costs := bandalign.Costs{
			Match:    bandalign.Cost(rng.Intn(2)),
			Mismatch: bandalign.Cost(rng.Intn(4)),
			Gap:      bandalign.Cost(rng.Intn(3) + 1),
		}
		if c%5 == 0 {
			costs = bandalign.UnitCosts()
		}
		cases = append(cases, dnaCase{u: u, v: v, band: band, costs: costs})
	}

	return cases
}
