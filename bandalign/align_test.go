package bandalign_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/diagband/bandalign"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAlign_DeleteOne is the canonical small case: one deletion of T.
func TestAlign_DeleteOne(t *testing.T) {
	u, v := []byte("AGTC"), []byte("AGC")

	a, err := bandalign.Align(u, v, bandalign.Band{Left: -1, Right: 0}, bandalign.UnitCosts())
	require.NoError(t, err)

	assert.Equal(t, []bandalign.Op{
		bandalign.OpReplace, bandalign.OpReplace, bandalign.OpDelete, bandalign.OpReplace,
	}, a.Ops)
	assert.Equal(t, bandalign.Cost(1), a.Score(bandalign.UnitCosts()))
	assert.Equal(t, "2=1D1=", a.Cigar())
	assert.Equal(t, "AGTC\n|| |\nAG-C", a.String())

	r, ins, del := a.Counts()
	assert.Equal(t, 3, r)
	assert.Equal(t, 0, ins)
	assert.Equal(t, 1, del)
}

// TestAlign_Boundaries covers empty sequences and identical sequences.
func TestAlign_Boundaries(t *testing.T) {
	costs := bandalign.UnitCosts()

	t.Run("empty u gives insertions", func(t *testing.T) {
		a, err := bandalign.Align(nil, []byte("ACGT"), bandalign.Band{Left: 0, Right: 4}, costs)
		require.NoError(t, err)
		assert.Equal(t, []bandalign.Op{
			bandalign.OpInsert, bandalign.OpInsert, bandalign.OpInsert, bandalign.OpInsert,
		}, a.Ops)
		assert.Equal(t, bandalign.Cost(4), a.Score(costs))
	})

	t.Run("empty v gives deletions", func(t *testing.T) {
		a, err := bandalign.Align([]byte("ACG"), nil, bandalign.Band{Left: -3, Right: 0}, costs)
		require.NoError(t, err)
		assert.Equal(t, []bandalign.Op{
			bandalign.OpDelete, bandalign.OpDelete, bandalign.OpDelete,
		}, a.Ops)
	})

	t.Run("both empty", func(t *testing.T) {
		a, err := bandalign.Align(nil, nil, bandalign.Band{}, costs)
		require.NoError(t, err)
		assert.Empty(t, a.Ops)
		assert.Equal(t, bandalign.Cost(0), a.Score(costs))
	})

	t.Run("identical sequences", func(t *testing.T) {
		s := []byte("GATTACAGATTACA")
		a, err := bandalign.Align(s, s, bandalign.Band{Left: -3, Right: 3}, costs)
		require.NoError(t, err)
		require.Len(t, a.Ops, len(s))
		for _, op := range a.Ops {
			assert.Equal(t, bandalign.OpReplace, op)
		}
		assert.Equal(t, bandalign.Cost(0), a.Score(costs))
		assert.Equal(t, "14=", a.Cigar())
	})

	t.Run("one long run", func(t *testing.T) {
		a, err := bandalign.Align([]byte("AAAA"), []byte("A"), bandalign.Band{Left: -3, Right: 0}, costs)
		require.NoError(t, err)
		assert.Equal(t, bandalign.Cost(3), a.Score(costs))
		assert.Equal(t, []byte("A"), a.Apply())
	})

	t.Run("v longer", func(t *testing.T) {
		a, err := bandalign.Align([]byte("AC"), []byte("ACGG"), bandalign.Band{Left: 0, Right: 2}, costs)
		require.NoError(t, err)
		assert.Equal(t, "2=2I", a.Cigar())
	})
}

// TestAlign_Errors verifies that bad input is rejected before any work.
func TestAlign_Errors(t *testing.T) {
	_, err := bandalign.Align([]byte("ACGT"), []byte("A"), bandalign.Band{Left: -2, Right: 0}, bandalign.UnitCosts())
	assert.ErrorIs(t, err, bandalign.ErrInvalidBand)

	_, err = bandalign.Align([]byte("A"), []byte("ACGT"), bandalign.Band{Left: 1, Right: 5}, bandalign.UnitCosts())
	assert.ErrorIs(t, err, bandalign.ErrInvalidBand)

	_, err = bandalign.Align([]byte("A"), []byte("A"), bandalign.Band{}, bandalign.Costs{Mismatch: -1})
	assert.ErrorIs(t, err, bandalign.ErrBadCosts)
}

// TestAlign_OverflowingCosts checks that costs which pass Validate but could
// sum past Unreachable on these sequences are rejected instead of reaching
// the solver.
func TestAlign_OverflowingCosts(t *testing.T) {
	huge := bandalign.Costs{Match: 0, Mismatch: bandalign.Unreachable / 2, Gap: bandalign.Unreachable / 2}
	require.NoError(t, huge.Validate(), "each cost is finite on its own")
	u, v := []byte("ACG"), []byte("TTT")
	band := bandalign.Band{Left: -3, Right: 3}

	assert.NotPanics(t, func() {
		_, err := bandalign.Align(u, v, band, huge)
		assert.ErrorIs(t, err, bandalign.ErrBadCosts)
	})
	for _, mode := range []bandalign.MemoryMode{bandalign.FullMatrix, bandalign.Linear} {
		_, err := bandalign.Distance(u, v, band, huge, mode)
		assert.ErrorIs(t, err, bandalign.ErrBadCosts, "mode %d", mode)
	}

	// The bound depends on the lengths: a single step of Unreachable/2 fits.
	a, err := bandalign.Align([]byte("A"), nil, bandalign.Band{Left: -1, Right: 0}, huge)
	require.NoError(t, err)
	assert.Equal(t, huge.Gap, a.Score(huge))
}

// TestAlign_WideBandIsClamped checks that a band far wider than the matrix
// behaves as the full band.
func TestAlign_WideBandIsClamped(t *testing.T) {
	u, v := []byte("ACGTTGCA"), []byte("TGCAACGT")
	costs := bandalign.UnitCosts()

	a, err := bandalign.Align(u, v, bandalign.Band{Left: -1000, Right: 1000}, costs)
	require.NoError(t, err)
	assert.Equal(t, bandalign.LinearDistance(u, v, bandalign.FullBand(len(u), len(v)), costs), a.Score(costs))
}

// TestAlign_OptimalAndValid is the main property test: on every generated
// case the script spans both sequences, rebuilds V, stays inside the band
// and scores exactly the banded distance.
func TestAlign_OptimalAndValid(t *testing.T) {
	for idx, c := range randomCasesFor(randomCases) {
		a, err := bandalign.Align(c.u, c.v, c.band, c.costs)
		require.NoError(t, err, "case %d", idx)
		require.NoError(t, a.Validate(), "case %d: u=%s v=%s band=%+v", idx, c.u, c.v, c.band)

		want := bandalign.FullMatrixDistance(c.u, c.v, c.band, c.costs)
		require.Equal(t, want, a.Score(c.costs), "case %d: u=%s v=%s band=%+v costs=%+v", idx, c.u, c.v, c.band, c.costs)

		require.True(t, bytes.Equal(c.v, a.Apply()), "case %d: apply", idx)
		assert.GreaterOrEqual(t, len(a.Ops), max(len(c.u), len(c.v)), "case %d", idx)
		assert.LessOrEqual(t, len(a.Ops), len(c.u)+len(c.v), "case %d", idx)
		assertInsideBand(t, a, c.band, idx)
	}
}

// TestAlign_ZeroCosts checks that a cost model where every path ties still
// yields a well-formed script.
func TestAlign_ZeroCosts(t *testing.T) {
	for idx, c := range randomCasesFor(randomCases / 4) {
		a, err := bandalign.Align(c.u, c.v, c.band, bandalign.Costs{})
		require.NoError(t, err)
		require.NoError(t, a.Validate(), "case %d", idx)
		assert.Equal(t, bandalign.Cost(0), a.Score(bandalign.Costs{}))
		assertInsideBand(t, a, c.band, idx)
	}
}

// assertInsideBand walks the script and fails if any visited cell lies
// outside band.
func assertInsideBand(t *testing.T, a *bandalign.Alignment, band bandalign.Band, idx int) {
	t.Helper()
	var i, j int
	for step, op := range a.Ops {
		switch op {
		case bandalign.OpReplace:
			i++
			j++
		case bandalign.OpInsert:
			j++
		case bandalign.OpDelete:
			i++
		}
		if j-i < band.Left || j-i > band.Right {
			t.Fatalf("case %d: step %d leaves the band at (%d,%d), band=%+v", idx, step, i, j, band)
		}
	}
}

// TestAlignment_BrokenScript checks Validate and Score on a script that does
// not span its sequences.
func TestAlignment_BrokenScript(t *testing.T) {
	a := &bandalign.Alignment{
		U:   []byte("AC"),
		V:   []byte("AC"),
		Ops: []bandalign.Op{bandalign.OpReplace},
	}
	assert.ErrorIs(t, a.Validate(), bandalign.ErrBrokenScript)
	assert.Equal(t, bandalign.Unreachable, a.Score(bandalign.UnitCosts()))
}

// TestAlignment_Rendering checks CIGAR and the three-line view of a script
// with every kind of operation.
func TestAlignment_Rendering(t *testing.T) {
	a := &bandalign.Alignment{
		U: []byte("ACGT"),
		V: []byte("AGGTT"),
		Ops: []bandalign.Op{
			bandalign.OpReplace, bandalign.OpReplace, bandalign.OpReplace,
			bandalign.OpReplace, bandalign.OpInsert,
		},
	}
	require.NoError(t, a.Validate())
	assert.Equal(t, "1=1X2=1I", a.Cigar())
	assert.Equal(t, "ACGT-\n|.|| \nAGGTT", a.String())
	assert.Equal(t, []byte("AGGTT"), a.Apply())
	assert.Equal(t, bandalign.Cost(2), a.Score(bandalign.UnitCosts()))
}
