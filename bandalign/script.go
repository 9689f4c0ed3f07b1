package bandalign

import (
	"strconv"
	"strings"
)

// Alignment is an edit script turning U into V. Ops run from (0,0) to
// (len(U), len(V)); OpReplace covers both matches and mismatches.
type Alignment struct {
	U   []byte
	V   []byte
	Ops []Op
}

// Counts returns the number of replace, insert and delete operations.
func (a *Alignment) Counts() (replaced, inserted, deleted int) {
	for _, op := range a.Ops {
		switch op {
		case OpReplace:
			replaced++
		case OpInsert:
			inserted++
		case OpDelete:
			deleted++
		}
	}

	return replaced, inserted, deleted
}

// Validate returns ErrBrokenScript unless replace+delete spans U and
// replace+insert spans V.
func (a *Alignment) Validate() error {
	r, ins, del := a.Counts()
	if r+del != len(a.U) || r+ins != len(a.V) || r+ins+del != len(a.Ops) {
		return ErrBrokenScript
	}

	return nil
}

// Score evaluates the script under costs. A script that fails Validate
// scores Unreachable.
func (a *Alignment) Score(costs Costs) Cost {
	if a.Validate() != nil {
		return Unreachable
	}
	var (
		i, j  int
		total Cost
	)
	for _, op := range a.Ops {
		switch op {
		case OpReplace:
			total = total.Add(costs.subst(a.U[i], a.V[j]))
			i++
			j++
		case OpInsert:
			total = total.Add(costs.Gap)
			j++
		case OpDelete:
			total = total.Add(costs.Gap)
			i++
		}
	}

	return total
}

// Apply runs the script over U: matched symbols are copied from U,
// substituted and inserted ones taken from V, deleted ones dropped. For a
// valid script the result equals V.
func (a *Alignment) Apply() []byte {
	out := make([]byte, 0, len(a.V))
	var i, j int
	for _, op := range a.Ops {
		switch op {
		case OpReplace:
			if a.U[i] == a.V[j] {
				out = append(out, a.U[i])
			} else {
				out = append(out, a.V[j])
			}
			i++
			j++
		case OpInsert:
			out = append(out, a.V[j])
			j++
		case OpDelete:
			i++
		}
	}

	return out
}

// Cigar returns the run-length encoded script in extended CIGAR notation:
// '=' match, 'X' mismatch, 'I' insertion, 'D' deletion.
func (a *Alignment) Cigar() string {
	var (
		sb   strings.Builder
		prev byte
		run  int
		i, j int
	)
	flush := func() {
		if run > 0 {
			sb.WriteString(strconv.Itoa(run))
			sb.WriteByte(prev)
		}
	}
	for _, op := range a.Ops {
		var c byte
		switch op {
		case OpReplace:
			c = 'X'
			if a.U[i] == a.V[j] {
				c = '='
			}
			i++
			j++
		case OpInsert:
			c = 'I'
			j++
		case OpDelete:
			c = 'D'
			i++
		}
		if c != prev {
			flush()
			prev, run = c, 0
		}
		run++
	}
	flush()

	return sb.String()
}

// String renders the alignment in three lines: U with gaps, a match line
// ('|' equal, '.' different, ' ' gap) and V with gaps.
func (a *Alignment) String() string {
	var (
		top, mid, bot strings.Builder
		i, j          int
	)
	for _, op := range a.Ops {
		switch op {
		case OpReplace:
			top.WriteByte(a.U[i])
			bot.WriteByte(a.V[j])
			if a.U[i] == a.V[j] {
				mid.WriteByte('|')
			} else {
				mid.WriteByte('.')
			}
			i++
			j++
		case OpInsert:
			top.WriteByte('-')
			mid.WriteByte(' ')
			bot.WriteByte(a.V[j])
			j++
		case OpDelete:
			top.WriteByte(a.U[i])
			mid.WriteByte(' ')
			bot.WriteByte('-')
			i++
		}
	}

	return top.String() + "\n" + mid.String() + "\n" + bot.String()
}
