// Package seqio reads FASTA input for the bandalign command. Consecutive
// records form the (u, v) pairs to align.
package seqio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	biogoseqio "github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// ErrOddRecords indicates a record left without a partner.
var ErrOddRecords = errors.New("seqio: odd number of records")

// Record is one FASTA entry.
type Record struct {
	ID  string
	Seq []byte
}

// Pair is two consecutive records; Index counts pairs from zero.
type Pair struct {
	Index int
	U, V  Record
}

// Reader yields FASTA records one at a time.
type Reader struct {
	sc *biogoseqio.Scanner
}

// NewReader wraps r. Letters are read as DNA but not checked against the
// alphabet, so any byte sequence passes through unchanged.
func NewReader(r io.Reader) *Reader {
	template := linear.NewSeq("", nil, alphabet.DNA)

	return &Reader{sc: biogoseqio.NewScanner(fasta.NewReader(r, template))}
}

// Read returns the next record, or io.EOF after the last one. The ID is the
// header text up to the first blank.
func (r *Reader) Read() (Record, error) {
	if !r.sc.Next() {
		if err := r.sc.Error(); err != nil {
			return Record{}, fmt.Errorf("seqio: %w", err)
		}
		return Record{}, io.EOF
	}
	s, ok := r.sc.Seq().(*linear.Seq)
	if !ok {
		return Record{}, fmt.Errorf("seqio: unexpected sequence type %T", r.sc.Seq())
	}

	return Record{ID: s.Name(), Seq: letters(s.Seq)}, nil
}

// letters copies biogo letters into a plain byte slice.
func letters(ls alphabet.Letters) []byte {
	out := make([]byte, len(ls))
	for i, l := range ls {
		out[i] = byte(l)
	}

	return out
}

// ReadPairs reads every record of r and groups them two by two.
func ReadPairs(r io.Reader) ([]Pair, error) {
	fr := NewReader(r)
	var (
		pairs []Pair
		first *Record
	)
	for {
		rec, err := fr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if first == nil {
			first = &rec
			continue
		}
		pairs = append(pairs, Pair{Index: len(pairs), U: *first, V: rec})
		first = nil
	}
	if first != nil {
		return nil, fmt.Errorf("record %q: %w", first.ID, ErrOddRecords)
	}

	return pairs, nil
}

// ReadPairsFile opens path and calls ReadPairs.
func ReadPairsFile(path string) ([]Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fasta: %w", err)
	}
	defer f.Close()

	pairs, err := ReadPairs(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return pairs, nil
}
