package bandalign

import "errors"

var (
	// ErrInvalidBand indicates a band that cannot contain a path from (0,0)
	// to (ulen,vlen): Left > min(0, vlen−ulen) or Right < max(0, vlen−ulen).
	ErrInvalidBand = errors.New("bandalign: band does not contain a global alignment")

	// ErrBadCosts indicates a negative cost in the cost model, or costs so
	// large that an alignment of the given sequences would overflow Cost.
	ErrBadCosts = errors.New("bandalign: costs must be non-negative and keep every alignment below Unreachable")

	// ErrBadMode indicates an unknown MemoryMode.
	ErrBadMode = errors.New("bandalign: unknown memory mode")

	// ErrGapSymbol indicates an input sequence containing GapSymbol.
	ErrGapSymbol = errors.New("bandalign: sequence contains the gap symbol")

	// ErrOracleMismatch indicates that two independent computations of the
	// same banded distance disagree.
	ErrOracleMismatch = errors.New("bandalign: distance oracles disagree")

	// ErrBrokenScript indicates an edit script whose operation counts do not
	// fit the lengths of its sequences.
	ErrBrokenScript = errors.New("bandalign: edit script does not span both sequences")
)
