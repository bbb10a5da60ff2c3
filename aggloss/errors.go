package aggloss

import "errors"

var (
	// ErrBadParams indicates non-finite or out-of-domain distribution
	// parameters (e.g. sigma <= 0, lambda <= 0).
	ErrBadParams = errors.New("aggloss: invalid distribution parameters")

	// ErrBadLayer indicates deductible/limit bounds that do not describe a
	// layer (negative deductible, or limit not above the deductible).
	ErrBadLayer = errors.New("aggloss: invalid layer bounds")

	// ErrBadSampleSize indicates a Monte Carlo sample size below two
	// (a standard error needs at least two observations).
	ErrBadSampleSize = errors.New("aggloss: sample size must be at least two")

	// ErrNilSource indicates a missing random source; simulation demands an
	// explicit seed for reproducibility.
	ErrNilSource = errors.New("aggloss: nil random source")
)
