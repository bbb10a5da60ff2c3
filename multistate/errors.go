// SPDX-License-Identifier: MIT
// Package multistate: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// multistate package. All functions MUST return these sentinels and tests
// MUST check them via errors.Is. No function panics on user-triggered error
// conditions; panics are reserved for programmer errors in option
// constructors.

package multistate

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "multistate: ..." for consistency and to
// allow easy grepping across logs. DO NOT %w wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers will still use
// errors.Is to match.

var (
	// ErrNilMatrix indicates that a nil matrix was passed where a value is
	// required.
	ErrNilMatrix = errors.New("multistate: nil matrix")

	// ErrDimensionMismatch indicates a matrix whose shape does not match the
	// fixed state space (NumStates × NumStates).
	ErrDimensionMismatch = errors.New("multistate: dimension mismatch")

	// ErrNumericalFailure indicates the matrix exponential produced a
	// non-finite entry. The offending matrix is never returned.
	ErrNumericalFailure = errors.New("multistate: matrix exponential failed")

	// ErrRowSum indicates a transition-probability row whose sum deviates
	// from one beyond the configured tolerance.
	ErrRowSum = errors.New("multistate: row sum deviates from one")

	// ErrEntryRange indicates a transition-probability entry outside
	// [-tol, 1+tol].
	ErrEntryRange = errors.New("multistate: entry outside [0,1]")

	// ErrInvalidHorizon indicates a negative valuation horizon.
	ErrInvalidHorizon = errors.New("multistate: horizon must be non-negative")

	// ErrCashflowLength indicates an explicit weight sequence shorter than
	// horizon+1 entries.
	ErrCashflowLength = errors.New("multistate: cashflow sequence shorter than horizon+1")

	// ErrNilCashflow indicates a nil Cashflow argument.
	ErrNilCashflow = errors.New("multistate: nil cashflow")

	// ErrNilTransitionFn indicates a nil transition-matrix function.
	ErrNilTransitionFn = errors.New("multistate: nil transition function")

	// ErrBadParams indicates a rate parameterization that is non-finite or
	// implies a structurally negative rate family.
	ErrBadParams = errors.New("multistate: invalid rate parameters")

	// ErrBadTolerance indicates a negative or non-finite tolerance.
	ErrBadTolerance = errors.New("multistate: tolerance must be finite and non-negative")
)
