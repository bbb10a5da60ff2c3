// SPDX-License-Identifier: MIT
// Package multistate: canonical validators.
//
// Purpose:
//   - Provide a single source of truth for shape/nil/stochastic checks.
//   - Keep algorithm facades minimal by delegating guard logic here.
//   - Tag every sentinel via validatorErrorf (validator name + measured
//     context); facades add only the operation name on top.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - ValidateStochastic visits each row once, summing before range-checking.

package multistate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// validatorErrorf tags a sentinel violation with the validator's name,
// preserving the sentinel for errors.Is at the facade.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateShape ensures m is non-nil and NumStates × NumStates.
// Returns ErrNilMatrix or ErrDimensionMismatch, uniformly tagged.
func validateShape(m *mat.Dense) error {
	if m == nil {
		return validatorErrorf("validateShape", ErrNilMatrix)
	}
	if r, c := m.Dims(); r != NumStates || c != NumStates {
		return validatorErrorf("validateShape",
			fmt.Errorf("%dx%d, want %dx%d: %w", r, c, NumStates, NumStates, ErrDimensionMismatch))
	}

	return nil
}

// ValidateStochastic checks that p is right-stochastic within tol: every
// row sums to one within tol, and every entry lies in [-tol, 1+tol].
//
// It is a diagnostic and test oracle — downstream computation does not gate
// on it. Rows are visited in order; within a row the sum is checked before
// the entry ranges, so the first violation reported is deterministic.
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch — shape violations.
//   - ErrBadTolerance — tol is negative or non-finite.
//   - ErrRowSum       — wrapped with the row index and measured deviation.
//   - ErrEntryRange   — wrapped with the entry indices and value.
//
// Complexity: O(NumStates²) time, O(1) space.
func ValidateStochastic(p *mat.Dense, tol float64) error {
	if err := validateShape(p); err != nil {
		return fmt.Errorf("ValidateStochastic: %w", err)
	}
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return fmt.Errorf("ValidateStochastic: tol=%v: %w", tol, ErrBadTolerance)
	}

	for i := 0; i < NumStates; i++ {
		sum := 0.0
		for j := 0; j < NumStates; j++ {
			sum += p.At(i, j)
		}
		if dev := math.Abs(sum - 1); dev > tol {
			return fmt.Errorf("ValidateStochastic: row %d sum deviates by %.3e (tol %.3e): %w", i, dev, tol, ErrRowSum)
		}
		for j := 0; j < NumStates; j++ {
			if v := p.At(i, j); v < -tol || v > 1+tol {
				return fmt.Errorf("ValidateStochastic: entry (%d,%d) = %v (tol %.3e): %w", i, j, v, tol, ErrEntryRange)
			}
		}
	}

	return nil
}
