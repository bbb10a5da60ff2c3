// SPDX-License-Identifier: MIT

package multistate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Transition converts a generator matrix into a transition-probability
// matrix: P = exp(U).
//
// The exponential is gonum's scaling-and-squaring implementation with Padé
// approximation — a low-order Taylor truncation would introduce
// unacceptable error for the large-magnitude diagonals that occur at
// extreme ages. For any valid generator (off-diagonals non-negative, rows
// summing to zero) the result is right-stochastic up to floating-point
// rounding; this is a mathematical identity of exp on generators, verified
// across the age domain in the tests (row-sum error ≤ 1e-10).
//
// Errors:
//   - ErrNilMatrix          — u is nil.
//   - ErrDimensionMismatch  — u is not NumStates × NumStates.
//   - ErrNumericalFailure   — exp produced a non-finite entry; the matrix is
//     never returned in that case, a plausible-looking but wrong result must
//     not propagate.
//
// Complexity: O(1) for the fixed 4×4 state space.
func Transition(u *mat.Dense) (*mat.Dense, error) {
	if err := validateShape(u); err != nil {
		return nil, fmt.Errorf("Transition: %w", err)
	}

	// A non-finite intensity cannot yield a convergent exponential; reject
	// it before the Padé machinery sees it.
	for i := 0; i < NumStates; i++ {
		for j := 0; j < NumStates; j++ {
			if v := u.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("Transition: generator entry (%d,%d) = %v: %w", i, j, v, ErrNumericalFailure)
			}
		}
	}

	var p mat.Dense
	p.Exp(u)

	// Surface non-convergence/overflow immediately.
	for i := 0; i < NumStates; i++ {
		for j := 0; j < NumStates; j++ {
			if v := p.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("Transition: entry (%d,%d) = %v: %w", i, j, v, ErrNumericalFailure)
			}
		}
	}

	// A zero generator row carries no outgoing intensity, and exp maps it to
	// the identity row exactly. Restore that row verbatim so Padé rounding
	// cannot leak probability out of an absorbing state.
	for i := 0; i < NumStates; i++ {
		if !isZeroRow(u, i) {
			continue
		}
		for j := 0; j < NumStates; j++ {
			p.Set(i, j, 0)
		}
		p.Set(i, i, 1)
	}

	return &p, nil
}

// isZeroRow reports whether row i of m is identically zero.
func isZeroRow(m *mat.Dense, i int) bool {
	for j := 0; j < NumStates; j++ {
		if m.At(i, j) != 0 {
			return false
		}
	}

	return true
}

// TransitionProbabilities composes Generator and Transition: the one-year
// transition-probability matrix for the given age and parameterization.
func TransitionProbabilities(age float64, p Params) (*mat.Dense, error) {
	return Transition(Generator(age, p))
}
