// SPDX-License-Identifier: MIT

package multistate

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// AnnuityValue computes the expected-present-value matrix of a multi-state
// annuity: entry (i,j) is the expected present value, as seen from state i
// at startAge, of a unit payment received at every duration 0..horizon
// while occupying state j, weighted by the transition probability into j
// and the cashflow weight at that duration.
//
// The computation is a fold over the duration range carrying the pair
// (runningProduct, runningSum):
//
//	P₀ := fn(startAge)            A := w[0]·I
//	Pₖ := fn(startAge+k) × Pₖ₋₁   A += w[k]·Pₖ      for k = 1..horizon
//
// The new one-step matrix multiplies the running product on the LEFT; the
// order is load-bearing, it composes successive years chronologically
// against the accumulated path probability. The loop is inherently
// sequential — each Pₖ depends on the previous — but independent
// AnnuityValue calls are pure and may run concurrently.
//
// Contract checks run BEFORE any matrix work: a negative horizon and a
// weight sequence shorter than horizon+1 fail fast without invoking fn.
// horizon == 0 returns w[0]·I immediately (a single payment at duration 0
// requires no transition).
//
// With a ScalarDiscount v in (0,1) and the reference parameterization, the
// diagonal entries are non-decreasing in horizon: each added term is a
// non-negatively weighted probability matrix.
//
// Errors:
//   - ErrInvalidHorizon   — horizon < 0.
//   - ErrNilCashflow / ErrNilTransitionFn — nil collaborators.
//   - ErrCashflowLength   — explicit sequence shorter than horizon+1.
//   - ErrDimensionMismatch — fn returned a matrix of the wrong shape.
//   - any error returned by fn, wrapped with the offending age.
//
// Complexity: O(horizon) matrix products over the fixed 4×4 state space.
func AnnuityValue(startAge float64, cf Cashflow, fn TransitionFunc, horizon int) (*mat.Dense, error) {
	// Fail fast on contract violations; no matrix work yet.
	if horizon < 0 {
		return nil, fmt.Errorf("AnnuityValue: horizon %d: %w", horizon, ErrInvalidHorizon)
	}
	if cf == nil {
		return nil, fmt.Errorf("AnnuityValue: %w", ErrNilCashflow)
	}
	if fn == nil {
		return nil, fmt.Errorf("AnnuityValue: %w", ErrNilTransitionFn)
	}
	w, err := cf.weights(horizon)
	if err != nil {
		return nil, fmt.Errorf("AnnuityValue: %w", err)
	}

	// A := w[0]·I — the duration-0 payment is received in the starting
	// state with certainty.
	acc := mat.NewDense(NumStates, NumStates, nil)
	for i := 0; i < NumStates; i++ {
		acc.Set(i, i, w[0])
	}
	if horizon == 0 {
		return acc, nil
	}

	// Running product seeded with a COPY of the first year's matrix: the
	// fold owns its buffers, and matrices returned by fn are read-only
	// inputs — a memoizing fn may hand back the same matrix on every call.
	first, err := step(fn, startAge)
	if err != nil {
		return nil, err
	}
	prod := mat.DenseCopyOf(first)

	scratch := mat.NewDense(NumStates, NumStates, nil)
	for k := 1; k <= horizon; k++ {
		next, stepErr := step(fn, startAge+float64(k))
		if stepErr != nil {
			return nil, stepErr
		}

		// Pₖ := next × Pₖ₋₁ (gonum Mul forbids aliasing, so swap buffers).
		scratch.Mul(next, prod)
		prod, scratch = scratch, prod

		// A += w[k]·Pₖ.
		scratch.Scale(w[k], prod)
		acc.Add(acc, scratch)
	}

	return acc, nil
}

// step evaluates fn at age and enforces the fixed state-space shape once
// per duration, so the fold body stays branch-free.
func step(fn TransitionFunc, age float64) (*mat.Dense, error) {
	p, err := fn(age)
	if err != nil {
		return nil, fmt.Errorf("AnnuityValue: transition at age %g: %w", age, err)
	}
	if err = validateShape(p); err != nil {
		return nil, fmt.Errorf("AnnuityValue: transition at age %g: %w", age, err)
	}

	return p, nil
}
