// Package multistate defines the state space, cashflow variants and function
// types shared across the package.
package multistate

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// NumStates is the dimension of the fixed state space. All matrices in this
// package are NumStates × NumStates.
const NumStates = 4

// State indexes the model's statuses. Transitions are forward-only:
// Active may move to Ill, Disabled or Dead; Ill and Disabled may move only
// to Dead; Dead is absorbing.
type State int

const (
	// StateActive is the healthy, premium-paying status.
	StateActive State = iota
	// StateIll is the first intermediate status (temporary illness).
	StateIll
	// StateDisabled is the second intermediate status (permanent disability).
	StateDisabled
	// StateDead is the absorbing terminal status.
	StateDead
)

// TransitionFunc produces the one-year transition-probability matrix for the
// year of age starting at age. AnnuityValue evaluates it once per duration,
// in strictly increasing age order.
type TransitionFunc func(age float64) (*mat.Dense, error)

// Cashflow is the per-duration payment/discount specification consumed by
// AnnuityValue. It is a closed variant: either a ScalarDiscount or a
// WeightSequence. The variant is resolved once, before any matrix work, into
// a weight vector of length horizon+1.
type Cashflow interface {
	// weights returns the per-duration weights w[0..n]. Implementations must
	// not perform matrix work and must fail fast on contract violations.
	weights(n int) ([]float64, error)
}

// ScalarDiscount is a constant one-period discount factor v, applied as v^k
// at duration k (so weight(0) = 1). Values outside (0, 1] are accepted but
// economically unusual; non-positive values break the monotonicity
// guarantees documented on AnnuityValue.
type ScalarDiscount float64

// weights expands v into the geometric sequence 1, v, v², ..., vⁿ.
func (v ScalarDiscount) weights(n int) ([]float64, error) {
	w := make([]float64, n+1)
	w[0] = 1
	for k := 1; k <= n; k++ {
		w[k] = w[k-1] * float64(v)
	}

	return w, nil
}

// WeightSequence is an explicit ordered sequence of per-duration weights,
// used verbatim: weight(k) = seq[k]. A valuation over horizon n requires at
// least n+1 entries; fewer is a contract violation (ErrCashflowLength). A
// sequence of length one is therefore valid only for horizon 0 — no default
// is guessed for missing durations.
type WeightSequence []float64

// weights copies the first n+1 entries, failing fast when the sequence is
// too short.
func (s WeightSequence) weights(n int) ([]float64, error) {
	if len(s) < n+1 {
		return nil, fmt.Errorf("weights: have %d entries, need %d: %w", len(s), n+1, ErrCashflowLength)
	}
	w := make([]float64, n+1)
	copy(w, s[:n+1])

	return w, nil
}
