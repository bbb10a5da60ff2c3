// SPDX-License-Identifier: MIT

package multistate

import (
	"sync"

	"gonum.org/v1/gonum/mat"
)

// Model bundles a parameterization behind the three external entry points:
// Generator, TransitionProbabilities and AnnuityValue. The zero-config
// Model carries DefaultParams.
//
// A Model is safe for concurrent use. With WithMemoization enabled,
// transition matrices are cached per age behind an RWMutex — a pure
// optimization (identical inputs always produce identical matrices), useful
// when many annuity valuations sweep overlapping age ranges. Cached results
// are returned as fresh copies, so callers never observe shared state.
type Model struct {
	params Params

	mu   sync.RWMutex
	memo map[float64]*mat.Dense // nil unless memoization is enabled
}

// New constructs a Model with deterministic defaults (DefaultParams, no
// memoization) and applies options in order; later options override earlier
// ones.
func New(opts ...Option) *Model {
	m := &Model{params: DefaultParams()}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Params returns the model's parameterization.
func (m *Model) Params() Params { return m.params }

// Generator returns the generator matrix for the given age under the
// model's parameterization.
func (m *Model) Generator(age float64) *mat.Dense {
	return Generator(age, m.params)
}

// TransitionProbabilities returns the one-year transition-probability
// matrix at the given age, consulting the memoization cache when enabled.
func (m *Model) TransitionProbabilities(age float64) (*mat.Dense, error) {
	if m.memo == nil {
		return TransitionProbabilities(age, m.params)
	}

	m.mu.RLock()
	cached, ok := m.memo[age]
	m.mu.RUnlock()
	if ok {
		return mat.DenseCopyOf(cached), nil
	}

	p, err := TransitionProbabilities(age, m.params)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.memo[age] = p
	m.mu.Unlock()

	return mat.DenseCopyOf(p), nil
}

// AnnuityValue values a multi-state annuity from startAge over the given
// horizon under the model's transition matrices. See the package-level
// AnnuityValue for the full contract.
func (m *Model) AnnuityValue(startAge float64, cf Cashflow, horizon int) (*mat.Dense, error) {
	return AnnuityValue(startAge, cf, m.TransitionProbabilities, horizon)
}
