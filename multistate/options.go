// SPDX-License-Identifier: MIT
// Package multistate: functional options for Model.
//
// Contract (strict):
//   • Options are functional (type Option func(*Model)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     algorithms themselves MUST NOT panic.
//   • No hidden globals; everything flows through the Model.

package multistate

import (
	"gonum.org/v1/gonum/mat"
)

// Option customizes a Model during New.
type Option func(*Model)

// WithParams replaces the model's rate parameterization. Panics when the
// parameterization fails Validate, surfacing programmer error at
// construction rather than a silently degenerate model later.
func WithParams(p Params) Option {
	if err := p.Validate(); err != nil {
		panic("multistate: WithParams: " + err.Error())
	}
	return func(m *Model) {
		m.params = p
	}
}

// WithMemoization enables the per-age transition-matrix cache. Purely an
// optimization: memoized and unmemoized models produce identical results.
func WithMemoization() Option {
	return func(m *Model) {
		m.memo = make(map[float64]*mat.Dense)
	}
}
