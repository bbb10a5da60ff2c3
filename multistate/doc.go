// Package multistate computes finite-state continuous-time transition models
// for actuarial valuation.
//
// The multistate package provides:
//
//   - Generator builds the per-age intensity (generator) matrix of a
//     four-state life model from explicit, reparameterizable rate functions.
//     Every row sums to zero by construction; the terminal state is absorbing.
//   - Transition converts a generator matrix into a one-year
//     transition-probability matrix via the matrix exponential
//     (gonum's scaling-and-squaring Padé implementation).
//   - ValidateStochastic checks right-stochastic structure (row sums, entry
//     ranges) within an explicit tolerance; intended as a diagnostic/test
//     oracle rather than a runtime gate.
//   - AnnuityValue chains transition matrices across successive ages and
//     accumulates the expected-present-value matrix of a multi-state annuity
//     under a scalar discount factor or an explicit per-duration weight
//     sequence.
//
// All computation is pure and deterministic: the same numeric inputs always
// produce the same matrices, and no call mutates shared state. Independent
// ages may therefore be evaluated concurrently without coordination. The
// per-duration annuity recursion is inherently sequential (each running
// product depends on the previous one).
//
// Rates are parameterized through Params; the supported age domain of the
// reference parameterization is [0, 120]. See the examples in this package
// for usage patterns.
package multistate
