// Package vita is a toolkit for multi-state actuarial valuation —
// from continuous-time transition intensities to annuity present values.
//
// 🚀 What is vita?
//
//	A small, deterministic library that brings together:
//		• Generator matrices: per-age transition intensities of a four-state
//		  life model (active, ill, disabled, dead), rows summing to zero by
//		  construction
//		• Transition matrices: the matrix exponential turns intensities into
//		  one-year transition probabilities (right-stochastic by identity)
//		• Stochastic validation: row-sum and entry-range oracles with
//		  explicit tolerances
//		• Annuity valuation: chained transition products under scalar
//		  discounting or explicit per-duration cashflow weights
//		• Aggregate loss: compound-Poisson moments, deductible transforms
//		  and seeded Monte Carlo estimation
//
// ✨ Why choose vita?
//
//   - Deterministic by design — same inputs, same matrices, every run
//   - Fail-fast contracts — sentinel errors checked with errors.Is, no panics
//   - Pure computation — no I/O, no globals, safe for concurrent callers
//   - Reparameterizable — every rate coefficient lives in an explicit,
//     YAML-loadable Params structure
//
// Everything is organized under two subpackages:
//
//	multistate/ — generator & transition matrices, validation, annuity values
//	aggloss/    — compound-Poisson aggregate-loss formulas & simulation
//
// Built on gonum (matrix exponential, distributions, quadrature).
// Dive into the package examples for full usage patterns.
package vita
