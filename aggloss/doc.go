// Package aggloss provides aggregate-loss expectation formulas for a
// compound-Poisson portfolio with lognormal claim severity.
//
// The package is a stateless collaborator to the multistate valuation core:
// pure formula evaluation and Monte Carlo sampling, no state machine and no
// matrix algebra. Distribution primitives (lognormal, Poisson) come from
// gonum's distuv and are consumed as black boxes, never reimplemented.
//
// Provided:
//   - Severity — lognormal ground-up claim size with deductible/limit
//     transforms: limited expected value E[X∧u], stop-loss premium E[(X−d)₊]
//     (closed form and a numerically integrated cross-check), and per-claim
//     layer means.
//   - Frequency — Poisson claim count.
//   - Aggregate — compound-Poisson moments in closed form, net-of-deductible
//     means, and a seeded Monte Carlo estimator with standard error.
//
// All functions are deterministic for a given input; Monte Carlo requires an
// explicit random source so results are reproducible by construction.
package aggloss
