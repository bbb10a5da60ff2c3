// SPDX-License-Identifier: MIT

package multistate

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Generator builds the instantaneous-transition (generator) matrix U for the
// given age under the supplied parameterization.
//
// Structure (forward-only topology):
//
//	U[Active][Ill]       = Illness(age)        (linear in age)
//	U[Active][Disabled]  = Disability           (constant)
//	U[Active][Dead]      = Mortality(age)       (Makeham)
//	U[Ill][Dead]         = IllMortality(age)    (Makeham)
//	U[Disabled][Dead]    = IllMortality(age)
//
// Every other off-diagonal cell is structurally zero. Each diagonal entry is
// the negated sum of its row's off-diagonals, so rows sum to zero BY
// CONSTRUCTION, not by post-hoc correction; the absorbing row is identically
// zero. Negative evaluated rates (possible with a negative Slope) are
// clamped at zero at this boundary, since negative transition intensities
// are not economically meaningful.
//
// Generator is total over its numeric domain and allocates a fresh matrix on
// every call; results are never shared or mutated. The reference
// parameterization is meaningful for age ∈ [0, 120]; no hard range check is
// performed.
//
// Complexity: O(1) time, O(1) space (one NumStates² allocation).
func Generator(age float64, p Params) *mat.Dense {
	r01 := clampRate(p.Illness.Base + p.Illness.Slope*age)
	r02 := clampRate(p.Disability.Level)
	r03 := clampRate(p.Mortality.A + p.Mortality.B*math.Exp(p.Mortality.C*age))
	r13 := clampRate(p.IllMortality.A + p.IllMortality.B*math.Exp(p.IllMortality.C*age))

	u := mat.NewDense(NumStates, NumStates, nil)

	// Active row: three independently parameterized exits.
	u.Set(int(StateActive), int(StateIll), r01)
	u.Set(int(StateActive), int(StateDisabled), r02)
	u.Set(int(StateActive), int(StateDead), r03)
	u.Set(int(StateActive), int(StateActive), -(r01 + r02 + r03))

	// Ill and Disabled rows: single exit to Dead, shared rate family.
	u.Set(int(StateIll), int(StateDead), r13)
	u.Set(int(StateIll), int(StateIll), -r13)
	u.Set(int(StateDisabled), int(StateDead), r13)
	u.Set(int(StateDisabled), int(StateDisabled), -r13)

	// Dead row stays identically zero (absorbing).

	return u
}

// clampRate floors a transition intensity at zero.
func clampRate(r float64) float64 {
	if r < 0 {
		return 0
	}

	return r
}
