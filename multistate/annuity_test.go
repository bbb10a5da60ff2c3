package multistate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/actuarygo/vita/multistate"
)

// defaultFn returns a TransitionFunc over the reference parameterization.
func defaultFn() multistate.TransitionFunc {
	p := multistate.DefaultParams()
	return func(age float64) (*mat.Dense, error) {
		return multistate.TransitionProbabilities(age, p)
	}
}

// TestAnnuityValue_ZeroHorizonIsIdentity checks the n=0 edge case:
// the result is weight(0)·I for both cashflow variants.
func TestAnnuityValue_ZeroHorizonIsIdentity(t *testing.T) {
	a, err := multistate.AnnuityValue(30, multistate.ScalarDiscount(0.96), defaultFn(), 0)
	require.NoError(t, err)
	for i := 0; i < multistate.NumStates; i++ {
		for j := 0; j < multistate.NumStates; j++ {
			want := 0.0
			if i == j {
				want = 1.0 // scalar variant: weight(0) = 1
			}
			assert.Equal(t, want, a.At(i, j), "(%d,%d)", i, j)
		}
	}

	a, err = multistate.AnnuityValue(30, multistate.WeightSequence{0.5}, defaultFn(), 0)
	require.NoError(t, err)
	for i := 0; i < multistate.NumStates; i++ {
		assert.Equal(t, 0.5, a.At(i, i), "diagonal carries weight(0)")
	}
}

// TestAnnuityValue_NegativeHorizon ensures horizon=-1 signals
// ErrInvalidHorizon before any matrix computation happens.
func TestAnnuityValue_NegativeHorizon(t *testing.T) {
	calls := 0
	fn := func(age float64) (*mat.Dense, error) {
		calls++
		return multistate.TransitionProbabilities(age, multistate.DefaultParams())
	}

	_, err := multistate.AnnuityValue(40, multistate.ScalarDiscount(0.96), fn, -1)
	assert.ErrorIs(t, err, multistate.ErrInvalidHorizon)
	assert.Zero(t, calls, "no transition matrix may be computed on a contract violation")
}

// TestAnnuityValue_ShortSequence ensures a weight sequence shorter than
// horizon+1 is a hard ErrCashflowLength, again before any matrix work.
func TestAnnuityValue_ShortSequence(t *testing.T) {
	calls := 0
	fn := func(age float64) (*mat.Dense, error) {
		calls++
		return multistate.TransitionProbabilities(age, multistate.DefaultParams())
	}

	_, err := multistate.AnnuityValue(40, multistate.WeightSequence{1, 0.96}, fn, 5)
	assert.ErrorIs(t, err, multistate.ErrCashflowLength)
	assert.Zero(t, calls)
}

// TestAnnuityValue_NilArguments covers the nil-collaborator sentinels.
func TestAnnuityValue_NilArguments(t *testing.T) {
	_, err := multistate.AnnuityValue(40, nil, defaultFn(), 3)
	assert.ErrorIs(t, err, multistate.ErrNilCashflow)

	_, err = multistate.AnnuityValue(40, multistate.ScalarDiscount(0.96), nil, 3)
	assert.ErrorIs(t, err, multistate.ErrNilTransitionFn)
}

// TestAnnuityValue_ScalarSequenceEquivalence verifies that a scalar
// discount v and the explicit sequence v^k value identically within 1e-10.
func TestAnnuityValue_ScalarSequenceEquivalence(t *testing.T) {
	fn := defaultFn()
	for _, v := range []float64{1.0, 1 / 1.04, 0.9, 0.5} {
		for _, n := range []int{0, 1, 7, 20} {
			seq := make(multistate.WeightSequence, n+1)
			for k := 0; k <= n; k++ {
				seq[k] = math.Pow(v, float64(k))
			}

			scalar, err := multistate.AnnuityValue(35, multistate.ScalarDiscount(v), fn, n)
			require.NoError(t, err)
			explicit, err := multistate.AnnuityValue(35, seq, fn, n)
			require.NoError(t, err)

			for i := 0; i < multistate.NumStates; i++ {
				for j := 0; j < multistate.NumStates; j++ {
					assert.InDelta(t, scalar.At(i, j), explicit.At(i, j), rowTol,
						"v=%g n=%d (%d,%d)", v, n, i, j)
				}
			}
		}
	}
}

// TestAnnuityValue_DiagonalMonotoneInHorizon verifies that adding more
// non-negatively weighted durations never decreases the diagonal values.
func TestAnnuityValue_DiagonalMonotoneInHorizon(t *testing.T) {
	fn := defaultFn()
	v := multistate.ScalarDiscount(0.95)

	prev := make([]float64, multistate.NumStates)
	for n := 0; n <= 12; n++ {
		a, err := multistate.AnnuityValue(45, v, fn, n)
		require.NoError(t, err)
		for i := 0; i < multistate.NumStates; i++ {
			d := a.At(i, i)
			if n > 0 {
				assert.GreaterOrEqual(t, d+rowTol, prev[i], "n=%d state %d", n, i)
			}
			prev[i] = d
		}
	}
}

// TestAnnuityValue_MatchesNaiveSummation is the reference scenario: at
// x=25, v=1/1.04, horizon=20 the recursive fold must agree with a naive
// direct summation of discounted accumulated products to 6 decimal places.
func TestAnnuityValue_MatchesNaiveSummation(t *testing.T) {
	const (
		startAge = 25.0
		horizon  = 20
		tol      = 1e-6
	)
	v := 1 / 1.04
	fn := defaultFn()

	got, err := multistate.AnnuityValue(startAge, multistate.ScalarDiscount(v), fn, horizon)
	require.NoError(t, err)

	// Naive implementation: recompute the accumulated product for every
	// duration independently, then sum the discounted terms.
	want := mat.NewDense(multistate.NumStates, multistate.NumStates, nil)
	for i := 0; i < multistate.NumStates; i++ {
		want.Set(i, i, 1) // duration 0: identity
	}
	for k := 1; k <= horizon; k++ {
		prod, prodErr := fn(startAge)
		require.NoError(t, prodErr)
		for j := 1; j <= k; j++ {
			next, nextErr := fn(startAge + float64(j))
			require.NoError(t, nextErr)
			var tmp mat.Dense
			tmp.Mul(next, prod)
			prod = &tmp
		}
		var term mat.Dense
		term.Scale(math.Pow(v, float64(k)), prod)
		want.Add(want, &term)
	}

	for i := 0; i < multistate.NumStates; i++ {
		for j := 0; j < multistate.NumStates; j++ {
			assert.InDelta(t, want.At(i, j), got.At(i, j), tol, "(%d,%d)", i, j)
		}
	}
}

// TestAnnuityValue_DoesNotMutateFnResults pins the ownership contract: the
// valuator owns every intermediate it mutates, so a caller memoizing
// transition matrices per age (a sanctioned pure optimization) must get
// identical answers from identical calls, with its cache left untouched.
func TestAnnuityValue_DoesNotMutateFnResults(t *testing.T) {
	p := multistate.DefaultParams()
	cache := make(map[float64]*mat.Dense)
	fn := func(age float64) (*mat.Dense, error) {
		if cached, ok := cache[age]; ok {
			return cached, nil
		}
		tr, err := multistate.TransitionProbabilities(age, p)
		if err != nil {
			return nil, err
		}
		cache[age] = tr
		return tr, nil
	}

	first, err := multistate.AnnuityValue(25, multistate.ScalarDiscount(1/1.04), fn, 5)
	require.NoError(t, err)
	second, err := multistate.AnnuityValue(25, multistate.ScalarDiscount(1/1.04), fn, 5)
	require.NoError(t, err)
	assert.True(t, mat.Equal(first, second), "identical calls over a memoized fn must agree")

	// The cached matrices themselves must still equal fresh ones.
	for age, cached := range cache {
		fresh, freshErr := multistate.TransitionProbabilities(age, p)
		require.NoError(t, freshErr)
		assert.True(t, mat.Equal(fresh, cached), "cached matrix for age %g was mutated", age)
	}
}

// TestAnnuityValue_PropagatesTransitionErrors ensures fn failures surface
// wrapped, with the valuation aborted.
func TestAnnuityValue_PropagatesTransitionErrors(t *testing.T) {
	fn := func(age float64) (*mat.Dense, error) {
		if age > 41 {
			return nil, multistate.ErrNumericalFailure
		}
		return multistate.TransitionProbabilities(age, multistate.DefaultParams())
	}

	_, err := multistate.AnnuityValue(40, multistate.ScalarDiscount(0.96), fn, 5)
	assert.ErrorIs(t, err, multistate.ErrNumericalFailure)
}

// TestAnnuityValue_RejectsWrongShapeFromFn ensures a user-supplied fn
// returning a non-4×4 matrix is rejected.
func TestAnnuityValue_RejectsWrongShapeFromFn(t *testing.T) {
	fn := func(age float64) (*mat.Dense, error) {
		return mat.NewDense(2, 2, nil), nil
	}

	_, err := multistate.AnnuityValue(40, multistate.ScalarDiscount(0.96), fn, 3)
	assert.ErrorIs(t, err, multistate.ErrDimensionMismatch)
}
