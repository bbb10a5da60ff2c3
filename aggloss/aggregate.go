package aggloss

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// Aggregate models the annual aggregate loss S = X₁ + ... + X_N of a
// compound-Poisson portfolio: N claims per Frequency, each with an
// independent Severity amount.
type Aggregate struct {
	freq Frequency
	sev  Severity
}

// NewAggregate combines a claim frequency and a claim severity.
func NewAggregate(f Frequency, s Severity) Aggregate {
	return Aggregate{freq: f, sev: s}
}

// Mean returns E[S] = lambda·E[X].
func (a Aggregate) Mean() float64 {
	return a.freq.Mean() * a.sev.Mean()
}

// Variance returns Var[S] = lambda·E[X²] (compound-Poisson identity).
func (a Aggregate) Variance() float64 {
	return a.freq.Mean() * a.sev.SecondMoment()
}

// NetMean returns the expected aggregate loss net of a per-claim
// deductible d: lambda·E[(X−d)₊].
func (a Aggregate) NetMean(d float64) (float64, error) {
	sl, err := a.sev.StopLoss(d)
	if err != nil {
		return 0, fmt.Errorf("NetMean: %w", err)
	}

	return a.freq.Mean() * sl, nil
}

// Simulate draws n independent aggregate-loss years from src and returns
// the sample mean and its standard error. src must be non-nil (explicit
// seeding keeps runs reproducible) and n at least two.
//
// The estimator is unbiased for Mean(); with the compound-Poisson variance
// above, the standard error shrinks as 1/√n.
func (a Aggregate) Simulate(n int, src rand.Source) (mean, stderr float64, err error) {
	if n < 2 {
		return 0, 0, fmt.Errorf("Simulate(n=%d): %w", n, ErrBadSampleSize)
	}
	if src == nil {
		return 0, 0, fmt.Errorf("Simulate: %w", ErrNilSource)
	}

	// Local copies bound to the caller's source; the receiver stays pure.
	freq := a.freq.dist
	freq.Src = src
	sev := a.sev.dist
	sev.Src = src

	var sum, sumSq float64
	for i := 0; i < n; i++ {
		claims := int(freq.Rand())
		total := 0.0
		for c := 0; c < claims; c++ {
			total += sev.Rand()
		}
		sum += total
		sumSq += total * total
	}

	fn := float64(n)
	mean = sum / fn
	variance := (sumSq - fn*mean*mean) / (fn - 1)
	if variance < 0 {
		variance = 0 // rounding guard for near-constant samples
	}

	return mean, math.Sqrt(variance / fn), nil
}
