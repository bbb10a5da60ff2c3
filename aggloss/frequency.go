package aggloss

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Frequency models the annual claim count N as Poisson(lambda).
type Frequency struct {
	dist distuv.Poisson
}

// NewFrequency validates lambda (finite, positive) and returns a Frequency.
func NewFrequency(lambda float64) (Frequency, error) {
	if math.IsNaN(lambda) || math.IsInf(lambda, 0) || lambda <= 0 {
		return Frequency{}, fmt.Errorf("NewFrequency(lambda=%v): %w", lambda, ErrBadParams)
	}

	return Frequency{dist: distuv.Poisson{Lambda: lambda}}, nil
}

// Mean returns E[N] = lambda.
func (f Frequency) Mean() float64 { return f.dist.Mean() }

// Variance returns Var[N] = lambda.
func (f Frequency) Variance() float64 { return f.dist.Variance() }
