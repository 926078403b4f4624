// Package ztest implements a continuity-corrected z-test against the
// standard normal distribution.
package ztest

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrDomain indicates a mathematically undefined operation, such as a
// z-test over zero or negative variance.
var ErrDomain = errors.New("domain error")

// Config controls how a z-score and p-value are derived.
type Config struct {
	// CCorr applies the ±0.5 continuity correction to the numerator,
	// moving the observed deviation toward zero.
	CCorr bool

	// Tails selects the one-tailed (1) or two-tailed (2) probability.
	Tails int

	// PrecisionZ and PrecisionP round the returned z and p to that many
	// decimal places for display. Negative values keep full precision.
	// The internal computation always uses full precision.
	PrecisionZ int
	PrecisionP int
}

// DefaultConfig returns the conventional configuration: continuity
// correction on, two-tailed, full precision.
func DefaultConfig() Config {
	return Config{CCorr: true, Tails: 2, PrecisionZ: -1, PrecisionP: -1}
}

// Result holds a z-score and its associated probability.
type Result struct {
	Z float64
	P float64
}

// Normal evaluates z-scores and p-values under the standard normal
// distribution. The zero value is not usable; construct with New.
type Normal struct {
	dist distuv.Normal
}

// New creates a z-test backed by the standard normal distribution.
func New() *Normal {
	return &Normal{dist: distuv.Normal{Mu: 0, Sigma: 1}}
}

// Evaluate computes the z-score of observed against a normal
// approximation with the given expected value and variance, and the
// one- or two-tailed probability of a deviation at least that extreme.
//
//	z = (observed − expected − sign(observed−expected)·0.5·ccorr) / sqrt(variance)
//
// The correction is applied as stated even when it carries the
// numerator across zero. The two-tailed probability is twice the
// one-tailed probability, capped at 1. ErrDomain is returned for
// variance ≤ 0 or a tail count other than 1 or 2.
func (n *Normal) Evaluate(observed, expected, variance float64, cfg Config) (Result, error) {
	if variance <= 0 {
		return Result{}, fmt.Errorf("variance %v must be positive: %w", variance, ErrDomain)
	}
	if cfg.Tails != 1 && cfg.Tails != 2 {
		return Result{}, fmt.Errorf("tails must be 1 or 2, got %d: %w", cfg.Tails, ErrDomain)
	}

	num := observed - expected
	if cfg.CCorr && num != 0 {
		num -= math.Copysign(0.5, num)
	}
	z := num / math.Sqrt(variance)

	p := 1 - n.dist.CDF(math.Abs(z))
	if cfg.Tails == 2 {
		p = math.Min(2*p, 1)
	}

	return Result{
		Z: roundTo(z, cfg.PrecisionZ),
		P: roundTo(p, cfg.PrecisionP),
	}, nil
}

// roundTo rounds x to places decimal places. Negative places means no
// rounding.
func roundTo(x float64, places int) float64 {
	if places < 0 {
		return x
	}
	pow := math.Pow(10, float64(places))
	return math.Round(x*pow) / pow
}
