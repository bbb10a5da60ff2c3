// SPDX-License-Identifier: MIT
// Package multistate: rate parameterization.
//
// params.go — explicit configuration for the generator's rate functions.
//
// Design:
//   • Params is the single source of truth for every rate-function
//     coefficient; no coefficient is embedded in algorithm code.
//   • Defaults are deterministic and documented; no globals.
//   • ParamsFromYAML allows reparameterization without editing code.

package multistate

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// LinearRate is an affine transition intensity Base + Slope·age. Slope may
// be negative; the generator clamps any negative evaluated rate at zero.
type LinearRate struct {
	Base  float64 `yaml:"base"`
	Slope float64 `yaml:"slope"`
}

// ConstRate is an age-independent transition intensity.
type ConstRate struct {
	Level float64 `yaml:"level"`
}

// MakehamRate is a Makeham-style mortality intensity A + B·exp(C·age):
// a constant floor A plus exponential growth in age.
type MakehamRate struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
	C float64 `yaml:"c"`
}

// Params collects the rate-function coefficients of the four-state model.
// The zero value is NOT a usable parameterization; start from
// DefaultParams or ParamsFromYAML.
type Params struct {
	// Illness drives Active→Ill (linear in age).
	Illness LinearRate `yaml:"illness"`
	// Disability drives Active→Disabled (constant).
	Disability ConstRate `yaml:"disability"`
	// Mortality drives Active→Dead (Makeham).
	Mortality MakehamRate `yaml:"mortality"`
	// IllMortality drives both Ill→Dead and Disabled→Dead (Makeham with
	// excess mortality relative to Active).
	IllMortality MakehamRate `yaml:"ill_mortality"`
}

// Reference parameterization, calibrated for ages 0..120.
const (
	defaultIllnessBase  = 0.0004
	defaultIllnessSlope = 0.000025
	defaultDisability   = 0.0010
	defaultMortalityA   = 0.0005
	defaultMortalityB   = 0.00007585775
	defaultMortalityC   = 0.08749822
	defaultIllMortA     = 0.0020
	defaultIllMortB     = 0.00015
	defaultIllMortC     = 0.0875
)

// DefaultParams returns the reference parameterization used throughout the
// tests and examples. Supported age domain: [0, 120].
func DefaultParams() Params {
	return Params{
		Illness:      LinearRate{Base: defaultIllnessBase, Slope: defaultIllnessSlope},
		Disability:   ConstRate{Level: defaultDisability},
		Mortality:    MakehamRate{A: defaultMortalityA, B: defaultMortalityB, C: defaultMortalityC},
		IllMortality: MakehamRate{A: defaultIllMortA, B: defaultIllMortB, C: defaultIllMortC},
	}
}

// Validate reports whether the parameterization is structurally usable:
// every coefficient finite, and every coefficient of a non-negative rate
// family (constant levels, Makeham A/B) non-negative. A negative Slope is
// legal — the generator clamps evaluated rates at zero.
//
// Returns ErrBadParams (wrapped with the offending field) on violation.
func (p Params) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"illness.base", p.Illness.Base},
		{"illness.slope", p.Illness.Slope},
		{"disability.level", p.Disability.Level},
		{"mortality.a", p.Mortality.A},
		{"mortality.b", p.Mortality.B},
		{"mortality.c", p.Mortality.C},
		{"ill_mortality.a", p.IllMortality.A},
		{"ill_mortality.b", p.IllMortality.B},
		{"ill_mortality.c", p.IllMortality.C},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("Validate: %s is not finite: %w", f.name, ErrBadParams)
		}
	}

	// Non-negative rate families: a negative floor or scale would make the
	// whole family negative on part of the age domain, which clamping would
	// silently zero out. Reject at the boundary instead.
	nonNegative := []struct {
		name string
		v    float64
	}{
		{"illness.base", p.Illness.Base},
		{"disability.level", p.Disability.Level},
		{"mortality.a", p.Mortality.A},
		{"mortality.b", p.Mortality.B},
		{"ill_mortality.a", p.IllMortality.A},
		{"ill_mortality.b", p.IllMortality.B},
	}
	for _, f := range nonNegative {
		if f.v < 0 {
			return fmt.Errorf("Validate: %s is negative: %w", f.name, ErrBadParams)
		}
	}

	return nil
}

// ParamsFromYAML decodes a parameterization from a YAML document and
// validates it. Missing fields decode as zero; use this for full documents,
// not partial overrides.
func ParamsFromYAML(data []byte) (Params, error) {
	var p Params
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("ParamsFromYAML: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Params{}, fmt.Errorf("ParamsFromYAML: %w", err)
	}

	return p, nil
}
