// SPDX-License-Identifier: MIT

// Package spline: functional configuration for Interpolate.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on nonsensical values (programmer error).
package spline

import (
	"math"

	"github.com/sgostarter/i/l"
)

const (
	// DefaultConditionLimit disables the conditioning diagnostic.
	DefaultConditionLimit = 0.0

	// DefaultLenientRank keeps singular systems an error.
	DefaultLenientRank = false
)

const panicConditionLimitInvalid = "spline: WithConditionCheck: limit must be finite and > 0"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	logger      l.Wrapper // nil ⇒ l.NewNopLoggerWrapper()
	condLimit   float64   // > 0 enables the float64 condition estimate
	lenientRank bool
}

// WithLogger routes build/solve diagnostics to logger. Nil restores the
// silent default.
func WithLogger(logger l.Wrapper) Option {
	return func(o *Options) { o.logger = logger }
}

// WithConditionCheck estimates the 2-norm condition number of the system in
// float64 before solving and logs a warning above limit. The exact solve is
// unaffected; the warning tells the caller that float64 consumers of the
// coefficients (Eval, plots) may lose digits.
func WithConditionCheck(limit float64) Option {
	if math.IsNaN(limit) || math.IsInf(limit, 0) || limit <= 0 {
		panic(panicConditionLimitInvalid)
	}

	return func(o *Options) { o.condLimit = limit }
}

// WithLenientRank returns coefficients even for a rank-deficient system;
// entries for unresolved unknowns are whatever elimination left in place.
func WithLenientRank() Option {
	return func(o *Options) { o.lenientRank = true }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		condLimit:   DefaultConditionLimit,
		lenientRank: DefaultLenientRank,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.logger == nil {
		o.logger = l.NewNopLoggerWrapper()
	}

	return o
}
