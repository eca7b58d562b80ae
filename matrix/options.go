// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Solve.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultLenientRank keeps rank checking on: Solve fails with ErrSingular
	// when some unknown column has no pivot.
	DefaultLenientRank = false

	// DefaultPreserveInput lets Solve reduce the caller's system in place.
	DefaultPreserveInput = false
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	lenientRank   bool // DefaultLenientRank
	preserveInput bool // DefaultPreserveInput
}

// WithLenientRank makes Solve return the right-hand-side column even when the
// reduction was incomplete. Entries for unknowns without a pivot are whatever
// elimination left behind.
func WithLenientRank() Option {
	return func(o *Options) { o.lenientRank = true }
}

// WithPreserveInput makes Solve reduce a private clone so the caller's system
// stays untouched (useful when the same system feeds another solver).
func WithPreserveInput() Option {
	return func(o *Options) { o.preserveInput = true }
}

// gatherOptions applies user options over defaults in order; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		lenientRank:   DefaultLenientRank,
		preserveInput: DefaultPreserveInput,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
