// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"
	"strings"
)

// Boundary selects the two equations that close the spline system.
type Boundary int

const (
	// Quadratic forces the cubic coefficient of the first and last segment to
	// zero, so both end segments degenerate to parabolas.
	Quadratic Boundary = iota
	// NotAKnot makes the cubic coefficient continuous across the second and
	// the second-to-last knot.
	NotAKnot
	// Periodic matches first and second derivatives at the first and last point.
	Periodic
	// Natural sets the second derivative to zero at both end points.
	Natural
)

var boundaryNames = [...]string{
	Quadratic: "quadratic",
	NotAKnot:  "notaknot",
	Periodic:  "periodic",
	Natural:   "natural",
}

// String returns the lower-case name, or "Boundary(n)" for unknown values.
func (b Boundary) String() string {
	if b.Valid() {
		return boundaryNames[b]
	}

	return fmt.Sprintf("Boundary(%d)", int(b))
}

// Valid reports whether b is one of the four known kinds.
func (b Boundary) Valid() bool { return b >= Quadratic && b <= Natural }

// MinPoints is the smallest point count for which b yields two independent
// boundary rows. Quadratic on one segment would state a₀ = 0 twice; NotAKnot
// needs three segments so its two rows involve different coefficient pairs.
func (b Boundary) MinPoints() int {
	switch b {
	case Quadratic:
		return 3
	case NotAKnot:
		return 4
	default:
		return 2
	}
}

// ParseBoundary maps a name to a Boundary. Matching ignores case and the
// separators in "not-a-knot" / "not_a_knot".
//
// Errors:
//   - ErrUnsupportedBoundary for anything else.
func ParseBoundary(s string) (Boundary, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	for b, name := range boundaryNames {
		if key == name {
			return Boundary(b), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnsupportedBoundary)
}

// MarshalText implements encoding.TextMarshaler.
func (b Boundary) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("%s: %w", b, ErrUnsupportedBoundary)
	}

	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Boundary) UnmarshalText(text []byte) error {
	v, err := ParseBoundary(string(text))
	if err != nil {
		return err
	}
	*b = v

	return nil
}

// boundaryFunc writes exactly two rows into s, starting at s.row.
type boundaryFunc func(s *system)

// boundaryRows is the dispatch table; one equation generator per kind.
var boundaryRows = map[Boundary]boundaryFunc{
	Quadratic: quadraticRows,
	NotAKnot:  notAKnotRows,
	Periodic:  periodicRows,
	Natural:   naturalRows,
}

// quadraticRows: a₀ = 0 and a_{S−1} = 0.
func quadraticRows(s *system) {
	s.add(0, coeffA, one)
	s.next()
	s.add(s.last(), coeffA, one)
	s.next()
}

// notAKnotRows: a₀ − a₁ = 0 and a_{S−2} − a_{S−1} = 0.
func notAKnotRows(s *system) {
	s.add(0, coeffA, one)
	s.add(1, coeffA, minusOne)
	s.next()
	s.add(s.last()-1, coeffA, one)
	s.add(s.last(), coeffA, minusOne)
	s.next()
}

// periodicRows: f′(x₀) of the first segment equals f′(x_N) of the last one,
// and the same for f″.
func periodicRows(s *system) {
	first, last := s.xs[0], s.xs[len(s.xs)-1]

	s.terms(0, slopeTerms(first), false)
	s.terms(s.last(), slopeTerms(last), true)
	s.next()
	s.terms(0, curvatureTerms(first), false)
	s.terms(s.last(), curvatureTerms(last), true)
	s.next()
}

// naturalRows: f″(x₀) = 0 on the first segment and f″(x_N) = 0 on the last.
// The RHS stays at its zero default.
func naturalRows(s *system) {
	s.terms(0, curvatureTerms(s.xs[0]), false)
	s.next()
	s.terms(s.last(), curvatureTerms(s.xs[len(s.xs)-1]), false)
	s.next()
}
