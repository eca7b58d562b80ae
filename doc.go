// SPDX-License-Identifier: MIT

// Package cubicspline fits piecewise cubic polynomials through ordered
// points and evaluates them, using exact rational arithmetic end to end.
//
// The pipeline:
//
//	points + boundary
//	   │  spline.BuildSystem   interpolation, C¹/C² continuity, 2 boundary rows
//	   ▼
//	matrix.Augmented (4S × 4S+1, *big.Rat)
//	   │  matrix.Solve         Gauss–Jordan to reduced row-echelon form
//	   ▼
//	coefficients
//	   │  spline.Extract       4 per segment: a·x³ + b·x² + c·x + d
//	   ▼
//	*spline.Spline ── At / Eval / Derivative / Domain
//
// spline.Interpolate runs all three stages.
//
// Layout:
//
//	matrix/           exact Dense and Augmented matrices, RREF, Solve, gonum bridge
//	spline/           points, boundary kinds, system builder, evaluation
//	internal/config/  YAML run files for the CLI
//	internal/render/  gonum/plot figures of a fitted spline
//	cmd/splinefit/    command-line driver
//
// Quick example:
//
//	pts := []spline.Point{{X: 1, Y: 10}, {X: 2, Y: 15}, {X: 3, Y: 12}}
//	s, err := spline.Interpolate(pts, spline.Natural)
//	if err != nil {
//		log.Fatal(err)
//	}
//	y, ok := s.Eval(1.5) // 13.25, true
package cubicspline
