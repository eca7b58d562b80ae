// Package spline fits piecewise cubic polynomials through ordered points and
// evaluates them.
//
// A spline over N points has N−1 segments, each a·x³+b·x²+c·x+d on the
// closed range between its two endpoint abscissas. The 4(N−1) coefficients
// come from one dense linear system:
//
//   - 2(N−1) interpolation rows (each segment passes through both endpoints),
//   - N−2 first-derivative and N−2 second-derivative continuity rows at the
//     interior knots,
//   - 2 boundary rows chosen by a Boundary (Quadratic, NotAKnot, Periodic,
//     Natural).
//
// BuildSystem assembles that system as a matrix.Augmented, matrix.Solve
// reduces it exactly with big.Rat arithmetic, and Extract regroups the
// solution into Segments. Interpolate runs the whole chain.
//
//	s, err := spline.Interpolate([]spline.Point{{X: 1, Y: 10}, {X: 2, Y: 15}, {X: 3, Y: 12}}, spline.Natural)
//	if err != nil {
//		return err
//	}
//	y, ok := s.Eval(1.5) // 13.25, true
//
// Evaluating outside every segment range is not an error: Eval and At
// report ok == false.
package spline
