// SPDX-License-Identifier: MIT

package spline

import (
	"strconv"

	"github.com/katalvlaran/cubicspline/matrix"
	"github.com/sgostarter/i/l"
)

// Interpolate fits a cubic spline through points under boundary b.
//
// Implementation:
//   - Stage 1: BuildSystem (interpolation, continuity and boundary rows).
//   - Stage 2: optional float64 condition estimate (WithConditionCheck).
//   - Stage 3: matrix.Solve, exact Gauss–Jordan; rank checked unless lenient.
//   - Stage 4: Extract into len(points)−1 segments.
//
// Errors:
//   - ErrUnsupportedBoundary, ErrTooFewPoints, ErrNonFinite (input).
//   - ErrSingular when the points do not determine a unique spline
//     (e.g. repeated consecutive abscissas).
//   - ErrMalformedSystem (builder bug).
func Interpolate(points []Point, b Boundary, opts ...Option) (*Spline, error) {
	o := gatherOptions(opts...)
	logger := o.logger.WithFields(l.StringField(l.ClsKey, "spline"), l.StringField("boundary", b.String()))

	sys, err := BuildSystem(points, b)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("build system failed")

		return nil, splineErrorf(opInterpolate, err)
	}
	logger.WithFields(l.IntField("points", len(points)), l.IntField("unknowns", sys.Unknowns())).
		Debug("system built")

	if o.condLimit > 0 {
		checkCondition(logger, sys, o.condLimit)
	}

	var solveOpts []matrix.Option
	if o.lenientRank {
		solveOpts = append(solveOpts, matrix.WithLenientRank())
	}
	solution, err := matrix.Solve(sys, solveOpts...)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("solve failed")

		return nil, splineErrorf(opInterpolate, err)
	}

	s, err := Extract(points, solution, b)
	if err != nil {
		return nil, splineErrorf(opInterpolate, err)
	}
	logger.WithFields(l.IntField("segments", s.Len())).Debug("spline ready")

	return s, nil
}

func checkCondition(logger l.Wrapper, sys *matrix.Augmented, limit float64) {
	cond, err := matrix.Cond(sys)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Warn("condition estimate failed")

		return
	}
	logger = logger.WithFields(
		l.StringField("cond", strconv.FormatFloat(cond, 'g', 4, 64)),
		l.StringField("limit", strconv.FormatFloat(limit, 'g', 4, 64)))
	if cond > limit {
		logger.Warn("ill-conditioned system; float64 evaluation may lose precision")

		return
	}
	logger.Debug("condition ok")
}
