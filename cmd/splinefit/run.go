// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/cubicspline/internal/config"
	"github.com/katalvlaran/cubicspline/internal/render"
	"github.com/katalvlaran/cubicspline/matrix"
	"github.com/katalvlaran/cubicspline/spline"
	"github.com/sgostarter/i/l"
	"gonum.org/v1/plot/vg"
)

// run parses args, fits, prints one line per query and optionally draws the
// curve. Library diagnostics go to logger only with -v.
func run(args []string, stdout io.Writer, logger l.Wrapper) error {
	fs := flag.NewFlagSet("splinefit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		configPath = fs.String("config", "", "YAML run file")
		boundary   = fs.String("boundary", "", "quadratic | notaknot | periodic | natural")
		plotPath   = fs.String("plot", "", "write the curve to this image (png, svg, pdf)")
		crossCheck = fs.Bool("crosscheck", false, "compare exact coefficients against a float64 LU solve")
		verbose    = fs.Bool("v", false, "log build and solve diagnostics")
		queries    floatList
	)
	fs.Var(&queries, "x", "abscissa to evaluate (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	if *boundary != "" {
		b, err := spline.ParseBoundary(*boundary)
		if err != nil {
			return err
		}
		cfg.Boundary = b
	}
	if len(queries) > 0 {
		cfg.Queries = queries
	}
	if *plotPath != "" {
		cfg.Plot.Path = *plotPath
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "splinefit"))
	opts := []spline.Option{}
	if *verbose {
		opts = append(opts, spline.WithLogger(logger))
	}
	if cfg.ConditionLimit > 0 {
		opts = append(opts, spline.WithConditionCheck(cfg.ConditionLimit))
	}

	s, err := spline.Interpolate(cfg.Points, cfg.Boundary, opts...)
	if err != nil {
		return err
	}

	lo, hi := s.Domain()
	ys, ok := s.EvalAll(cfg.Queries)
	for i, x := range cfg.Queries {
		printQuery(stdout, x, ys[i], ok[i], lo, hi)
	}

	if *crossCheck {
		delta, err := crossCheckFloat(cfg.Points, s)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "crosscheck max|Δ|=%s\n", formatFloat(delta))
	}

	if cfg.Plot.Path != "" {
		err = render.Save(cfg.Plot.Path, s, cfg.Points,
			render.WithSamples(cfg.Plot.Samples),
			render.WithSize(vg.Length(cfg.Plot.Width)*vg.Inch, vg.Length(cfg.Plot.Height)*vg.Inch))
		if err != nil {
			return err
		}
		logger.WithFields(l.StringField("path", cfg.Plot.Path)).Info("plot written")
	}

	return nil
}

// crossCheckFloat solves the same system with gonum's float64 LU and returns
// the largest absolute difference to the exact coefficients.
func crossCheckFloat(points []spline.Point, s *spline.Spline) (float64, error) {
	sys, err := spline.BuildSystem(points, s.Boundary)
	if err != nil {
		return 0, err
	}
	approx, err := matrix.SolveFloat(sys)
	if err != nil {
		return 0, err
	}

	var worst float64
	for i, g := range s.Segments {
		a, b, c, d := g.Float64()
		for k, exact := range [4]float64{a, b, c, d} {
			worst = math.Max(worst, math.Abs(exact-approx[4*i+k]))
		}
	}

	return worst, nil
}
