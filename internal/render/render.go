// SPDX-License-Identifier: MIT

// Package render draws a fitted spline and its knots with gonum/plot.
//
// The curve is sampled segment by segment through (*spline.Spline).EvalAll,
// so what is drawn is exactly what Eval reports: nothing outside the knots,
// nothing for a segment whose range is reversed.
package render

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cubicspline/spline"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	// ErrEmptySpline is returned when there is no segment to draw.
	ErrEmptySpline = errors.New("render: spline has no segments")

	// ErrInvalidSamples is returned for fewer than two samples.
	ErrInvalidSamples = errors.New("render: samples must be ≥ 2")
)

const (
	DefaultSamples = 200
	DefaultWidth   = 6 * vg.Inch
	DefaultHeight  = 4 * vg.Inch
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	samples       int
	width, height vg.Length
	title         string
}

// WithSamples sets the total number of curve samples across all segments.
func WithSamples(n int) Option {
	return func(o *Options) { o.samples = n }
}

// WithSize sets the image size; non-positive values keep the default.
func WithSize(width, height vg.Length) Option {
	return func(o *Options) {
		if width > 0 {
			o.width = width
		}
		if height > 0 {
			o.height = height
		}
	}
}

// WithTitle sets the plot title. Default: "<boundary> cubic spline".
func WithTitle(title string) Option {
	return func(o *Options) { o.title = title }
}

func gatherOptions(user ...Option) Options {
	o := Options{samples: DefaultSamples, width: DefaultWidth, height: DefaultHeight}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// Samples returns the curve as plot points, in segment order. Every segment
// gets at least two samples (its endpoints); the rest of n is spread in
// proportion to segment width.
//
// Errors:
//   - ErrEmptySpline for a nil or empty spline.
//   - ErrInvalidSamples for n < 2.
func Samples(s *spline.Spline, n int) (plotter.XYs, error) {
	if s == nil || s.Len() == 0 {
		return nil, ErrEmptySpline
	}
	if n < 2 {
		return nil, fmt.Errorf("got %d: %w", n, ErrInvalidSamples)
	}

	lo, hi := s.Domain()
	span := hi - lo
	var out plotter.XYs
	for _, g := range s.Segments {
		x0, _ := g.XMin.Float64()
		x1, _ := g.XMax.Float64()
		if x0 > x1 {
			continue
		}
		k := 2
		if span > 0 {
			k = max(2, int(float64(n)*(x1-x0)/span))
		}
		xs := make([]float64, k)
		for i := range xs {
			xs[i] = x0 + (x1-x0)*float64(i)/float64(k-1)
		}
		xs[k-1] = x1
		ys, ok := s.EvalAll(xs)
		for i := range xs {
			if ok[i] {
				out = append(out, plotter.XY{X: xs[i], Y: ys[i]})
			}
		}
	}

	return out, nil
}

// Plot builds the figure: a line through the sampled curve and a scatter of
// the knots.
func Plot(s *spline.Spline, knots []spline.Point, opts ...Option) (*plot.Plot, error) {
	o := gatherOptions(opts...)
	curve, err := Samples(s, o.samples)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = o.title
	if p.Title.Text == "" {
		p.Title.Text = s.Boundary.String() + " cubic spline"
	}
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(curve)
	if err != nil {
		return nil, fmt.Errorf("render: curve: %w", err)
	}
	line.Width = vg.Points(1.5)
	p.Add(line)
	p.Legend.Add("spline", line)

	if len(knots) > 0 {
		xys := make(plotter.XYs, len(knots))
		for i, k := range knots {
			xys[i] = plotter.XY{X: k.X, Y: k.Y}
		}
		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("render: knots: %w", err)
		}
		scatter.GlyphStyle.Radius = vg.Points(3)
		p.Add(scatter)
		p.Legend.Add("knots", scatter)
	}

	return p, nil
}

// Save renders the figure to path; the extension picks the format
// (png, svg, pdf, ...).
func Save(path string, s *spline.Spline, knots []spline.Point, opts ...Option) error {
	o := gatherOptions(opts...)
	p, err := Plot(s, knots, opts...)
	if err != nil {
		return err
	}
	if err = p.Save(o.width, o.height, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}

	return nil
}
