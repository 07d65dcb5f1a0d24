package console

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/ratinterp/matrix"
	"github.com/katalvlaran/ratinterp/poly"
	"github.com/katalvlaran/ratinterp/rational"
)

// Default x range of the plot command.
const (
	defaultPlotMin = -5.0
	defaultPlotMax = 5.0
	plotSamples    = 200
)

var (
	// errEmptyRange rejects plot ranges with xmin >= xmax.
	errEmptyRange = errors.New("console: plot range is empty")

	// errNotFinite rejects ranges or values that overflow float64.
	errNotFinite = errors.New("console: plot range is not finite")
)

// savePlot renders the polynomial over [xmin, xmax] and writes it to file.
// The image format follows the file extension.
func savePlot(coeffs matrix.Vector, file string, xmin, xmax float64, w, h vg.Length) error {
	if !isFinite(xmin) || !isFinite(xmax) {
		return fmt.Errorf("%w: x in [%g, %g]", errNotFinite, xmin, xmax)
	}
	if !(xmin < xmax) {
		return fmt.Errorf("%w: [%g, %g]", errEmptyRange, xmin, xmax)
	}

	p := plot.New()
	p.Title.Text = poly.Format(coeffs)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "f(x)"
	p.X.Min, p.X.Max = xmin, xmax

	fn := poly.Func(coeffs)
	ymin, ymax := sampleRange(fn, xmin, xmax)
	if !isFinite(ymin) || !isFinite(ymax) {
		return fmt.Errorf("%w: f(x) in [%g, %g]", errNotFinite, ymin, ymax)
	}
	p.Y.Min, p.Y.Max = ymin, ymax

	f := plotter.NewFunction(fn)
	f.XMin, f.XMax = xmin, xmax
	f.Samples = plotSamples
	p.Add(plotter.NewGrid(), f)

	return p.Save(w, h, file)
}

// sampleRange returns the y extent of fn over plotSamples points of
// [xmin, xmax]. plotter.Function reports no data range of its own.
func sampleRange(fn func(float64) float64, xmin, xmax float64) (lo, hi float64) {
	step := (xmax - xmin) / float64(plotSamples-1)
	lo, hi = math.Inf(1), math.Inf(-1)
	for i := 0; i < plotSamples; i++ {
		y := fn(xmin + float64(i)*step)
		lo, hi = math.Min(lo, y), math.Max(hi, y)
	}
	if lo == hi {
		lo, hi = lo-1, hi+1 // constant polynomial
	}

	return lo, hi
}

func isFinite(f float64) bool { return !math.IsInf(f, 0) && !math.IsNaN(f) }

// parseFloat reads a rational literal as the nearest float64.
func parseFloat(s string) (float64, error) {
	x, err := rational.Parse(s)
	if err != nil {
		return 0, err
	}
	f, _ := x.Float64()

	return f, nil
}
