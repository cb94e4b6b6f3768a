package plot

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	polymath "github.com/drakos74/polyreg/internal/math"
	"github.com/drakos74/polyreg/internal/storage"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	base = "polynomial_regression"
	// resolution is the number of points drawn for each fitted curve
	resolution = 400
	// flat is the relative y span below which the axis range is pinned
	flat = 1e-9
)

var (
	dataColor     = drawing.ColorFromHex("1f77b4")
	residualColor = drawing.ColorFromHex("2ca02c")
	zeroColor     = drawing.ColorFromHex("d62728")
)

// Curve is a fitted polynomial to draw.
type Curve struct {
	Polynomial polymath.Polynomial
	RSquared   float64
}

// FitName returns the file name of the fit chart for the given degree.
func FitName(degree int) string {
	return fmt.Sprintf("%s_deg%d.png", base, degree)
}

// ResidualsName returns the file name of the residuals chart for the given degree.
func ResidualsName(degree int) string {
	return fmt.Sprintf("%s_residuals_deg%d.png", base, degree)
}

// CompareName returns the file name of the comparative chart for the given degrees.
func CompareName(degrees ...int) string {
	dd := make([]string, len(degrees))
	for i, d := range degrees {
		dd[i] = strconv.Itoa(d)
	}
	return fmt.Sprintf("%s_comparative_deg%s.png", base, strings.Join(dd, "_"))
}

// Fit draws the samples together with the fitted curve.
func Fit(dir string, samples []polymath.Sample, c Curve) (string, error) {
	degree := c.Polynomial.Degree()
	data := dataSeries(samples)
	line := curve(samples, c, 0)
	graph := newChart(fmt.Sprintf("Polynomial Regression Fit (Degree %d)", degree), "y", 1000, 600, data, line)
	return save(graph, dir, FitName(degree))
}

// Residuals draws the residual of every sample against its x value.
func Residuals(dir string, samples []polymath.Sample, degree int, residuals []float64) (string, error) {
	if len(residuals) != len(samples) {
		return "", fmt.Errorf("%d residuals for %d samples", len(residuals), len(samples))
	}
	xx, _ := polymath.Split(samples)
	points := chart.ContinuousSeries{
		Name: "residuals",
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    4,
			DotColor:    residualColor,
		},
		XValues: xx,
		YValues: append([]float64(nil), residuals...),
	}
	lo, hi := xRange(samples)
	zero := chart.ContinuousSeries{
		Name: "zero",
		Style: chart.Style{
			StrokeWidth:     1,
			StrokeColor:     zeroColor,
			StrokeDashArray: []float64{5, 3},
		},
		XValues: []float64{lo, hi},
		YValues: []float64{0, 0},
	}
	graph := newChart(fmt.Sprintf("Residuals (Degree %d)", degree), "y - fit", 1000, 600, points, zero)
	return save(graph, dir, ResidualsName(degree))
}

// Compare draws all the curves over the same samples.
func Compare(dir string, samples []polymath.Sample, curves ...Curve) (string, error) {
	series := []chart.ContinuousSeries{dataSeries(samples)}
	degrees := make([]int, len(curves))
	for i, c := range curves {
		degrees[i] = c.Polynomial.Degree()
		series = append(series, curve(samples, c, i))
	}
	graph := newChart("Comparative Polynomial Regression Fits", "y", 1200, 700, series...)
	return save(graph, dir, CompareName(degrees...))
}

func newChart(title, y string, width, height int, series ...chart.ContinuousSeries) *chart.Chart {
	graph := &chart.Chart{
		Title:  title,
		Width:  width,
		Height: height,
		XAxis:  chart.XAxis{Name: "x"},
		YAxis:  chart.YAxis{Name: y},
	}
	var yy []float64
	for _, s := range series {
		graph.Series = append(graph.Series, s)
		yy = append(yy, s.YValues...)
	}
	// a flat range cannot be rendered, pin it around the value
	if lo, hi := bounds(yy); hi-lo <= flat*math.Max(1, math.Abs(hi)) {
		graph.YAxis.Range = &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
	}
	graph.Elements = []chart.Renderable{chart.Legend(graph)}
	return graph
}

func dataSeries(samples []polymath.Sample) chart.ContinuousSeries {
	xx, yy := polymath.Split(samples)
	return chart.ContinuousSeries{
		Name: "data",
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    4,
			DotColor:    dataColor,
		},
		XValues: xx,
		YValues: yy,
	}
}

func curve(samples []polymath.Sample, c Curve, i int) chart.ContinuousSeries {
	lo, hi := xRange(samples)
	xx := polymath.Series(lo, (hi-lo)/(resolution-1), resolution)
	return chart.ContinuousSeries{
		Name: label(c.Polynomial.Degree(), c.RSquared),
		Style: chart.Style{
			StrokeWidth: 2,
			StrokeColor: chart.GetDefaultColor(i + 1),
		},
		XValues: xx,
		YValues: c.Polynomial.Values(xx),
	}
}

// xRange returns the x span of the samples, widened when all x values coincide.
func xRange(samples []polymath.Sample) (float64, float64) {
	if len(samples) == 0 {
		return 0, 1
	}
	xx, _ := polymath.Split(samples)
	lo, hi := bounds(xx)
	if lo == hi {
		return lo - 1, hi + 1
	}
	return lo, hi
}

func bounds(vv []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vv {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

func label(degree int, r2 float64) string {
	if math.IsNaN(r2) {
		return fmt.Sprintf("degree %d", degree)
	}
	return fmt.Sprintf("degree %d (R²=%.4f)", degree, r2)
}

func save(graph *chart.Chart, dir, name string) (string, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return "", fmt.Errorf("could not make dir: %s: %w: %w", dir, err, storage.IOErr)
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("could not create chart '%s': %w: %w", path, err, storage.IOErr)
	}
	defer f.Close()
	if err := graph.Render(chart.PNG, f); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("could not render chart '%s': %w", path, err)
	}
	return path, nil
}
