package webform

import (
	"bytes"
	"math/big"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/vitalvas/sharerecon/shamir"
)

const chartSamples = 64

// renderChart draws the reconstructed polynomial over the range of the
// selected indices, with every decoded share overlaid as a point.
func renderChart(res *shamir.Result) (string, error) {
	lo, hi := chartRange(res)

	curve := make([]opts.LineData, 0, chartSamples+1)
	step := new(big.Rat).SetFrac64(hi-lo, chartSamples)
	x := new(big.Rat).SetInt64(lo)

	for i := 0; i <= chartSamples; i++ {
		xf, _ := x.Float64()
		yf, _ := res.Polynomial.Evaluate(x).Float64()
		curve = append(curve, opts.LineData{Value: []interface{}{xf, yf}})
		x = new(big.Rat).Add(x, step)
	}

	points := make([]opts.ScatterData, 0, len(res.Shares))
	for _, s := range res.Shares {
		yf, _ := s.Float()
		points = append(points, opts.ScatterData{Value: []interface{}{s.X, yf}})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "f(x)",
			Width:     "760px",
			Height:    "380px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "f(x) = " + res.Expression(),
			Subtitle: "constant term " + shamir.FormatRat(res.Constant),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "f(x)", Type: "value"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	line.AddSeries("f(x)", curve, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	scatter := charts.NewScatter()
	scatter.AddSeries("shares", points,
		charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "circle", SymbolSize: 10}),
	)
	line.Overlap(scatter)

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// chartRange spans zero and every selected index so the constant term is visible.
func chartRange(res *shamir.Result) (int64, int64) {
	var lo, hi int64
	for _, s := range res.Selected {
		lo = min(lo, s.X)
		hi = max(hi, s.X)
	}

	if hi == lo {
		hi = lo + 1
	}

	return lo, hi
}
