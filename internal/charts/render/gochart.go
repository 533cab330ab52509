package render

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/h2grid/h2grid-api/internal/charts"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const noDataColor = "#C8CCD0"

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func colorAt(colors []string, i int, fallback string) drawing.Color {
	if len(colors) == 0 {
		return hexColor(fallback)
	}
	return hexColor(colors[i%len(colors)])
}

func rendererFor(format Format) chart.RendererProvider {
	if format == FormatSVG {
		return chart.SVG
	}
	return chart.PNG
}

// valueRange starts at zero and leaves headroom above the largest value.
// An all-zero series gets a fixed 0..1 range.
func valueRange(values []float64, fixedMax float64) *chart.ContinuousRange {
	if fixedMax > 0 {
		return &chart.ContinuousRange{Min: 0, Max: fixedMax}
	}
	top := 0.0
	for _, v := range values {
		top = math.Max(top, v)
	}
	if top <= 0 {
		return &chart.ContinuousRange{Min: 0, Max: 1}
	}
	return &chart.ContinuousRange{Min: 0, Max: top * 1.1}
}

func renderLine(cfg charts.Config, width, height int, format Format) ([]byte, error) {
	if len(cfg.Values) == 0 {
		return nil, fmt.Errorf("line chart %q has no points", cfg.Title)
	}

	xs := make([]float64, len(cfg.Values))
	ticks := make([]chart.Tick, len(cfg.Values))
	for i := range cfg.Values {
		xs[i] = float64(i)
		label := ""
		if i < len(cfg.Labels) {
			label = cfg.Labels[i]
		}
		ticks[i] = chart.Tick{Value: float64(i), Label: label}
	}

	stroke := colorAt(cfg.Colors, 0, charts.ColorGreen)
	ch := chart.Chart{
		Title:      cfg.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: math.Max(float64(len(xs)-1), 1)},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{Range: valueRange(cfg.Values, cfg.YMax)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    cfg.SeriesLabel,
				XValues: xs,
				YValues: cfg.Values,
				Style: chart.Style{
					StrokeColor: stroke,
					StrokeWidth: 3,
					FillColor:   stroke.WithAlpha(48),
					DotColor:    stroke,
					DotWidth:    4,
				},
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(rendererFor(format), &buf); err != nil {
		return nil, fmt.Errorf("line chart: %w", err)
	}
	return buf.Bytes(), nil
}

func renderDoughnut(cfg charts.Config, width, height int, format Format) ([]byte, error) {
	values := make([]chart.Value, 0, len(cfg.Values))
	for i, v := range cfg.Values {
		// zero slices have no arc to draw
		if v <= 0 {
			continue
		}
		label := ""
		if i < len(cfg.Labels) {
			label = cfg.Labels[i]
		}
		values = append(values, chart.Value{
			Value: v,
			Label: label,
			Style: chart.Style{
				FillColor:   colorAt(cfg.Colors, i, charts.ColorGreen),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
			},
		})
	}
	if len(values) == 0 {
		values = []chart.Value{{
			Value: 1,
			Label: "No data",
			Style: chart.Style{FillColor: hexColor(noDataColor), StrokeColor: drawing.ColorWhite},
		}}
	}

	dc := chart.DonutChart{
		Title:  cfg.Title,
		Width:  width,
		Height: height,
		Values: values,
	}

	var buf bytes.Buffer
	if err := dc.Render(rendererFor(format), &buf); err != nil {
		return nil, fmt.Errorf("doughnut chart: %w", err)
	}
	return buf.Bytes(), nil
}

func renderBar(cfg charts.Config, width, height int, format Format) ([]byte, error) {
	if len(cfg.Values) == 0 {
		return nil, fmt.Errorf("bar chart %q has no bars", cfg.Title)
	}

	bars := make([]chart.Value, len(cfg.Values))
	for i, v := range cfg.Values {
		label := ""
		if i < len(cfg.Labels) {
			label = cfg.Labels[i]
		}
		fill := colorAt(cfg.Colors, i, charts.ColorGreen)
		bars[i] = chart.Value{
			Value: v,
			Label: label,
			Style: chart.Style{FillColor: fill, StrokeColor: fill},
		}
	}

	bc := chart.BarChart{
		Title:      cfg.Title,
		Width:      width,
		Height:     height,
		BarWidth:   width / (len(bars) * 3),
		Background: chart.Style{Padding: chart.Box{Top: 48}},
		YAxis:      chart.YAxis{Range: valueRange(cfg.Values, cfg.YMax)},
		Bars:       bars,
	}

	var buf bytes.Buffer
	if err := bc.Render(rendererFor(format), &buf); err != nil {
		return nil, fmt.Errorf("bar chart: %w", err)
	}
	return buf.Bytes(), nil
}
