package render

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/h2grid/h2grid-api/internal/charts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	radarRings       = 5
	radarLabelRadius = 1.18
	radarExtent      = 1.45
)

var (
	radarGridColor = color.RGBA{R: 0xD0, G: 0xD4, B: 0xD8, A: 0xFF}
	// rgba(38,102,127,0.2)
	radarFillColor = color.NRGBA{R: 38, G: 102, B: 127, A: 51}
)

// radarPoint places axis i of n at radius r, first axis pointing up and the
// rest clockwise
func radarPoint(i, n int, r float64) plotter.XY {
	angle := math.Pi/2 - 2*math.Pi*float64(i)/float64(n)
	return plotter.XY{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
}

func closedRing(n int, radius func(i int) float64) plotter.XYs {
	pts := make(plotter.XYs, 0, n+1)
	for i := 0; i < n; i++ {
		pts = append(pts, radarPoint(i, n, radius(i)))
	}
	return append(pts, pts[0])
}

func toRGBA(hex string) color.Color {
	c := hexColor(hex)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func renderRadar(cfg charts.Config, width, height int, format Format) ([]byte, error) {
	n := len(cfg.Values)
	if n < 3 {
		return nil, fmt.Errorf("radar chart %q needs at least 3 axes, got %d", cfg.Title, n)
	}

	top := cfg.YMax
	if top <= 0 {
		for _, v := range cfg.Values {
			top = math.Max(top, v)
		}
	}
	if top <= 0 {
		top = 1
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.HideAxes()
	p.X.Min, p.X.Max = -radarExtent, radarExtent
	p.Y.Min, p.Y.Max = -radarExtent, radarExtent

	for ring := 1; ring <= radarRings; ring++ {
		r := float64(ring) / radarRings
		grid, err := plotter.NewLine(closedRing(n, func(int) float64 { return r }))
		if err != nil {
			return nil, fmt.Errorf("radar grid: %w", err)
		}
		grid.Color = radarGridColor
		grid.Width = vg.Points(0.5)
		p.Add(grid)
	}
	for i := 0; i < n; i++ {
		spoke, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, radarPoint(i, n, 1)})
		if err != nil {
			return nil, fmt.Errorf("radar spoke: %w", err)
		}
		spoke.Color = radarGridColor
		spoke.Width = vg.Points(0.5)
		p.Add(spoke)
	}

	data := closedRing(n, func(i int) float64 {
		return math.Min(math.Max(cfg.Values[i]/top, 0), 1)
	})
	poly, err := plotter.NewPolygon(data[:n])
	if err != nil {
		return nil, fmt.Errorf("radar area: %w", err)
	}
	poly.Color = radarFillColor
	poly.LineStyle.Color = toRGBA(colorString(cfg.Colors, 0, charts.ColorTeal))
	poly.LineStyle.Width = vg.Points(2)
	p.Add(poly)

	points, err := plotter.NewScatter(data[:n])
	if err != nil {
		return nil, fmt.Errorf("radar points: %w", err)
	}
	points.GlyphStyle.Color = toRGBA(colorString(cfg.Colors, 1, charts.ColorGreen))
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	points.GlyphStyle.Radius = vg.Points(3)
	p.Add(points)

	labelXYs := make([]plotter.XY, n)
	labelText := make([]string, n)
	for i := 0; i < n; i++ {
		labelXYs[i] = radarPoint(i, n, radarLabelRadius)
		if i < len(cfg.Labels) {
			labelText[i] = cfg.Labels[i]
		}
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: labelXYs, Labels: labelText})
	if err != nil {
		return nil, fmt.Errorf("radar labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
	}
	p.Add(labels)

	// surfaces are sized in CSS pixels, 96 per inch
	w := vg.Length(width) * vg.Inch / 96
	h := vg.Length(height) * vg.Inch / 96
	writer, err := p.WriterTo(w, h, string(format))
	if err != nil {
		return nil, fmt.Errorf("radar chart: %w", err)
	}

	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("radar chart: %w", err)
	}
	return buf.Bytes(), nil
}

func colorString(colors []string, i int, fallback string) string {
	if i < len(colors) {
		return colors[i]
	}
	return fallback
}
