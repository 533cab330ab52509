package charts

import (
	"sort"
	"strings"

	"github.com/h2grid/h2grid-api/internal/constants"
	"github.com/h2grid/h2grid-api/internal/helpers"
	"github.com/h2grid/h2grid-api/internal/types/business"
)

// Palette colors used across the dashboard
const (
	ColorMint    = "#DDF4E7"
	ColorGreen   = "#67C090"
	ColorTeal    = "#26667F"
	ColorNavy    = "#124170"
	ColorSeafoam = "#8FD3B0"
	ColorSteel   = "#4A90A4"
)

// UtilizationMax is the fixed top of the utilization scale, in percent
const UtilizationMax = 100

var breakdownPalette = []string{ColorMint, ColorGreen, ColorTeal, ColorNavy, ColorSeafoam, ColorSteel}

// revenueStreams pairs the comparison labels with their revenue_estimation keys
var revenueStreams = []struct {
	label string
	key   string
}{
	{"Domestic Sales", constants.DomesticSalesRevenue},
	{"Export Revenue", constants.ExportRevenue},
	{"Carbon Credits", constants.CarbonCreditRevenue},
}

// Derive builds one Config per slot from the snapshot's primary location.
// It reports false when the snapshot has no suggested location.
func Derive(data *business.DashboardData, src SeriesSource) ([]Config, bool) {
	loc := data.PrimaryLocation()
	if loc == nil {
		return nil, false
	}
	if src == nil {
		src = StaticSeries{}
	}

	trendLabels, trendValues := src.ProductionTrend()
	utilLabels, utilValues := src.ResourceUtilization()

	return []Config{
		{
			Slot:        SlotTrend,
			Kind:        KindLine,
			Title:       "Production Trend",
			SeriesLabel: "Monthly Production (tons)",
			Labels:      trendLabels,
			Values:      trendValues,
			Colors:      []string{ColorGreen},
		},
		deriveBreakdown(loc.CostBreakdown),
		deriveComparison(loc.RevenueEstimation),
		{
			Slot:        SlotUtilization,
			Kind:        KindRadar,
			Title:       "Resource Utilization",
			SeriesLabel: "Resource Utilization %",
			Labels:      utilLabels,
			Values:      utilValues,
			Colors:      []string{ColorTeal, ColorGreen},
			YMax:        UtilizationMax,
		},
	}, true
}

func deriveBreakdown(costs map[string]string) Config {
	keys := make([]string, 0, len(costs))
	for key := range costs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	cfg := Config{
		Slot:   SlotBreakdown,
		Kind:   KindDoughnut,
		Title:  "Cost Distribution",
		Labels: make([]string, 0, len(keys)),
		Values: make([]float64, 0, len(keys)),
		Colors: make([]string, 0, len(keys)),
	}
	for i, key := range keys {
		cfg.Labels = append(cfg.Labels, CostLabel(key))
		cfg.Values = append(cfg.Values, float64(helpers.ExtractInt(costs[key])))
		cfg.Colors = append(cfg.Colors, breakdownPalette[i%len(breakdownPalette)])
	}
	return cfg
}

func deriveComparison(revenue map[string]string) Config {
	cfg := Config{
		Slot:        SlotComparison,
		Kind:        KindBar,
		Title:       "Revenue Streams",
		SeriesLabel: "Revenue (Million INR)",
		Colors:      []string{ColorGreen, ColorTeal, ColorNavy},
	}
	for _, stream := range revenueStreams {
		cfg.Labels = append(cfg.Labels, stream.label)
		// a nil map reads as empty, so a missing stream yields 0
		cfg.Values = append(cfg.Values, float64(helpers.ExtractInt(revenue[stream.key])))
	}
	return cfg
}

// CostLabel turns a cost_breakdown key into a display label
func CostLabel(key string) string {
	label := strings.ReplaceAll(key, "_", " ")
	label = strings.ReplaceAll(label, "cost", "")
	return strings.Join(strings.Fields(label), " ")
}
