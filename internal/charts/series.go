package charts

// SeriesSource supplies the series that are not carried by a snapshot
type SeriesSource interface {
	ProductionTrend() (labels []string, values []float64)
	ResourceUtilization() (labels []string, values []float64)
}

// StaticSeries returns fixed illustrative numbers. It stands in until the
// optimizer publishes production history and live utilization.
type StaticSeries struct{}

func (StaticSeries) ProductionTrend() ([]string, []float64) {
	return []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
		[]float64{3500, 4200, 4800, 4100, 4600, 5000}
}

func (StaticSeries) ResourceUtilization() ([]string, []float64) {
	return []string{"Solar Panels", "Wind Turbines", "Electrolyzers", "Storage Capacity", "Distribution"},
		[]float64{85, 92, 78, 88, 75}
}
