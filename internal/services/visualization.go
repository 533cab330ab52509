package services

import (
	"github.com/h2grid/h2grid-api/internal/constants"
	"github.com/h2grid/h2grid-api/internal/helpers"
	"github.com/h2grid/h2grid-api/internal/types/business"
)

// Site map constants
const (
	CoverageRadiusKM     = 100
	CoverageEfficiency   = 92
	MaxSolarPanelModels  = 10
	MaxWindTurbineModels = 5
	// PanelsPerSolarModel is how many installed panels one map model stands for
	PanelsPerSolarModel = 1000
)

// BuildVisualization derives the site map from a snapshot's primary
// location. It reports false when the snapshot has no location.
func BuildVisualization(data *business.DashboardData) (business.Visualization, bool) {
	loc := data.PrimaryLocation()
	if loc == nil {
		return business.Visualization{}, false
	}

	view := business.Visualization{
		Consumers: append([]business.Consumer{}, loc.NearbyConsumers...),
		Coverage: business.Coverage{
			RadiusKM:   CoverageRadiusKM,
			Efficiency: CoverageEfficiency,
		},
	}
	if loc.PlantLocation != nil {
		view.Plant = *loc.PlantLocation
	}

	sizing := loc.ResourceSizing
	solar := sizing[constants.SolarPanelsRequired]
	wind := sizing[constants.WindTurbinesRequired]
	electrolyzers := sizing[constants.ElectrolyzersRequired]

	view.Infrastructure = business.Infrastructure{
		SolarPanels:        solar,
		SolarPanelModels:   solarModels(helpers.ExtractInt(solar)),
		WindTurbines:       wind,
		WindTurbineModels:  capCount(helpers.ExtractInt(wind), MaxWindTurbineModels),
		Electrolyzers:      electrolyzers,
		ElectrolyzerModels: int(capInt64(helpers.ExtractInt(electrolyzers), 1<<31-1)),
	}
	return view, true
}

// solarModels places one model per thousand panels, rounding up so a
// small array still shows
func solarModels(panels int64) int {
	if panels <= 0 {
		return 0
	}
	models := (panels + PanelsPerSolarModel - 1) / PanelsPerSolarModel
	return capCount(models, MaxSolarPanelModels)
}

func capCount(n int64, max int) int {
	return int(capInt64(n, int64(max)))
}

func capInt64(n, max int64) int64 {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}

// CostComparison reports the savings of the optimized plant over the base
// design. Savings never go below zero.
func CostComparison(data *business.DashboardData) (business.CostComparison, bool) {
	loc := data.PrimaryLocation()
	if loc == nil {
		return business.CostComparison{}, false
	}

	savings := helpers.ExtractInt(loc.BaseCostEstimate) - helpers.ExtractInt(loc.OptimizedCostEstimate)
	if savings < 0 {
		savings = 0
	}
	return business.CostComparison{
		BaseCostEstimate:      loc.BaseCostEstimate,
		OptimizedCostEstimate: loc.OptimizedCostEstimate,
		Savings:               savings,
		Currency:              constants.INRCurrency,
	}, true
}
