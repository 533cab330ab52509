package business

// Coverage is the service area drawn around a plant
type Coverage struct {
	RadiusKM   int `json:"radius_km"`
	Efficiency int `json:"efficiency"`
}

// Infrastructure is the equipment drawn on the site map. Counts are the
// number of models placed on the map, not the installed totals.
type Infrastructure struct {
	SolarPanels        string `json:"solar_panels"`
	SolarPanelModels   int    `json:"solar_panel_models"`
	WindTurbines       string `json:"wind_turbines"`
	WindTurbineModels  int    `json:"wind_turbine_models"`
	Electrolyzers      string `json:"electrolyzers"`
	ElectrolyzerModels int    `json:"electrolyzer_models"`
}

// Visualization is the site map view of a snapshot
type Visualization struct {
	Plant          PlantLocation  `json:"plant"`
	Consumers      []Consumer     `json:"consumers"`
	Coverage       Coverage       `json:"coverage"`
	Infrastructure Infrastructure `json:"infrastructure"`
}

// CostComparison compares the base and optimized plant cost
type CostComparison struct {
	BaseCostEstimate      string `json:"base_cost_estimate"`
	OptimizedCostEstimate string `json:"optimized_cost_estimate"`
	Savings               int64  `json:"savings"`
	Currency              string `json:"currency"`
}
