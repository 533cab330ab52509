package business

// DashboardData is the snapshot an optimizer run produces for a project.
// Every nested level is optional.
type DashboardData struct {
	LandOptimizer *OptimizerResult `json:"landoptimizer,omitempty" yaml:"landoptimizer,omitempty"`
}

// OptimizerResult holds the ranked candidate sites for a plant
type OptimizerResult struct {
	SuggestedLocations []SuggestedLocation `json:"suggested_locations,omitempty" yaml:"suggested_locations,omitempty"`
}

// SuggestedLocation is one candidate site with its formatted estimates.
// Money and count values are display strings such as "₹12,000".
type SuggestedLocation struct {
	CostBreakdown         map[string]string `json:"cost_breakdown,omitempty" yaml:"cost_breakdown,omitempty"`
	RevenueEstimation     map[string]string `json:"revenue_estimation,omitempty" yaml:"revenue_estimation,omitempty"`
	ResourceSizing        map[string]string `json:"resource_sizing,omitempty" yaml:"resource_sizing,omitempty"`
	BaseCostEstimate      string            `json:"base_cost_estimate,omitempty" yaml:"base_cost_estimate,omitempty"`
	OptimizedCostEstimate string            `json:"optimized_cost_estimate,omitempty" yaml:"optimized_cost_estimate,omitempty"`
	PlantLocation         *PlantLocation    `json:"plant_location,omitempty" yaml:"plant_location,omitempty"`
	NearbyConsumers       []Consumer        `json:"nearby_consumers,omitempty" yaml:"nearby_consumers,omitempty"`
}

// PlantLocation names the site a plant would be built on
type PlantLocation struct {
	Name    string `json:"name" yaml:"name"`
	Address string `json:"address" yaml:"address"`
}

// Consumer is a hydrogen offtaker near the plant
type Consumer struct {
	Name              string `json:"name" yaml:"name"`
	DistanceFromPlant string `json:"distance_from_plant" yaml:"distance_from_plant"`
}

// PrimaryLocation returns the first suggested location, walking each level
// of the snapshot. It returns nil when any level is missing.
func (d *DashboardData) PrimaryLocation() *SuggestedLocation {
	if d == nil || d.LandOptimizer == nil {
		return nil
	}
	if len(d.LandOptimizer.SuggestedLocations) == 0 {
		return nil
	}
	return &d.LandOptimizer.SuggestedLocations[0]
}
