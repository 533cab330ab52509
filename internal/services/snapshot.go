package services

import "github.com/h2grid/h2grid-api/internal/types/business"

func cloneStrings(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// cloneSnapshot deep-copies a snapshot
func cloneSnapshot(data *business.DashboardData) *business.DashboardData {
	if data == nil {
		return nil
	}
	out := &business.DashboardData{}
	if data.LandOptimizer == nil {
		return out
	}

	out.LandOptimizer = &business.OptimizerResult{}
	if data.LandOptimizer.SuggestedLocations == nil {
		return out
	}
	out.LandOptimizer.SuggestedLocations = make([]business.SuggestedLocation, len(data.LandOptimizer.SuggestedLocations))
	for i, loc := range data.LandOptimizer.SuggestedLocations {
		copied := loc
		copied.CostBreakdown = cloneStrings(loc.CostBreakdown)
		copied.RevenueEstimation = cloneStrings(loc.RevenueEstimation)
		copied.ResourceSizing = cloneStrings(loc.ResourceSizing)
		if loc.PlantLocation != nil {
			plant := *loc.PlantLocation
			copied.PlantLocation = &plant
		}
		if loc.NearbyConsumers != nil {
			copied.NearbyConsumers = append([]business.Consumer(nil), loc.NearbyConsumers...)
		}
		out.LandOptimizer.SuggestedLocations[i] = copied
	}
	return out
}
