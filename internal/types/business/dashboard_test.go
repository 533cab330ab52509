package business

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimaryLocation(t *testing.T) {
	tests := []struct {
		name string
		data *DashboardData
		want bool
	}{
		{name: "nil snapshot", data: nil},
		{name: "no optimizer", data: &DashboardData{}},
		{name: "no locations", data: &DashboardData{LandOptimizer: &OptimizerResult{}}},
		{
			name: "first location",
			data: &DashboardData{LandOptimizer: &OptimizerResult{
				SuggestedLocations: []SuggestedLocation{{BaseCostEstimate: "first"}, {BaseCostEstimate: "second"}},
			}},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := tt.data.PrimaryLocation()
			if !tt.want {
				assert.Nil(t, loc)
				return
			}
			require.NotNil(t, loc)
			assert.Equal(t, "first", loc.BaseCostEstimate)
		})
	}
}

func TestDashboardDataDecodesOptimizerPayload(t *testing.T) {
	payload := `{
		"landoptimizer": {
			"suggested_locations": [{
				"cost_breakdown": {"electrolyzer_cost": "₹12,000"},
				"plant_location": {"name": "Kutch", "address": "Gujarat"},
				"nearby_consumers": [{"name": "Refinery", "distance_from_plant": "12 km"}]
			}]
		}
	}`

	var data DashboardData
	require.NoError(t, json.Unmarshal([]byte(payload), &data))

	loc := data.PrimaryLocation()
	require.NotNil(t, loc)
	assert.Equal(t, "₹12,000", loc.CostBreakdown["electrolyzer_cost"])
	assert.Equal(t, "Kutch", loc.PlantLocation.Name)
	assert.Equal(t, "12 km", loc.NearbyConsumers[0].DistanceFromPlant)
}
