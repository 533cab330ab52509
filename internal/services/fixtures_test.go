package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/h2grid/h2grid-api/internal/charts"
	"github.com/h2grid/h2grid-api/internal/constants"
	"github.com/h2grid/h2grid-api/internal/types/business"
)

type stubInstance struct {
	factory *stubFactory
	owner   string
	surface charts.Surface
	cfg     charts.Config
	once    sync.Once
}

func (i *stubInstance) Slot() charts.Slot     { return i.cfg.Slot }
func (i *stubInstance) Kind() charts.Kind     { return i.cfg.Kind }
func (i *stubInstance) Config() charts.Config { return i.cfg }

func (i *stubInstance) Destroy() error {
	var err error
	i.once.Do(func() {
		err = i.surface.Detach(i.owner)
		i.factory.mu.Lock()
		i.factory.live--
		i.factory.mu.Unlock()
	})
	return err
}

// stubFactory paints the chart title instead of rendering
type stubFactory struct {
	mu      sync.Mutex
	live    int
	created int
}

func (f *stubFactory) Create(surface charts.Surface, cfg charts.Config) (charts.Instance, error) {
	owner := uuid.NewString()
	if err := surface.Attach(owner); err != nil {
		return nil, err
	}
	if err := surface.Paint(owner, "text/plain", []byte(cfg.Title)); err != nil {
		return nil, errors.Join(err, surface.Detach(owner))
	}
	f.mu.Lock()
	f.live++
	f.created++
	f.mu.Unlock()
	return &stubInstance{factory: f, owner: owner, surface: surface, cfg: cfg}, nil
}

func (f *stubFactory) counts() (live, created int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.live, f.created
}

// clock is a settable time source
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func sampleSnapshot() *business.DashboardData {
	return &business.DashboardData{
		LandOptimizer: &business.OptimizerResult{
			SuggestedLocations: []business.SuggestedLocation{{
				CostBreakdown: map[string]string{
					"land_cost":      "₹12,000",
					"equipment_cost": "₹30,000",
				},
				RevenueEstimation: map[string]string{
					constants.DomesticSalesRevenue: "₹25 Million",
					constants.ExportRevenue:        "₹15 Million",
					constants.CarbonCreditRevenue:  "₹5 Million",
				},
				ResourceSizing: map[string]string{
					constants.SolarPanelsRequired:   "4,500 panels",
					constants.WindTurbinesRequired:  "12 turbines",
					constants.ElectrolyzersRequired: "3 units",
				},
				BaseCostEstimate:      "₹150,000,000",
				OptimizedCostEstimate: "₹100,000,000",
				PlantLocation:         &business.PlantLocation{Name: "Kutch Plant", Address: "Kutch, Gujarat"},
				NearbyConsumers: []business.Consumer{
					{Name: "Refinery A", DistanceFromPlant: "12 km"},
					{Name: "Fertilizer Unit", DistanceFromPlant: "40 km"},
				},
			}},
		},
	}
}
