package charts

import (
	"fmt"

	"github.com/h2grid/h2grid-api/internal/logger"
	"github.com/h2grid/h2grid-api/internal/types/business"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
)

// Manager keeps at most one chart instance per slot and rebuilds them when
// the container delivers a new snapshot. It does no locking: the owning
// container must serialize calls.
type Manager struct {
	factory    Factory
	surfaces   map[Slot]Surface
	series     SeriesSource
	instances  map[Slot]Instance
	generation uint64
	logger     *zap.Logger
}

// Option configures a Manager
type Option func(*Manager)

// WithLogger sets the logger used for creation and destroy failures
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) {
		m.logger = l
	}
}

// WithSeriesSource replaces the static trend and utilization series
func WithSeriesSource(src SeriesSource) Option {
	return func(m *Manager) {
		if src != nil {
			m.series = src
		}
	}
}

// NewManager creates a manager drawing onto the given surfaces. Slots
// without a surface are never filled.
func NewManager(factory Factory, surfaces map[Slot]Surface, opts ...Option) *Manager {
	m := &Manager{
		factory:   factory,
		surfaces:  make(map[Slot]Surface, len(surfaces)),
		series:    StaticSeries{},
		instances: make(map[Slot]Instance, len(Slots)),
	}
	for slot, surface := range surfaces {
		if surface != nil {
			m.surfaces[slot] = surface
		}
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = logger.OrNop(m.logger)
	return m
}

// OnDataAvailable replaces every chart with charts derived from data. When
// data lacks a suggested location the call does nothing and the current
// charts stay in place.
func (m *Manager) OnDataAvailable(data *business.DashboardData) {
	configs, ok := Derive(data, m.series)
	if !ok {
		m.logger.Debug("Snapshot has no suggested location, keeping current charts",
			zap.Int("bound", len(m.instances)))
		return
	}

	m.destroyAll("data update")
	m.generation++

	for _, cfg := range configs {
		surface, ok := m.surfaces[cfg.Slot]
		if !ok {
			continue
		}
		inst, err := m.create(surface, cfg)
		if err != nil {
			m.logger.Error("Failed to create chart",
				zap.String("slot", string(cfg.Slot)),
				zap.String("surface", surface.ID()),
				zap.Uint64("generation", m.generation),
				zap.Error(err))
			continue
		}
		m.instances[cfg.Slot] = inst
	}
}

// Teardown destroys every chart and empties the registry. It is safe to
// call repeatedly.
func (m *Manager) Teardown() {
	m.destroyAll("teardown")
}

// State reports whether a chart is bound in the slot
func (m *Manager) State(slot Slot) State {
	if _, ok := m.instances[slot]; ok {
		return StateBound
	}
	return StateEmpty
}

// Len returns the number of live instances
func (m *Manager) Len() int {
	return len(m.instances)
}

// Instances returns a copy of the registry
func (m *Manager) Instances() map[Slot]Instance {
	out := make(map[Slot]Instance, len(m.instances))
	for slot, inst := range m.instances {
		out[slot] = inst
	}
	return out
}

// Generation counts the snapshots that produced charts
func (m *Manager) Generation() uint64 {
	return m.generation
}

func (m *Manager) create(surface Surface, cfg Config) (inst Instance, err error) {
	defer func() {
		if r := recover(); r != nil {
			inst = nil
			err = fmt.Errorf("chart factory panicked: %v", r)
		}
	}()

	inst, err = m.factory.Create(surface, cfg)
	if err == nil && inst == nil {
		err = fmt.Errorf("chart factory returned no instance for slot %s", cfg.Slot)
	}
	return inst, err
}

func (m *Manager) destroyAll(reason string) {
	if len(m.instances) == 0 {
		return
	}

	var result *multierror.Error
	for _, slot := range Slots {
		inst, ok := m.instances[slot]
		if !ok {
			continue
		}
		delete(m.instances, slot)
		if err := m.destroy(inst); err != nil {
			result = multierror.Append(result, fmt.Errorf("destroy %s chart: %w", slot, err))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		m.logger.Warn("Chart destroy reported errors",
			zap.String("reason", reason),
			zap.Int("failures", len(result.Errors)),
			zap.Error(err))
	}
}

func (m *Manager) destroy(inst Instance) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("chart destroy panicked: %v", r)
		}
	}()
	return inst.Destroy()
}
