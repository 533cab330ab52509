package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/h2grid/h2grid-api/internal/charts"
	"github.com/h2grid/h2grid-api/internal/charts/render"
	"github.com/h2grid/h2grid-api/internal/constants"
	"github.com/h2grid/h2grid-api/internal/types/business"
	"go.uber.org/zap"
)

var (
	// ErrInvalidTab is returned for an unknown dashboard tab
	ErrInvalidTab = errors.New("invalid dashboard tab")
	// ErrSessionClosed is returned when a closed view is used
	ErrSessionClosed = errors.New("dashboard session is closed")
)

var validTabs = map[string]bool{
	constants.TabOverview:  true,
	constants.TabProjects:  true,
	constants.TabAnalytics: true,
	constants.TabResources: true,
	constants.TabReports:   true,
}

// NormalizeTab validates tab, defaulting an empty value to overview
func NormalizeTab(tab string) (string, error) {
	if tab == "" {
		return constants.TabOverview, nil
	}
	if !validTabs[tab] {
		return "", fmt.Errorf("%w: %q", ErrInvalidTab, tab)
	}
	return tab, nil
}

// DashboardSession is one open dashboard view. It owns its canvases and
// chart manager; the mutex serializes every call into the manager.
type DashboardSession struct {
	id        uuid.UUID
	projectID uuid.UUID
	createdAt time.Time
	canvases  map[charts.Slot]*render.Canvas
	now       func() time.Time
	logger    *zap.Logger

	mu         sync.Mutex
	tab        string
	data       *business.DashboardData
	manager    *charts.Manager
	mounted    bool
	closed     bool
	lastActive time.Time
}

type sessionConfig struct {
	projectID    uuid.UUID
	tab          string
	data         *business.DashboardData
	factory      charts.Factory
	series       charts.SeriesSource
	canvasWidth  int
	canvasHeight int
	now          func() time.Time
	logger       *zap.Logger
}

func newDashboardSession(cfg sessionConfig) (*DashboardSession, error) {
	tab, err := NormalizeTab(cfg.tab)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	log := cfg.logger.With(zap.String("session_id", id.String()), zap.String("project_id", cfg.projectID.String()))

	canvases := make(map[charts.Slot]*render.Canvas, len(charts.Slots))
	surfaces := make(map[charts.Slot]charts.Surface, len(charts.Slots))
	for _, slot := range charts.Slots {
		canvas := render.NewCanvas(id.String()+"/"+string(slot), cfg.canvasWidth, cfg.canvasHeight)
		canvases[slot] = canvas
		surfaces[slot] = canvas
	}

	now := cfg.now()
	s := &DashboardSession{
		id:         id,
		projectID:  cfg.projectID,
		createdAt:  now,
		canvases:   canvases,
		now:        cfg.now,
		logger:     log,
		tab:        tab,
		data:       cfg.data,
		manager:    charts.NewManager(cfg.factory, surfaces, charts.WithLogger(log), charts.WithSeriesSource(cfg.series)),
		lastActive: now,
	}
	if tab == constants.TabAnalytics {
		s.mountLocked()
	}
	return s, nil
}

func (s *DashboardSession) ID() uuid.UUID        { return s.id }
func (s *DashboardSession) ProjectID() uuid.UUID { return s.projectID }

// mountLocked shows the analytics charts for the current data
func (s *DashboardSession) mountLocked() {
	s.mounted = true
	s.manager.OnDataAvailable(s.data)
}

// unmountLocked discards the analytics charts
func (s *DashboardSession) unmountLocked() {
	s.mounted = false
	s.manager.Teardown()
}

// SetTab switches the active tab. Entering analytics draws the charts and
// leaving it tears them down.
func (s *DashboardSession) SetTab(tab string) error {
	tab, err := NormalizeTab(tab)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.lastActive = s.now()
	if tab == s.tab {
		return nil
	}

	s.logger.Debug("Switching dashboard tab", zap.String("from", s.tab), zap.String("to", tab))
	if s.tab == constants.TabAnalytics {
		s.unmountLocked()
	}
	s.tab = tab
	if tab == constants.TabAnalytics {
		s.mountLocked()
	}
	return nil
}

// Deliver replaces the view's snapshot. Mounted charts are rebuilt.
func (s *DashboardSession) Deliver(data *business.DashboardData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.lastActive = s.now()
	s.data = data
	if s.mounted {
		s.manager.OnDataAvailable(data)
	}
	return nil
}

// Charts returns the configs of bound slots in slot order
func (s *DashboardSession) Charts() []charts.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = s.now()

	instances := s.manager.Instances()
	out := make([]charts.Config, 0, len(instances))
	for _, slot := range charts.Slots {
		if inst, ok := instances[slot]; ok {
			out = append(out, inst.Config())
		}
	}
	return out
}

// ChartImage returns the image painted in slot
func (s *DashboardSession) ChartImage(slot charts.Slot) (render.Image, bool) {
	canvas, ok := s.canvases[slot]
	if !ok {
		return render.Image{}, false
	}
	s.touch()
	return canvas.Snapshot()
}

// Info describes the view
func (s *DashboardSession) Info() business.SessionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots := make(map[string]string, len(charts.Slots))
	for _, slot := range charts.Slots {
		slots[string(slot)] = s.manager.State(slot).String()
	}
	return business.SessionInfo{
		ID:         s.id,
		ProjectID:  s.projectID,
		Tab:        s.tab,
		HasData:    s.data.PrimaryLocation() != nil,
		Mounted:    s.mounted,
		Generation: s.manager.Generation(),
		Slots:      slots,
		CreatedAt:  s.createdAt,
		LastActive: s.lastActive,
	}
}

// Close tears the charts down. Calling it again does nothing.
func (s *DashboardSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.unmountLocked()
	s.logger.Debug("Dashboard session closed")
}

func (s *DashboardSession) touch() {
	s.mu.Lock()
	s.lastActive = s.now()
	s.mu.Unlock()
}

func (s *DashboardSession) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}
