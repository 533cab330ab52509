package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/h2grid/h2grid-api/internal/charts"
	"github.com/h2grid/h2grid-api/internal/db"
	"github.com/h2grid/h2grid-api/internal/interfaces"
	"github.com/h2grid/h2grid-api/internal/logger"
	"github.com/h2grid/h2grid-api/internal/types/business"
	"go.uber.org/zap"
)

// ErrSessionNotFound is returned for an unknown or reaped session id
var ErrSessionNotFound = errors.New("dashboard session not found")

// Session defaults
const (
	DefaultSessionTTL      = 30 * time.Minute
	DefaultJanitorInterval = time.Minute
)

// DashboardServiceConfig contains all dependencies of a DashboardService
type DashboardServiceConfig struct {
	Store           db.SnapshotStore
	Factory         charts.Factory
	Series          charts.SeriesSource
	SessionTTL      time.Duration
	JanitorInterval time.Duration
	CanvasWidth     int
	CanvasHeight    int
	Logger          *zap.Logger
	// Now is overridable for tests
	Now func() time.Time
}

// DashboardService owns the open dashboard views and routes snapshot
// updates to them
type DashboardService struct {
	store           db.SnapshotStore
	factory         charts.Factory
	series          charts.SeriesSource
	ttl             time.Duration
	janitorInterval time.Duration
	canvasWidth     int
	canvasHeight    int
	logger          *zap.Logger
	now             func() time.Time

	mu       sync.RWMutex
	sessions map[uuid.UUID]*DashboardSession

	stopCh   chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
	started  bool
}

// NewDashboardService creates the service. The janitor is not running
// until Start is called.
func NewDashboardService(config DashboardServiceConfig) *DashboardService {
	if config.SessionTTL <= 0 {
		config.SessionTTL = DefaultSessionTTL
	}
	if config.JanitorInterval <= 0 {
		config.JanitorInterval = DefaultJanitorInterval
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	if config.Series == nil {
		config.Series = charts.StaticSeries{}
	}

	return &DashboardService{
		store:           config.Store,
		factory:         config.Factory,
		series:          config.Series,
		ttl:             config.SessionTTL,
		janitorInterval: config.JanitorInterval,
		canvasWidth:     config.CanvasWidth,
		canvasHeight:    config.CanvasHeight,
		logger:          logger.OrNop(config.Logger),
		now:             config.Now,
		sessions:        make(map[uuid.UUID]*DashboardSession),
		stopCh:          make(chan struct{}),
	}
}

// OpenSession creates a view of the project. A project without a stored
// snapshot opens with no data.
func (s *DashboardService) OpenSession(ctx context.Context, projectID uuid.UUID, tab string) (interfaces.DashboardSession, error) {
	data, err := s.store.GetSnapshot(ctx, projectID)
	if err != nil && !errors.Is(err, db.ErrSnapshotNotFound) {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	session, err := newDashboardSession(sessionConfig{
		projectID:    projectID,
		tab:          tab,
		data:         data,
		factory:      s.factory,
		series:       s.series,
		canvasWidth:  s.canvasWidth,
		canvasHeight: s.canvasHeight,
		now:          s.now,
		logger:       s.logger,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions[session.ID()] = session
	open := len(s.sessions)
	s.mu.Unlock()

	s.logger.Info("Dashboard session opened",
		zap.String("session_id", session.ID().String()),
		zap.String("project_id", projectID.String()),
		zap.Bool("has_data", data.PrimaryLocation() != nil),
		zap.Int("open_sessions", open))
	return session, nil
}

// GetSession returns an open view
func (s *DashboardService) GetSession(id uuid.UUID) (interfaces.DashboardSession, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// CloseSession tears a view down and forgets it
func (s *DashboardService) CloseSession(id uuid.UUID) error {
	s.mu.Lock()
	session, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	session.Close()
	return nil
}

// CloseAll tears down every view
func (s *DashboardService) CloseAll() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[uuid.UUID]*DashboardSession)
	s.mu.Unlock()

	for _, session := range sessions {
		session.Close()
	}
	if len(sessions) > 0 {
		s.logger.Info("Closed all dashboard sessions", zap.Int("count", len(sessions)))
	}
}

// SessionCount returns the number of open views
func (s *DashboardService) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// GetSnapshot returns the stored snapshot of a project
func (s *DashboardService) GetSnapshot(ctx context.Context, projectID uuid.UUID) (*business.DashboardData, error) {
	return s.store.GetSnapshot(ctx, projectID)
}

// PublishSnapshot stores data and delivers it to every open view of the
// project. It returns the number of views reached.
func (s *DashboardService) PublishSnapshot(ctx context.Context, projectID uuid.UUID, data *business.DashboardData) (int, error) {
	if err := s.store.PutSnapshot(ctx, projectID, data); err != nil {
		return 0, fmt.Errorf("failed to store snapshot: %w", err)
	}
	return s.deliver(projectID, data), nil
}

// ReloadSnapshot delivers the stored snapshot of a project to its views
func (s *DashboardService) ReloadSnapshot(ctx context.Context, projectID uuid.UUID) (int, error) {
	data, err := s.store.GetSnapshot(ctx, projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to reload snapshot: %w", err)
	}
	return s.deliver(projectID, data), nil
}

func (s *DashboardService) deliver(projectID uuid.UUID, data *business.DashboardData) int {
	s.mu.RLock()
	targets := make([]*DashboardSession, 0)
	for _, session := range s.sessions {
		if session.ProjectID() == projectID {
			targets = append(targets, session)
		}
	}
	s.mu.RUnlock()

	delivered := 0
	for _, session := range targets {
		// each view gets its own copy so views never share nested maps
		if err := session.Deliver(cloneSnapshot(data)); err != nil {
			s.logger.Debug("Skipping closed dashboard session",
				zap.String("session_id", session.ID().String()),
				zap.Error(err))
			continue
		}
		delivered++
	}

	s.logger.Info("Snapshot delivered",
		zap.String("project_id", projectID.String()),
		zap.Int("sessions", delivered))
	return delivered
}

// Overview returns the overview tab content
func (s *DashboardService) Overview() business.Overview {
	return SampleOverview()
}

// Start runs the idle-session janitor
func (s *DashboardService) Start() {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	s.logger.Info("Starting dashboard session janitor",
		zap.Duration("ttl", s.ttl),
		zap.Duration("interval", s.janitorInterval))

	s.wg.Add(1)
	go s.runJanitor()
}

// Stop halts the janitor. Open views stay open; call CloseAll to tear
// them down.
func (s *DashboardService) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
		s.wg.Wait()
		s.logger.Info("Dashboard session janitor stopped")
	})
}

func (s *DashboardService) runJanitor() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.ReapIdle()
		case <-s.stopCh:
			return
		}
	}
}

// ReapIdle closes views idle for longer than the TTL and returns how many
// were closed
func (s *DashboardService) ReapIdle() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	var idle []*DashboardSession
	for id, session := range s.sessions {
		if session.idleSince().Before(cutoff) {
			idle = append(idle, session)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, session := range idle {
		session.Close()
	}
	if len(idle) > 0 {
		s.logger.Info("Reaped idle dashboard sessions", zap.Int("count", len(idle)))
	}
	return len(idle)
}
