package interfaces

import (
	"context"

	"github.com/google/uuid"
	"github.com/h2grid/h2grid-api/internal/charts"
	"github.com/h2grid/h2grid-api/internal/charts/render"
	"github.com/h2grid/h2grid-api/internal/types/api/requests"
	"github.com/h2grid/h2grid-api/internal/types/api/responses"
	"github.com/h2grid/h2grid-api/internal/types/business"
)

//go:generate mockgen -destination=../mocks/mock_services.go -package=mocks github.com/h2grid/h2grid-api/internal/interfaces DashboardService,DashboardSession,SnapshotPublisher,AuthService,EmailSender

// DashboardSession is one open dashboard view
type DashboardSession interface {
	ID() uuid.UUID
	ProjectID() uuid.UUID
	Info() business.SessionInfo
	SetTab(tab string) error
	Deliver(data *business.DashboardData) error
	Charts() []charts.Config
	ChartImage(slot charts.Slot) (render.Image, bool)
	Close()
}

// DashboardService owns dashboard views and project snapshots
type DashboardService interface {
	OpenSession(ctx context.Context, projectID uuid.UUID, tab string) (DashboardSession, error)
	GetSession(id uuid.UUID) (DashboardSession, error)
	CloseSession(id uuid.UUID) error
	GetSnapshot(ctx context.Context, projectID uuid.UUID) (*business.DashboardData, error)
	PublishSnapshot(ctx context.Context, projectID uuid.UUID, data *business.DashboardData) (int, error)
	Overview() business.Overview
}

// SnapshotPublisher delivers snapshot updates to open views
type SnapshotPublisher interface {
	PublishSnapshot(ctx context.Context, projectID uuid.UUID, data *business.DashboardData) (int, error)
	ReloadSnapshot(ctx context.Context, projectID uuid.UUID) (int, error)
}

// AuthService logs users in and registers them through the user service
type AuthService interface {
	Login(ctx context.Context, req requests.LoginRequest) (*responses.LoginResponse, error)
	Register(ctx context.Context, req requests.RegisterRequest) (*responses.RegisterResponse, error)
}

// EmailSender sends transactional email
type EmailSender interface {
	SendWelcomeEmail(ctx context.Context, toEmail, username string) error
}
