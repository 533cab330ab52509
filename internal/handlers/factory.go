package handlers

import (
	"github.com/h2grid/h2grid-api/internal/interfaces"
	"github.com/h2grid/h2grid-api/internal/logger"
	"go.uber.org/zap"
)

// HandlerFactory creates handlers with their dependencies
type HandlerFactory struct {
	dashboardService interfaces.DashboardService
	authService      interfaces.AuthService
	logger           *zap.Logger
}

// HandlerFactoryConfig contains all configuration for the handler factory
type HandlerFactoryConfig struct {
	DashboardService interfaces.DashboardService
	AuthService      interfaces.AuthService
	Logger           *zap.Logger
}

// NewHandlerFactory creates a new handler factory
func NewHandlerFactory(config HandlerFactoryConfig) *HandlerFactory {
	return &HandlerFactory{
		dashboardService: config.DashboardService,
		authService:      config.AuthService,
		logger:           logger.OrNop(config.Logger),
	}
}

func (f *HandlerFactory) NewHealthHandler() *HealthHandler {
	return NewHealthHandler()
}

func (f *HandlerFactory) NewAuthHandler() *AuthHandler {
	return NewAuthHandler(f.authService, f.logger)
}

func (f *HandlerFactory) NewProjectHandler() *ProjectHandler {
	return NewProjectHandler(f.dashboardService, f.logger)
}

func (f *HandlerFactory) NewDashboardHandler() *DashboardHandler {
	return NewDashboardHandler(f.dashboardService, f.logger)
}
