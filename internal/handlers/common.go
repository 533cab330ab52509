package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/h2grid/h2grid-api/internal/db"
	"github.com/h2grid/h2grid-api/internal/logger"
	"github.com/h2grid/h2grid-api/internal/middleware"
	"github.com/h2grid/h2grid-api/internal/services"
	"github.com/h2grid/h2grid-api/internal/types/api/responses"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrorResponse represents a standard error response
type ErrorResponse = responses.ErrorResponse

// sendError logs err and sends a JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := middleware.GetCorrelationID(c)
	fields := []zap.Field{
		zap.Error(err),
		zap.String("correlation_id", correlationID),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Int("status", statusCode),
	}
	if statusCode >= http.StatusInternalServerError {
		logger.Error(message, fields...)
	} else {
		logger.Debug(message, fields...)
	}
	c.JSON(statusCode, ErrorResponse{Error: message, CorrelationID: correlationID})
}

// handleStoreError maps snapshot and session errors to HTTP status codes
func handleStoreError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, db.ErrSnapshotNotFound), errors.Is(err, services.ErrSessionNotFound):
		sendError(c, http.StatusNotFound, notFoundMsg, err)
	case errors.Is(err, services.ErrInvalidTab):
		sendError(c, http.StatusBadRequest, "Invalid dashboard tab", err)
	case errors.Is(err, services.ErrSessionClosed):
		sendError(c, http.StatusGone, "Dashboard session is closed", err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendList sends a list response
func sendList(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, responses.ListResponse{Object: "list", Data: items})
}

// parseUUIDParam reads a UUID path parameter
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "invalid %s", name)
	}
	return id, nil
}
