package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/h2grid/h2grid-api/internal/charts"
	"github.com/h2grid/h2grid-api/internal/interfaces"
	"github.com/h2grid/h2grid-api/internal/types/api/requests"
	"github.com/h2grid/h2grid-api/internal/types/api/responses"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DashboardHandler manages open dashboard views and their charts
type DashboardHandler struct {
	dashboardService interfaces.DashboardService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService interfaces.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, logger: logger}
}

func chartImageURL(sessionID uuid.UUID, slot charts.Slot) string {
	return fmt.Sprintf("/api/v1/dashboard/sessions/%s/charts/%s", sessionID, slot)
}

// session resolves the :session_id parameter, writing the error response
// when it cannot
func (h *DashboardHandler) session(c *gin.Context) (interfaces.DashboardSession, bool) {
	id, err := parseUUIDParam(c, "session_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid session ID format", err)
		return nil, false
	}
	session, err := h.dashboardService.GetSession(id)
	if err != nil {
		handleStoreError(c, err, "Dashboard session not found")
		return nil, false
	}
	return session, true
}

// GetOverview godoc
// @Summary Overview tab content
// @Tags dashboard
// @Produce json
// @Success 200 {object} business.Overview
// @Security BearerAuth
// @Router /dashboard/overview [get]
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	sendSuccess(c, http.StatusOK, h.dashboardService.Overview())
}

// CreateSession godoc
// @Summary Open a dashboard view
// @Description Opens a view of the project. Charts are drawn while the analytics tab is active.
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body requests.CreateSessionRequest true "Session"
// @Success 201 {object} business.SessionInfo
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/sessions [post]
func (h *DashboardHandler) CreateSession(c *gin.Context) {
	var req requests.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "A valid project_id is required", err)
		return
	}
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid project ID format", errors.Wrap(err, "invalid project_id"))
		return
	}

	session, err := h.dashboardService.OpenSession(c.Request.Context(), projectID, req.Tab)
	if err != nil {
		handleStoreError(c, err, "Project not found")
		return
	}
	sendSuccess(c, http.StatusCreated, session.Info())
}

// GetSession godoc
// @Summary Describe a dashboard view
// @Tags dashboard
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} business.SessionInfo
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/sessions/{session_id} [get]
func (h *DashboardHandler) GetSession(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	sendSuccess(c, http.StatusOK, session.Info())
}

// SetTab godoc
// @Summary Switch the active tab
// @Tags dashboard
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param request body requests.SetTabRequest true "Tab"
// @Success 200 {object} business.SessionInfo
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/sessions/{session_id}/tab [put]
func (h *DashboardHandler) SetTab(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req requests.SetTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "tab is required", err)
		return
	}
	if err := session.SetTab(req.Tab); err != nil {
		handleStoreError(c, err, "Dashboard session not found")
		return
	}
	sendSuccess(c, http.StatusOK, session.Info())
}

// PushData godoc
// @Summary Push a snapshot to one view
// @Description Replaces the view's data without storing it
// @Tags dashboard
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param request body requests.SnapshotRequest true "Snapshot"
// @Success 200 {object} business.SessionInfo
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/sessions/{session_id}/data [post]
func (h *DashboardHandler) PushData(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req requests.SnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid snapshot payload", err)
		return
	}
	if err := session.Deliver(req.Snapshot); err != nil {
		handleStoreError(c, err, "Dashboard session not found")
		return
	}
	sendSuccess(c, http.StatusOK, session.Info())
}

// ListCharts godoc
// @Summary List drawn charts
// @Description Configs of the bound chart slots. Empty while the view is not on analytics or has no data.
// @Tags dashboard
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} responses.ListResponse
// @Security BearerAuth
// @Router /dashboard/sessions/{session_id}/charts [get]
func (h *DashboardHandler) ListCharts(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	configs := session.Charts()
	out := make([]responses.ChartResponse, 0, len(configs))
	for _, cfg := range configs {
		chart := responses.ChartResponse{
			Slot:        string(cfg.Slot),
			Kind:        string(cfg.Kind),
			Title:       cfg.Title,
			SeriesLabel: cfg.SeriesLabel,
			Labels:      cfg.Labels,
			Values:      cfg.Values,
			Colors:      cfg.Colors,
			YMax:        cfg.YMax,
			ImageURL:    chartImageURL(session.ID(), cfg.Slot),
		}
		if img, ok := session.ChartImage(cfg.Slot); ok {
			chart.UpdatedAt = img.UpdatedAt
		}
		out = append(out, chart)
	}
	sendList(c, out)
}

// GetChartImage godoc
// @Summary Chart image
// @Description The rendered image of a slot (trend, breakdown, comparison, utilization)
// @Tags dashboard
// @Produce image/png
// @Produce image/svg+xml
// @Param session_id path string true "Session ID"
// @Param slot path string true "Chart slot"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/sessions/{session_id}/charts/{slot} [get]
func (h *DashboardHandler) GetChartImage(c *gin.Context) {
	slot, err := charts.ParseSlot(c.Param("slot"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Unknown chart slot", err)
		return
	}
	session, ok := h.session(c)
	if !ok {
		return
	}

	img, ok := session.ChartImage(slot)
	if !ok {
		sendError(c, http.StatusNotFound, "Chart is not drawn", fmt.Errorf("slot %s is empty", slot))
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Header("Last-Modified", img.UpdatedAt.UTC().Format(http.TimeFormat))
	c.Data(http.StatusOK, img.ContentType, img.Data)
}

// DeleteSession godoc
// @Summary Close a dashboard view
// @Tags dashboard
// @Param session_id path string true "Session ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/sessions/{session_id} [delete]
func (h *DashboardHandler) DeleteSession(c *gin.Context) {
	id, err := parseUUIDParam(c, "session_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid session ID format", err)
		return
	}
	if err := h.dashboardService.CloseSession(id); err != nil {
		handleStoreError(c, err, "Dashboard session not found")
		return
	}
	c.Status(http.StatusNoContent)
}
