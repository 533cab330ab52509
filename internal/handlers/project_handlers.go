package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/h2grid/h2grid-api/internal/interfaces"
	"github.com/h2grid/h2grid-api/internal/services"
	"github.com/h2grid/h2grid-api/internal/types/api/requests"
	"github.com/h2grid/h2grid-api/internal/types/api/responses"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var errNoLocation = errors.New("snapshot has no suggested location")

// ProjectHandler serves per-project snapshot data
type ProjectHandler struct {
	dashboardService interfaces.DashboardService
	logger           *zap.Logger
}

func NewProjectHandler(dashboardService interfaces.DashboardService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{dashboardService: dashboardService, logger: logger}
}

// PutSnapshot godoc
// @Summary Publish a project snapshot
// @Description Stores the optimizer snapshot and redraws every open dashboard of the project
// @Tags projects
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param request body requests.SnapshotRequest true "Snapshot"
// @Success 200 {object} responses.SnapshotResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/snapshot [post]
func (h *ProjectHandler) PutSnapshot(c *gin.Context) {
	projectID, err := parseUUIDParam(c, "project_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid project ID format", err)
		return
	}

	var req requests.SnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid snapshot payload", err)
		return
	}

	delivered, err := h.dashboardService.PublishSnapshot(c.Request.Context(), projectID, req.Snapshot)
	if err != nil {
		handleStoreError(c, errors.Wrap(err, "publish snapshot"), "Project not found")
		return
	}

	h.logger.Info("Snapshot published",
		zap.String("project_id", projectID.String()),
		zap.Int("sessions", delivered))
	sendSuccess(c, http.StatusOK, responses.SnapshotResponse{
		ProjectID: projectID,
		Snapshot:  req.Snapshot,
		Delivered: delivered,
	})
}

// GetSnapshot godoc
// @Summary Get a project snapshot
// @Tags projects
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {object} responses.SnapshotResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/snapshot [get]
func (h *ProjectHandler) GetSnapshot(c *gin.Context) {
	projectID, err := parseUUIDParam(c, "project_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid project ID format", err)
		return
	}

	data, err := h.dashboardService.GetSnapshot(c.Request.Context(), projectID)
	if err != nil {
		handleStoreError(c, err, "No snapshot for this project")
		return
	}
	sendSuccess(c, http.StatusOK, responses.SnapshotResponse{ProjectID: projectID, Snapshot: data})
}

// GetVisualization godoc
// @Summary Get the site map of a project
// @Description Plant, nearby consumers, coverage and infrastructure counts
// @Tags projects
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {object} business.Visualization
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/visualization [get]
func (h *ProjectHandler) GetVisualization(c *gin.Context) {
	projectID, err := parseUUIDParam(c, "project_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid project ID format", err)
		return
	}

	data, err := h.dashboardService.GetSnapshot(c.Request.Context(), projectID)
	if err != nil {
		handleStoreError(c, err, "No snapshot for this project")
		return
	}
	view, ok := services.BuildVisualization(data)
	if !ok {
		sendError(c, http.StatusNotFound, "No suggested location for this project", errNoLocation)
		return
	}
	sendSuccess(c, http.StatusOK, view)
}

// GetCostComparison godoc
// @Summary Compare base and optimized cost
// @Tags projects
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {object} business.CostComparison
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/cost-comparison [get]
func (h *ProjectHandler) GetCostComparison(c *gin.Context) {
	projectID, err := parseUUIDParam(c, "project_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid project ID format", err)
		return
	}

	data, err := h.dashboardService.GetSnapshot(c.Request.Context(), projectID)
	if err != nil {
		handleStoreError(c, err, "No snapshot for this project")
		return
	}
	cmp, ok := services.CostComparison(data)
	if !ok {
		sendError(c, http.StatusNotFound, "No suggested location for this project", errNoLocation)
		return
	}
	sendSuccess(c, http.StatusOK, cmp)
}
