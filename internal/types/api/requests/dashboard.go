package requests

import "github.com/h2grid/h2grid-api/internal/types/business"

// CreateSessionRequest opens a dashboard view
type CreateSessionRequest struct {
	ProjectID string `json:"project_id" binding:"required,uuid"`
	Tab       string `json:"tab"`
}

// SetTabRequest switches the active tab of a view
type SetTabRequest struct {
	Tab string `json:"tab" binding:"required"`
}

// SnapshotRequest carries an optimizer snapshot
type SnapshotRequest struct {
	Snapshot *business.DashboardData `json:"snapshot" binding:"required"`
}
