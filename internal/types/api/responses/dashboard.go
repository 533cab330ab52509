package responses

import (
	"time"

	"github.com/google/uuid"
	"github.com/h2grid/h2grid-api/internal/types/business"
)

// SnapshotResponse returns a stored snapshot
type SnapshotResponse struct {
	ProjectID uuid.UUID               `json:"project_id"`
	Snapshot  *business.DashboardData `json:"snapshot"`
	// Delivered counts the open views that received the snapshot
	Delivered int `json:"delivered,omitempty"`
}

// ChartResponse describes a bound chart
type ChartResponse struct {
	Slot        string    `json:"slot"`
	Kind        string    `json:"kind"`
	Title       string    `json:"title"`
	SeriesLabel string    `json:"series_label,omitempty"`
	Labels      []string  `json:"labels"`
	Values      []float64 `json:"values"`
	Colors      []string  `json:"colors"`
	YMax        float64   `json:"y_max,omitempty"`
	ImageURL    string    `json:"image_url"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}
