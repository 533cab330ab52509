package business

import (
	"time"

	"github.com/google/uuid"
)

// SessionInfo describes an open dashboard view
type SessionInfo struct {
	ID         uuid.UUID         `json:"id"`
	ProjectID  uuid.UUID         `json:"project_id"`
	Tab        string            `json:"tab"`
	HasData    bool              `json:"has_data"`
	Mounted    bool              `json:"mounted"`
	Generation uint64            `json:"generation"`
	Slots      map[string]string `json:"slots"`
	CreatedAt  time.Time         `json:"created_at"`
	LastActive time.Time         `json:"last_active"`
}
