package auth

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMissingToken is returned when a successful login carries no token
	ErrMissingToken = errors.New("login response did not include a session token")
)

// UpstreamError is a rejection answered by the authentication service
type UpstreamError struct {
	StatusCode int
	// Message is the human-readable reason the service returned, if any
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("auth service responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("auth service responded with status %d: %s", e.StatusCode, e.Message)
}

// messageFromBody extracts the "message" field of an error payload
func messageFromBody(body string) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return ""
	}
	return payload.Message
}
