package interfaces

import (
	"context"

	"github.com/h2grid/h2grid-api/internal/client/auth"
	"github.com/h2grid/h2grid-api/internal/client/aws"
)

//go:generate mockgen -destination=../mocks/mock_clients.go -package=mocks github.com/h2grid/h2grid-api/internal/interfaces AuthAPI,SnapshotQueue

// AuthAPI is the external user service
type AuthAPI interface {
	Login(ctx context.Context, creds auth.Credentials) (*auth.Session, error)
	Register(ctx context.Context, reg auth.Registration) (map[string]interface{}, error)
}

// SnapshotQueue is the queue carrying snapshot notifications
type SnapshotQueue interface {
	Receive(ctx context.Context) ([]aws.Message, error)
	Delete(ctx context.Context, receiptHandle string) error
}
