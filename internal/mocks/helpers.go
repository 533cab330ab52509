package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockDashboardServiceForTest creates a new mock DashboardService for testing
func NewMockDashboardServiceForTest(t *testing.T) *MockDashboardService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockDashboardService(ctrl)
}

// NewMockDashboardSessionForTest creates a new mock DashboardSession for testing
func NewMockDashboardSessionForTest(t *testing.T) *MockDashboardSession {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockDashboardSession(ctrl)
}

// NewMockSnapshotPublisherForTest creates a new mock SnapshotPublisher for testing
func NewMockSnapshotPublisherForTest(t *testing.T) *MockSnapshotPublisher {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockSnapshotPublisher(ctrl)
}

// NewMockAuthServiceForTest creates a new mock AuthService for testing
func NewMockAuthServiceForTest(t *testing.T) *MockAuthService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockAuthService(ctrl)
}

// NewMockEmailSenderForTest creates a new mock EmailSender for testing
func NewMockEmailSenderForTest(t *testing.T) *MockEmailSender {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockEmailSender(ctrl)
}

// NewMockAuthAPIForTest creates a new mock AuthAPI for testing
func NewMockAuthAPIForTest(t *testing.T) *MockAuthAPI {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockAuthAPI(ctrl)
}

// NewMockSnapshotQueueForTest creates a new mock SnapshotQueue for testing
func NewMockSnapshotQueueForTest(t *testing.T) *MockSnapshotQueue {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockSnapshotQueue(ctrl)
}
