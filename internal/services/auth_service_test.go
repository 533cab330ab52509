package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/h2grid/h2grid-api/internal/client/auth"
	"github.com/h2grid/h2grid-api/internal/mocks"
	"github.com/h2grid/h2grid-api/internal/types/api/requests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()
	req := requests.LoginRequest{Email: "asha@example.com", Password: "secret"}

	tests := []struct {
		name        string
		apiErr      error
		wantMessage string
		wantStatus  int
	}{
		{
			name:        "upstream message is shown",
			apiErr:      &auth.UpstreamError{StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"},
			wantMessage: "Invalid credentials",
			wantStatus:  http.StatusUnauthorized,
		},
		{
			name:        "upstream without message falls back",
			apiErr:      &auth.UpstreamError{StatusCode: http.StatusInternalServerError},
			wantMessage: MsgLoginFailed,
			wantStatus:  http.StatusInternalServerError,
		},
		{
			name:        "missing token",
			apiErr:      auth.ErrMissingToken,
			wantMessage: MsgLoginFailed,
		},
		{
			name:        "transport failure",
			apiErr:      errors.New("dial tcp: connection refused"),
			wantMessage: MsgNetworkError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := mocks.NewMockAuthAPIForTest(t)
			api.EXPECT().Login(gomock.Any(), auth.Credentials{Email: req.Email, Password: req.Password}).Return(nil, tt.apiErr)

			svc := NewAuthService(api, nil, zap.NewNop())
			resp, err := svc.Login(ctx, req)
			assert.Nil(t, resp)

			var authErr *AuthError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, tt.wantMessage, authErr.Message)
			assert.Equal(t, tt.wantStatus, authErr.Status)
			assert.ErrorIs(t, err, tt.apiErr)
		})
	}

	t.Run("success", func(t *testing.T) {
		api := mocks.NewMockAuthAPIForTest(t)
		api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(&auth.Session{
			Token: "tok-123",
			User:  map[string]interface{}{"email": req.Email},
		}, nil)

		resp, err := NewAuthService(api, nil, zap.NewNop()).Login(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, MsgLoginSuccess, resp.Message)
		assert.Equal(t, "tok-123", resp.Token)
		assert.Equal(t, req.Email, resp.User["email"])
	})
}

func TestAuthServiceRegister(t *testing.T) {
	ctx := context.Background()
	req := requests.RegisterRequest{
		Username:        "asha",
		Email:           "asha@example.com",
		Password:        "secret",
		ConfirmPassword: "secret",
	}

	t.Run("password mismatch never reaches the service", func(t *testing.T) {
		api := mocks.NewMockAuthAPIForTest(t)
		bad := req
		bad.ConfirmPassword = "other"

		_, err := NewAuthService(api, nil, zap.NewNop()).Register(ctx, bad)
		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, MsgPasswordsMismatched, authErr.Message)
	})

	t.Run("success sends welcome email", func(t *testing.T) {
		api := mocks.NewMockAuthAPIForTest(t)
		email := mocks.NewMockEmailSenderForTest(t)
		api.EXPECT().Register(gomock.Any(), auth.Registration{Username: "asha", Email: req.Email, Password: "secret"}).
			Return(map[string]interface{}{"id": "u1"}, nil)
		email.EXPECT().SendWelcomeEmail(gomock.Any(), req.Email, "asha").Return(nil)

		resp, err := NewAuthService(api, email, zap.NewNop()).Register(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, MsgRegisterSuccess, resp.Message)
		assert.Equal(t, "u1", resp.User["id"])
	})

	t.Run("email failure does not fail registration", func(t *testing.T) {
		api := mocks.NewMockAuthAPIForTest(t)
		email := mocks.NewMockEmailSenderForTest(t)
		api.EXPECT().Register(gomock.Any(), gomock.Any()).Return(map[string]interface{}{}, nil)
		email.EXPECT().SendWelcomeEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("resend down"))

		resp, err := NewAuthService(api, email, zap.NewNop()).Register(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, MsgRegisterSuccess, resp.Message)
	})

	t.Run("upstream rejection", func(t *testing.T) {
		api := mocks.NewMockAuthAPIForTest(t)
		email := mocks.NewMockEmailSenderForTest(t)
		api.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, &auth.UpstreamError{StatusCode: http.StatusConflict, Message: "Email already registered"})

		_, err := NewAuthService(api, email, zap.NewNop()).Register(ctx, req)
		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, "Email already registered", authErr.Message)
		assert.Equal(t, http.StatusConflict, authErr.Status)
	})

	t.Run("transport failure", func(t *testing.T) {
		api := mocks.NewMockAuthAPIForTest(t)
		api.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := NewAuthService(api, nil, zap.NewNop()).Register(ctx, req)
		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, MsgNetworkError, authErr.Message)
	})
}
