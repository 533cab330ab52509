package services

import (
	"context"
	"errors"

	"github.com/h2grid/h2grid-api/internal/client/auth"
	"github.com/h2grid/h2grid-api/internal/interfaces"
	"github.com/h2grid/h2grid-api/internal/logger"
	"github.com/h2grid/h2grid-api/internal/types/api/requests"
	"github.com/h2grid/h2grid-api/internal/types/api/responses"
	"go.uber.org/zap"
)

// Messages shown to the user
const (
	MsgLoginSuccess        = "Welcome back! Redirecting to your dashboard..."
	MsgLoginFailed         = "Login failed. Please try again."
	MsgRegisterSuccess     = "Registration successful. You can now login."
	MsgRegisterFailed      = "Registration failed. Please try again."
	MsgNetworkError        = "Network error. Please check your connection and try again."
	MsgPasswordsMismatched = "Passwords don't match!"
)

// AuthError is a failure that carries the message to show the user.
// Status is the upstream HTTP status, or 0 when the service was never
// reached or the request was rejected locally.
type AuthError struct {
	Message string
	Status  int
	Err     error
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// AuthService fronts the external user service
type AuthService struct {
	api    interfaces.AuthAPI
	email  interfaces.EmailSender
	logger *zap.Logger
}

// NewAuthService creates the service. email may be nil, in which case no
// welcome email is sent.
func NewAuthService(api interfaces.AuthAPI, email interfaces.EmailSender, log *zap.Logger) *AuthService {
	return &AuthService{api: api, email: email, logger: logger.OrNop(log)}
}

// Login exchanges credentials for a session token
func (s *AuthService) Login(ctx context.Context, req requests.LoginRequest) (*responses.LoginResponse, error) {
	session, err := s.api.Login(ctx, auth.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		s.logger.Warn("Login rejected", zap.String("email", req.Email), zap.Error(err))
		return nil, toAuthError(err, MsgLoginFailed)
	}

	return &responses.LoginResponse{
		Message: MsgLoginSuccess,
		Token:   session.Token,
		User:    session.User,
	}, nil
}

// Register creates an account and sends the welcome email
func (s *AuthService) Register(ctx context.Context, req requests.RegisterRequest) (*responses.RegisterResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, &AuthError{Message: MsgPasswordsMismatched}
	}

	user, err := s.api.Register(ctx, auth.Registration{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		s.logger.Warn("Registration rejected", zap.String("email", req.Email), zap.Error(err))
		return nil, toAuthError(err, MsgRegisterFailed)
	}

	if s.email != nil {
		if err := s.email.SendWelcomeEmail(ctx, req.Email, req.Username); err != nil {
			s.logger.Warn("Welcome email not sent", zap.String("email", req.Email), zap.Error(err))
		}
	}

	return &responses.RegisterResponse{Message: MsgRegisterSuccess, User: user}, nil
}

func toAuthError(err error, fallback string) *AuthError {
	if upstream, ok := auth.IsUpstream(err); ok {
		msg := upstream.Message
		if msg == "" {
			msg = fallback
		}
		return &AuthError{Message: msg, Status: upstream.StatusCode, Err: err}
	}
	if errors.Is(err, auth.ErrMissingToken) {
		return &AuthError{Message: fallback, Err: err}
	}
	return &AuthError{Message: MsgNetworkError, Err: err}
}
