package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/h2grid/h2grid-api/internal/client/auth"
	"github.com/h2grid/h2grid-api/internal/interfaces"
	"github.com/h2grid/h2grid-api/internal/services"
	"github.com/h2grid/h2grid-api/internal/types/api/requests"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// AuthHandler exposes login and registration
type AuthHandler struct {
	authService interfaces.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService interfaces.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

// authStatus picks the response status for a failed auth call
func authStatus(err error) int {
	var authErr *services.AuthError
	if !errors.As(err, &authErr) {
		return http.StatusInternalServerError
	}
	switch {
	case authErr.Status >= 400 && authErr.Status < 500:
		return authErr.Status
	case authErr.Status >= 500, errors.Is(authErr.Err, auth.ErrMissingToken):
		return http.StatusBadGateway
	case authErr.Err == nil:
		// rejected before reaching the user service
		return http.StatusBadRequest
	default:
		return http.StatusServiceUnavailable
	}
}

func authMessage(err error, fallback string) string {
	var authErr *services.AuthError
	if errors.As(err, &authErr) {
		return authErr.Message
	}
	return fallback
}

// Login godoc
// @Summary Log in
// @Description Exchanges credentials for a session token from the user service
// @Tags auth
// @Accept json
// @Produce json
// @Param request body requests.LoginRequest true "Credentials"
// @Success 200 {object} responses.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req requests.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Email and password are required", err)
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		sendError(c, authStatus(err), authMessage(err, services.MsgLoginFailed), err)
		return
	}
	sendSuccess(c, http.StatusOK, resp)
}

// Register godoc
// @Summary Register
// @Description Creates an account with the user service
// @Tags auth
// @Accept json
// @Produce json
// @Param request body requests.RegisterRequest true "Registration"
// @Success 201 {object} responses.RegisterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req requests.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Username, email and password are required", err)
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		sendError(c, authStatus(err), authMessage(err, services.MsgRegisterFailed), err)
		return
	}
	sendSuccess(c, http.StatusCreated, resp)
}
