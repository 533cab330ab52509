package auth

import (
	"context"
	"errors"
	"fmt"

	httpClient "github.com/h2grid/h2grid-api/internal/client/http"
)

const (
	loginPath    = "/api/v1/user/login"
	registerPath = "/api/v1/user/create"
)

// Credentials are posted to the login endpoint
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is posted to the user creation endpoint
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is a successful login
type Session struct {
	Token string
	User  map[string]interface{}
}

// loginResponse mirrors the service payload: the token sits at data.data
type loginResponse struct {
	Data struct {
		Data string `json:"data"`
	} `json:"data"`
	User    map[string]interface{} `json:"user"`
	Message string                 `json:"message"`
}

type registerResponse struct {
	User    map[string]interface{} `json:"user"`
	Message string                 `json:"message"`
}

// Client calls the external user service
type Client struct {
	http *httpClient.HTTPClient
}

// NewClient creates a client for the service at baseURL
func NewClient(baseURL string, opts ...httpClient.ClientOption) *Client {
	options := append([]httpClient.ClientOption{httpClient.WithBaseURL(baseURL)}, opts...)
	return &Client{http: httpClient.NewHTTPClient(options...)}
}

// Login exchanges credentials for a session token
func (c *Client) Login(ctx context.Context, creds Credentials) (*Session, error) {
	resp, err := c.http.Post(ctx, loginPath, creds)
	if err != nil {
		return nil, upstreamOrTransport(err)
	}

	var body loginResponse
	if err := c.http.ProcessJSONResponse(resp, &body); err != nil {
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}
	if body.Data.Data == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingToken, body.Message)
	}
	return &Session{Token: body.Data.Data, User: body.User}, nil
}

// Register creates a user account and returns the created user record
func (c *Client) Register(ctx context.Context, reg Registration) (map[string]interface{}, error) {
	resp, err := c.http.Post(ctx, registerPath, reg)
	if err != nil {
		return nil, upstreamOrTransport(err)
	}

	var body registerResponse
	if err := c.http.ProcessJSONResponse(resp, &body); err != nil {
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}
	return body.User, nil
}

func upstreamOrTransport(err error) error {
	if httpErr, ok := httpClient.AsHTTPError(err); ok {
		return &UpstreamError{StatusCode: httpErr.StatusCode, Message: messageFromBody(httpErr.Body)}
	}
	return fmt.Errorf("auth service unreachable: %w", err)
}

// IsUpstream reports whether err was answered by the service rather than a
// transport failure
func IsUpstream(err error) (*UpstreamError, bool) {
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return upstream, true
	}
	return nil, false
}
