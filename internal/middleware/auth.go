package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/h2grid/h2grid-api/internal/logger"
	"go.uber.org/zap"
)

const (
	userIDKey = "userID"
	claimsKey = "claims"
)

var (
	ErrMissingBearer = errors.New("missing bearer token")
	ErrInvalidToken  = errors.New("invalid session token")
)

// Claims are the session token claims
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// VerifierOptions constrain accepted tokens
type VerifierOptions struct {
	Issuer   string
	Audience string
}

// TokenVerifier checks session token signatures against a JWKS endpoint or
// a shared HMAC secret
type TokenVerifier struct {
	keyFunc jwt.Keyfunc
	methods []string
	opts    VerifierOptions
	jwks    *keyfunc.JWKS
}

// NewJWKSVerifier fetches signing keys from jwksURL and refreshes them in
// the background until Close is called
func NewJWKSVerifier(jwksURL string, opts VerifierOptions) (*TokenVerifier, error) {
	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
		RefreshInterval:  time.Hour,
		RefreshRateLimit: time.Minute,
		RefreshTimeout:   10 * time.Second,
		RefreshErrorHandler: func(err error) {
			logger.OrNop(nil).Error("JWKS refresh error", zap.Error(err))
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create JWKS: %w", err)
	}

	logger.OrNop(nil).Info("JWKS initialized", zap.String("jwks_url", jwksURL))
	return &TokenVerifier{
		keyFunc: jwks.Keyfunc,
		methods: []string{"RS256", "RS384", "RS512", "ES256", "ES384", "ES512", "EdDSA"},
		opts:    opts,
		jwks:    jwks,
	}, nil
}

// NewHMACVerifier verifies tokens signed with secret
func NewHMACVerifier(secret string, opts VerifierOptions) *TokenVerifier {
	key := []byte(secret)
	return &TokenVerifier{
		keyFunc: func(*jwt.Token) (interface{}, error) { return key, nil },
		methods: []string{"HS256", "HS384", "HS512"},
		opts:    opts,
	}
}

// Verify parses and validates a raw token
func (v *TokenVerifier) Verify(raw string) (*Claims, error) {
	parserOpts := []jwt.ParserOption{jwt.WithValidMethods(v.methods)}
	if v.opts.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(v.opts.Issuer))
	}
	if v.opts.Audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(v.opts.Audience))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, v.keyFunc, parserOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Close stops the background key refresh
func (v *TokenVerifier) Close() {
	if v != nil && v.jwks != nil {
		v.jwks.EndBackground()
	}
}

func bearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrMissingBearer
	}
	return strings.TrimSpace(token), nil
}

// RequireBearerToken rejects requests without a valid session token. With
// a nil verifier only the token's presence is checked.
func RequireBearerToken(verifier *TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c)
		if err != nil {
			abortUnauthorized(c, "Authorization required")
			return
		}
		if verifier == nil {
			c.Next()
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			LogWithCorrelationID(c.Request.Context()).Debug("Token rejected", zap.Error(err))
			abortUnauthorized(c, "Invalid or expired session")
			return
		}

		c.Set(claimsKey, claims)
		if claims.Subject != "" {
			c.Set(userIDKey, claims.Subject)
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":          message,
		"correlation_id": GetCorrelationID(c),
	})
}

// GetUserID returns the token subject of an authenticated request
func GetUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// GetClaims returns the verified claims, if any
func GetClaims(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}
