package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/h2grid/h2grid-api/internal/logger"
	"go.uber.org/zap"
)

// maxLoggedBody caps how much of a body the development logger keeps
const maxLoggedBody = 64 << 10

var sensitiveHeaders = map[string]bool{
	"Authorization": true,
	"X-Api-Key":     true,
	"Cookie":        true,
	"Set-Cookie":    true,
}

// sensitiveFields are redacted from logged JSON bodies
var sensitiveFields = map[string]bool{
	"password":         true,
	"confirm_password": true,
	"token":            true,
}

// bodyLogWriter captures the response body
type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyLogWriter) Write(b []byte) (int, error) {
	if w.body.Len() < maxLoggedBody {
		w.body.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

func redactHeaders(header map[string][]string) map[string]string {
	out := make(map[string]string, len(header))
	for key, values := range header {
		if len(values) == 0 {
			continue
		}
		if sensitiveHeaders[key] {
			out[key] = "[REDACTED]"
			continue
		}
		out[key] = values[0]
	}
	return out
}

// redactJSON parses body and masks credential fields at the top level
func redactJSON(body []byte) interface{} {
	var parsed interface{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil
	}
	if obj, ok := parsed.(map[string]interface{}); ok {
		for key := range obj {
			if sensitiveFields[key] {
				obj[key] = "[REDACTED]"
			}
		}
	}
	return parsed
}

// EnhancedLoggingMiddleware logs request and response detail in development
func EnhancedLoggingMiddleware(isDevelopment bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isDevelopment || logger.Log == nil {
			c.Next()
			return
		}

		startTime := time.Now()
		log := logger.Log.With(zap.String("correlation_id", GetCorrelationID(c)))

		var requestBody []byte
		if c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(requestBody))
		}

		var requestJSON interface{}
		if strings.HasPrefix(c.GetHeader("Content-Type"), "application/json") && len(requestBody) > 0 {
			requestJSON = redactJSON(requestBody)
		}

		log.Info("Detailed request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Any("headers", redactHeaders(c.Request.Header)),
			zap.Any("body", requestJSON),
			zap.Int("body_size", len(requestBody)),
		)

		blw := &bodyLogWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		// chart images are binary; only JSON bodies are logged
		var responseJSON interface{}
		if strings.HasPrefix(c.Writer.Header().Get("Content-Type"), "application/json") && blw.body.Len() > 0 {
			responseJSON = redactJSON(blw.body.Bytes())
		}

		log.Info("Detailed response",
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(startTime)),
			zap.Any("headers", redactHeaders(c.Writer.Header())),
			zap.Any("body", responseJSON),
			zap.Int("body_size", c.Writer.Size()),
			zap.Int("errors_count", len(c.Errors)),
		)

		for _, err := range c.Errors {
			log.Error("Request error",
				zap.Error(err.Err),
				zap.Uint64("type", uint64(err.Type)),
				zap.Any("meta", err.Meta),
			)
		}
	}
}

// RequestLoggingMiddleware provides basic request logging for production
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		logger.OrNop(nil).Info("Request completed",
			zap.String("correlation_id", GetCorrelationID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(startTime)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		)
	}
}
