package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger returns a middleware that logs requests using logrus
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Start timer
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		// Process request
		c.Next()

		// Skip logging for health checks
		if strings.HasSuffix(path, "/health") {
			return
		}

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		// Format the path with query parameters if present
		if raw != "" {
			path = path + "?" + raw
		}

		fields := logrus.Fields{
			"status":    statusCode,
			"latency":   latency,
			"client_ip": c.ClientIP(),
			"method":    c.Request.Method,
			"path":      path,
		}
		if requestID := c.Writer.Header().Get("X-Request-ID"); requestID != "" {
			fields["request_id"] = requestID
		}
		entry := logrus.WithFields(fields)

		if statusCode >= 500 {
			entry.Error("Server error")
		} else if statusCode >= 400 {
			entry.Warn("Client error")
		} else {
			entry.Debug("Request completed")
		}
	}
}
