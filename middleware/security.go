// file: middleware/security.go
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"xtrnia/logger"
)

// SecurityHeaders sets conservative response headers for a JSON API.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

// RequestLogger logs one line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		line := "[%s] %s %s -> %d (%s)"
		args := []any{c.ClientIP(), c.Request.Method, c.Request.URL.Path, status, time.Since(start).Round(time.Microsecond)}
		if status >= 500 {
			logger.Error.Printf(line, args...)
			return
		}
		logger.Info.Printf(line, args...)
	}
}
