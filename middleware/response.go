// Package middleware provides request filters, security checks and the
// shared JSON envelope used by every handler.
// File: middleware/response.go
package middleware

import (
	"github.com/gin-gonic/gin"

	"xtrnia/apperr"
	"xtrnia/logger"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Respond writes a successful envelope.
func Respond(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Envelope{Success: true, Data: data, Message: message})
}

// RespondError maps err onto its HTTP status, writes a failure envelope and
// aborts the chain. Unexpected errors are logged and replaced by fallback.
func RespondError(c *gin.Context, err error, fallback string) {
	kind := apperr.KindOf(err)
	switch kind {
	case apperr.Unexpected, apperr.ExternalService:
		logger.Error.Printf("[%s %s] %v", c.Request.Method, c.FullPath(), err)
	default:
		logger.Debug.Printf("[%s %s] %v", c.Request.Method, c.FullPath(), err)
	}

	c.AbortWithStatusJSON(apperr.Status(kind), Envelope{
		Success: false,
		Message: apperr.PublicMessage(err, fallback),
	})
}
