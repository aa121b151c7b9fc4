// Package controllers file: controllers/page_controller.go
package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"xtrnia/apperr"
	"xtrnia/logger"
	"xtrnia/middleware"
	"xtrnia/services"
)

// PageController serves the health check and the brochure QR code.
type PageController struct {
	Brochures BrochureServiceInterface
	Ping      func(ctx context.Context) error
	Encoder   services.QREncoder
}

func NewPageController(brochures BrochureServiceInterface, ping func(ctx context.Context) error) *PageController {
	return &PageController{Brochures: brochures, Ping: ping}
}

// Health reports whether the database answers.
func (pc *PageController) Health(c *gin.Context) {
	if pc.Ping != nil {
		if err := pc.Ping(c.Request.Context()); err != nil {
			logger.Error.Printf("Health: database ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, middleware.Envelope{Success: false, Message: "database unavailable"})
			return
		}
	}
	middleware.Respond(c, http.StatusOK, gin.H{"status": "ok"}, "")
}

// BrochureQRCode renders a PNG QR code linking to the active brochure.
func (pc *PageController) BrochureQRCode(c *gin.Context) {
	size := services.DefaultQRSize
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < services.MinQRSize || n > services.MaxQRSize {
			middleware.RespondError(c, apperr.Validationf("size", "field size must be between %d and %d", services.MinQRSize, services.MaxQRSize), "Invalid size")
			return
		}
		size = n
	}

	b, err := pc.Brochures.Active(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, err, "Failed to fetch active brochure")
		return
	}

	png, err := services.GenerateQRCode(b.FileURL, size, pc.Encoder)
	if err != nil {
		middleware.RespondError(c, apperr.Wrap(apperr.Unexpected, "qr encode", err), "QR generation failed")
		return
	}

	c.Header("Content-Disposition", "inline; filename=\"brochure-qrcode.png\"")
	c.Data(http.StatusOK, "image/png", png)
}
