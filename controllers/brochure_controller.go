// File: controllers/brochure_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"xtrnia/apperr"
	"xtrnia/middleware"
	"xtrnia/services"
)

// ---------------- Brochure Controller ----------------

type BrochureController struct {
	Brochures BrochureServiceInterface
}

func NewBrochureController(brochures BrochureServiceInterface) *BrochureController {
	return &BrochureController{Brochures: brochures}
}

// Active is public and exposes only the name and file URL.
func (bc *BrochureController) Active(c *gin.Context) {
	b, err := bc.Brochures.Active(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, err, "Failed to fetch active brochure")
		return
	}
	middleware.Respond(c, http.StatusOK, b.Public(), "")
}

func (bc *BrochureController) List(c *gin.Context) {
	list, err := bc.Brochures.List(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, err, "Failed to fetch brochures")
		return
	}
	middleware.Respond(c, http.StatusOK, list, "")
}

func (bc *BrochureController) Create(c *gin.Context) {
	var in services.BrochureInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.RespondError(c, apperr.Validationf("", "Invalid request body"), "Invalid request body")
		return
	}
	b, err := bc.Brochures.Create(c.Request.Context(), in)
	if err != nil {
		middleware.RespondError(c, err, "Failed to create brochure")
		return
	}
	middleware.Respond(c, http.StatusCreated, b, "Brochure created successfully")
}

func (bc *BrochureController) Update(c *gin.Context) {
	var in services.BrochureUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.RespondError(c, apperr.Validationf("", "Invalid request body"), "Invalid request body")
		return
	}
	b, err := bc.Brochures.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		middleware.RespondError(c, err, "Failed to update brochure")
		return
	}
	middleware.Respond(c, http.StatusOK, b, "Brochure updated successfully")
}

func (bc *BrochureController) Delete(c *gin.Context) {
	if err := bc.Brochures.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middleware.RespondError(c, err, "Failed to delete brochure")
		return
	}
	middleware.Respond(c, http.StatusOK, nil, "Brochure deleted successfully")
}
