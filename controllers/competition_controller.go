// File: controllers/competition_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"xtrnia/apperr"
	"xtrnia/middleware"
	"xtrnia/services"
)

// ---------------- Competition Controller ----------------

type CompetitionController struct {
	Competitions CompetitionServiceInterface
}

func NewCompetitionController(competitions CompetitionServiceInterface) *CompetitionController {
	return &CompetitionController{Competitions: competitions}
}

func bindCompetition(c *gin.Context) (services.CompetitionInput, bool) {
	var in services.CompetitionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.RespondError(c, apperr.Validationf("", "Invalid request body"), "Invalid request body")
		return in, false
	}
	return in, true
}

// List is public. Query parameters type and status filter the result.
func (cc *CompetitionController) List(c *gin.Context) {
	list, err := cc.Competitions.List(c.Request.Context(), services.CompetitionFilter{
		Type:   c.Query("type"),
		Status: c.Query("status"),
	})
	if err != nil {
		middleware.RespondError(c, err, "Failed to fetch competitions")
		return
	}
	middleware.Respond(c, http.StatusOK, list, "")
}

func (cc *CompetitionController) Get(c *gin.Context) {
	comp, err := cc.Competitions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.RespondError(c, err, "Failed to fetch competition")
		return
	}
	middleware.Respond(c, http.StatusOK, comp, "")
}

func (cc *CompetitionController) Create(c *gin.Context) {
	in, ok := bindCompetition(c)
	if !ok {
		return
	}
	comp, err := cc.Competitions.Create(c.Request.Context(), in)
	if err != nil {
		middleware.RespondError(c, err, "Failed to create competition")
		return
	}
	middleware.Respond(c, http.StatusCreated, comp, "Competition created successfully")
}

func (cc *CompetitionController) Update(c *gin.Context) {
	in, ok := bindCompetition(c)
	if !ok {
		return
	}
	comp, err := cc.Competitions.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		middleware.RespondError(c, err, "Failed to update competition")
		return
	}
	middleware.Respond(c, http.StatusOK, comp, "Competition updated successfully")
}

func (cc *CompetitionController) Delete(c *gin.Context) {
	if err := cc.Competitions.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middleware.RespondError(c, err, "Failed to delete competition")
		return
	}
	middleware.Respond(c, http.StatusOK, nil, "Competition deleted successfully")
}

// ToggleType flips a competition between current and upcoming.
func (cc *CompetitionController) ToggleType(c *gin.Context) {
	comp, msg, err := cc.Competitions.ToggleType(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.RespondError(c, err, "Failed to toggle competition type")
		return
	}
	middleware.Respond(c, http.StatusOK, comp, msg)
}
