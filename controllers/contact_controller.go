// File: controllers/contact_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"xtrnia/apperr"
	"xtrnia/middleware"
	"xtrnia/services"
)

// ---------------- Contact Controller ----------------

type ContactController struct {
	Contacts ContactServiceInterface
}

func NewContactController(contacts ContactServiceInterface) *ContactController {
	return &ContactController{Contacts: contacts}
}

// Submit is the public contact form endpoint.
func (cc *ContactController) Submit(c *gin.Context) {
	var in services.ContactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.RespondError(c, apperr.Validationf("", "Invalid request body"), "Invalid request body")
		return
	}
	sub, err := cc.Contacts.Submit(c.Request.Context(), in)
	if err != nil {
		middleware.RespondError(c, err, "Failed to submit form. Please try again later.")
		return
	}
	middleware.Respond(c, http.StatusCreated, sub, services.MsgContactThanks)
}

func (cc *ContactController) List(c *gin.Context) {
	subs, err := cc.Contacts.List(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, err, "Failed to fetch submissions")
		return
	}
	middleware.Respond(c, http.StatusOK, subs, "")
}

func (cc *ContactController) Delete(c *gin.Context) {
	if err := cc.Contacts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middleware.RespondError(c, err, "Failed to delete submission")
		return
	}
	middleware.Respond(c, http.StatusOK, nil, "Submission deleted successfully")
}
