// File: controllers/admin_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"xtrnia/apperr"
	"xtrnia/middleware"
)

// ---------------- Admin Controller ----------------

// AdminController serves the signed-in admin's own account.
type AdminController struct {
	Admins AdminServiceInterface
}

func NewAdminController(admins AdminServiceInterface) *AdminController {
	return &AdminController{Admins: admins}
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Info returns id, username and timestamps. The hash is never serialized.
func (ac *AdminController) Info(c *gin.Context) {
	claims, ok := middleware.CurrentAdmin(c)
	if !ok {
		middleware.RespondError(c, apperr.New(apperr.Unauthenticated, "Unauthorized"), "Unauthorized")
		return
	}

	admin, err := ac.Admins.Get(c.Request.Context(), claims.ID)
	if err != nil {
		middleware.RespondError(c, err, "Failed to fetch admin info")
		return
	}
	middleware.Respond(c, http.StatusOK, admin, "")
}

// ChangePassword replaces the signed-in admin's password.
func (ac *AdminController) ChangePassword(c *gin.Context) {
	claims, ok := middleware.CurrentAdmin(c)
	if !ok {
		middleware.RespondError(c, apperr.New(apperr.Unauthenticated, "Unauthorized"), "Unauthorized")
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondError(c, apperr.Validationf("", "Invalid request body"), "Invalid request body")
		return
	}

	if err := ac.Admins.ChangePassword(c.Request.Context(), claims.ID, req.CurrentPassword, req.NewPassword); err != nil {
		middleware.RespondError(c, err, "Failed to change password")
		return
	}
	middleware.Respond(c, http.StatusOK, nil, "Password changed successfully")
}
