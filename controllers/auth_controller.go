// Package controllers holds the HTTP handlers. Every handler answers with
// the middleware.Envelope JSON shape.
// File: controllers/auth_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"xtrnia/apperr"
	"xtrnia/auth"
	"xtrnia/logger"
	"xtrnia/metrics"
	"xtrnia/middleware"
)

// ---------------- Auth Controller ----------------

// AuthController handles admin login, logout and session checks.
type AuthController struct {
	Admins       AdminServiceInterface
	Tokens       *auth.TokenManager
	Metrics      metrics.Publisher
	CookieSecure bool
}

func NewAuthController(admins AdminServiceInterface, tokens *auth.TokenManager, pub metrics.Publisher, cookieSecure bool) *AuthController {
	if pub == nil {
		pub = metrics.Noop{}
	}
	return &AuthController{Admins: admins, Tokens: tokens, Metrics: pub, CookieSecure: cookieSecure}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type adminIdentity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// setTokenCookie writes the admin-token cookie. maxAge < 0 deletes it.
func (ac *AuthController) setTokenCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, value, maxAge, "/", "", ac.CookieSecure, true)
}

// Login verifies credentials and issues the admin-token cookie.
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondError(c, apperr.Validationf("", "Invalid request body"), "Invalid request body")
		return
	}

	admin, err := ac.Admins.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if apperr.Is(err, apperr.InvalidCredentials) {
			ac.Metrics.LoginFailed()
			logger.Warn.Printf("[AuthController.Login] failed login for %q from %s", req.Username, c.ClientIP())
		}
		middleware.RespondError(c, err, "Login failed")
		return
	}

	token, expiresAt, err := ac.Tokens.Issue(admin.ID, admin.Username)
	if err != nil {
		middleware.RespondError(c, err, "Login failed")
		return
	}
	ac.setTokenCookie(c, token, int(time.Until(expiresAt).Seconds()))

	logger.Info.Printf("[AuthController.Login] %s logged in", admin.Username)
	middleware.Respond(c, http.StatusOK, adminIdentity{ID: admin.ID, Username: admin.Username}, "Login successful")
}

// Verify reports the identity behind a valid cookie. Runs behind
// AdminRequired.
func (ac *AuthController) Verify(c *gin.Context) {
	claims, ok := middleware.CurrentAdmin(c)
	if !ok {
		middleware.RespondError(c, apperr.New(apperr.Unauthenticated, "Unauthorized"), "Unauthorized")
		return
	}
	middleware.Respond(c, http.StatusOK, gin.H{
		"admin": adminIdentity{ID: claims.ID, Username: claims.Username},
	}, "")
}

// Logout clears the cookie. Issued tokens stay valid until they expire.
func (ac *AuthController) Logout(c *gin.Context) {
	ac.setTokenCookie(c, "", -1)
	middleware.Respond(c, http.StatusOK, nil, "Logged out successfully")
}
