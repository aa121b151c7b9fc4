// file: middleware/admin_required.go
package middleware

import (
	"github.com/gin-gonic/gin"

	"xtrnia/auth"
	"xtrnia/logger"
)

// ClaimsKey is the context key holding the verified *auth.Claims.
const ClaimsKey = "adminClaims"

// AdminRequired admits requests carrying a valid admin-token cookie. The
// verified claims are stored on the context for handlers.
func AdminRequired(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(auth.CookieName)

		claims, err := tokens.Verify(token)
		if err != nil {
			logger.Warn.Printf("[AdminRequired] %s %s blocked: %v", c.Request.Method, c.Request.URL.Path, err)
			RespondError(c, err, "Unauthorized")
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// CurrentAdmin returns the claims stored by AdminRequired.
func CurrentAdmin(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
