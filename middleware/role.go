package middleware

import (
	"net/http"

	"lexify/models"

	"github.com/gin-gonic/gin"
)

// RequireRole sends requests without a session of the given role to that role's login page.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok || identity.Role != role {
			c.Redirect(http.StatusFound, "/login/"+string(role))
			c.Abort()
			return
		}
		c.Next()
	}
}
