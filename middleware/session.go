package middleware

import (
	"errors"

	"lexify/models"
	"lexify/services/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const identityKey = "identity"

// SessionReader restores the identity carried by a request.
type SessionReader interface {
	Current(c *gin.Context) (*models.Identity, error)
}

// SessionMiddleware attaches the session identity, if any, to the context.
// Anonymous requests pass through.
func SessionMiddleware(sessions SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := sessions.Current(c)
		switch {
		case err == nil:
			c.Set(identityKey, *identity)
		case !errors.Is(err, session.ErrNoSession):
			zap.L().Warn("Failed to restore session", zap.Error(err))
		}
		c.Next()
	}
}

// CurrentIdentity returns the identity set by SessionMiddleware.
func CurrentIdentity(c *gin.Context) (models.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return models.Identity{}, false
	}
	identity, ok := v.(models.Identity)
	return identity, ok
}
