package handlers

import (
	"context"

	"lexify/models"
	"lexify/utils"

	"github.com/gin-gonic/gin"
)

// SessionManager logs principals in and out of the browser session.
type SessionManager interface {
	Login(c *gin.Context, p *models.Principal) error
	Logout(c *gin.Context) error
}

// OAuthFlow runs the federated login round trip.
type OAuthFlow interface {
	Begin(ctx context.Context, role models.Role) (string, error)
	Complete(ctx context.Context, role models.Role, state, code string) (*models.FederatedProfile, error)
}

// HealthReporter exposes the latest dependency health snapshot.
type HealthReporter interface {
	Status() utils.HealthStatus
}

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Auth   *AuthHandler
	Ledger *LedgerHandler
	Health *HealthHandler
}
