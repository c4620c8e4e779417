package socialAuth

import (
	"context"
	"errors"

	"lexify/models"
)

var (
	ErrMissingIDToken  = errors.New("token response carried no id_token")
	ErrUnverifiedEmail = errors.New("google account email is not verified")
	ErrStateMismatch   = errors.New("oauth state does not match this login")
)

// IdentityProvider runs the authorization code flow for one external provider.
type IdentityProvider interface {
	AuthCodeURL(role models.Role, state string) string
	Exchange(ctx context.Context, role models.Role, code string) (*models.FederatedProfile, error)
}
