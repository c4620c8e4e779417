package socialAuth

import (
	"context"
	"fmt"

	"lexify/models"
	"lexify/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Flow binds OAuth state values to the role that started the login.
type Flow struct {
	Provider IdentityProvider
	States   *redis.Client
}

// Begin records a fresh state for role and returns the provider's consent URL.
func (f *Flow) Begin(ctx context.Context, role models.Role) (string, error) {
	state := uuid.New().String()
	if err := utils.SaveAuthSession(ctx, f.States, state, utils.AuthSession{Role: string(role)}); err != nil {
		return "", err
	}
	return f.Provider.AuthCodeURL(role, state), nil
}

// Complete redeems the state once and exchanges the code for a profile.
func (f *Flow) Complete(ctx context.Context, role models.Role, state, code string) (*models.FederatedProfile, error) {
	if state == "" || code == "" {
		return nil, fmt.Errorf("missing oauth state or code")
	}
	pending, err := utils.ConsumeAuthSession(ctx, f.States, state)
	if err != nil {
		return nil, err
	}
	if pending.Role != string(role) {
		return nil, ErrStateMismatch
	}
	return f.Provider.Exchange(ctx, role, code)
}
