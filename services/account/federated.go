package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lexify/database/repository"
	"lexify/models"
	"lexify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LinkOrCreate returns the account linked to the provider id, creating it on first sight.
// The profile photo is attached to the returned principal and never stored.
func (s *DefaultAccountService) LinkOrCreate(ctx context.Context, role models.Role, profile models.FederatedProfile) (*models.Principal, error) {
	if profile.ProviderID == "" {
		return nil, utils.NewValidationError("providerId", "is required")
	}
	profile.Email = strings.TrimSpace(profile.Email)
	if profile.Email == "" {
		return nil, utils.NewValidationError("email", "is required")
	}
	name := strings.TrimSpace(profile.DisplayName)
	if name == "" {
		name = profile.Email
	}

	principal, err := s.findFederated(ctx, role, profile.ProviderID)
	if err == nil {
		principal.Photo = profile.PhotoURL
		return principal, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	acct := models.Account{
		ID:       uuid.New().String(),
		Username: profile.Email,
		Name:     name,
		GoogleID: profile.ProviderID,
	}
	switch role {
	case models.RoleClient:
		c := &models.Client{Account: acct}
		if err = s.Clients.Create(ctx, c); err == nil {
			principal = clientPrincipal(c)
		}
	case models.RoleLawyer:
		l := &models.Lawyer{Account: acct}
		if err = s.Lawyers.Create(ctx, l); err == nil {
			principal = lawyerPrincipal(l)
		}
	default:
		return nil, UnknownRoleError{Role: string(role)}
	}

	if errors.Is(err, repository.ErrDuplicateKey) {
		// Either a concurrent callback linked the same provider id first, or
		// the email is already a local username in this role.
		principal, err = s.findFederated(ctx, role, profile.ProviderID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDuplicateUsername
		}
	}
	if err != nil {
		utils.GetLogger().Error("LinkOrCreate: failed to link account",
			zap.String("role", string(role)), zap.Error(err))
		return nil, fmt.Errorf("could not sign in with google: %w", err)
	}

	principal.Photo = profile.PhotoURL
	return principal, nil
}

func (s *DefaultAccountService) findFederated(ctx context.Context, role models.Role, providerID string) (*models.Principal, error) {
	switch role {
	case models.RoleClient:
		c, err := s.Clients.GetByGoogleID(ctx, providerID)
		if err != nil {
			return nil, err
		}
		return clientPrincipal(c), nil
	case models.RoleLawyer:
		l, err := s.Lawyers.GetByGoogleID(ctx, providerID)
		if err != nil {
			return nil, err
		}
		return lawyerPrincipal(l), nil
	default:
		return nil, UnknownRoleError{Role: string(role)}
	}
}
