package account

import (
	"context"
	"errors"
	"fmt"

	"lexify/database/repository"
	"lexify/models"
	"lexify/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate checks a username and password against the role's collection only.
func (s *DefaultAccountService) Authenticate(ctx context.Context, role models.Role, username, password string) (*models.Principal, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var (
		hash      string
		principal *models.Principal
	)
	switch role {
	case models.RoleClient:
		c, err := s.Clients.GetByUsername(ctx, username)
		if err != nil {
			return nil, lookupFailure(err)
		}
		hash, principal = c.PasswordHash, clientPrincipal(c)
	case models.RoleLawyer:
		l, err := s.Lawyers.GetByUsername(ctx, username)
		if err != nil {
			return nil, lookupFailure(err)
		}
		hash, principal = l.PasswordHash, lawyerPrincipal(l)
	default:
		return nil, UnknownRoleError{Role: string(role)}
	}

	// Accounts created through Google have no local password.
	if hash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return principal, nil
}

func lookupFailure(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrInvalidCredentials
	}
	utils.GetLogger().Error("Authenticate: failed to fetch account", zap.Error(err))
	return fmt.Errorf("authentication failed, please try again")
}
