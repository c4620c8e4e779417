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
	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 8

func validateRegistration(role models.Role, data *models.RegistrationData) error {
	data.Username = strings.TrimSpace(data.Username)
	data.Name = strings.TrimSpace(data.Name)

	if data.Username == "" {
		return utils.NewValidationError("username", "is required")
	}
	if data.Name == "" {
		return utils.NewValidationError("name", "is required")
	}
	if data.Password == "" {
		return utils.NewValidationError("password", "is required")
	}
	if len(data.Password) < MinPasswordLength {
		return utils.NewValidationError("password", fmt.Sprintf("must be at least %d characters", MinPasswordLength))
	}
	if role == models.RoleLawyer {
		return validateProfile(&data.Profile, true)
	}
	return nil
}

// Register creates a local account in the role's collection and returns its principal.
func (s *DefaultAccountService) Register(ctx context.Context, role models.Role, data models.RegistrationData) (*models.Principal, error) {
	if err := validateRegistration(role, &data); err != nil {
		return nil, err
	}

	taken, err := s.usernameTaken(ctx, role, data.Username)
	if err != nil {
		utils.GetLogger().Error("Register: username check failed", zap.String("role", string(role)), zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if taken {
		return nil, ErrDuplicateUsername
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	acct := models.Account{
		ID:           uuid.New().String(),
		Username:     data.Username,
		Name:         data.Name,
		PasswordHash: string(hashed),
	}

	var principal *models.Principal
	switch role {
	case models.RoleClient:
		c := &models.Client{Account: acct}
		err = s.Clients.Create(ctx, c)
		principal = clientPrincipal(c)
	case models.RoleLawyer:
		l := &models.Lawyer{
			Account:        acct,
			DateOfBirth:    data.Profile.DateOfBirth,
			City:           data.Profile.City,
			RegistrationID: data.Profile.RegistrationID,
			Experience:     data.Profile.Experience,
		}
		err = s.Lawyers.Create(ctx, l)
		principal = lawyerPrincipal(l)
	default:
		return nil, UnknownRoleError{Role: string(role)}
	}

	if err != nil {
		// The unique index catches registrations racing past the pre-check.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateUsername
		}
		utils.GetLogger().Error("Register: failed to create account", zap.String("role", string(role)), zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	utils.GetLogger().Info("Account registered",
		zap.String("role", string(role)),
		zap.String("accountID", principal.AccountID))
	return principal, nil
}

func (s *DefaultAccountService) usernameTaken(ctx context.Context, role models.Role, username string) (bool, error) {
	var err error
	switch role {
	case models.RoleClient:
		_, err = s.Clients.GetByUsername(ctx, username)
	case models.RoleLawyer:
		_, err = s.Lawyers.GetByUsername(ctx, username)
	default:
		return false, UnknownRoleError{Role: string(role)}
	}
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, repository.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}
