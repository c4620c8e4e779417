package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lexify/database/repository"
	"lexify/models"
	"lexify/utils"

	"go.uber.org/zap"
)

// validateProfile checks lawyer profile fields. Google sign-ups skip it
// entirely and are sent to onboarding until a city is stored.
func validateProfile(p *models.LawyerProfile, requireCity bool) error {
	p.City = strings.TrimSpace(p.City)
	p.RegistrationID = strings.TrimSpace(p.RegistrationID)

	if requireCity && p.City == "" {
		return utils.NewValidationError("city", "is required")
	}
	if p.Experience < 0 {
		return utils.NewValidationError("experience", "must not be negative")
	}
	if p.DateOfBirth != nil && p.DateOfBirth.After(time.Now()) {
		return utils.NewValidationError("dob", "must be in the past")
	}
	return nil
}

func (s *DefaultAccountService) GetLawyer(ctx context.Context, id string) (*models.Lawyer, error) {
	l, err := s.Lawyers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to fetch lawyer: %w", err)
	}
	return l, nil
}

// CompleteLawyerProfile stores the onboarding fields for the given lawyer.
func (s *DefaultAccountService) CompleteLawyerProfile(ctx context.Context, lawyerID string, profile models.LawyerProfile) error {
	if lawyerID == "" {
		return ErrAccountNotFound
	}
	if err := validateProfile(&profile, true); err != nil {
		return err
	}

	if err := s.Lawyers.UpdateProfile(ctx, lawyerID, profile); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAccountNotFound
		}
		utils.GetLogger().Error("CompleteLawyerProfile: update failed", zap.String("lawyerID", lawyerID), zap.Error(err))
		return fmt.Errorf("failed to save profile: %w", err)
	}
	utils.GetLogger().Info("Lawyer onboarded", zap.String("lawyerID", lawyerID), zap.String("city", profile.City))
	return nil
}
