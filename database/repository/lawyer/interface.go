package lawyerRepo

import (
	"context"

	"lexify/models"
)

// LawyerRepository defines methods for lawyer account data access.
type LawyerRepository interface {
	Create(ctx context.Context, lawyer *models.Lawyer) error
	GetByID(ctx context.Context, id string) (*models.Lawyer, error)
	GetByUsername(ctx context.Context, username string) (*models.Lawyer, error)
	GetByGoogleID(ctx context.Context, googleID string) (*models.Lawyer, error)
	GetNamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
	// UpdateProfile sets the onboarding fields of an existing lawyer.
	UpdateProfile(ctx context.Context, id string, profile models.LawyerProfile) error
}
