package account

import (
	"context"

	clientRepo "lexify/database/repository/client"
	lawyerRepo "lexify/database/repository/lawyer"
	"lexify/models"
)

type AccountService interface {
	// Local credentials
	Register(ctx context.Context, role models.Role, data models.RegistrationData) (*models.Principal, error)
	Authenticate(ctx context.Context, role models.Role, username, password string) (*models.Principal, error)

	// Federated identity
	LinkOrCreate(ctx context.Context, role models.Role, profile models.FederatedProfile) (*models.Principal, error)

	// Lawyer onboarding
	GetLawyer(ctx context.Context, id string) (*models.Lawyer, error)
	CompleteLawyerProfile(ctx context.Context, lawyerID string, profile models.LawyerProfile) error
}

// DefaultAccountService is the production implementation.
type DefaultAccountService struct {
	Clients clientRepo.ClientRepository
	Lawyers lawyerRepo.LawyerRepository
}

func clientPrincipal(c *models.Client) *models.Principal {
	return &models.Principal{
		Identity: models.Identity{
			Role:      models.RoleClient,
			AccountID: c.ID,
			Username:  c.Username,
			Name:      c.Name,
		},
		Onboarded: true,
	}
}

func lawyerPrincipal(l *models.Lawyer) *models.Principal {
	return &models.Principal{
		Identity: models.Identity{
			Role:      models.RoleLawyer,
			AccountID: l.ID,
			Username:  l.Username,
			Name:      l.Name,
		},
		Onboarded: l.Onboarded(),
	}
}
