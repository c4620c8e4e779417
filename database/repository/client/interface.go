package clientRepo

import (
	"context"

	"lexify/models"
)

// ClientRepository defines methods for client account data access.
type ClientRepository interface {
	// Create inserts a new client. A taken username or googleId yields repository.ErrDuplicateKey.
	Create(ctx context.Context, client *models.Client) error
	// GetByID retrieves a client by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Client, error)
	// GetByUsername retrieves a client by its login name.
	GetByUsername(ctx context.Context, username string) (*models.Client, error)
	// GetByGoogleID retrieves a client linked to a Google account.
	GetByGoogleID(ctx context.Context, googleID string) (*models.Client, error)
	// GetNamesByIDs resolves display names; unknown ids are absent from the map.
	GetNamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}
