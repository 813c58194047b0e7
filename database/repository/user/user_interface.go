package userRepo

import (
	"context"

	"doctospeech/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	EnsureIndexes(ctx context.Context) error
	// Create inserts a new user; a taken email is a conflict.
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByIDs returns the users found among ids, in no particular order.
	GetByIDs(ctx context.Context, ids []string) ([]models.User, error)
	// Update replaces the stored document with user.
	Update(ctx context.Context, user *models.User) error
	SetSelectSlots(ctx context.Context, id string, selected bool) error
	SetEntitlement(ctx context.Context, id string, entitlement models.Entitlement) error
	Delete(ctx context.Context, id string) error
	FindTherapists(ctx context.Context, q models.TherapistQuery, limit int64) ([]models.User, error)
}
