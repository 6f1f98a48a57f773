package users

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techstore/storefront-backend/pkg/db/models"
)

// Repository defines persistence operations for user profiles.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, updates map[string]any) error
	FindAddress(ctx context.Context, userID, addressID uuid.UUID) (*models.UserAddress, error)
	DefaultAddresses(ctx context.Context, userID uuid.UUID) ([]models.UserAddress, error)
}
