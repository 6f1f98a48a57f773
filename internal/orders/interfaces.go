package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techstore/storefront-backend/pkg/db/models"
	"github.com/techstore/storefront-backend/pkg/enums"
	"github.com/techstore/storefront-backend/pkg/pagination"
)

// Repository defines persistence operations for the order tables.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, order *models.OrderRecord) (*models.OrderRecord, error)
	FindByID(ctx context.Context, orderID uuid.UUID) (*models.OrderRecord, error)
	FindByUserAndID(ctx context.Context, userID, orderID uuid.UUID) (*models.OrderRecord, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int, cursor *pagination.Cursor) ([]models.OrderRecord, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, from, to enums.OrderStatus, at time.Time) (bool, error)
}

// SequenceGenerator issues order numbers, monotonic within a year.
type SequenceGenerator interface {
	Next(ctx context.Context, year int) (string, error)
}
