package cart

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/techstore/storefront-backend/internal/pricing"
)

// Store persists the per-user cart line snapshot.
type Store interface {
	Load(ctx context.Context, userID uuid.UUID) ([]pricing.LineItem, error)
	Save(ctx context.Context, userID uuid.UUID, items []pricing.LineItem) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

// ProductRef is the catalog data a cart line freezes when a product is added.
type ProductRef struct {
	ID        uuid.UUID
	Name      string
	Slug      string
	ImageURL  string
	UnitPrice decimal.Decimal
	InStock   bool
}

// ProductResolver looks up display fields and the current price for a
// product being added to the cart.
type ProductResolver interface {
	Resolve(ctx context.Context, productID uuid.UUID) (*ProductRef, error)
}
