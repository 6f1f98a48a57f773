package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techstore/storefront-backend/pkg/db/models"
	"github.com/techstore/storefront-backend/pkg/pagination"
)

// ProductFilters describe the inputs supported by the product listing.
type ProductFilters struct {
	CategoryID *uuid.UUID
	Featured   *bool
	Query      string
}

// Repository defines persistence operations for the catalog tables.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	ListProducts(ctx context.Context, params pagination.PageParams, filters ProductFilters) ([]models.Product, int64, error)
	FindProductByID(ctx context.Context, productID uuid.UUID) (*models.Product, error)
	FindProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}
