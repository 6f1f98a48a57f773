package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/techstore/storefront-backend/internal/cart"
)

type resolver struct {
	repo Repository
}

// NewResolver adapts the catalog repository to the cart's product lookup.
func NewResolver(repo Repository) cart.ProductResolver {
	return &resolver{repo: repo}
}

func (r *resolver) Resolve(ctx context.Context, productID uuid.UUID) (*cart.ProductRef, error) {
	p, err := r.repo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &cart.ProductRef{
		ID:        p.ID,
		Name:      p.Name,
		Slug:      p.Slug,
		ImageURL:  p.ImageURL,
		UnitPrice: decimal.New(int64(p.PriceCents), -2),
		InStock:   p.IsAvailable && p.Stock > 0,
	}, nil
}
