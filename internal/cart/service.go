package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techstore/storefront-backend/internal/pricing"
	pkgerrors "github.com/techstore/storefront-backend/pkg/errors"
)

// Service exposes the cart operations. Every mutation recomputes the full
// summary; there is no incremental update path.
type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*CartView, error)
	Add(ctx context.Context, userID uuid.UUID, input AddItemInput) (*CartView, error)
	Update(ctx context.Context, userID uuid.UUID, input UpdateItemInput) (*CartView, error)
	Remove(ctx context.Context, userID uuid.UUID, input RemoveItemInput) (*CartView, error)
	Clear(ctx context.Context, userID uuid.UUID) (*CartView, error)

	// Summary exposes the current priced snapshot for order creation.
	Summary(ctx context.Context, userID uuid.UUID) (pricing.Summary, error)
}

type service struct {
	store    Store
	resolver ProductResolver
	rules    pricing.Rules
}

// NewService builds the cart service with its dependencies.
func NewService(store Store, resolver ProductResolver, rules pricing.Rules) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if resolver == nil {
		return nil, fmt.Errorf("product resolver required")
	}
	return &service{store: store, resolver: resolver, rules: rules}, nil
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	sum, err := s.Summary(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toCartView(sum), nil
}

func (s *service) Summary(ctx context.Context, userID uuid.UUID) (pricing.Summary, error) {
	if userID == uuid.Nil {
		return pricing.Summary{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	items, err := s.store.Load(ctx, userID)
	if err != nil {
		return pricing.Summary{}, err
	}
	return pricing.ComputeSummary(items, s.rules)
}

func (s *service) Add(ctx context.Context, userID uuid.UUID, input AddItemInput) (*CartView, error) {
	if input.ProductID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	if input.Quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	ref, err := s.resolver.Resolve(ctx, input.ProductID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		if typed := pkgerrors.As(err); typed != nil {
			return nil, typed
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolving product")
	}
	if !ref.InStock {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "product is out of stock")
	}

	op := pricing.Add{Item: pricing.LineItem{
		ProductID: ref.ID,
		Name:      ref.Name,
		Slug:      ref.Slug,
		ImageURL:  ref.ImageURL,
		UnitPrice: ref.UnitPrice,
		Quantity:  input.Quantity,
		Variant:   input.Variant,
	}}
	return s.mutate(ctx, userID, op)
}

func (s *service) Update(ctx context.Context, userID uuid.UUID, input UpdateItemInput) (*CartView, error) {
	if input.ProductID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	if input.Quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must not be negative")
	}
	return s.mutate(ctx, userID, pricing.Update{
		ProductID: input.ProductID,
		Variant:   input.Variant,
		Quantity:  input.Quantity,
	})
}

func (s *service) Remove(ctx context.Context, userID uuid.UUID, input RemoveItemInput) (*CartView, error) {
	if input.ProductID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	return s.mutate(ctx, userID, pricing.Remove{
		ProductID: input.ProductID,
		Variant:   input.Variant,
	})
}

func (s *service) Clear(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	return s.mutate(ctx, userID, pricing.Clear{})
}

// mutate applies one operation to the stored snapshot and persists the new
// line sequence only after the recomputation succeeds, so a failing rule
// leaves the stored cart untouched.
func (s *service) mutate(ctx context.Context, userID uuid.UUID, op pricing.Op) (*CartView, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}

	items, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	sum, err := pricing.Apply(items, op, s.rules)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, userID, sum.Items); err != nil {
		return nil, err
	}
	return toCartView(sum), nil
}
