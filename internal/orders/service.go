package orders

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techstore/storefront-backend/internal/pricing"
	"github.com/techstore/storefront-backend/pkg/clock"
	"github.com/techstore/storefront-backend/pkg/db/models"
	"github.com/techstore/storefront-backend/pkg/enums"
	pkgerrors "github.com/techstore/storefront-backend/pkg/errors"
	"github.com/techstore/storefront-backend/pkg/pagination"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service defines the order lifecycle operations.
type Service interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderView, error)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*OrderView, error)
	ListOrders(ctx context.Context, input ListInput) (*OrderList, error)
	Transition(ctx context.Context, input TransitionInput) (*OrderView, error)
	Cancel(ctx context.Context, userID, orderID uuid.UUID) (*OrderView, error)
}

type service struct {
	repo  Repository
	seq   SequenceGenerator
	tx    txRunner
	clock clock.Clock
}

// NewService builds the order lifecycle service with its dependencies.
func NewService(repo Repository, seq SequenceGenerator, tx txRunner, clk clock.Clock) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if seq == nil {
		return nil, fmt.Errorf("sequence generator required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if clk == nil {
		clk = clock.System()
	}
	return &service{repo: repo, seq: seq, tx: tx, clock: clk}, nil
}

// CreateOrder freezes the cart summary into an immutable order record with an
// initial pending status. The summary itself stays untouched; the caller
// clears the cart separately once creation succeeds.
func (s *service) CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderView, error) {
	if input.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	if input.Summary.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeEmptyCart, "cannot create an order from an empty cart")
	}
	if input.ShippingAddressID == uuid.Nil || input.BillingAddressID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shipping and billing addresses required")
	}
	if !input.PaymentMethod.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid payment method %q", input.PaymentMethod))
	}
	if input.Currency == "" {
		input.Currency = enums.CurrencyUSD
	}

	now := s.clock.Now()
	orderNumber, err := s.seq.Next(ctx, now.Year())
	if err != nil {
		return nil, err
	}

	record := &models.OrderRecord{
		ID:                uuid.New(),
		UserID:            input.UserID,
		OrderNumber:       orderNumber,
		Status:            enums.OrderStatusPending,
		ItemsCount:        input.Summary.ItemsCount,
		SubtotalCents:     centsFromDecimal(input.Summary.Subtotal),
		TaxCents:          centsFromDecimal(input.Summary.Tax),
		ShippingCents:     centsFromDecimal(input.Summary.Shipping),
		DiscountCents:     centsFromDecimal(input.Summary.Discount),
		TotalCents:        centsFromDecimal(input.Summary.Total),
		Currency:          input.Currency,
		ShippingAddressID: input.ShippingAddressID,
		BillingAddressID:  input.BillingAddressID,
		PaymentMethod:     input.PaymentMethod,
		Items:             freezeItems(input.Summary.Items),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if _, err := s.repo.WithTx(tx).Create(ctx, record); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persisting order")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toOrderView(record), nil
}

func (s *service) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*OrderView, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	if orderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}

	record, err := s.repo.FindByUserAndID(ctx, userID, orderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return toOrderView(record), nil
}

// ListOrders returns one page of condensed order views, newest first. The
// returned cursor restarts the listing at the row after the last one served.
func (s *service) ListOrders(ctx context.Context, input ListInput) (*OrderList, error) {
	if input.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}

	cursor, err := pagination.ParseCursor(input.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	limit := pagination.NormalizeLimit(input.Limit)
	records, err := s.repo.ListByUser(ctx, input.UserID, pagination.LimitWithBuffer(input.Limit), cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing orders")
	}

	nextCursor := ""
	if len(records) > limit {
		records = records[:limit]
		last := records[len(records)-1]
		nextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}

	views := make([]OrderSummaryView, 0, len(records))
	for _, record := range records {
		views = append(views, toOrderSummaryView(record))
	}

	return &OrderList{Orders: views, NextCursor: nextCursor}, nil
}

// Transition validates the requested status change against the state machine
// and applies it. The update only lands when the stored status still matches
// the one the decision was made against.
func (s *service) Transition(ctx context.Context, input TransitionInput) (*OrderView, error) {
	if input.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	if input.OrderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}

	var updated *models.OrderRecord
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		record, err := repo.FindByUserAndID(ctx, input.UserID, input.OrderID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
		}

		if err := ValidateTransition(record.Status, input.Status); err != nil {
			return err
		}

		now := s.clock.Now()
		ok, err := repo.UpdateStatus(ctx, record.ID, record.Status, input.Status, now)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
		}
		if !ok {
			return pkgerrors.New(pkgerrors.CodeConflict, "order status changed concurrently")
		}

		record.Status = input.Status
		record.UpdatedAt = now
		updated = record
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toOrderView(updated), nil
}

// Cancel is the transition to cancelled, exposed separately because it is
// the only status change buyers trigger themselves.
func (s *service) Cancel(ctx context.Context, userID, orderID uuid.UUID) (*OrderView, error) {
	return s.Transition(ctx, TransitionInput{
		UserID:  userID,
		OrderID: orderID,
		Status:  enums.OrderStatusCancelled,
	})
}

func freezeItems(items []pricing.LineItem) []models.OrderItem {
	frozen := make([]models.OrderItem, 0, len(items))
	for _, li := range items {
		frozen = append(frozen, models.OrderItem{
			ID:             uuid.New(),
			ProductID:      li.ProductID,
			ProductName:    li.Name,
			ProductSlug:    li.Slug,
			ImageURL:       li.ImageURL,
			UnitPriceCents: centsFromDecimal(li.UnitPrice),
			Quantity:       li.Quantity,
			Variant:        li.Variant,
			LineTotalCents: centsFromDecimal(li.LineTotal()),
		})
	}
	return frozen
}
