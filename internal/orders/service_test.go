package orders

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/techstore/storefront-backend/internal/pricing"
	"github.com/techstore/storefront-backend/pkg/clock"
	"github.com/techstore/storefront-backend/pkg/db/models"
	"github.com/techstore/storefront-backend/pkg/enums"
	pkgerrors "github.com/techstore/storefront-backend/pkg/errors"
	"github.com/techstore/storefront-backend/pkg/pagination"
	"github.com/techstore/storefront-backend/pkg/types"
)

type stubOrdersRepo struct {
	created      *models.OrderRecord
	order        *models.OrderRecord
	listed       []models.OrderRecord
	listErr      error
	updateOK     bool
	updatedTo    enums.OrderStatus
	updatedAt    time.Time
	createErr    error
	lastLimit    int
	lastCursor   *pagination.Cursor
	findByUserFn func(ctx context.Context, userID, orderID uuid.UUID) (*models.OrderRecord, error)
}

func (s *stubOrdersRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubOrdersRepo) Create(ctx context.Context, order *models.OrderRecord) (*models.OrderRecord, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = order
	return order, nil
}

func (s *stubOrdersRepo) FindByID(ctx context.Context, orderID uuid.UUID) (*models.OrderRecord, error) {
	if s.order == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.order, nil
}

func (s *stubOrdersRepo) FindByUserAndID(ctx context.Context, userID, orderID uuid.UUID) (*models.OrderRecord, error) {
	if s.findByUserFn != nil {
		return s.findByUserFn(ctx, userID, orderID)
	}
	if s.order == nil || s.order.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return s.order, nil
}

func (s *stubOrdersRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int, cursor *pagination.Cursor) ([]models.OrderRecord, error) {
	s.lastLimit = limit
	s.lastCursor = cursor
	if s.listErr != nil {
		return nil, s.listErr
	}
	if limit < len(s.listed) {
		return s.listed[:limit], nil
	}
	return s.listed, nil
}

func (s *stubOrdersRepo) UpdateStatus(ctx context.Context, orderID uuid.UUID, from, to enums.OrderStatus, at time.Time) (bool, error) {
	s.updatedTo = to
	s.updatedAt = at
	return s.updateOK, nil
}

type stubSequence struct {
	next string
	err  error
	year int
}

func (s *stubSequence) Next(ctx context.Context, year int) (string, error) {
	s.year = year
	if s.err != nil {
		return "", s.err
	}
	return s.next, nil
}

type stubTxRunner struct{}

func (stubTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func fixedTime() time.Time {
	return time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)
}

func testSummary(t *testing.T) pricing.Summary {
	t.Helper()

	items := []pricing.LineItem{
		{
			ProductID: uuid.New(),
			Name:      "Premium Wireless Headphones",
			Slug:      "premium-wireless-headphones",
			UnitPrice: mustDecimal(t, "999.99"),
			Quantity:  1,
			Variant:   &types.Variant{Name: "Color", Value: "Space Black"},
		},
		{
			ProductID: uuid.New(),
			Name:      "Smart Watch Series 5",
			Slug:      "smart-watch-series-5",
			UnitPrice: mustDecimal(t, "249.99"),
			Quantity:  2,
		},
	}
	rules := pricing.Rules{
		Tax:      pricing.PercentageTax(mustDecimal(t, "0.20")),
		Discount: pricing.FixedDiscount(mustDecimal(t, "50")),
	}
	sum, err := pricing.ComputeSummary(items, rules)
	if err != nil {
		t.Fatalf("compute summary: %v", err)
	}
	return sum
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}

func newService(t *testing.T, repo Repository, seq SequenceGenerator) Service {
	t.Helper()
	svc, err := NewService(repo, seq, stubTxRunner{}, clock.Fixed(fixedTime()))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func validCreateInput(t *testing.T) CreateOrderInput {
	return CreateOrderInput{
		UserID:            uuid.New(),
		Summary:           testSummary(t),
		Currency:          enums.CurrencyUSD,
		ShippingAddressID: uuid.New(),
		BillingAddressID:  uuid.New(),
		PaymentMethod:     enums.PaymentMethodCreditCard,
	}
}

func TestCreateOrderFreezesSummary(t *testing.T) {
	repo := &stubOrdersRepo{}
	seq := &stubSequence{next: "ORD-2026-00001"}
	svc := newService(t, repo, seq)

	view, err := svc.CreateOrder(context.Background(), validCreateInput(t))
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if seq.year != 2026 {
		t.Fatalf("sequence year = %d, want 2026", seq.year)
	}
	if view.OrderNumber != "ORD-2026-00001" {
		t.Fatalf("order number = %q", view.OrderNumber)
	}
	if view.Status != enums.OrderStatusPending {
		t.Fatalf("initial status = %q, want pending", view.Status)
	}
	if view.StatusLabel != "Pending Payment" {
		t.Fatalf("status label = %q", view.StatusLabel)
	}
	if view.Subtotal != 1499.97 || view.Tax != 299.99 || view.Discount != 50 || view.Total != 1749.96 {
		t.Fatalf("monetary fields not frozen correctly: %+v", view)
	}
	if view.ItemsCount != 3 || len(view.Items) != 2 {
		t.Fatalf("items not frozen: count=%d lines=%d", view.ItemsCount, len(view.Items))
	}
	if repo.created == nil || repo.created.TotalCents != 174996 {
		t.Fatalf("persisted record wrong: %+v", repo.created)
	}
	if !view.CreatedAt.Equal(fixedTime()) {
		t.Fatalf("created_at = %v, want injected clock time", view.CreatedAt)
	}
}

func TestCreateOrderEmptyCart(t *testing.T) {
	svc := newService(t, &stubOrdersRepo{}, &stubSequence{next: "ORD-2026-00001"})

	input := validCreateInput(t)
	input.Summary = pricing.ZeroSummary()

	_, err := svc.CreateOrder(context.Background(), input)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeEmptyCart {
		t.Fatalf("expected empty cart error, got %v", err)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	svc := newService(t, &stubOrdersRepo{}, &stubSequence{next: "ORD-2026-00001"})

	missingAddr := validCreateInput(t)
	missingAddr.ShippingAddressID = uuid.Nil
	if _, err := svc.CreateOrder(context.Background(), missingAddr); pkgerrors.As(err) == nil {
		t.Fatalf("expected error for missing address, got %v", err)
	}

	badMethod := validCreateInput(t)
	badMethod.PaymentMethod = enums.PaymentMethod("barter")
	_, err := svc.CreateOrder(context.Background(), badMethod)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for payment method, got %v", err)
	}

	anonymous := validCreateInput(t)
	anonymous.UserID = uuid.Nil
	_, err = svc.CreateOrder(context.Background(), anonymous)
	typed = pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}

func TestCreateOrderSequenceFailure(t *testing.T) {
	repo := &stubOrdersRepo{}
	seq := &stubSequence{err: fmt.Errorf("redis down")}
	svc := newService(t, repo, seq)

	if _, err := svc.CreateOrder(context.Background(), validCreateInput(t)); err == nil {
		t.Fatal("expected error when sequence generation fails")
	}
	if repo.created != nil {
		t.Fatal("no order should be persisted when the sequence fails")
	}
}

func TestListOrdersPagination(t *testing.T) {
	userID := uuid.New()
	base := fixedTime()
	records := make([]models.OrderRecord, 0, 3)
	for i := 0; i < 3; i++ {
		records = append(records, models.OrderRecord{
			ID:          uuid.New(),
			UserID:      userID,
			OrderNumber: fmt.Sprintf("ORD-2026-%05d", 3-i),
			Status:      enums.OrderStatusPending,
			TotalCents:  174996,
			Currency:    enums.CurrencyUSD,
			CreatedAt:   base.Add(-time.Duration(i) * time.Hour),
		})
	}

	repo := &stubOrdersRepo{listed: records}
	svc := newService(t, repo, &stubSequence{})

	list, err := svc.ListOrders(context.Background(), ListInput{UserID: userID, Limit: 2})
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}

	if repo.lastLimit != 3 {
		t.Fatalf("repo should be asked for limit+1 rows, got %d", repo.lastLimit)
	}
	if len(list.Orders) != 2 {
		t.Fatalf("page size = %d, want 2", len(list.Orders))
	}
	if list.NextCursor == "" {
		t.Fatal("expected a next cursor for the remaining row")
	}

	cursor, err := pagination.ParseCursor(list.NextCursor)
	if err != nil {
		t.Fatalf("returned cursor must parse: %v", err)
	}
	if cursor.ID != records[1].ID {
		t.Fatalf("cursor should restart after the last served row")
	}
}

func TestListOrdersLastPageHasNoCursor(t *testing.T) {
	userID := uuid.New()
	repo := &stubOrdersRepo{listed: []models.OrderRecord{{
		ID: uuid.New(), UserID: userID, OrderNumber: "ORD-2026-00001",
		Status: enums.OrderStatusPending, CreatedAt: fixedTime(),
	}}}
	svc := newService(t, repo, &stubSequence{})

	list, err := svc.ListOrders(context.Background(), ListInput{UserID: userID, Limit: 10})
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if list.NextCursor != "" {
		t.Fatalf("no cursor expected on the last page, got %q", list.NextCursor)
	}
}

func TestListOrdersInvalidCursor(t *testing.T) {
	svc := newService(t, &stubOrdersRepo{}, &stubSequence{})

	_, err := svc.ListOrders(context.Background(), ListInput{UserID: uuid.New(), Cursor: "garbage"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTransitionHappyPath(t *testing.T) {
	userID := uuid.New()
	repo := &stubOrdersRepo{
		order: &models.OrderRecord{
			ID:     uuid.New(),
			UserID: userID,
			Status: enums.OrderStatusPending,
		},
		updateOK: true,
	}
	svc := newService(t, repo, &stubSequence{})

	view, err := svc.Transition(context.Background(), TransitionInput{
		UserID:  userID,
		OrderID: repo.order.ID,
		Status:  enums.OrderStatusProcessing,
	})
	if err != nil {
		t.Fatalf("transition: %v", err)
	}
	if view.Status != enums.OrderStatusProcessing {
		t.Fatalf("status = %q, want processing", view.Status)
	}
	if repo.updatedTo != enums.OrderStatusProcessing {
		t.Fatalf("repo received status %q", repo.updatedTo)
	}
	if !view.UpdatedAt.Equal(fixedTime()) {
		t.Fatalf("updated_at = %v, want injected clock time", view.UpdatedAt)
	}
	if !repo.updatedAt.Equal(fixedTime()) {
		t.Fatalf("repo received timestamp %v, want injected clock time", repo.updatedAt)
	}
}

func TestTransitionTerminalOrder(t *testing.T) {
	userID := uuid.New()
	repo := &stubOrdersRepo{
		order: &models.OrderRecord{ID: uuid.New(), UserID: userID, Status: enums.OrderStatusCompleted},
	}
	svc := newService(t, repo, &stubSequence{})

	_, err := svc.Transition(context.Background(), TransitionInput{
		UserID:  userID,
		OrderID: repo.order.ID,
		Status:  enums.OrderStatusProcessing,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeTerminalState {
		t.Fatalf("expected terminal state error, got %v", err)
	}
}

func TestTransitionInvalidEdge(t *testing.T) {
	userID := uuid.New()
	repo := &stubOrdersRepo{
		order: &models.OrderRecord{ID: uuid.New(), UserID: userID, Status: enums.OrderStatusPending},
	}
	svc := newService(t, repo, &stubSequence{})

	_, err := svc.Transition(context.Background(), TransitionInput{
		UserID:  userID,
		OrderID: repo.order.ID,
		Status:  enums.OrderStatusCompleted,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeInvalidTransition {
		t.Fatalf("expected invalid transition error, got %v", err)
	}
}

func TestTransitionNotFound(t *testing.T) {
	svc := newService(t, &stubOrdersRepo{}, &stubSequence{})

	_, err := svc.Transition(context.Background(), TransitionInput{
		UserID:  uuid.New(),
		OrderID: uuid.New(),
		Status:  enums.OrderStatusProcessing,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestTransitionConcurrentChange(t *testing.T) {
	userID := uuid.New()
	repo := &stubOrdersRepo{
		order:    &models.OrderRecord{ID: uuid.New(), UserID: userID, Status: enums.OrderStatusPending},
		updateOK: false,
	}
	svc := newService(t, repo, &stubSequence{})

	_, err := svc.Transition(context.Background(), TransitionInput{
		UserID:  userID,
		OrderID: repo.order.ID,
		Status:  enums.OrderStatusProcessing,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestCancelUsesCancelledStatus(t *testing.T) {
	userID := uuid.New()
	repo := &stubOrdersRepo{
		order:    &models.OrderRecord{ID: uuid.New(), UserID: userID, Status: enums.OrderStatusProcessing},
		updateOK: true,
	}
	svc := newService(t, repo, &stubSequence{})

	view, err := svc.Cancel(context.Background(), userID, repo.order.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if view.Status != enums.OrderStatusCancelled {
		t.Fatalf("status = %q, want cancelled", view.Status)
	}
}

func TestSequenceGeneratorFormatsNumbers(t *testing.T) {
	gen := &fakeCounter{value: 41}
	seq := &redisSequence{client: gen}

	number, err := seq.Next(context.Background(), 2026)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if number != "ORD-2026-00042" {
		t.Fatalf("order number = %q", number)
	}
}

type fakeCounter struct {
	value int64
	key   string
}

func (f *fakeCounter) Incr(ctx context.Context, key string) (int64, error) {
	f.key = key
	f.value++
	return f.value, nil
}

func (f *fakeCounter) CounterKey(name string) string {
	return "ts:counter:" + name
}
