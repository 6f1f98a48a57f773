package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/techstore/storefront-backend/internal/pricing"
	"github.com/techstore/storefront-backend/pkg/db/models"
	"github.com/techstore/storefront-backend/pkg/enums"
	"github.com/techstore/storefront-backend/pkg/types"
)

// CreateOrderInput captures everything a new order freezes at creation time.
type CreateOrderInput struct {
	UserID            uuid.UUID
	Summary           pricing.Summary
	Currency          enums.Currency
	ShippingAddressID uuid.UUID
	BillingAddressID  uuid.UUID
	PaymentMethod     enums.PaymentMethod
}

// TransitionInput identifies the order and the requested status change.
type TransitionInput struct {
	UserID  uuid.UUID
	OrderID uuid.UUID
	Status  enums.OrderStatus
}

// ListInput carries the cursor listing parameters for a user's orders.
type ListInput struct {
	UserID uuid.UUID
	Limit  int
	Cursor string
}

// OrderItemView is one frozen line as returned to clients.
type OrderItemView struct {
	ProductID   uuid.UUID      `json:"product_id"`
	ProductName string         `json:"product_name"`
	ProductSlug string         `json:"product_slug"`
	ImageURL    string         `json:"image_url,omitempty"`
	UnitPrice   float64        `json:"unit_price"`
	Quantity    int            `json:"quantity"`
	Variant     *types.Variant `json:"variant,omitempty"`
	LineTotal   float64        `json:"line_total"`
}

// OrderView is the full order payload.
type OrderView struct {
	ID            uuid.UUID         `json:"id"`
	OrderNumber   string            `json:"order_number"`
	Status        enums.OrderStatus `json:"status"`
	StatusLabel   string            `json:"status_label"`
	Items         []OrderItemView   `json:"items"`
	ItemsCount    int               `json:"items_count"`
	Subtotal      float64           `json:"subtotal"`
	Tax           float64           `json:"tax"`
	Shipping      float64           `json:"shipping"`
	Discount      float64           `json:"discount"`
	Total         float64           `json:"total"`
	Currency      enums.Currency    `json:"currency"`
	PaymentMethod string            `json:"payment_method"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// OrderSummaryView is the condensed row returned by the orders listing.
type OrderSummaryView struct {
	ID          uuid.UUID         `json:"id"`
	OrderNumber string            `json:"order_number"`
	Status      enums.OrderStatus `json:"status"`
	StatusLabel string            `json:"status_label"`
	ItemsCount  int               `json:"items_count"`
	Total       float64           `json:"total"`
	Currency    enums.Currency    `json:"currency"`
	CreatedAt   time.Time         `json:"created_at"`
}

// OrderList wraps one page of orders plus the cursor that restarts the
// listing at the next row.
type OrderList struct {
	Orders     []OrderSummaryView `json:"orders"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

// centsFromDecimal converts a money-scale decimal into integer cents.
func centsFromDecimal(d decimal.Decimal) int {
	return int(d.Shift(2).Round(0).IntPart())
}

// floatFromCents converts stored cents back into a JSON number.
func floatFromCents(cents int) float64 {
	return float64(cents) / 100
}

func toOrderView(record *models.OrderRecord) *OrderView {
	items := make([]OrderItemView, 0, len(record.Items))
	for _, it := range record.Items {
		items = append(items, OrderItemView{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			ProductSlug: it.ProductSlug,
			ImageURL:    it.ImageURL,
			UnitPrice:   floatFromCents(it.UnitPriceCents),
			Quantity:    it.Quantity,
			Variant:     it.Variant,
			LineTotal:   floatFromCents(it.LineTotalCents),
		})
	}
	return &OrderView{
		ID:            record.ID,
		OrderNumber:   record.OrderNumber,
		Status:        record.Status,
		StatusLabel:   record.Status.DisplayName(),
		Items:         items,
		ItemsCount:    record.ItemsCount,
		Subtotal:      floatFromCents(record.SubtotalCents),
		Tax:           floatFromCents(record.TaxCents),
		Shipping:      floatFromCents(record.ShippingCents),
		Discount:      floatFromCents(record.DiscountCents),
		Total:         floatFromCents(record.TotalCents),
		Currency:      record.Currency,
		PaymentMethod: record.PaymentMethod.String(),
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}
}

func toOrderSummaryView(record models.OrderRecord) OrderSummaryView {
	return OrderSummaryView{
		ID:          record.ID,
		OrderNumber: record.OrderNumber,
		Status:      record.Status,
		StatusLabel: record.Status.DisplayName(),
		ItemsCount:  record.ItemsCount,
		Total:       floatFromCents(record.TotalCents),
		Currency:    record.Currency,
		CreatedAt:   record.CreatedAt,
	}
}
