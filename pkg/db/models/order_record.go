package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/techstore/storefront-backend/pkg/enums"
)

// OrderRecord is the immutable snapshot an order freezes at creation time.
// Only Status and UpdatedAt change after insert.
type OrderRecord struct {
	ID                uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID            uuid.UUID           `gorm:"column:user_id;type:uuid;not null;index"`
	OrderNumber       string              `gorm:"column:order_number;not null;uniqueIndex"`
	Status            enums.OrderStatus   `gorm:"column:status;type:text;not null;default:'pending'"`
	ItemsCount        int                 `gorm:"column:items_count;not null"`
	SubtotalCents     int                 `gorm:"column:subtotal_cents;not null"`
	TaxCents          int                 `gorm:"column:tax_cents;not null;default:0"`
	ShippingCents     int                 `gorm:"column:shipping_cents;not null;default:0"`
	DiscountCents     int                 `gorm:"column:discount_cents;not null;default:0"`
	TotalCents        int                 `gorm:"column:total_cents;not null"`
	Currency          enums.Currency      `gorm:"column:currency;type:text;not null;default:'USD'"`
	ShippingAddressID uuid.UUID           `gorm:"column:shipping_address_id;type:uuid;not null"`
	BillingAddressID  uuid.UUID           `gorm:"column:billing_address_id;type:uuid;not null"`
	PaymentMethod     enums.PaymentMethod `gorm:"column:payment_method;type:text;not null"`
	Items             []OrderItem         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time           `gorm:"column:created_at"`
	UpdatedAt         time.Time           `gorm:"column:updated_at"`
}

// TableName maps the model onto the orders table.
func (OrderRecord) TableName() string {
	return "orders"
}
