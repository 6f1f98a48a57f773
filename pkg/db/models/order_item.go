package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/techstore/storefront-backend/pkg/types"
)

// OrderItem is a frozen cart line attached to an OrderRecord.
type OrderItem struct {
	ID             uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID        uuid.UUID      `gorm:"column:order_id;type:uuid;not null;index"`
	ProductID      uuid.UUID      `gorm:"column:product_id;type:uuid;not null"`
	ProductName    string         `gorm:"column:product_name;not null"`
	ProductSlug    string         `gorm:"column:product_slug;not null"`
	ImageURL       string         `gorm:"column:image_url;not null;default:''"`
	UnitPriceCents int            `gorm:"column:unit_price_cents;not null"`
	Quantity       int            `gorm:"column:quantity;not null"`
	Variant        *types.Variant `gorm:"column:variant;type:jsonb;serializer:json"`
	LineTotalCents int            `gorm:"column:line_total_cents;not null"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
