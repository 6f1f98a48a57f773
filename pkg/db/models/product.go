package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/techstore/storefront-backend/pkg/types"
)

// Product is a catalog entry. Prices are stored in cents to keep the
// database free of floating point drift; the pricing core converts to
// decimals at the boundary.
type Product struct {
	ID               uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name             string          `gorm:"column:name;not null"`
	Slug             string          `gorm:"column:slug;not null;uniqueIndex"`
	Description      string          `gorm:"column:description;not null;default:''"`
	ShortDescription string          `gorm:"column:short_description;not null;default:''"`
	PriceCents       int             `gorm:"column:price_cents;not null"`
	OldPriceCents    *int            `gorm:"column:old_price_cents"`
	CategoryID       uuid.UUID       `gorm:"column:category_id;type:uuid;not null;index"`
	Brand            string          `gorm:"column:brand;not null;default:''"`
	SKU              string          `gorm:"column:sku;not null;uniqueIndex"`
	ImageURL         string          `gorm:"column:image_url;not null;default:''"`
	Images           []string        `gorm:"column:images;type:jsonb;serializer:json"`
	Attributes       []types.Variant `gorm:"column:attributes;type:jsonb;serializer:json"`
	Stock            int             `gorm:"column:stock;not null;default:0"`
	Rating           float64         `gorm:"column:rating;not null;default:0"`
	ReviewsCount     int             `gorm:"column:reviews_count;not null;default:0"`
	IsFeatured       bool            `gorm:"column:is_featured;not null;default:false"`
	// No gorm default on purpose: a default tag makes GORM omit the zero
	// value from INSERTs, which would turn IsAvailable=false into true.
	IsAvailable      bool            `gorm:"column:is_available;not null"`
	CreatedAt        time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
