package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/techstore/storefront-backend/pkg/db/models"
	"github.com/techstore/storefront-backend/pkg/types"
)

// ProductView is the full product payload.
type ProductView struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Slug             string          `json:"slug"`
	Description      string          `json:"description,omitempty"`
	ShortDescription string          `json:"short_description,omitempty"`
	Price            float64         `json:"price"`
	OldPrice         *float64        `json:"old_price,omitempty"`
	CategoryID       uuid.UUID       `json:"category_id"`
	Brand            string          `json:"brand,omitempty"`
	SKU              string          `json:"sku"`
	ImageURL         string          `json:"image_url,omitempty"`
	Images           []string        `json:"images,omitempty"`
	Attributes       []types.Variant `json:"attributes,omitempty"`
	InStock          bool            `json:"in_stock"`
	Stock            int             `json:"stock"`
	Rating           float64         `json:"rating"`
	ReviewsCount     int             `json:"reviews_count"`
	IsFeatured       bool            `json:"is_featured"`
	CreatedAt        time.Time       `json:"created_at"`
}

// ProductList wraps one page of products.
type ProductList struct {
	Products []ProductView `json:"products"`
	Total    int64         `json:"-"`
}

// CategoryNode is one node of the category tree. Children nest recursively
// up to the depth guard.
type CategoryNode struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	ImageURL     string          `json:"image_url,omitempty"`
	ProductCount int             `json:"product_count"`
	Children     []*CategoryNode `json:"children,omitempty"`
}

func floatFromCents(cents int) float64 {
	return float64(cents) / 100
}

func toProductView(p models.Product) ProductView {
	view := ProductView{
		ID:               p.ID,
		Name:             p.Name,
		Slug:             p.Slug,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Price:            floatFromCents(p.PriceCents),
		CategoryID:       p.CategoryID,
		Brand:            p.Brand,
		SKU:              p.SKU,
		ImageURL:         p.ImageURL,
		Images:           p.Images,
		Attributes:       p.Attributes,
		InStock:          p.IsAvailable && p.Stock > 0,
		Stock:            p.Stock,
		Rating:           p.Rating,
		ReviewsCount:     p.ReviewsCount,
		IsFeatured:       p.IsFeatured,
		CreatedAt:        p.CreatedAt,
	}
	if p.OldPriceCents != nil {
		old := floatFromCents(*p.OldPriceCents)
		view.OldPrice = &old
	}
	return view
}
