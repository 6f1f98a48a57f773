package cart

import (
	"github.com/google/uuid"

	"github.com/techstore/storefront-backend/internal/pricing"
	"github.com/techstore/storefront-backend/pkg/types"
)

// AddItemInput adds a product (optionally a specific variant) to the cart.
type AddItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	Variant   *types.Variant
}

// UpdateItemInput replaces the quantity on an existing line. Quantity zero
// removes the line.
type UpdateItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	Variant   *types.Variant
}

// RemoveItemInput drops a line from the cart.
type RemoveItemInput struct {
	ProductID uuid.UUID
	Variant   *types.Variant
}

// CartItemView is one cart line as returned to clients.
type CartItemView struct {
	ProductID uuid.UUID      `json:"product_id"`
	Name      string         `json:"name"`
	Slug      string         `json:"slug"`
	ImageURL  string         `json:"image_url,omitempty"`
	UnitPrice float64        `json:"unit_price"`
	Quantity  int            `json:"quantity"`
	Variant   *types.Variant `json:"variant,omitempty"`
	LineTotal float64        `json:"line_total"`
}

// CartView is the full cart payload with the computed monetary fields.
type CartView struct {
	Items      []CartItemView `json:"items"`
	ItemsCount int            `json:"items_count"`
	Subtotal   float64        `json:"subtotal"`
	Tax        float64        `json:"tax"`
	Shipping   float64        `json:"shipping"`
	Discount   float64        `json:"discount"`
	Total      float64        `json:"total"`
}

func toCartView(sum pricing.Summary) *CartView {
	items := make([]CartItemView, 0, len(sum.Items))
	for _, li := range sum.Items {
		items = append(items, CartItemView{
			ProductID: li.ProductID,
			Name:      li.Name,
			Slug:      li.Slug,
			ImageURL:  li.ImageURL,
			UnitPrice: li.UnitPrice.InexactFloat64(),
			Quantity:  li.Quantity,
			Variant:   li.Variant,
			LineTotal: li.LineTotal().InexactFloat64(),
		})
	}
	return &CartView{
		Items:      items,
		ItemsCount: sum.ItemsCount,
		Subtotal:   sum.Subtotal.InexactFloat64(),
		Tax:        sum.Tax.InexactFloat64(),
		Shipping:   sum.Shipping.InexactFloat64(),
		Discount:   sum.Discount.InexactFloat64(),
		Total:      sum.Total.InexactFloat64(),
	}
}
