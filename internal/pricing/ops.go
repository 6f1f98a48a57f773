package pricing

import (
	"github.com/google/uuid"

	"github.com/techstore/storefront-backend/pkg/types"
)

// Op is one cart mutation. The set of implementations is closed; dispatch is
// by type, so an unknown action cannot be represented.
type Op interface {
	apply(items []LineItem) []LineItem
}

// Add appends a line item, merging quantity into an existing line when the
// product and variant match.
type Add struct {
	Item LineItem
}

// Update replaces the quantity on the matching line. Quantity zero removes
// the line. A missing line is a no-op.
type Update struct {
	ProductID uuid.UUID
	Variant   *types.Variant
	Quantity  int
}

// Remove drops the matching line. A missing line is a no-op.
type Remove struct {
	ProductID uuid.UUID
	Variant   *types.Variant
}

// Clear resets the cart to the empty sequence.
type Clear struct{}

// Apply runs one mutation against the item sequence and recomputes the full
// summary. The input slice is never mutated; every call builds a new one, so
// a failed computation leaves the caller's summary untouched.
func Apply(items []LineItem, op Op, rules Rules) (Summary, error) {
	return ComputeSummary(op.apply(items), rules)
}

func (a Add) apply(items []LineItem) []LineItem {
	next := make([]LineItem, len(items))
	copy(next, items)

	key := a.Item.mergeKey()
	for i, li := range next {
		if li.mergeKey() == key {
			li.Quantity += a.Item.Quantity
			next[i] = li
			return next
		}
	}
	return append(next, a.Item)
}

func (u Update) apply(items []LineItem) []LineItem {
	if u.Quantity <= 0 {
		return Remove{ProductID: u.ProductID, Variant: u.Variant}.apply(items)
	}

	key := u.ProductID.String() + "|" + types.VariantKey(u.Variant)
	next := make([]LineItem, len(items))
	copy(next, items)
	for i, li := range next {
		if li.mergeKey() == key {
			li.Quantity = u.Quantity
			next[i] = li
			break
		}
	}
	return next
}

func (r Remove) apply(items []LineItem) []LineItem {
	key := r.ProductID.String() + "|" + types.VariantKey(r.Variant)
	next := make([]LineItem, 0, len(items))
	for _, li := range items {
		if li.mergeKey() == key {
			continue
		}
		next = append(next, li)
	}
	return next
}

func (Clear) apply([]LineItem) []LineItem {
	return []LineItem{}
}
