package pricing

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/techstore/storefront-backend/pkg/errors"
	"github.com/techstore/storefront-backend/pkg/types"
)

// MoneyPlaces is the scale every monetary amount is rounded to.
const MoneyPlaces = 2

// LineItem is one product (optionally a specific variant of it) and its
// quantity within a cart or frozen order.
type LineItem struct {
	ProductID uuid.UUID
	Name      string
	Slug      string
	ImageURL  string
	UnitPrice decimal.Decimal
	Quantity  int
	Variant   *types.Variant
}

// LineTotal returns unit price times quantity at money scale.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity))).RoundBank(MoneyPlaces)
}

// mergeKey identifies the cart line a product+variant pair lands on. The same
// variant merges quantities; a different variant opens a new line.
func (li LineItem) mergeKey() string {
	return li.ProductID.String() + "|" + types.VariantKey(li.Variant)
}

// Summary is the fully computed view of a cart. Items preserve insertion
// order; the monetary fields always satisfy
// total == subtotal + tax + shipping - discount, with total >= 0.
type Summary struct {
	Items      []LineItem
	ItemsCount int
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	Shipping   decimal.Decimal
	Discount   decimal.Decimal
	Total      decimal.Decimal
}

// IsEmpty reports whether the summary carries no line items.
func (s Summary) IsEmpty() bool {
	return len(s.Items) == 0
}

// Rule is a pure function computing one monetary adjustment from the cart
// contents. Rules are re-evaluated from scratch on every recomputation.
type Rule func(subtotal decimal.Decimal, items []LineItem) (decimal.Decimal, error)

// Rules bundles the three adjustment rules a summary computation needs.
// A nil rule contributes zero.
type Rules struct {
	Tax      Rule
	Shipping Rule
	Discount Rule
}

// ZeroSummary is the summary of an empty cart.
func ZeroSummary() Summary {
	return Summary{
		Items:    []LineItem{},
		Subtotal: decimal.Zero,
		Tax:      decimal.Zero,
		Shipping: decimal.Zero,
		Discount: decimal.Zero,
		Total:    decimal.Zero,
	}
}

// ComputeSummary validates the line items, evaluates the rules, and returns a
// fresh Summary. The input slice is not mutated. An empty item sequence
// yields the zero summary without evaluating any rule.
func ComputeSummary(items []LineItem, rules Rules) (Summary, error) {
	if len(items) == 0 {
		return ZeroSummary(), nil
	}

	if err := validateItems(items); err != nil {
		return Summary{}, err
	}

	kept := make([]LineItem, len(items))
	copy(kept, items)

	subtotal := decimal.Zero
	count := 0
	for _, li := range kept {
		subtotal = subtotal.Add(li.LineTotal())
		count += li.Quantity
	}
	subtotal = subtotal.RoundBank(MoneyPlaces)

	tax, err := evalRule("tax", rules.Tax, subtotal, kept)
	if err != nil {
		return Summary{}, err
	}
	shipping, err := evalRule("shipping", rules.Shipping, subtotal, kept)
	if err != nil {
		return Summary{}, err
	}
	discount, err := evalRule("discount", rules.Discount, subtotal, kept)
	if err != nil {
		return Summary{}, err
	}

	// discount may never exceed what it discounts
	gross := subtotal.Add(tax).Add(shipping)
	if discount.GreaterThan(gross) {
		discount = gross
	}

	total := gross.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Summary{
		Items:      kept,
		ItemsCount: count,
		Subtotal:   subtotal,
		Tax:        tax,
		Shipping:   shipping,
		Discount:   discount,
		Total:      total,
	}, nil
}

func validateItems(items []LineItem) error {
	for idx, li := range items {
		if li.Quantity < 1 {
			return errors.New(errors.CodeValidation, "line item quantity must be at least 1").
				WithDetails(map[string]any{"index": idx, "product_id": li.ProductID.String(), "quantity": li.Quantity})
		}
		if li.UnitPrice.IsNegative() {
			return errors.New(errors.CodeValidation, "line item unit price must not be negative").
				WithDetails(map[string]any{"index": idx, "product_id": li.ProductID.String(), "unit_price": li.UnitPrice.String()})
		}
	}
	return nil
}

// evalRule runs a rule and normalizes its output to money scale. Discount
// results below zero clamp to zero; negative tax or shipping is a rule bug
// and surfaces as an evaluation error.
func evalRule(name string, rule Rule, subtotal decimal.Decimal, items []LineItem) (decimal.Decimal, error) {
	if rule == nil {
		return decimal.Zero, nil
	}
	out, err := rule(subtotal, items)
	if err != nil {
		return decimal.Zero, errors.Wrap(errors.CodeRuleEvaluation, err, fmt.Sprintf("%s rule failed", name)).
			WithDetails(map[string]any{"rule": name})
	}
	out = out.RoundBank(MoneyPlaces)
	if out.IsNegative() {
		if name == "discount" {
			return decimal.Zero, nil
		}
		return decimal.Zero, errors.New(errors.CodeRuleEvaluation, fmt.Sprintf("%s rule returned a negative amount", name)).
			WithDetails(map[string]any{"rule": name, "amount": out.String()})
	}
	return out, nil
}
