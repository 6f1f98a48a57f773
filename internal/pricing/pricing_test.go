package pricing

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/techstore/storefront-backend/pkg/errors"
	"github.com/techstore/storefront-backend/pkg/types"
)

func money(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func item(price string, qty int) LineItem {
	return LineItem{
		ProductID: uuid.New(),
		Name:      "Item",
		Slug:      "item",
		UnitPrice: money(price),
		Quantity:  qty,
	}
}

func requireMoney(t *testing.T, field string, got, want decimal.Decimal) {
	t.Helper()
	if !got.Equal(want) {
		t.Fatalf("%s = %s, want %s", field, got, want)
	}
}

func TestComputeSummaryReferenceScenario(t *testing.T) {
	items := []LineItem{
		item("999.99", 1),
		item("249.99", 2),
	}
	rules := Rules{
		Tax:      PercentageTax(money("0.20")),
		Shipping: FlatShipping(decimal.Zero),
		Discount: FixedDiscount(money("50")),
	}

	sum, err := ComputeSummary(items, rules)
	if err != nil {
		t.Fatalf("compute summary: %v", err)
	}

	requireMoney(t, "subtotal", sum.Subtotal, money("1499.97"))
	requireMoney(t, "tax", sum.Tax, money("299.99"))
	requireMoney(t, "shipping", sum.Shipping, money("0"))
	requireMoney(t, "discount", sum.Discount, money("50"))
	requireMoney(t, "total", sum.Total, money("1749.96"))
	if sum.ItemsCount != 3 {
		t.Fatalf("items count = %d, want 3", sum.ItemsCount)
	}
}

func TestComputeSummaryInvariantHolds(t *testing.T) {
	items := []LineItem{item("10.01", 3), item("0.33", 7)}
	rules := Rules{
		Tax:      PercentageTax(money("0.0875")),
		Shipping: ThresholdShipping(money("500"), money("10.00")),
		Discount: PercentageDiscount(money("0.10")),
	}

	sum, err := ComputeSummary(items, rules)
	if err != nil {
		t.Fatalf("compute summary: %v", err)
	}

	want := sum.Subtotal.Add(sum.Tax).Add(sum.Shipping).Sub(sum.Discount)
	requireMoney(t, "total", sum.Total, want)
	if sum.Total.IsNegative() {
		t.Fatal("total must never be negative")
	}
}

func TestComputeSummaryIsIdempotent(t *testing.T) {
	items := []LineItem{item("19.99", 2), item("5.00", 1)}
	rules := Rules{Tax: PercentageTax(money("0.20"))}

	first, err := ComputeSummary(items, rules)
	if err != nil {
		t.Fatalf("first compute: %v", err)
	}
	second, err := ComputeSummary(items, rules)
	if err != nil {
		t.Fatalf("second compute: %v", err)
	}

	if fmt.Sprintf("%+v", first) != fmt.Sprintf("%+v", second) {
		t.Fatalf("identical inputs yielded different summaries:\n%+v\n%+v", first, second)
	}
}

func TestComputeSummaryEmptyItems(t *testing.T) {
	// rules must not run for an empty cart: flat shipping would otherwise
	// charge for nothing
	rules := Rules{Shipping: FlatShipping(money("10.00"))}

	sum, err := ComputeSummary(nil, rules)
	if err != nil {
		t.Fatalf("compute summary: %v", err)
	}
	if !sum.IsEmpty() {
		t.Fatal("expected empty summary")
	}
	requireMoney(t, "shipping", sum.Shipping, decimal.Zero)
	requireMoney(t, "total", sum.Total, decimal.Zero)
}

func TestComputeSummaryRejectsBadItems(t *testing.T) {
	cases := []struct {
		name  string
		items []LineItem
	}{
		{"zero quantity", []LineItem{item("9.99", 0)}},
		{"negative quantity", []LineItem{item("9.99", -2)}},
		{"negative price", []LineItem{item("-0.01", 1)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeSummary(tc.items, Rules{})
			typed := errors.As(err)
			if typed == nil || typed.Code() != errors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestComputeSummaryClampsDiscount(t *testing.T) {
	items := []LineItem{item("10.00", 1)}
	rules := Rules{Discount: FixedDiscount(money("1000"))}

	sum, err := ComputeSummary(items, rules)
	if err != nil {
		t.Fatalf("compute summary: %v", err)
	}
	requireMoney(t, "discount", sum.Discount, money("10.00"))
	requireMoney(t, "total", sum.Total, decimal.Zero)
}

func TestComputeSummaryNegativeDiscountClampsToZero(t *testing.T) {
	items := []LineItem{item("10.00", 1)}
	rules := Rules{Discount: func(decimal.Decimal, []LineItem) (decimal.Decimal, error) {
		return money("-5"), nil
	}}

	sum, err := ComputeSummary(items, rules)
	if err != nil {
		t.Fatalf("compute summary: %v", err)
	}
	requireMoney(t, "discount", sum.Discount, decimal.Zero)
	requireMoney(t, "total", sum.Total, money("10.00"))
}

func TestComputeSummaryRuleFailures(t *testing.T) {
	items := []LineItem{item("10.00", 1)}
	failing := func(decimal.Decimal, []LineItem) (decimal.Decimal, error) {
		return decimal.Zero, fmt.Errorf("rate service down")
	}
	negative := func(decimal.Decimal, []LineItem) (decimal.Decimal, error) {
		return money("-1"), nil
	}

	for name, rules := range map[string]Rules{
		"tax error":         {Tax: failing},
		"shipping error":    {Shipping: failing},
		"discount error":    {Discount: failing},
		"negative tax":      {Tax: negative},
		"negative shipping": {Shipping: negative},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ComputeSummary(items, rules)
			typed := errors.As(err)
			if typed == nil || typed.Code() != errors.CodeRuleEvaluation {
				t.Fatalf("expected rule evaluation error, got %v", err)
			}
		})
	}
}

func TestRoundingIsHalfToEven(t *testing.T) {
	// 0.125 * 1 rounds to 0.12, 0.135 to 0.14
	even, err := ComputeSummary([]LineItem{item("0.125", 1)}, Rules{})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	requireMoney(t, "subtotal", even.Subtotal, money("0.12"))

	odd, err := ComputeSummary([]LineItem{item("0.135", 1)}, Rules{})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	requireMoney(t, "subtotal", odd.Subtotal, money("0.14"))
}

func TestLineTotalEqualsPriceTimesQuantity(t *testing.T) {
	li := LineItem{UnitPrice: money("249.99"), Quantity: 2}
	requireMoney(t, "line total", li.LineTotal(), money("499.98"))
}

func TestVariantsOccupySeparateLines(t *testing.T) {
	productID := uuid.New()
	black := LineItem{ProductID: productID, UnitPrice: money("999.99"), Quantity: 1,
		Variant: &types.Variant{Name: "Color", Value: "Space Black"}}
	silver := LineItem{ProductID: productID, UnitPrice: money("999.99"), Quantity: 1,
		Variant: &types.Variant{Name: "Color", Value: "Silver"}}

	if black.mergeKey() == silver.mergeKey() {
		t.Fatal("distinct variants must not share a merge key")
	}
}
