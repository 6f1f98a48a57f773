package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PercentageTax taxes the subtotal at the given fractional rate
// (0.20 means 20%).
func PercentageTax(rate decimal.Decimal) Rule {
	return func(subtotal decimal.Decimal, _ []LineItem) (decimal.Decimal, error) {
		if rate.IsNegative() {
			return decimal.Zero, fmt.Errorf("tax rate %s is negative", rate)
		}
		return subtotal.Mul(rate), nil
	}
}

// FlatShipping charges a fixed price regardless of cart contents.
func FlatShipping(price decimal.Decimal) Rule {
	return func(decimal.Decimal, []LineItem) (decimal.Decimal, error) {
		return price, nil
	}
}

// ThresholdShipping charges the standard price below the free-shipping
// threshold and nothing at or above it.
func ThresholdShipping(threshold, standard decimal.Decimal) Rule {
	return func(subtotal decimal.Decimal, _ []LineItem) (decimal.Decimal, error) {
		if subtotal.GreaterThanOrEqual(threshold) {
			return decimal.Zero, nil
		}
		return standard, nil
	}
}

// FixedDiscount subtracts a fixed amount. The aggregator clamps it so the
// discount can never exceed the amount being discounted.
func FixedDiscount(amount decimal.Decimal) Rule {
	return func(decimal.Decimal, []LineItem) (decimal.Decimal, error) {
		return amount, nil
	}
}

// PercentageDiscount discounts the subtotal at the given fractional rate.
func PercentageDiscount(rate decimal.Decimal) Rule {
	return func(subtotal decimal.Decimal, _ []LineItem) (decimal.Decimal, error) {
		if rate.IsNegative() {
			return decimal.Zero, fmt.Errorf("discount rate %s is negative", rate)
		}
		return subtotal.Mul(rate), nil
	}
}

// NoDiscount is the rule used when no promotion applies.
func NoDiscount() Rule {
	return func(decimal.Decimal, []LineItem) (decimal.Decimal, error) {
		return decimal.Zero, nil
	}
}
