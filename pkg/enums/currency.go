package enums

// Currency is an ISO 4217 currency code supported by the storefront.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyUAH Currency = "UAH"
)

// String implements fmt.Stringer.
func (c Currency) String() string {
	return string(c)
}
