package shopconfig

import (
	"github.com/shopspring/decimal"

	"github.com/techstore/storefront-backend/internal/pricing"
	"github.com/techstore/storefront-backend/pkg/config"
	"github.com/techstore/storefront-backend/pkg/enums"
)

// ShippingMethodView is one shipping option advertised to the storefront.
type ShippingMethodView struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	FreeThreshold *float64 `json:"free_threshold,omitempty"`
	EstimatedDays string   `json:"estimated_days"`
}

// ShopInfoView is the static shop identity block.
type ShopInfoView struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	LogoURL      string `json:"logo_url"`
	FaviconURL   string `json:"favicon_url"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Address      string `json:"address"`
}

// ConfigView is the full storefront configuration payload.
type ConfigView struct {
	Shop            ShopInfoView         `json:"shop"`
	Currencies      []string             `json:"currencies"`
	DefaultCurrency string               `json:"default_currency"`
	Languages       []string             `json:"languages"`
	DefaultLanguage string               `json:"default_language"`
	PaymentMethods  []string             `json:"payment_methods"`
	ShippingMethods []ShippingMethodView `json:"shipping_methods"`
	TaxRatePercent  string               `json:"tax_rate_percent"`
}

// Provider serves the storefront configuration and derives the default
// pricing rules from it.
type Provider struct {
	cfg *config.Config
}

// NewProvider builds the shop config provider.
func NewProvider(cfg *config.Config) *Provider {
	return &Provider{cfg: cfg}
}

// View assembles the configuration payload.
func (p *Provider) View() (*ConfigView, error) {
	threshold, err := decimal.NewFromString(p.cfg.Pricing.FreeShippingThreshold)
	if err != nil {
		return nil, err
	}
	standard, err := decimal.NewFromString(p.cfg.Pricing.StandardShippingPrice)
	if err != nil {
		return nil, err
	}
	express, err := decimal.NewFromString(p.cfg.Pricing.ExpressShippingPrice)
	if err != nil {
		return nil, err
	}

	thresholdFloat := threshold.InexactFloat64()
	return &ConfigView{
		Shop: ShopInfoView{
			Name:         p.cfg.Shop.Name,
			Description:  p.cfg.Shop.Description,
			LogoURL:      p.cfg.Shop.LogoURL,
			FaviconURL:   p.cfg.Shop.FaviconURL,
			ContactEmail: p.cfg.Shop.ContactEmail,
			ContactPhone: p.cfg.Shop.ContactPhone,
			Address:      p.cfg.Shop.Address,
		},
		Currencies: []string{
			enums.CurrencyUSD.String(),
			enums.CurrencyEUR.String(),
			enums.CurrencyUAH.String(),
		},
		DefaultCurrency: enums.CurrencyUSD.String(),
		Languages:       []string{"en", "es", "uk"},
		DefaultLanguage: "en",
		PaymentMethods: []string{
			enums.PaymentMethodCreditCard.String(),
			enums.PaymentMethodPayPal.String(),
			enums.PaymentMethodStripe.String(),
			enums.PaymentMethodCashOnDelivery.String(),
		},
		ShippingMethods: []ShippingMethodView{
			{
				ID:            "standard",
				Name:          "Standard Shipping",
				Price:         standard.InexactFloat64(),
				FreeThreshold: &thresholdFloat,
				EstimatedDays: "5-7",
			},
			{
				ID:            "express",
				Name:          "Express Shipping",
				Price:         express.InexactFloat64(),
				EstimatedDays: "1-2",
			},
		},
		TaxRatePercent: p.cfg.Pricing.TaxRatePercent,
	}, nil
}

// DefaultRules derives the tax/shipping/discount rules the cart applies
// when no promotion is active.
func (p *Provider) DefaultRules() (pricing.Rules, error) {
	rate, err := p.cfg.Pricing.TaxRate()
	if err != nil {
		return pricing.Rules{}, err
	}
	threshold, err := decimal.NewFromString(p.cfg.Pricing.FreeShippingThreshold)
	if err != nil {
		return pricing.Rules{}, err
	}
	standard, err := decimal.NewFromString(p.cfg.Pricing.StandardShippingPrice)
	if err != nil {
		return pricing.Rules{}, err
	}
	return pricing.Rules{
		Tax:      pricing.PercentageTax(rate),
		Shipping: pricing.ThresholdShipping(threshold, standard),
		Discount: pricing.NoDiscount(),
	}, nil
}
