package config

import "strings"

// MarketplaceConfig contains marketplace defaults and operating-mode flags.
type MarketplaceConfig struct {
	// Currency is the ISO 4217 code all offers and bookings are priced in.
	Currency string `env:"MARKETPLACE_CURRENCY" envDefault:"EUR"`

	// DefaultCountry is applied to job requests created without a country.
	DefaultCountry string `env:"MARKETPLACE_DEFAULT_COUNTRY" envDefault:"DE"`

	// PlatformFeePercent is the fee retained from a booking's quoted price.
	PlatformFeePercent int `env:"MARKETPLACE_PLATFORM_FEE_PERCENT" envDefault:"10"`

	// SimulatedPayments enables the simulated payment confirmation endpoint.
	// It must stay disabled in any environment with a real payment gateway;
	// the confirm operation is rejected outright when this is false.
	SimulatedPayments bool `env:"MARKETPLACE_SIMULATED_PAYMENTS" envDefault:"false"`
}

// Sanitize applies guardrails to marketplace configuration values.
func (m *MarketplaceConfig) Sanitize() {
	m.Currency = strings.ToUpper(strings.TrimSpace(m.Currency))
	if len(m.Currency) != 3 {
		m.Currency = "EUR"
	}
	m.DefaultCountry = strings.ToUpper(strings.TrimSpace(m.DefaultCountry))
	if len(m.DefaultCountry) != 2 {
		m.DefaultCountry = "DE"
	}
	if m.PlatformFeePercent < 0 {
		m.PlatformFeePercent = 0
	}
	if m.PlatformFeePercent > 50 {
		m.PlatformFeePercent = 50
	}
}
