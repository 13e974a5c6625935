package config

import (
	"testing"

	env "github.com/caarlos0/env/v11"
)

func TestMarketplaceConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.Marketplace.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", cfg.Marketplace.Currency)
	}
	if cfg.Marketplace.DefaultCountry != "DE" {
		t.Errorf("DefaultCountry = %q, want DE", cfg.Marketplace.DefaultCountry)
	}
	if cfg.Marketplace.SimulatedPayments {
		t.Error("SimulatedPayments should default to false")
	}
}

func TestMarketplaceConfig_Sanitize(t *testing.T) {
	tests := []struct {
		name        string
		in          MarketplaceConfig
		wantCur     string
		wantCountry string
		wantFee     int
	}{
		{
			name:        "lowercase currency and country are normalized",
			in:          MarketplaceConfig{Currency: "eur", DefaultCountry: "de", PlatformFeePercent: 10},
			wantCur:     "EUR",
			wantCountry: "DE",
			wantFee:     10,
		},
		{
			name:        "invalid currency falls back to EUR",
			in:          MarketplaceConfig{Currency: "EURO", DefaultCountry: "AT", PlatformFeePercent: 10},
			wantCur:     "EUR",
			wantCountry: "AT",
			wantFee:     10,
		},
		{
			name:        "fee is clamped",
			in:          MarketplaceConfig{Currency: "CHF", DefaultCountry: "CH", PlatformFeePercent: 99},
			wantCur:     "CHF",
			wantCountry: "CH",
			wantFee:     50,
		},
		{
			name:        "negative fee is clamped to zero",
			in:          MarketplaceConfig{Currency: "EUR", DefaultCountry: "DE", PlatformFeePercent: -1},
			wantCur:     "EUR",
			wantCountry: "DE",
			wantFee:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.in
			cfg.Sanitize()
			if cfg.Currency != tt.wantCur {
				t.Errorf("Currency = %q, want %q", cfg.Currency, tt.wantCur)
			}
			if cfg.DefaultCountry != tt.wantCountry {
				t.Errorf("DefaultCountry = %q, want %q", cfg.DefaultCountry, tt.wantCountry)
			}
			if cfg.PlatformFeePercent != tt.wantFee {
				t.Errorf("PlatformFeePercent = %d, want %d", cfg.PlatformFeePercent, tt.wantFee)
			}
		})
	}
}

func TestAuthMode_UnmarshalText(t *testing.T) {
	tests := []struct {
		input       string
		expected    AuthMode
		expectError bool
	}{
		{input: "oauth", expected: AuthModeOAuth},
		{input: "OAuth", expected: AuthModeOAuth},
		{input: "mock", expected: AuthModeMock},
		{input: "saml", expectError: true},
		{input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var m AuthMode
			err := m.UnmarshalText([]byte(tt.input))
			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if m != tt.expected {
				t.Errorf("mode = %q, want %q", m, tt.expected)
			}
		})
	}
}
