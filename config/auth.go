package config

import (
	"fmt"
	"strings"
)

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModeOAuth uses OAuth/OIDC for authentication.
	AuthModeOAuth AuthMode = "oauth"
	// AuthModeMock uses mock/dev authentication (for development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "oauth", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: oauth, mock)", v)
	}
}

// OAuthConfig contains OAuth/OIDC configuration.
type OAuthConfig struct {
	ClientID     string `env:"CLIENT_ID"     envDefault:"fixnest"`
	ClientSecret string `env:"CLIENT_SECRET" envDefault:"fixnest"`
	RedirectURL  string `env:"REDIRECT_URL"  envDefault:"http://localhost:8080/auth/callback"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email"`
	DiscoveryURL string `env:"DISCOVERY_URL"`
	LogoutURL    string `env:"LOGOUT_URL"`

	// Group claims mapped to marketplace roles. Members of none of these
	// groups default to the customer role.
	AdminGroup    string `env:"ADMIN_GROUP"    envDefault:"fixnest-admins"`
	ProviderGroup string `env:"PROVIDER_GROUP" envDefault:"fixnest-providers"`
	CustomerGroup string `env:"CUSTOMER_GROUP" envDefault:"fixnest-customers"`
}

// DevAuthConfig controls mock/dev authentication identity.
// Used when AUTH_MODE=mock for development and testing.
type DevAuthConfig struct {
	UserID string `env:"USER_ID" envDefault:"dev-user"`
	Email  string `env:"EMAIL"   envDefault:"dev@example.com"`
	// Role is the marketplace role assigned to the dev identity.
	Role string `env:"ROLE" envDefault:"both"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which authentication provider to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"oauth"`

	// OAuth configuration (used when Mode=oauth).
	OAuth OAuthConfig `envPrefix:"OAUTH_"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`

	// SessionTTL is the maximum session lifetime in hours when the IdP does
	// not supply a token expiry.
	SessionTTLHours int `env:"AUTH_SESSION_TTL_HOURS" envDefault:"8"`
}
