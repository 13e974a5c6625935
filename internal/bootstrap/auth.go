package bootstrap

import (
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/fixnest/marketplace-api/config"
	"github.com/fixnest/marketplace-api/internal/adapters/authroles"
	"github.com/fixnest/marketplace-api/internal/adapters/devauth"
	"github.com/fixnest/marketplace-api/internal/adapters/oidc"
	redisadapter "github.com/fixnest/marketplace-api/internal/adapters/redis"
	"github.com/fixnest/marketplace-api/internal/core"
	"github.com/fixnest/marketplace-api/internal/service"
)

// AuthConfig contains configuration for the auth service.
type AuthConfig struct {
	Auth        config.AuthConfig
	RedisClient redis.UniversalClient
	Users       core.UserRepository
	Logger      *slog.Logger
}

// BuildAuthService creates an auth service based on the configured auth mode.
// Returns nil if auth is not configured or configuration is invalid.
func BuildAuthService(cfg AuthConfig) *service.AuthService {
	if cfg.RedisClient == nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("auth service disabled: redis client not configured", "mode", cfg.Auth.Mode)
		}
		return nil
	}

	// Redis session store and role mapper are shared by both modes
	sessionStore := redisadapter.NewSessionStoreWithPrefix(cfg.RedisClient, "session:")

	roleMapper := authroles.StaticRoleMapper{
		AdminGroup:    cfg.Auth.OAuth.AdminGroup,
		ProviderGroup: cfg.Auth.OAuth.ProviderGroup,
		CustomerGroup: cfg.Auth.OAuth.CustomerGroup,
	}

	switch cfg.Auth.Mode {
	case config.AuthModeMock:
		return buildDevAuthService(cfg, sessionStore, roleMapper)

	case config.AuthModeOAuth:
		return buildOAuthService(cfg, sessionStore, roleMapper)

	default:
		return nil
	}
}

func buildDevAuthService(
	cfg AuthConfig,
	sessionStore *redisadapter.SessionStore,
	roleMapper authroles.StaticRoleMapper,
) *service.AuthService {
	// Explicitly enabled dev auth mode; build a local provider. The dev
	// identity's role is translated into the group claims the shared role
	// mapper expects.
	prov, err := devauth.NewProvider(devauth.Config{
		UserID: cfg.Auth.DevAuth.UserID,
		Email:  cfg.Auth.DevAuth.Email,
		Groups: devGroupsForRole(cfg.Auth.DevAuth.Role, roleMapper),
		// session duration defaults inside provider
	})
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("failed to create dev auth provider, auth disabled", "error", err)
		}
		return nil
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Provider: prov,
		Sessions: sessionStore,
		Deps: service.AuthServiceDeps{
			Roles: roleMapper,
			Users: cfg.Users,
		},
	})
}

func buildOAuthService(
	cfg AuthConfig,
	sessionStore *redisadapter.SessionStore,
	roleMapper authroles.StaticRoleMapper,
) *service.AuthService {
	// Only enable when fully configured
	oauth := cfg.Auth.OAuth
	if oauth.DiscoveryURL == "" || oauth.ClientID == "" || oauth.ClientSecret == "" {
		if cfg.Logger != nil {
			cfg.Logger.Warn("AuthModeOAuth selected but required config missing; auth disabled",
				"discovery_url_empty", oauth.DiscoveryURL == "",
				"client_id_empty", oauth.ClientID == "",
				"client_secret_empty", oauth.ClientSecret == "",
			)
		}
		return nil
	}

	prov, err := oidc.NewProvider(oidc.ProviderConfig{
		ClientID:     oauth.ClientID,
		ClientSecret: oauth.ClientSecret,
		RedirectURL:  oauth.RedirectURL,
		Scope:        oauth.Scope,
		DiscoveryURL: oauth.DiscoveryURL,
	})
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("failed to create OIDC provider, auth disabled", "error", err)
		}
		return nil
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Provider: prov,
		Sessions: sessionStore,
		Deps: service.AuthServiceDeps{
			Roles: roleMapper,
			Users: cfg.Users,
		},
	})
}

// devGroupsForRole maps the configured dev identity role onto the group
// names the role mapper recognizes. Unknown roles fall back to customer.
func devGroupsForRole(role string, mapper authroles.StaticRoleMapper) []string {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "admin":
		return []string{mapper.AdminGroup}
	case "provider":
		return []string{mapper.ProviderGroup}
	case "both":
		return []string{mapper.CustomerGroup, mapper.ProviderGroup}
	default:
		return []string{mapper.CustomerGroup}
	}
}
