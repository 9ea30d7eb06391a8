package bootstrap

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/jobdesk/jobdesk-api/config"
	"github.com/jobdesk/jobdesk-api/internal/adapters/authroles"
	"github.com/jobdesk/jobdesk-api/internal/adapters/devauth"
	"github.com/jobdesk/jobdesk-api/internal/adapters/oidc"
	redisadapter "github.com/jobdesk/jobdesk-api/internal/adapters/redis"
	"github.com/jobdesk/jobdesk-api/internal/service"
)

// AuthConfig contains configuration for the auth service.
type AuthConfig struct {
	Auth        config.AuthConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildAuthService creates an auth service based on the configured auth mode.
// Returns nil if auth is not configured or configuration is invalid; the
// router falls back to running the jobs API without authentication.
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
		AdminGroup: cfg.Auth.AdminGroup,
		UserGroup:  cfg.Auth.UserGroup,
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
	// Explicitly enabled dev auth mode; build a local provider.
	prov, err := devauth.NewProvider(devauth.Config{
		UserID: cfg.Auth.DevAuth.UserID,
		Name:   cfg.Auth.DevAuth.Name,
		Email:  cfg.Auth.DevAuth.Email,
		Groups: cfg.Auth.DevAuth.Groups,
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
		Roles:    roleMapper,
	})
}

func buildOAuthService(
	cfg AuthConfig,
	sessionStore *redisadapter.SessionStore,
	roleMapper authroles.StaticRoleMapper,
) *service.AuthService {
	// Only enable when fully configured
	oauth := cfg.Auth.OAuth
	if oauth.IssuerURL == "" || oauth.ClientID == "" || oauth.ClientSecret == "" {
		if cfg.Logger != nil {
			cfg.Logger.Warn("AuthModeOAuth selected but required config missing; auth disabled",
				"issuer_url_empty", oauth.IssuerURL == "",
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
		IssuerURL:    oauth.IssuerURL,
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
		Roles:    roleMapper,
	})
}
