package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/jobdesk/jobdesk-api/config"
	"github.com/jobdesk/jobdesk-api/internal/data"
	"github.com/jobdesk/jobdesk-api/internal/service"
)

// ServiceContainer holds the constructed application services.
type ServiceContainer struct {
	Jobs *service.JobService
	Auth *service.AuthService
}

// ServicesConfig contains dependencies for building the service container.
type ServicesConfig struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildServices wires repositories and services from their dependencies.
func BuildServices(cfg ServicesConfig) ServiceContainer {
	jobRepo := data.NewJobRepo(cfg.DB)

	var authCfg config.AuthConfig
	if cfg.Config != nil {
		authCfg = cfg.Config.Auth
	}

	return ServiceContainer{
		Jobs: service.NewJobService(service.JobServiceOptions{JobRepo: jobRepo}),
		Auth: BuildAuthService(AuthConfig{
			Auth:        authCfg,
			RedisClient: cfg.RedisClient,
			Logger:      cfg.Logger,
		}),
	}
}
