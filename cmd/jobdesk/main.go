package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/jobdesk/jobdesk-api/config"
	"github.com/jobdesk/jobdesk-api/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logStartupInfo(ctx, logger, &cfg)

	// Initialize infrastructure
	db, redisClient, err := initInfrastructure(ctx, &cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close database failed", "error", cerr)
		}
	}()
	if redisClient != nil {
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close redis failed", "error", cerr)
			}
		}()
	}

	// Run migrations if enabled
	if cfg.Postgres.RunMigrationsOnStart {
		if err = bootstrap.RunMigrations(ctx, db, logger); err != nil {
			return err
		}
	} else {
		logger.InfoContext(ctx, "skipping database migrations on startup", "reason", "disabled via config")
	}

	services := bootstrap.BuildServices(bootstrap.ServicesConfig{
		Config:      &cfg,
		DB:          db,
		RedisClient: redisClient,
		Logger:      logger,
	})

	server := bootstrap.StartHTTPServer(&bootstrap.HTTPServerConfig{
		Config:   &cfg,
		Services: services,
		Logger:   logger,
	})

	// Block until interrupted, then drain in-flight requests
	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	return bootstrap.ShutdownHTTPServer(bootstrap.ShutdownConfig{
		Context: ctx,
		Server:  server,
		Timeout: cfg.HTTP.ShutdownTimeout,
		Logger:  logger,
	})
}

func logStartupInfo(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) {
	logger.InfoContext(ctx, "starting jobdesk api",
		"db_host", cfg.Postgres.Host,
		"db_port", cfg.Postgres.Port,
		"db_name", cfg.Postgres.Name,
		"http_addr", cfg.HTTP.Addr,
		"auth_mode", cfg.Auth.Mode)
}

// initInfrastructure connects shared dependencies used by the service runtime.
// Postgres and Redis are dialed concurrently since neither depends on the other.
//
//nolint:ireturn // returning redis.UniversalClient keeps sentinel support flexible.
func initInfrastructure(
	ctx context.Context,
	cfg *config.AppConfig,
	logger *slog.Logger,
) (*sql.DB, redis.UniversalClient, error) {
	dbCfg := bootstrap.DatabaseConfig{
		DBConfig:    cfg.Postgres,
		RedisConfig: cfg.Redis,
		Logger:      logger,
	}

	var (
		db          *sql.DB
		redisClient redis.UniversalClient
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if db, err = bootstrap.ConnectDB(dbCfg); err != nil {
			return fmt.Errorf("connect db: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if redisClient, err = bootstrap.ConnectRedis(dbCfg); err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		if db != nil {
			if cerr := db.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close database after connect failure", "error", cerr)
				err = errors.Join(err, fmt.Errorf("close database: %w", cerr))
			}
		}
		if redisClient != nil {
			if cerr := redisClient.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close redis after connect failure", "error", cerr)
				err = errors.Join(err, fmt.Errorf("close redis: %w", cerr))
			}
		}
		return nil, nil, err
	}

	return db, redisClient, nil
}
