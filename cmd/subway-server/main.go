package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/transit-catalog/subway/internal/config"
	"github.com/transit-catalog/subway/internal/logger"
	"github.com/transit-catalog/subway/internal/seed"
	"github.com/transit-catalog/subway/internal/server"
	"github.com/transit-catalog/subway/internal/store/memstore"
	"github.com/transit-catalog/subway/internal/store/pgstore"
	"github.com/transit-catalog/subway/internal/subway"
	"github.com/transit-catalog/subway/internal/version"
)

//	@title			subway-server
//	@description	subway-server manages the lines of a subway network catalog.
//	@description
//	@description	A line runs between two registered stations (the up and down terminals) and has a name, a display color and a distance.
//	@description	Line reads embed the resolved stations, up-station first.
//	@description
//	@description	## Common Error Responses
//	@description	All endpoints may return:
//	@description	- `413` Request body exceeds size limit
//	@description	- `429` Rate limit exceeded
//	@description	- `500` Internal server error
//	@description
//	@description	Individual endpoints document their specific business logic errors.
//	@description
//	@description	## Request Limits
//	@description	All endpoints are protected by:
//	@description	- **Rate limiting**: Configurable requests per second (see env vars) - default 100 rps (set to 0 to disable)
//	@description	- **Request size limits**: Configurable (see env vars) - default 64KB
//	@description
//	@description	Check the X-Max-Request-Size response header for the configured limit.
//	@license.name	MIT

//	@servers.url			http://localhost:8080
//	@servers.description	Development server

//	@accept		json
//	@produce	json

//	@tag.name			Lines
//	@tag.description	Create, read, update and delete lines

//	@tag.name			Stations
//	@tag.description	The station registry that lines refer to

//	@tag.name			Common
//	@tag.description	Server API endpoints (health, readiness, version, metrics)

//	@tag.name			Admin
//	@tag.description	Catalog reset. Unprotected and only registered in dev and test environments.

func main() {
	cmd := &cobra.Command{
		Use:   "subway-server",
		Short: "Subway line catalog server",
		Long:  `subway-server serves the line and station catalog over HTTP`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	v := version.Get()
	cmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	cmd.AddCommand(migrateCmd())

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func migrateCmd() *cobra.Command {
	var status bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database migrations",
		Long:  `Applies all pending migrations to DATABASE_URL. Use --status to list them without applying.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewServerConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL is required")
			}

			appLogger := logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)

			ctx := cmd.Context()
			pool, err := pgstore.Connect(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			if status {
				return pgstore.MigrationStatus(ctx, pool)
			}

			if err := pgstore.Migrate(ctx, pool); err != nil {
				return err
			}
			appLogger.Info("migrations applied")
			return nil
		},
	}

	cmd.Flags().BoolVar(&status, "status", false, "show migration status instead of applying")
	return cmd
}

func run() error {
	cfg, err := config.NewServerConfig()
	if err != nil {
		log.Printf("failed to load configuration: %v", err.Error())
		os.Exit(1)
	}

	appLogger := logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)

	appLogger.Info("Configuration loaded",
		slog.String("ENVIRONMENT", cfg.Environment),
		slog.String("HOST", cfg.Host),
		slog.Int("PORT", cfg.Port),
		slog.String("LOG_LEVEL", cfg.LogLevel),
		slog.String("STORE_BACKEND", cfg.StoreBackend),
		slog.Int64("MAX_REQUEST_BODY_SIZE", cfg.MaxRequestBodySize),
		slog.Any("RATE_LIMIT_RPS", cfg.RateLimitRPS),
		slog.Bool("METRICS_ENABLED", cfg.MetricsEnabled),
		slog.String("STATION_SEED_PATH", cfg.StationSeedPath),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to open store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	appLogger.Info("Starting server", slog.String("version", version.Get().Version))

	server := server.NewServer(cfg, appLogger, store)
	defer server.DatabaseShutdown()

	if cfg.StationSeedPath != "" {
		seedFile, err := seed.Load(cfg.StationSeedPath)
		if err != nil {
			appLogger.Error("Failed to load station seed file", slog.String("error", err.Error()))
			return err
		}

		created, err := seed.Apply(ctx, server.Stations(), seedFile, appLogger)
		if err != nil {
			appLogger.Error("Failed to seed stations", slog.String("error", err.Error()))
			return err
		}
		appLogger.Info("stations seeded", slog.Int("created", created))
	}

	if err := server.Start(ctx); err != nil {
		appLogger.Error("Server error", slog.String("error", err.Error()))
		return err
	}

	appLogger.Info("server shutdown complete")
	return nil
}

func openStore(ctx context.Context, cfg *config.ServerEnvironment, appLogger *slog.Logger) (subway.Store, error) {
	if cfg.StoreBackend == config.StoreBackendMemory {
		appLogger.Info("using in-memory store")
		return memstore.New(), nil
	}

	pool, err := pgstore.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	appLogger.Info("connected to PostgreSQL")
	return pgstore.New(pool), nil
}
