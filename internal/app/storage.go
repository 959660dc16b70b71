package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adanyl0v/aggo-mock-api/internal/config"
	"github.com/adanyl0v/aggo-mock-api/internal/services"
)

var (
	globalPostgresPool   *pgxpool.Pool
	globalScanRepository services.ScanRepository
)

// MustInitStorage sets up the scan repository for the configured driver.
func MustInitStorage() {
	cfg := config.Global()

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		mustConnectPostgres()
		globalScanRepository = services.NewPostgresScanRepository(globalLogger, globalPostgresPool)
	default:
		globalScanRepository = services.NewMemoryScanRepository(globalLogger, cfg.Storage.HistoryLimit)
	}
	globalLogger.Info().
		Str("driver", cfg.Storage.Driver).
		Msg("initialized scan storage")
}

func CloseStorage() {
	if globalPostgresPool == nil {
		return
	}
	globalPostgresPool.Close()
	globalLogger.Info().Msg("disconnected from postgres")
}

func mustConnectPostgres() {
	cfg := config.Global().Postgres
	connURL := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Username, cfg.Password, cfg.Host,
		cfg.Port, cfg.Database, cfg.SSLMode)

	poolCfg, err := pgxpool.ParseConfig(connURL)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to parse postgres config")
		panic(err)
	}
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	globalPostgresPool, err = pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to connect to postgres")
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.PingTimeout)
	defer cancel()

	err = globalPostgresPool.Ping(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to ping postgres")
		panic(err)
	}

	err = services.EnsureScansTable(ctx, globalPostgresPool)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to create scans table")
		panic(err)
	}
	globalLogger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Msg("connected to postgres")
}
