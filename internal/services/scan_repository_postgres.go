package services

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/aggo-mock-api/internal/models"
)

type postgresScanRepository struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewPostgresScanRepository(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) ScanRepository {
	return &postgresScanRepository{
		logger: logger,
		pgPool: pgPool,
	}
}

// EnsureScansTable creates the scans table if it does not exist yet.
func EnsureScansTable(ctx context.Context, pgPool *pgxpool.Pool) error {
	const createScansTableQuery = `
CREATE TABLE IF NOT EXISTS scans
(
    id         TEXT PRIMARY KEY,
    store_url  TEXT        NOT NULL,
    results    JSONB       NOT NULL,
    created_at TIMESTAMPTZ NOT NULL
)
`
	_, err := pgPool.Exec(ctx, createScansTableQuery)
	return err
}

func (r *postgresScanRepository) Save(ctx context.Context, scan *models.Scan) error {
	const insertScanQuery = `
INSERT INTO scans (id,
                   store_url,
                   results,
                   created_at)
VALUES ($1, $2, $3, $4)
`
	_, err := r.pgPool.Exec(
		ctx,
		insertScanQuery,
		scan.ID,
		scan.StoreURL,
		scan.Results,
		scan.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			r.logger.Error().
				Str("scan_id", scan.ID).
				Msg("scan already exists")
			return ErrScanAlreadyExists
		}

		r.logger.Error().
			Err(err).
			Str("scan_id", scan.ID).
			Msg("failed to insert scan")
		return err
	}
	r.logger.Debug().
		Str("scan_id", scan.ID).
		Msg("inserted scan")
	return nil
}

func (r *postgresScanRepository) Get(ctx context.Context, id string) (*models.Scan, error) {
	scan := &models.Scan{ID: id}

	const selectScanByIDQuery = `
SELECT store_url,
       results,
       created_at
FROM scans
WHERE id = $1
`
	err := r.pgPool.QueryRow(
		ctx,
		selectScanByIDQuery,
		scan.ID,
	).Scan(
		&scan.StoreURL,
		&scan.Results,
		&scan.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().
				Str("scan_id", id).
				Msg("scan not found")
			return nil, ErrScanNotFound
		}

		r.logger.Error().
			Err(err).
			Str("scan_id", id).
			Msg("failed to select scan by id")
		return nil, err
	}
	r.logger.Debug().
		Str("scan_id", id).
		Msg("selected scan by id")
	return scan, nil
}
