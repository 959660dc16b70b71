package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/aggo-mock-api/internal/fixtures"
	"github.com/adanyl0v/aggo-mock-api/internal/models"
)

const scanIDPrefix = "scan_"

type scanServiceImpl struct {
	logger   zerolog.Logger
	fixtures *fixtures.Store
	scans    ScanRepository
	delay    time.Duration
}

func NewScanService(
	logger zerolog.Logger,
	fixtureStore *fixtures.Store,
	scans ScanRepository,
	delay time.Duration,
) ScanService {
	return &scanServiceImpl{
		logger:   logger,
		fixtures: fixtureStore,
		scans:    scans,
		delay:    delay,
	}
}

func (s *scanServiceImpl) Scan(ctx context.Context, storeURL string) (*models.Scan, error) {
	storeURL = strings.TrimSpace(storeURL)
	if storeURL == "" {
		return nil, ErrStoreURLRequired
	}

	s.logger.Debug().
		Str("store_url", storeURL).
		Dur("delay", s.delay).
		Msg("scanning store")

	err := wait(ctx, s.delay)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("store_url", storeURL).
			Msg("scan interrupted")
		return nil, err
	}

	scanUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate scan uuid")
		return nil, err
	}

	scan := &models.Scan{
		ID:        scanIDPrefix + scanUUID.String(),
		StoreURL:  storeURL,
		Results:   s.fixtures.Catalog().Results(storeURL),
		CreatedAt: time.Now(),
	}

	err = s.scans.Save(ctx, scan)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("scan_id", scan.ID).
			Msg("failed to save scan")
		return nil, err
	}

	s.logger.Info().
		Str("scan_id", scan.ID).
		Str("store_url", storeURL).
		Int("issues", len(scan.Results.Issues)).
		Msg("scanned store")
	return scan, nil
}

func (s *scanServiceImpl) Diagnostic(ctx context.Context, scanID string) (*models.Scan, error) {
	if strings.TrimSpace(scanID) == "" {
		return nil, ErrScanIDRequired
	}

	scan, err := s.scans.Get(ctx, scanID)
	if err == nil {
		s.logger.Info().
			Str("scan_id", scanID).
			Msg("found diagnostic")
		return scan, nil
	}
	if !errors.Is(err, ErrScanNotFound) {
		s.logger.Error().
			Err(err).
			Str("scan_id", scanID).
			Msg("failed to get scan")
		return nil, err
	}

	s.logger.Info().
		Str("scan_id", scanID).
		Msg("unknown scan, serving default diagnostic")
	return &models.Scan{
		ID:        scanID,
		Results:   s.fixtures.Catalog().Results(""),
		CreatedAt: time.Now(),
	}, nil
}
