package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/aggo-mock-api/internal/models"
)

type memoryScanRepository struct {
	logger zerolog.Logger
	limit  int

	mu    sync.RWMutex
	scans map[string]*models.Scan
	// order holds IDs oldest first for eviction.
	order []string
}

// NewMemoryScanRepository keeps at most limit scans, evicting the
// oldest. A non-positive limit means no bound.
func NewMemoryScanRepository(logger zerolog.Logger, limit int) ScanRepository {
	return &memoryScanRepository{
		logger: logger,
		limit:  limit,
		scans:  make(map[string]*models.Scan),
	}
}

func (r *memoryScanRepository) Save(_ context.Context, scan *models.Scan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.scans[scan.ID]; ok {
		return ErrScanAlreadyExists
	}

	stored := *scan
	r.scans[scan.ID] = &stored
	r.order = append(r.order, scan.ID)

	for r.limit > 0 && len(r.order) > r.limit {
		evicted := r.order[0]
		r.order = r.order[1:]
		delete(r.scans, evicted)
		r.logger.Debug().
			Str("scan_id", evicted).
			Msg("evicted scan")
	}
	return nil
}

func (r *memoryScanRepository) Get(_ context.Context, id string) (*models.Scan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	scan, ok := r.scans[id]
	if !ok {
		return nil, ErrScanNotFound
	}

	found := *scan
	return &found, nil
}
