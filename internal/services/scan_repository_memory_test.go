package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/aggo-mock-api/internal/models"
)

func TestMemoryScanRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryScanRepository(zerolog.Nop(), 2)

	for i := 1; i <= 3; i++ {
		require.NoError(t, repo.Save(ctx, &models.Scan{ID: fmt.Sprintf("scan_%d", i)}))
	}

	_, err := repo.Get(ctx, "scan_1")
	assert.ErrorIs(t, err, ErrScanNotFound)

	got, err := repo.Get(ctx, "scan_3")
	require.NoError(t, err)
	assert.Equal(t, "scan_3", got.ID)

	err = repo.Save(ctx, &models.Scan{ID: "scan_3"})
	assert.ErrorIs(t, err, ErrScanAlreadyExists)
}

func TestMemoryScanRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryScanRepository(zerolog.Nop(), 0)

	scan := &models.Scan{ID: "scan_1", StoreURL: "a.myshopify.com"}
	require.NoError(t, repo.Save(ctx, scan))
	scan.StoreURL = "changed"

	got, err := repo.Get(ctx, "scan_1")
	require.NoError(t, err)
	assert.Equal(t, "a.myshopify.com", got.StoreURL)
}

func TestMemoryScanRepository_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryScanRepository(zerolog.Nop(), 10)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("scan_%d", i)
			assert.NoError(t, repo.Save(ctx, &models.Scan{ID: id}))
			_, _ = repo.Get(ctx, id)
		}(i)
	}
	wg.Wait()

	impl := repo.(*memoryScanRepository)
	assert.Len(t, impl.scans, 10)
	assert.Len(t, impl.order, 10)
}
