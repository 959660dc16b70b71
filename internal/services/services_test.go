package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/aggo-mock-api/internal/fixtures"
)

func newTestFixtures(t *testing.T) *fixtures.Store {
	t.Helper()

	store, err := fixtures.NewStore(zerolog.Nop(), "")
	require.NoError(t, err)
	return store
}

func TestWait(t *testing.T) {
	t.Run("zero delay", func(t *testing.T) {
		assert.NoError(t, wait(context.Background(), 0))
	})

	t.Run("zero delay on cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, wait(ctx, 0), context.Canceled)
	})

	t.Run("elapses", func(t *testing.T) {
		start := time.Now()
		require.NoError(t, wait(context.Background(), 20*time.Millisecond))
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("cancelled early", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		start := time.Now()
		err := wait(ctx, time.Minute)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), time.Second)
	})
}
