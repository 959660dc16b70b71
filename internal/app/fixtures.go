package app

import (
	"context"

	"github.com/adanyl0v/aggo-mock-api/internal/config"
	"github.com/adanyl0v/aggo-mock-api/internal/fixtures"
)

var (
	globalFixtures       *fixtures.Store
	stopWatchingFixtures context.CancelFunc = func() {}
)

// MustLoadFixtures loads the catalog and, for a file-backed catalog,
// starts reloading it on change.
func MustLoadFixtures() {
	path := config.Global().Mock.FixturesPath

	var err error
	globalFixtures, err = fixtures.NewStore(globalLogger, path)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("path", path).
			Msg("failed to load fixtures")
		panic(err)
	}
	globalLogger.Info().
		Str("path", path).
		Int("issues", len(globalFixtures.Catalog().Issues)).
		Msg("loaded fixtures")

	if path == "" {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	stopWatchingFixtures = cancel
	go func() {
		err := globalFixtures.Watch(ctx)
		if err != nil {
			globalLogger.Error().
				Err(err).
				Msg("failed to watch fixtures")
		}
	}()
}

func StopFixtures() {
	stopWatchingFixtures()
}
