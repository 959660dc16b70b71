package fixtures

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Store serves the current catalog and swaps it when the backing file
// changes. It is safe for concurrent use.
type Store struct {
	logger  zerolog.Logger
	path    string
	current atomic.Pointer[Catalog]
}

// NewStore loads the catalog at path. An empty path selects the
// embedded catalog, which never changes.
func NewStore(logger zerolog.Logger, path string) (*Store, error) {
	catalog, err := Load(path)
	if err != nil {
		return nil, err
	}

	s := &Store{
		logger: logger,
		path:   path,
	}
	s.current.Store(catalog)
	return s, nil
}

// NewStaticStore wraps an already parsed catalog.
func NewStaticStore(catalog *Catalog) *Store {
	s := &Store{logger: zerolog.Nop()}
	s.current.Store(catalog)
	return s
}

func (s *Store) Catalog() *Catalog {
	return s.current.Load()
}

// Reload re-reads the backing file. The previous catalog stays in
// place when the file cannot be parsed.
func (s *Store) Reload() error {
	catalog, err := Load(s.path)
	if err != nil {
		return err
	}

	s.current.Store(catalog)
	s.logger.Info().
		Str("path", s.path).
		Int("issues", len(catalog.Issues)).
		Msg("reloaded fixtures")
	return nil
}

// Watch reloads the catalog whenever its file is written or replaced.
// It blocks until ctx is done.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fixtures watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Editors often replace the file, so watch the directory.
	target := filepath.Clean(s.path)
	err = watcher.Add(filepath.Dir(target))
	if err != nil {
		return fmt.Errorf("watch fixtures dir: %w", err)
	}
	s.logger.Info().
		Str("path", target).
		Msg("watching fixtures")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("stopped watching fixtures")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			err = s.Reload()
			if err != nil {
				s.logger.Error().
					Err(err).
					Str("path", target).
					Msg("failed to reload fixtures")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error().
				Err(err).
				Msg("fixtures watcher error")
		}
	}
}
