package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/pantrykit/pantry-cli/internal/core/domain"
	"github.com/pantrykit/pantry-cli/internal/core/ports/driven"
	"github.com/pantrykit/pantry-cli/internal/core/ports/driving"
	"github.com/pantrykit/pantry-cli/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService holds the validated master collection and serves
// digest queries against clones of it, so the stored catalog order
// is never visible to callers as mutated. The master is replaced
// wholesale on reload; SortByField only ever runs on clones.
type CatalogService struct {
	store driven.CatalogStore

	mu     sync.RWMutex
	schema domain.Schema
	master *domain.Collection
}

// NewCatalogService creates the service and performs the initial
// catalog load. A catalog that fails validation fails construction;
// no service with a partially valid catalog is ever returned.
func NewCatalogService(ctx context.Context, store driven.CatalogStore) (*CatalogService, error) {
	s := &CatalogService{store: store}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Schema returns the active schema.
func (s *CatalogService) Schema() domain.Schema {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.schema
}

// List returns a clone of the full catalog in its stored order.
// Sorting the result does not disturb the master collection.
func (s *CatalogService) List(_ context.Context) (*domain.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.master.Clone(), nil
}

// Digest sanitizes raw query input and applies the digest pipeline
// to a clone of the master collection.
func (s *CatalogService) Digest(_ context.Context, raw domain.RawQuery) (*domain.Collection, error) {
	s.mu.RLock()
	schema := s.schema
	working := s.master.Clone()
	s.mu.RUnlock()

	q := domain.NewQuery(schema, raw)

	logger.Section("Digest")
	fields := schema.CategoryFields()
	logger.Debug("search=%q sortBy=%q %s=%q %s=%q",
		q.Search(), q.SortBy(),
		fields[0], q.Category(fields[0]),
		fields[1], q.Category(fields[1]))
	logger.Stage("catalog", working.Len())

	out, err := working.Digest(q)
	if err != nil {
		return nil, err
	}
	logger.Stage("digest result", out.Len())
	return out, nil
}

// Reload reads the catalog from the store and replaces the master
// collection. On failure the previous catalog stays in effect.
func (s *CatalogService) Reload(ctx context.Context) error {
	raw, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrCatalogUnavailable, s.store.Path(), err)
	}

	schema, err := domain.NewSchema(raw.People[0], raw.People[1])
	if err != nil {
		return fmt.Errorf("catalog %s: %w", s.store.Path(), err)
	}
	master, err := domain.NewCollection(schema, raw.Foods)
	if err != nil {
		return fmt.Errorf("catalog %s: %w", s.store.Path(), err)
	}

	s.mu.Lock()
	s.schema = schema
	s.master = master
	s.mu.Unlock()

	logger.Info("catalog loaded: %d record(s) from %s", master.Len(), s.store.Path())
	return nil
}

// WatchStore reloads the catalog whenever the store reports a change.
// It is a no-op for stores that cannot watch. Blocks until ctx is
// cancelled; run it on its own goroutine.
func (s *CatalogService) WatchStore(ctx context.Context) error {
	watcher, ok := s.store.(driven.CatalogWatcher)
	if !ok {
		return nil
	}
	return watcher.Watch(ctx, func() {
		if err := s.Reload(ctx); err != nil {
			logger.Warn("catalog reload failed: %v", err)
		}
	})
}
