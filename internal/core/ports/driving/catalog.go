package driving

import (
	"context"

	"github.com/pantrykit/pantry-cli/internal/core/domain"
)

// CatalogService exposes the catalog query engine to external actors.
type CatalogService interface {
	// Schema returns the active schema (the two tracked people and
	// their category field names).
	Schema() domain.Schema

	// List returns the full catalog in its stored order.
	List(ctx context.Context) (*domain.Collection, error)

	// Digest builds a sanitized query from raw input and applies it:
	// category filters, keyword filter, ascending sort. The caller's
	// view of the catalog order is never mutated.
	Digest(ctx context.Context, raw domain.RawQuery) (*domain.Collection, error)

	// Reload discards the cached catalog and reads it again from the
	// store.
	Reload(ctx context.Context) error
}
