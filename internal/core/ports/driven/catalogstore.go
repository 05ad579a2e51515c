package driven

import (
	"context"

	"github.com/pantrykit/pantry-cli/internal/core/domain"
)

// Catalog is the raw shape a store loads: the two tracked person keys
// and the record list, untouched by validation. Validation belongs to
// the domain, not the store.
type Catalog struct {
	// People holds the two person keys the schema is built from.
	People [2]string

	// Foods holds the raw records in file order.
	Foods []domain.RawFood
}

// CatalogStore loads the household catalog from storage.
type CatalogStore interface {
	// Load reads the catalog. Implementations return the raw shape;
	// the caller validates it against the schema.
	Load(ctx context.Context) (*Catalog, error)

	// Path returns a human-readable locator for error messages.
	Path() string
}

// CatalogWatcher notifies about catalog changes. Optional: adapters
// backed by immutable data need not implement it.
type CatalogWatcher interface {
	// Watch invokes onChange after every catalog modification until
	// ctx is cancelled. It blocks; run it on its own goroutine.
	Watch(ctx context.Context, onChange func()) error
}
