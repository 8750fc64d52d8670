package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/catalog"
)

// CatalogRepository defines the persistence contract for the reference tables.
type CatalogRepository interface {
	// Add persists a new entry and returns its id.
	Add(ctx context.Context, entry *catalog.Entry) (int64, error)

	// Update persists a renamed entry.
	Update(ctx context.Context, entry *catalog.Entry) error

	// Get retrieves one entry of the given kind.
	Get(ctx context.Context, kind catalog.Kind, id int64) (*catalog.Entry, error)

	// Exists reports whether an entry of the given kind exists.
	Exists(ctx context.Context, kind catalog.Kind, id int64) (bool, error)

	// Delete removes an entry. It fails with ObjectIsReferencedError while packages or
	// history records still point at it.
	Delete(ctx context.Context, kind catalog.Kind, id int64) error
}
