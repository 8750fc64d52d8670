package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/history"
	"parceltrack/internal/core/domain/model/kernel"
)

// HistoryRepository defines the persistence contract for status history records.
type HistoryRepository interface {
	// Add appends a record and returns the id storage assigned to it.
	Add(ctx context.Context, record *history.Record) (int64, error)

	// Get retrieves one record by id.
	Get(ctx context.Context, id int64) (*history.Record, error)

	// Update persists an administrative correction of a record.
	Update(ctx context.Context, record *history.Record) error

	// Delete removes one record.
	Delete(ctx context.Context, id int64) error

	// DeleteByTrackingNumber removes every record of a package and returns how many
	// were removed.
	DeleteByTrackingNumber(ctx context.Context, trackingNumber kernel.TrackingNumber) (int64, error)
}
