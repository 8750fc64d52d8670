package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetCurrentStatusQueryHandler re-reads the ledger on every call; the latest record by
// (recorded_at, id) wins. It returns nil when the package has no history yet.
type GetCurrentStatusQueryHandler struct {
	db     *gorm.DB
	filter services.VisibilityFilter
}

func NewGetCurrentStatusQueryHandler(db *gorm.DB) GetCurrentStatusQueryHandler {
	return GetCurrentStatusQueryHandler{db: db, filter: services.NewVisibilityFilter()}
}

func (h GetCurrentStatusQueryHandler) Handle(
	ctx context.Context,
	query GetCurrentStatusQuery,
) (*HistoryEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := query.Principal().Require(access.RoleUser, "read package status"); err != nil {
		return nil, err
	}

	tn := query.TrackingNumber().String()
	owners, err := fetchPackageOwners(ctx, h.db, tn)
	if err != nil {
		return nil, err
	}
	if err = h.filter.Inspect(query.Principal(), owners); err != nil {
		return nil, err
	}

	entries, err := fetchHistoryEntries(ctx, h.db, `
		WHERE h.tracking_number = ?`, tn)
	if err != nil {
		return nil, err
	}
	l, err := newLedger(entries)
	if err != nil {
		return nil, err
	}
	return l.current(), nil
}
