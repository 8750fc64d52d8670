package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetPackageHistoryQueryHandler returns the ledger of one package. It fails with
// ObjectNotFoundError when the package does not exist and with AccessDeniedError when
// an unprivileged principal is neither sender nor receiver.
type GetPackageHistoryQueryHandler struct {
	db     *gorm.DB
	filter services.VisibilityFilter
}

func NewGetPackageHistoryQueryHandler(db *gorm.DB) GetPackageHistoryQueryHandler {
	return GetPackageHistoryQueryHandler{db: db, filter: services.NewVisibilityFilter()}
}

func (h GetPackageHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetPackageHistoryQuery,
) ([]HistoryEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := query.Principal().Require(access.RoleUser, "read package history"); err != nil {
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
	return l.chronological(), nil
}
