package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/access"

	"gorm.io/gorm"
)

type ListStatusHistoryQueryHandler struct {
	db *gorm.DB
}

func NewListStatusHistoryQueryHandler(db *gorm.DB) ListStatusHistoryQueryHandler {
	return ListStatusHistoryQueryHandler{db: db}
}

// Handle returns records grouped by tracking number, each group oldest first.
func (h ListStatusHistoryQueryHandler) Handle(
	ctx context.Context,
	query ListStatusHistoryQuery,
) ([]HistoryEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	p := query.Principal()
	if err := p.Require(access.RoleUser, "list status history"); err != nil {
		return nil, err
	}

	const order = " ORDER BY h.tracking_number, h.recorded_at, h.id"
	if p.IsAtLeast(access.RoleOperator) {
		return fetchHistoryEntries(ctx, h.db, order)
	}

	return fetchHistoryEntries(ctx, h.db, `
		JOIN packages p ON p.tracking_number = h.tracking_number
		WHERE p.sender_id = ? OR p.receiver_id = ?`+order, p.ID(), p.ID())
}
