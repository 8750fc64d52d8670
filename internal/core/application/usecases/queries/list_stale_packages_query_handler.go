package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListStalePackagesQueryHandler struct {
	db *gorm.DB
}

func NewListStalePackagesQueryHandler(db *gorm.DB) ListStalePackagesQueryHandler {
	return ListStalePackagesQueryHandler{db: db}
}

// Handle returns the oldest packages first.
func (h ListStalePackagesQueryHandler) Handle(
	ctx context.Context,
	query ListStalePackagesQuery,
) ([]ListStalePackagesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT p.tracking_number, p.created_at
		FROM packages p
		WHERE NOT p.is_deleted
			AND p.created_at < ?
			AND NOT EXISTS (
				SELECT 1 FROM status_history h WHERE h.tracking_number = p.tracking_number
			)
		ORDER BY p.created_at, p.tracking_number
	`, query.CreatedBefore()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stale := make([]ListStalePackagesQueryResponse, 0)
	for rows.Next() {
		var resp ListStalePackagesQueryResponse
		if err = rows.Scan(&resp.TrackingNumber, &resp.CreatedAt); err != nil {
			return nil, err
		}
		resp.CreatedAt = resp.CreatedAt.UTC()
		stale = append(stale, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stale, nil
}
