package queries

import (
	"context"

	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetCatalogEntryQueryHandler struct {
	db *gorm.DB
}

func NewGetCatalogEntryQueryHandler(db *gorm.DB) GetCatalogEntryQueryHandler {
	return GetCatalogEntryQueryHandler{db: db}
}

func (h GetCatalogEntryQueryHandler) Handle(
	ctx context.Context,
	query GetCatalogEntryQuery,
) (CatalogEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return CatalogEntryResponse{}, err
	}

	selectSQL, required, err := catalogSelect(query.Kind())
	if err != nil {
		return CatalogEntryResponse{}, err
	}
	if err = authorizeCatalogRead(query.Principal(), query.Kind(), required); err != nil {
		return CatalogEntryResponse{}, err
	}

	var rows []catalogRow
	if err = h.db.WithContext(ctx).Raw(selectSQL+" WHERE id = ?", query.ID()).Scan(&rows).Error; err != nil {
		return CatalogEntryResponse{}, err
	}
	if len(rows) == 0 {
		return CatalogEntryResponse{}, errs.NewObjectNotFoundError(query.Kind().String(), query.ID())
	}

	return rows[0].toResponse(query.Kind()), nil
}
