package queries

import (
	"context"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

type ListCatalogQueryHandler struct {
	db *gorm.DB
}

func NewListCatalogQueryHandler(db *gorm.DB) ListCatalogQueryHandler {
	return ListCatalogQueryHandler{db: db}
}

func (h ListCatalogQueryHandler) Handle(ctx context.Context, query ListCatalogQuery) ([]CatalogEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	selectSQL, required, err := catalogSelect(query.Kind())
	if err != nil {
		return nil, err
	}
	if err = authorizeCatalogRead(query.Principal(), query.Kind(), required); err != nil {
		return nil, err
	}

	var rows []catalogRow
	if err = h.db.WithContext(ctx).Raw(selectSQL + " ORDER BY id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	return lo.Map(rows, func(r catalogRow, _ int) CatalogEntryResponse {
		return r.toResponse(query.Kind())
	}), nil
}
