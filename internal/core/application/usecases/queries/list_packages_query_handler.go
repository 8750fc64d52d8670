package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/services"

	"gorm.io/gorm"
)

// ListPackagesQueryHandler returns packages ordered by creation time, newest first.
// Authorization is checked before the database is queried.
type ListPackagesQueryHandler struct {
	db     *gorm.DB
	filter services.VisibilityFilter
}

func NewListPackagesQueryHandler(db *gorm.DB) ListPackagesQueryHandler {
	return ListPackagesQueryHandler{db: db, filter: services.NewVisibilityFilter()}
}

func (h ListPackagesQueryHandler) Handle(ctx context.Context, query ListPackagesQuery) ([]parcel.View, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.filter.AuthorizeListing(query.Principal(), query.Criteria()); err != nil {
		return nil, err
	}

	views, err := fetchPackageViews(ctx, h.db, viewFilter{IncludeDeleted: query.Criteria().IncludeDeleted})
	if err != nil {
		return nil, err
	}

	return h.filter.Listing(query.Principal(), views, query.Criteria())
}
