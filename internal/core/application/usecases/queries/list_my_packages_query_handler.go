package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/services"

	"gorm.io/gorm"
)

type ListMyPackagesQueryHandler struct {
	db     *gorm.DB
	filter services.VisibilityFilter
}

func NewListMyPackagesQueryHandler(db *gorm.DB) ListMyPackagesQueryHandler {
	return ListMyPackagesQueryHandler{db: db, filter: services.NewVisibilityFilter()}
}

func (h ListMyPackagesQueryHandler) Handle(ctx context.Context, query ListMyPackagesQuery) ([]parcel.View, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := query.Principal().Require(access.RoleUser, "list own packages"); err != nil {
		return nil, err
	}

	views, err := fetchPackageViews(ctx, h.db, viewFilter{OwnerID: query.Principal().ID()})
	if err != nil {
		return nil, err
	}

	return h.filter.Owned(query.Principal(), views, query.Criteria())
}
