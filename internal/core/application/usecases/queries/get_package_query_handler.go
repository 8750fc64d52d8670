package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetPackageQueryHandler struct {
	db     *gorm.DB
	filter services.VisibilityFilter
}

func NewGetPackageQueryHandler(db *gorm.DB) GetPackageQueryHandler {
	return GetPackageQueryHandler{db: db, filter: services.NewVisibilityFilter()}
}

func (h GetPackageQueryHandler) Handle(ctx context.Context, query GetPackageQuery) (parcel.View, error) {
	if err := query.Validate(); err != nil {
		return parcel.View{}, err
	}
	if err := query.Principal().Require(access.RoleUser, "view package"); err != nil {
		return parcel.View{}, err
	}

	tn := query.TrackingNumber().String()
	views, err := fetchPackageViews(ctx, h.db, viewFilter{IncludeDeleted: true, TrackingNumber: tn})
	if err != nil {
		return parcel.View{}, err
	}
	if len(views) == 0 {
		return parcel.View{}, errs.NewObjectNotFoundError("tracking_number", tn)
	}

	if err = h.filter.Inspect(query.Principal(), views[0]); err != nil {
		return parcel.View{}, err
	}
	return views[0], nil
}
