package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrListMyPackagesQueryIsNotConstructed = errors.New(
		"ListMyPackagesQuery must be created via NewListMyPackagesQuery constructor",
	)
)

// ListMyPackagesQuery lists the packages the principal sends or receives.
// IncludeDeleted in the criteria is ignored.
type ListMyPackagesQuery struct {
	principal access.Principal
	criteria  services.Criteria

	guard guard.ConstructorGuard
}

func NewListMyPackagesQuery(principal access.Principal, criteria services.Criteria) ListMyPackagesQuery {
	return ListMyPackagesQuery{
		principal: principal,
		criteria:  criteria,
		guard:     guard.NewConstructorGuard(),
	}
}

func (q ListMyPackagesQuery) Validate() error {
	return q.guard.Validate(ErrListMyPackagesQueryIsNotConstructed)
}

func (q ListMyPackagesQuery) Principal() access.Principal {
	return q.principal
}

func (q ListMyPackagesQuery) Criteria() services.Criteria {
	return q.criteria
}
