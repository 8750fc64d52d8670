package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrListPackagesQueryIsNotConstructed = errors.New(
		"ListPackagesQuery must be created via NewListPackagesQuery constructor",
	)
)

// ListPackagesQuery is the full package listing used by operators and admins.
//
// Example:
//
//	query := NewListPackagesQuery(principal, services.Criteria{Search: "RU-000123"})
//	views, err := handler.Handle(ctx, query)
type ListPackagesQuery struct {
	principal access.Principal
	criteria  services.Criteria

	guard guard.ConstructorGuard
}

func NewListPackagesQuery(principal access.Principal, criteria services.Criteria) ListPackagesQuery {
	return ListPackagesQuery{
		principal: principal,
		criteria:  criteria,
		guard:     guard.NewConstructorGuard(),
	}
}

func (q ListPackagesQuery) Validate() error {
	return q.guard.Validate(ErrListPackagesQueryIsNotConstructed)
}

func (q ListPackagesQuery) Principal() access.Principal {
	return q.principal
}

func (q ListPackagesQuery) Criteria() services.Criteria {
	return q.criteria
}
