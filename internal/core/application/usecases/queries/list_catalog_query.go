package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/catalog"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrListCatalogQueryIsNotConstructed = errors.New(
		"ListCatalogQuery must be created via NewListCatalogQuery constructor",
	)
)

// ListCatalogQuery lists one reference table. principal may be the zero value for
// the public tables.
type ListCatalogQuery struct {
	principal access.Principal
	kind      catalog.Kind

	guard guard.ConstructorGuard
}

func NewListCatalogQuery(principal access.Principal, kind catalog.Kind) (ListCatalogQuery, error) {
	if err := kind.Validate(); err != nil {
		return ListCatalogQuery{}, err
	}
	return ListCatalogQuery{principal: principal, kind: kind, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCatalogQuery) Validate() error {
	return q.guard.Validate(ErrListCatalogQueryIsNotConstructed)
}

func (q ListCatalogQuery) Principal() access.Principal {
	return q.principal
}

func (q ListCatalogQuery) Kind() catalog.Kind {
	return q.kind
}
