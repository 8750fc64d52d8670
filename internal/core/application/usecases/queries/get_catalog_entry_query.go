package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/catalog"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrGetCatalogEntryQueryIsNotConstructed = errors.New(
		"GetCatalogEntryQuery must be created via NewGetCatalogEntryQuery constructor",
	)
)

type GetCatalogEntryQuery struct {
	principal access.Principal
	kind      catalog.Kind
	id        int64

	guard guard.ConstructorGuard
}

func NewGetCatalogEntryQuery(principal access.Principal, kind catalog.Kind, id int64) (GetCatalogEntryQuery, error) {
	if err := kind.Validate(); err != nil {
		return GetCatalogEntryQuery{}, err
	}
	return GetCatalogEntryQuery{principal: principal, kind: kind, id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCatalogEntryQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogEntryQueryIsNotConstructed)
}

func (q GetCatalogEntryQuery) Principal() access.Principal {
	return q.principal
}

func (q GetCatalogEntryQuery) Kind() catalog.Kind {
	return q.kind
}

func (q GetCatalogEntryQuery) ID() int64 {
	return q.id
}
