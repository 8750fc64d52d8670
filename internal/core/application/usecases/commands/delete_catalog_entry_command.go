package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/catalog"
	"parceltrack/internal/pkg/guard"
)

var ErrDeleteCatalogEntryCommandIsNotConstructed = errors.New(
	"DeleteCatalogEntryCommand must be created via NewDeleteCatalogEntryCommand constructor",
)

type DeleteCatalogEntryCommand struct { //nolint:recvcheck //using for validation
	principal access.Principal
	kind      catalog.Kind
	id        int64

	guard guard.ConstructorGuard
}

func NewDeleteCatalogEntryCommand(principal access.Principal, kind catalog.Kind, id int64) (DeleteCatalogEntryCommand, error) {
	cmd := DeleteCatalogEntryCommand{principal: principal, kind: kind, guard: guard.NewConstructorGuard()}
	if err := errors.Join(kind.Validate(), setID("id", &cmd.id, id)); err != nil {
		return DeleteCatalogEntryCommand{}, err
	}
	return cmd, nil
}

func (c DeleteCatalogEntryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCatalogEntryCommandIsNotConstructed)
}

func (c DeleteCatalogEntryCommand) Principal() access.Principal {
	return c.principal
}

func (c DeleteCatalogEntryCommand) Kind() catalog.Kind {
	return c.kind
}

func (c DeleteCatalogEntryCommand) ID() int64 {
	return c.id
}
