package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/catalog"
	"parceltrack/internal/pkg/guard"
)

var ErrCreateCatalogEntryCommandIsNotConstructed = errors.New(
	"CreateCatalogEntryCommand must be created via NewCreateCatalogEntryCommand constructor",
)

// CreateCatalogEntryCommand adds a package type, a package status or a facility.
type CreateCatalogEntryCommand struct { //nolint:recvcheck //using for validation
	principal access.Principal
	entry     *catalog.Entry

	guard guard.ConstructorGuard
}

func NewCreateCatalogEntryCommand(
	principal access.Principal, kind catalog.Kind, name, address string,
) (CreateCatalogEntryCommand, error) {
	entry, err := catalog.NewEntry(kind, name, address)
	if err != nil {
		return CreateCatalogEntryCommand{}, err
	}
	return CreateCatalogEntryCommand{
		principal: principal,
		entry:     entry,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCatalogEntryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCatalogEntryCommandIsNotConstructed)
}

func (c CreateCatalogEntryCommand) Principal() access.Principal {
	return c.principal
}

func (c CreateCatalogEntryCommand) Entry() *catalog.Entry {
	return c.entry
}
