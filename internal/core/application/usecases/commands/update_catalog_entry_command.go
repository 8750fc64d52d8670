package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/catalog"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrUpdateCatalogEntryCommandIsNotConstructed = errors.New(
	"UpdateCatalogEntryCommand must be created via NewUpdateCatalogEntryCommand constructor",
)

// UpdateCatalogEntryCommand renames an entry. Address only applies to facilities.
type UpdateCatalogEntryCommand struct { //nolint:recvcheck //using for validation
	principal access.Principal
	kind      catalog.Kind
	id        int64
	name      *string
	address   *string

	guard guard.ConstructorGuard
}

func NewUpdateCatalogEntryCommand(
	principal access.Principal, kind catalog.Kind, id int64, name, address *string,
) (UpdateCatalogEntryCommand, error) {
	cmd := UpdateCatalogEntryCommand{
		principal: principal,
		kind:      kind,
		name:      name,
		address:   address,
		guard:     guard.NewConstructorGuard(),
	}

	var emptyErr error
	if name == nil && address == nil {
		emptyErr = errs.NewValueIsRequiredError("at least one of name, address")
	}
	if err := errors.Join(kind.Validate(), setID("id", &cmd.id, id), emptyErr); err != nil {
		return UpdateCatalogEntryCommand{}, err
	}

	return cmd, nil
}

func (c UpdateCatalogEntryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCatalogEntryCommandIsNotConstructed)
}

func (c UpdateCatalogEntryCommand) Principal() access.Principal {
	return c.principal
}

func (c UpdateCatalogEntryCommand) Kind() catalog.Kind {
	return c.kind
}

func (c UpdateCatalogEntryCommand) ID() int64 {
	return c.id
}

func (c UpdateCatalogEntryCommand) Name() *string {
	return c.name
}

func (c UpdateCatalogEntryCommand) Address() *string {
	return c.address
}
