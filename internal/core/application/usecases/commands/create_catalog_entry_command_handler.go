package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/access"
)

// CreateCatalogEntryCommandHandler adds reference rows. Requires admin rank.
type CreateCatalogEntryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateCatalogEntryCommandHandler(uowFactory CatalogUoWFactory) CreateCatalogEntryCommandHandler {
	return CreateCatalogEntryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the id of the new entry.
func (h *CreateCatalogEntryCommandHandler) Handle(ctx context.Context, cmd CreateCatalogEntryCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	if err := cmd.Principal().Require(access.RoleAdmin, "create "+cmd.Entry().Kind().String()); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	id, err := uow.CatalogRepository().Add(ctx, cmd.Entry())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
