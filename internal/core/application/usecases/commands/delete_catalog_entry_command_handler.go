package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/access"
)

// DeleteCatalogEntryCommandHandler removes reference rows. Requires admin rank.
// Entries still used by packages or history records cannot be removed.
type DeleteCatalogEntryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeleteCatalogEntryCommandHandler(uowFactory CatalogUoWFactory) DeleteCatalogEntryCommandHandler {
	return DeleteCatalogEntryCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeleteCatalogEntryCommandHandler) Handle(ctx context.Context, cmd DeleteCatalogEntryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Principal().Require(access.RoleAdmin, "delete "+cmd.Kind().String()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CatalogRepository().Delete(ctx, cmd.Kind(), cmd.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
