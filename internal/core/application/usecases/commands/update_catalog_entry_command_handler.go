package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/access"
)

// UpdateCatalogEntryCommandHandler renames reference rows. Requires admin rank.
type UpdateCatalogEntryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewUpdateCatalogEntryCommandHandler(uowFactory CatalogUoWFactory) UpdateCatalogEntryCommandHandler {
	return UpdateCatalogEntryCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateCatalogEntryCommandHandler) Handle(ctx context.Context, cmd UpdateCatalogEntryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Principal().Require(access.RoleAdmin, "update "+cmd.Kind().String()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalogRepo := uow.CatalogRepository()
	entry, err := catalogRepo.Get(ctx, cmd.Kind(), cmd.ID())
	if err != nil {
		return err
	}

	if err = entry.Rename(cmd.Name(), cmd.Address()); err != nil {
		return err
	}

	if err = catalogRepo.Update(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
