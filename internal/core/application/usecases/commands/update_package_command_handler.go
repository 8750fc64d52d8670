package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/catalog"
)

// UpdatePackageCommandHandler applies whitelisted field changes to a package.
// Requires operator rank. New sender, receiver or type references must exist.
type UpdatePackageCommandHandler struct {
	uowFactory UoWFactory
}

func NewUpdatePackageCommandHandler(uowFactory UoWFactory) UpdatePackageCommandHandler {
	return UpdatePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdatePackageCommandHandler) Handle(ctx context.Context, cmd UpdatePackageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Principal().Require(access.RoleOperator, "update package"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packageRepo := uow.PackageRepository()
	pkg, err := packageRepo.Get(ctx, cmd.TrackingNumber())
	if err != nil {
		return err
	}

	upd := cmd.Update()
	if upd.SenderID != nil {
		if err = ensureActiveUser(ctx, uow.UserRepository(), "sender_id", *upd.SenderID); err != nil {
			return err
		}
	}
	if upd.ReceiverID != nil {
		if err = ensureActiveUser(ctx, uow.UserRepository(), "receiver_id", *upd.ReceiverID); err != nil {
			return err
		}
	}
	if upd.TypeID != nil {
		if err = ensureCatalogEntry(ctx, uow.CatalogRepository(), catalog.KindPackageType, *upd.TypeID); err != nil {
			return err
		}
	}

	if err = pkg.Apply(upd, time.Now().UTC()); err != nil {
		return err
	}

	if err = packageRepo.Update(ctx, pkg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
