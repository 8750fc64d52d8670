package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/access"
)

// DeletePackageCommandHandler soft- or hard-deletes packages. Requires admin rank.
//
// A soft delete keeps the row and every history record; deleting twice is a no-op.
// A hard delete removes the history records, the row and retires the tracking number,
// all in one transaction, so no record is ever left pointing at a missing package.
type DeletePackageCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeletePackageCommandHandler(uowFactory UoWFactory) DeletePackageCommandHandler {
	return DeletePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeletePackageCommandHandler) Handle(ctx context.Context, cmd DeletePackageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Principal().Require(access.RoleAdmin, "delete package"); err != nil {
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

	if cmd.Permanent() {
		if _, err = uow.HistoryRepository().DeleteByTrackingNumber(ctx, pkg.TrackingNumber()); err != nil {
			return err
		}
		if err = packageRepo.Delete(ctx, pkg.TrackingNumber()); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	if !pkg.MarkDeleted(time.Now().UTC()) {
		return nil
	}
	if err = packageRepo.Update(ctx, pkg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
