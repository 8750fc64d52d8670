package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/catalog"
)

// CorrectStatusRecordCommandHandler rewrites a history record. Requires admin rank.
// The target package, status and facility must exist.
type CorrectStatusRecordCommandHandler struct {
	uowFactory UoWFactory
}

func NewCorrectStatusRecordCommandHandler(uowFactory UoWFactory) CorrectStatusRecordCommandHandler {
	return CorrectStatusRecordCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CorrectStatusRecordCommandHandler) Handle(ctx context.Context, cmd CorrectStatusRecordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Principal().Require(access.RoleAdmin, "correct status record"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	historyRepo := uow.HistoryRepository()
	record, err := historyRepo.Get(ctx, cmd.RecordID())
	if err != nil {
		return err
	}

	if _, err = uow.PackageRepository().Get(ctx, cmd.TrackingNumber()); err != nil {
		return err
	}
	catalogRepo := uow.CatalogRepository()
	if err = ensureCatalogEntry(ctx, catalogRepo, catalog.KindPackageStatus, cmd.StatusID()); err != nil {
		return err
	}
	if err = ensureCatalogEntry(ctx, catalogRepo, catalog.KindFacility, cmd.FacilityID()); err != nil {
		return err
	}

	if err = record.Correct(cmd.TrackingNumber(), cmd.StatusID(), cmd.FacilityID()); err != nil {
		return err
	}

	if err = historyRepo.Update(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
