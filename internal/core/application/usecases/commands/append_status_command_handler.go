package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/catalog"
	"parceltrack/internal/core/domain/model/history"
)

// AppendStatusCommandHandler appends a record to the status history ledger.
//
// Requires operator rank. The package must exist; a soft-deleted package still
// accepts events. The record is stamped with the time of the call and no existing
// record is touched.
//
// Example:
//
//	cmd, _ := NewAppendStatusCommand(principal, "T1", inTransitID, hubID)
//	id, err := handler.Handle(ctx, cmd)
type AppendStatusCommandHandler struct {
	uowFactory UoWFactory
}

func NewAppendStatusCommandHandler(uowFactory UoWFactory) AppendStatusCommandHandler {
	return AppendStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the id of the new record.
func (h *AppendStatusCommandHandler) Handle(ctx context.Context, cmd AppendStatusCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	if err := cmd.Principal().Require(access.RoleOperator, "append status"); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.PackageRepository().Get(ctx, cmd.TrackingNumber()); err != nil {
		return 0, err
	}
	catalogRepo := uow.CatalogRepository()
	if err := ensureCatalogEntry(ctx, catalogRepo, catalog.KindPackageStatus, cmd.StatusID()); err != nil {
		return 0, err
	}
	if err := ensureCatalogEntry(ctx, catalogRepo, catalog.KindFacility, cmd.FacilityID()); err != nil {
		return 0, err
	}

	record, err := history.NewRecord(cmd.TrackingNumber(), cmd.StatusID(), cmd.FacilityID(), time.Now().UTC())
	if err != nil {
		return 0, err
	}

	id, err := uow.HistoryRepository().Add(ctx, record)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
