package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/access"
)

// DeleteStatusRecordCommandHandler removes a single history record. Requires admin rank.
type DeleteStatusRecordCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeleteStatusRecordCommandHandler(uowFactory UoWFactory) DeleteStatusRecordCommandHandler {
	return DeleteStatusRecordCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeleteStatusRecordCommandHandler) Handle(ctx context.Context, cmd DeleteStatusRecordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Principal().Require(access.RoleAdmin, "delete status record"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.HistoryRepository().Delete(ctx, cmd.RecordID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
