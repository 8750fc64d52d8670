package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/pkg/guard"
)

var ErrDeleteStatusRecordCommandIsNotConstructed = errors.New(
	"DeleteStatusRecordCommand must be created via NewDeleteStatusRecordCommand constructor",
)

type DeleteStatusRecordCommand struct { //nolint:recvcheck //using for validation
	principal access.Principal
	recordID  int64

	guard guard.ConstructorGuard
}

func NewDeleteStatusRecordCommand(principal access.Principal, recordID int64) (DeleteStatusRecordCommand, error) {
	cmd := DeleteStatusRecordCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}
	if err := setID("id", &cmd.recordID, recordID); err != nil {
		return DeleteStatusRecordCommand{}, err
	}
	return cmd, nil
}

func (c DeleteStatusRecordCommand) Validate() error {
	return c.guard.Validate(ErrDeleteStatusRecordCommandIsNotConstructed)
}

func (c DeleteStatusRecordCommand) Principal() access.Principal {
	return c.principal
}

func (c DeleteStatusRecordCommand) RecordID() int64 {
	return c.recordID
}
