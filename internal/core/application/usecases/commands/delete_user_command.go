package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/pkg/guard"
)

var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

// DeleteUserCommand soft-deletes an account. The row stays so packages keep their
// sender and receiver names.
type DeleteUserCommand struct { //nolint:recvcheck //using for validation
	principal access.Principal
	userID    int64

	guard guard.ConstructorGuard
}

func NewDeleteUserCommand(principal access.Principal, userID int64) (DeleteUserCommand, error) {
	cmd := DeleteUserCommand{principal: principal, guard: guard.NewConstructorGuard()}
	if err := setID("id", &cmd.userID, userID); err != nil {
		return DeleteUserCommand{}, err
	}
	return cmd, nil
}

func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

func (c DeleteUserCommand) Principal() access.Principal {
	return c.principal
}

func (c DeleteUserCommand) UserID() int64 {
	return c.userID
}
