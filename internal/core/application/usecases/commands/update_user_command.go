package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/pkg/guard"
)

var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UpdateUserCommand changes profile fields of an account. The password is not
// part of it.
type UpdateUserCommand struct { //nolint:recvcheck //using for validation
	principal access.Principal
	userID    int64
	update    user.Update

	guard guard.ConstructorGuard
}

func NewUpdateUserCommand(principal access.Principal, userID int64, update user.Update) (UpdateUserCommand, error) {
	cmd := UpdateUserCommand{
		principal: principal,
		update:    update,
		guard:     guard.NewConstructorGuard(),
	}

	var updateErr error
	if update.IsEmpty() {
		updateErr = user.ErrEmptyUpdate
	}
	if err := errors.Join(setID("id", &cmd.userID, userID), updateErr); err != nil {
		return UpdateUserCommand{}, err
	}

	return cmd, nil
}

func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

func (c UpdateUserCommand) Principal() access.Principal {
	return c.principal
}

func (c UpdateUserCommand) UserID() int64 {
	return c.userID
}

func (c UpdateUserCommand) Update() user.Update {
	return c.update
}
