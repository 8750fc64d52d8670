package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/pkg/guard"
)

var ErrChangePasswordCommandIsNotConstructed = errors.New(
	"ChangePasswordCommand must be created via NewChangePasswordCommand constructor",
)

type ChangePasswordCommand struct { //nolint:recvcheck //using for validation
	principal   access.Principal
	userID      int64
	oldPassword string
	newPassword string

	guard guard.ConstructorGuard
}

func NewChangePasswordCommand(
	principal access.Principal, userID int64, oldPassword, newPassword string,
) (ChangePasswordCommand, error) {
	cmd := ChangePasswordCommand{
		principal:   principal,
		oldPassword: oldPassword,
		newPassword: newPassword,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID("id", &cmd.userID, userID),
		required("old_password", oldPassword),
		checkPassword("new_password", newPassword),
	); err != nil {
		return ChangePasswordCommand{}, err
	}

	return cmd, nil
}

func (c ChangePasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangePasswordCommandIsNotConstructed)
}

func (c ChangePasswordCommand) Principal() access.Principal {
	return c.principal
}

func (c ChangePasswordCommand) UserID() int64 {
	return c.userID
}

func (c ChangePasswordCommand) OldPassword() string {
	return c.oldPassword
}

func (c ChangePasswordCommand) NewPassword() string {
	return c.newPassword
}
