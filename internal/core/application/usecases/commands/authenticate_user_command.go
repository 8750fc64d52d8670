package commands

import (
	"errors"

	"parceltrack/internal/pkg/guard"
)

var ErrAuthenticateUserCommandIsNotConstructed = errors.New(
	"AuthenticateUserCommand must be created via NewAuthenticateUserCommand constructor",
)

// AuthenticateUserCommand exchanges credentials for a signed token.
type AuthenticateUserCommand struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

func NewAuthenticateUserCommand(username, password string) (AuthenticateUserCommand, error) {
	if err := errors.Join(required("username", username), required("password", password)); err != nil {
		return AuthenticateUserCommand{}, err
	}
	return AuthenticateUserCommand{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AuthenticateUserCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateUserCommandIsNotConstructed)
}

func (c AuthenticateUserCommand) Username() string {
	return c.username
}

func (c AuthenticateUserCommand) Password() string {
	return c.password
}
