package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/pkg/guard"
)

var ErrRefreshTokenCommandIsNotConstructed = errors.New(
	"RefreshTokenCommand must be created via NewRefreshTokenCommand constructor",
)

// RefreshTokenCommand reissues a token for the caller with the role currently stored
// for the account.
type RefreshTokenCommand struct { //nolint:recvcheck //using for validation
	principal access.Principal

	guard guard.ConstructorGuard
}

func NewRefreshTokenCommand(principal access.Principal) (RefreshTokenCommand, error) {
	return RefreshTokenCommand{principal: principal, guard: guard.NewConstructorGuard()}, nil
}

func (c RefreshTokenCommand) Validate() error {
	return c.guard.Validate(ErrRefreshTokenCommandIsNotConstructed)
}

func (c RefreshTokenCommand) Principal() access.Principal {
	return c.principal
}
