package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// RegisterUserCommandHandler creates accounts.
//
// Anyone may register a plain user account. Creating an operator or admin account
// requires an actor holding at least that role.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle returns the id of the new account.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	if cmd.Role() != access.RoleUser && !cmd.Actor().IsAtLeast(cmd.Role()) {
		return 0, errs.NewAccessDeniedError("register "+cmd.Role().String(), "only an equal or higher role may create this account")
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return 0, err
	}

	u, err := user.NewUser(cmd.Username(), hash, cmd.FirstName(), cmd.LastName(), cmd.Address(), cmd.Role())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	id, err := uow.UserRepository().Add(ctx, u)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
