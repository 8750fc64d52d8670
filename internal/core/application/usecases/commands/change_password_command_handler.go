package commands

import (
	"context"

	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// ChangePasswordCommandHandler replaces an account password. Users change their own
// password and must present the old one; admins may reset any other account
// without it.
type ChangePasswordCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

func NewChangePasswordCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) ChangePasswordCommandHandler {
	return ChangePasswordCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

func (h *ChangePasswordCommandHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := authorizeAccountAccess(cmd.Principal(), cmd.UserID(), "change password"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	u, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if cmd.Principal().ID() == u.ID() {
		if err = h.hasher.Compare(u.PasswordHash(), cmd.OldPassword()); err != nil {
			return errs.NewUnauthenticatedErrorWithCause("old password is incorrect", err)
		}
	}

	hash, err := h.hasher.Hash(cmd.NewPassword())
	if err != nil {
		return err
	}
	if err = u.SetPasswordHash(hash); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
