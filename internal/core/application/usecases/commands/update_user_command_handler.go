package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/pkg/errs"
)

// UpdateUserCommandHandler edits accounts.
//
// Business rules:
//   - Users edit their own account; admins edit any account
//   - Only admins change roles, and never to a role above their own
type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewUpdateUserCommandHandler(uowFactory UserUoWFactory) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := authorizeAccountAccess(cmd.Principal(), cmd.UserID(), "update user"); err != nil {
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

	upd := cmd.Update()
	if upd.Role != nil && *upd.Role != u.Role() {
		p := cmd.Principal()
		if !p.IsAtLeast(access.RoleAdmin) || !p.IsAtLeast(*upd.Role) {
			return errs.NewAccessDeniedError("change role", "only admins change roles")
		}
	}

	if err = u.Apply(upd); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// authorizeAccountAccess lets a principal act on its own account, and admins on any.
func authorizeAccountAccess(p access.Principal, userID int64, action string) error {
	if err := p.Require(access.RoleUser, action); err != nil {
		return err
	}
	if p.ID() != userID && !p.IsAtLeast(access.RoleAdmin) {
		return errs.NewAccessDeniedError(action, "principal may only act on its own account")
	}
	return nil
}
