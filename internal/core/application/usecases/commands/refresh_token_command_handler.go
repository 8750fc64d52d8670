package commands

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

type RefreshTokenCommandHandler struct {
	uowFactory UserUoWFactory
	issuer     ports.TokenIssuer
}

func NewRefreshTokenCommandHandler(uowFactory UserUoWFactory, issuer ports.TokenIssuer) RefreshTokenCommandHandler {
	return RefreshTokenCommandHandler{
		uowFactory: uowFactory,
		issuer:     issuer,
	}
}

// Handle returns a fresh token. Accounts deleted since the old token was issued
// are refused.
func (h *RefreshTokenCommandHandler) Handle(ctx context.Context, cmd RefreshTokenCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}
	if err := cmd.Principal().Require(access.RoleUser, "refresh token"); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	u, err := uow.UserRepository().Get(ctx, cmd.Principal().ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return "", errs.NewUnauthenticatedErrorWithCause("account no longer exists", err)
	}
	if err != nil {
		return "", err
	}
	if u.IsDeleted() {
		return "", errs.NewUnauthenticatedError("account is deleted")
	}

	return issueFor(h.issuer, u)
}
