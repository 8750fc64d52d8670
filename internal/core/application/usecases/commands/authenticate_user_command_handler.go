package commands

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

var errInvalidCredentials = errs.NewUnauthenticatedError("invalid username or password")

// AuthenticateUserCommandHandler verifies credentials and issues tokens.
// Unknown, deleted and wrong-password accounts all fail the same way.
type AuthenticateUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
}

func NewAuthenticateUserCommandHandler(
	uowFactory UserUoWFactory, hasher ports.PasswordHasher, issuer ports.TokenIssuer,
) AuthenticateUserCommandHandler {
	return AuthenticateUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		issuer:     issuer,
	}
}

// Handle returns a signed token for the account.
func (h *AuthenticateUserCommandHandler) Handle(ctx context.Context, cmd AuthenticateUserCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	u, err := uow.UserRepository().GetByUsername(ctx, cmd.Username())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return "", errInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if u.IsDeleted() || h.hasher.Compare(u.PasswordHash(), cmd.Password()) != nil {
		return "", errInvalidCredentials
	}

	return issueFor(h.issuer, u)
}

func issueFor(issuer ports.TokenIssuer, u *user.User) (string, error) {
	principal, err := access.NewPrincipal(u.ID(), u.Role())
	if err != nil {
		return "", err
	}
	return issuer.Issue(principal)
}
