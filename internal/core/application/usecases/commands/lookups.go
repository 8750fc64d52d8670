package commands

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/catalog"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// PasswordMinLength is the shortest password accepted on registration and change.
const PasswordMinLength = 6

// ensureActiveUser fails with ObjectNotFoundError when id does not name an account
// that is still active.
func ensureActiveUser(ctx context.Context, repo ports.UserRepository, param string, id int64) error {
	u, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if u.IsDeleted() {
		return errs.NewObjectNotFoundErrorWithCause(param, id, errors.New("user is deleted"))
	}
	return nil
}

// ensureCatalogEntry fails with ObjectNotFoundError when id does not name an entry
// of the given kind.
func ensureCatalogEntry(ctx context.Context, repo ports.CatalogRepository, kind catalog.Kind, id int64) error {
	ok, err := repo.Exists(ctx, kind, id)
	if err != nil {
		return err
	}
	if !ok {
		return errs.NewObjectNotFoundError(kind.String(), id)
	}
	return nil
}
