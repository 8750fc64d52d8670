package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new account and returns its id. Usernames are unique.
	Add(ctx context.Context, aggregate *user.User) (int64, error)

	// Update persists profile, password, role and deleted flag changes.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves an account by id, deleted or not.
	Get(ctx context.Context, id int64) (*user.User, error)

	// GetByUsername retrieves an account by its login name, deleted or not.
	GetByUsername(ctx context.Context, username string) (*user.User, error)
}
