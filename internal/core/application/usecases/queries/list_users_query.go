package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrListUsersQueryIsNotConstructed = errors.New(
		"ListUsersQuery must be created via NewListUsersQuery constructor",
	)
)

// ListUsersQuery lists active accounts. Admin only.
type ListUsersQuery struct {
	principal access.Principal

	guard guard.ConstructorGuard
}

func NewListUsersQuery(principal access.Principal) ListUsersQuery {
	return ListUsersQuery{principal: principal, guard: guard.NewConstructorGuard()}
}

func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

func (q ListUsersQuery) Principal() access.Principal {
	return q.principal
}
