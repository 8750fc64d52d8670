package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrGetUserQueryIsNotConstructed = errors.New(
		"GetUserQuery must be created via NewGetUserQuery constructor",
	)
)

// GetUserQuery reads one active account. Users may read their own account; admins
// may read any.
type GetUserQuery struct {
	principal access.Principal
	userID    int64

	guard guard.ConstructorGuard
}

func NewGetUserQuery(principal access.Principal, userID int64) GetUserQuery {
	return GetUserQuery{principal: principal, userID: userID, guard: guard.NewConstructorGuard()}
}

func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

func (q GetUserQuery) Principal() access.Principal {
	return q.principal
}

func (q GetUserQuery) UserID() int64 {
	return q.userID
}
