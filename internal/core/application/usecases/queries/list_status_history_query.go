package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrListStatusHistoryQueryIsNotConstructed = errors.New(
		"ListStatusHistoryQuery must be created via NewListStatusHistoryQuery constructor",
	)
)

// ListStatusHistoryQuery lists history records across packages. Operators see every
// record, other principals only the records of packages they send or receive.
type ListStatusHistoryQuery struct {
	principal access.Principal

	guard guard.ConstructorGuard
}

func NewListStatusHistoryQuery(principal access.Principal) ListStatusHistoryQuery {
	return ListStatusHistoryQuery{principal: principal, guard: guard.NewConstructorGuard()}
}

func (q ListStatusHistoryQuery) Validate() error {
	return q.guard.Validate(ErrListStatusHistoryQueryIsNotConstructed)
}

func (q ListStatusHistoryQuery) Principal() access.Principal {
	return q.principal
}
