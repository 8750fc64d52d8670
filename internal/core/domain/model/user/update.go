package user

import (
	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/pkg/errs"
)

var ErrEmptyUpdate = errs.NewValueIsRequiredError("at least one of first_name, last_name, username, address, role")

// Update carries profile changes. Passwords change only through SetPasswordHash.
type Update struct {
	Username  *string
	FirstName *string
	LastName  *string
	Address   *string
	Role      *access.Role
}

func (u Update) IsEmpty() bool {
	return u.Username == nil && u.FirstName == nil && u.LastName == nil && u.Address == nil && u.Role == nil
}
