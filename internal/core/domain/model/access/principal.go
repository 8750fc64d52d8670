package access

import (
	"errors"
	"fmt"

	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")

// Principal is the authenticated caller of an operation: a user id and the role
// carried by the caller's verified token.
type Principal struct {
	id    int64
	role  Role
	guard guard.ConstructorGuard
}

func NewPrincipal(id int64, role Role) (Principal, error) {
	if id <= 0 {
		return Principal{}, errs.NewValueIsInvalidErrorWithCause("principal id", fmt.Errorf("%d is not greater than 0", id))
	}
	if err := role.Validate(); err != nil {
		return Principal{}, err
	}
	return Principal{id: id, role: role, guard: guard.NewConstructorGuard()}, nil
}

func (p Principal) ID() int64 {
	return p.id
}

func (p Principal) Role() Role {
	return p.role
}

func (p Principal) Validate() error {
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}

// IsAtLeast reports whether the principal holds required or a higher role.
// A zero-value Principal holds no role.
func (p Principal) IsAtLeast(required Role) bool {
	if p.Validate() != nil {
		return false
	}
	return IsAtLeast(p.role, required)
}

// Require is the gate in front of every protected operation. It returns an
// AccessDeniedError naming action when the principal ranks below required, and an
// UnauthenticatedError when there is no principal at all.
func (p Principal) Require(required Role, action string) error {
	if err := p.Validate(); err != nil {
		return errs.NewUnauthenticatedErrorWithCause("no principal", err)
	}
	if !IsAtLeast(p.role, required) {
		return errs.NewAccessDeniedError(action, fmt.Sprintf("requires %s, principal is %s", required, p.role))
	}
	return nil
}
