package access

import (
	"fmt"
	"strings"

	"parceltrack/internal/pkg/errs"
)

// Role is a position in the fixed privilege order of the system.
//
// Privilege order:
//
//	User < Operator < Admin
//
// The order is compiled in and cannot change at runtime. Unknown sorts below
// every known role, so any check against a malformed role fails closed.
type Role int

const (
	// RoleUnknown is the zero value. It never satisfies a role requirement.
	RoleUnknown Role = iota

	// RoleUser is an unprivileged account that sends and receives packages.
	RoleUser

	// RoleOperator handles packages at facilities and records status events.
	// On the wire this role is called "sorter".
	RoleOperator

	// RoleAdmin may correct history, delete packages and manage reference data.
	RoleAdmin
)

func getRoleNames() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleUser:     "user",
		RoleOperator: "sorter",
		RoleAdmin:    "admin",
	}
}

// ParseRole maps a wire name to a Role. Matching ignores case and surrounding
// whitespace. Unrecognised names yield RoleUnknown and an error.
func ParseRole(name string) (Role, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for role, roleName := range getRoleNames() {
		if role != RoleUnknown && roleName == normalized {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", name))
}

// Rank returns the position of the role in the privilege order. Unknown roles rank 0.
func (r Role) Rank() int {
	switch r {
	case RoleUser:
		return 1
	case RoleOperator:
		return 2
	case RoleAdmin:
		return 3
	case RoleUnknown:
		return 0
	default:
		return 0
	}
}

// IsKnown reports whether r is one of the defined roles.
func (r Role) IsKnown() bool {
	return r.Rank() > 0
}

func (r Role) String() string {
	if name, ok := getRoleNames()[r]; ok {
		return name
	}
	return getRoleNames()[RoleUnknown]
}

func (r Role) Validate() error {
	if !r.IsKnown() {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// IsAtLeast reports whether actual ranks at or above required. An unknown actual
// role never satisfies any requirement.
func IsAtLeast(actual, required Role) bool {
	return actual.IsKnown() && actual.Rank() >= required.Rank()
}
