package queries

import (
	"parceltrack/internal/core/domain/model/access"
)

// UserResponse is an account as shown to its owner or to an admin. The password
// hash is never part of it.
type UserResponse struct {
	ID            int64
	Username      string
	FirstName     string
	LastName      string
	Address       string
	Role          access.Role
	IsCurrentUser bool
}

const userSQL = `
	SELECT id, username, first_name, last_name, address, role
	FROM users
	WHERE NOT is_deleted`

type userRow struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	Address   string
	Role      string
}

func (r userRow) toResponse(current access.Principal) (UserResponse, error) {
	role, err := access.ParseRole(r.Role)
	if err != nil {
		return UserResponse{}, err
	}
	return UserResponse{
		ID:            r.ID,
		Username:      r.Username,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Address:       r.Address,
		Role:          role,
		IsCurrentUser: r.ID == current.ID(),
	}, nil
}
