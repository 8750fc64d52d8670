package user

import (
	"errors"
	"fmt"
	"strings"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/pkg/errs"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// UsernameMaxLength bounds usernames and name parts.
const UsernameMaxLength = 100

// User is an account that can send and receive packages and authenticate against
// the API. The password is only ever held as a hash.
type User struct {
	id           int64
	username     string
	passwordHash string
	firstName    string
	lastName     string
	address      string
	role         access.Role
	deleted      bool

	isConstructed bool
}

// NewUser creates an account that has not been stored yet.
func NewUser(username, passwordHash, firstName, lastName, address string, role access.Role) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		setText("username", &u.username, username),
		setText("password", &u.passwordHash, passwordHash),
		setText("first_name", &u.firstName, firstName),
		setText("last_name", &u.lastName, lastName),
		setText("address", &u.address, address),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a stored account.
func RestoreUser(
	id int64, username, passwordHash, firstName, lastName, address string, role access.Role, deleted bool,
) (*User, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}
	u, err := NewUser(username, passwordHash, firstName, lastName, address, role)
	if err != nil {
		return nil, err
	}
	u.id = id
	u.deleted = deleted
	return u, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() int64 {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) FirstName() string {
	return u.firstName
}

func (u *User) LastName() string {
	return u.lastName
}

// DisplayName is the name shown as sender or receiver in package listings.
func (u *User) DisplayName() string {
	return u.firstName + " " + u.lastName
}

func (u *User) Address() string {
	return u.address
}

func (u *User) Role() access.Role {
	return u.role
}

func (u *User) IsDeleted() bool {
	return u.deleted
}

// Apply changes the profile fields present in upd. Nothing changes when any field
// is invalid.
func (u *User) Apply(upd Update) error {
	if upd.IsEmpty() {
		return ErrEmptyUpdate
	}

	next := *u
	var errsList []error
	if upd.Username != nil {
		errsList = append(errsList, setText("username", &next.username, *upd.Username))
	}
	if upd.FirstName != nil {
		errsList = append(errsList, setText("first_name", &next.firstName, *upd.FirstName))
	}
	if upd.LastName != nil {
		errsList = append(errsList, setText("last_name", &next.lastName, *upd.LastName))
	}
	if upd.Address != nil {
		errsList = append(errsList, setText("address", &next.address, *upd.Address))
	}
	if upd.Role != nil {
		errsList = append(errsList, next.setRole(*upd.Role))
	}
	if err := errors.Join(errsList...); err != nil {
		return err
	}

	*u = next
	return nil
}

func (u *User) SetPasswordHash(hash string) error {
	return setText("password", &u.passwordHash, hash)
}

// MarkDeleted soft-deletes the account and reports whether anything changed.
func (u *User) MarkDeleted() bool {
	if u.deleted {
		return false
	}
	u.deleted = true
	return true
}

func (u *User) setRole(role access.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func setText(name string, field *string, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	if name != "password" && name != "address" && len(value) > UsernameMaxLength {
		return errs.NewValueIsOutOfRangeError(name+" length", len(value), 1, UsernameMaxLength)
	}
	*field = value
	return nil
}
