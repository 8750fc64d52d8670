package commands

import (
	"errors"
	"strings"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand creates an account. actor is the zero Principal for
// self-registration.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	actor     access.Principal
	username  string
	password  string
	firstName string
	lastName  string
	address   string
	role      access.Role

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(
	actor access.Principal, username, password, firstName, lastName, address string, role access.Role,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		actor:     actor,
		username:  strings.TrimSpace(username),
		firstName: strings.TrimSpace(firstName),
		lastName:  strings.TrimSpace(lastName),
		address:   strings.TrimSpace(address),
		role:      role,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		required("username", cmd.username),
		cmd.setPassword(password),
		required("first_name", cmd.firstName),
		required("last_name", cmd.lastName),
		required("address", cmd.address),
		role.Validate(),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Actor() access.Principal {
	return c.actor
}

func (c RegisterUserCommand) Username() string {
	return c.username
}

func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c RegisterUserCommand) FirstName() string {
	return c.firstName
}

func (c RegisterUserCommand) LastName() string {
	return c.lastName
}

func (c RegisterUserCommand) Address() string {
	return c.address
}

func (c RegisterUserCommand) Role() access.Role {
	return c.role
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if err := checkPassword("password", password); err != nil {
		return err
	}
	c.password = password
	return nil
}

func required(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func checkPassword(name, password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError(name)
	}
	if len(password) < PasswordMinLength {
		return errs.NewValueIsOutOfRangeError(name+" length", len(password), PasswordMinLength, "unbounded")
	}
	return nil
}
