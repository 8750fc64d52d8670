package http

import (
	"errors"
	"net/http"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
)

// userPatchKeys are the keys an update body may carry. password is accepted only
// to be rejected with a pointer to the password endpoint.
var userPatchKeys = []string{"first_name", "last_name", "username", "address", "role", "password"}

type registerRequest struct {
	Username  string `json:"username" validate:"required,max=100"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Address   string `json:"address" validate:"required"`
	Role      string `json:"role" validate:"omitempty,oneof=user sorter admin"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password" validate:"required"`
}

// RegisterUser handles POST /api/users/register. Anyone may register a plain
// user; elevated roles need a caller holding at least that role.
func (s *Server) RegisterUser(c echo.Context) error {
	var req registerRequest
	if err := s.bindBody(c, &req); err != nil {
		return err
	}
	role := access.RoleUser
	if req.Role != "" {
		var err error
		if role, err = access.ParseRole(req.Role); err != nil {
			return err
		}
	}

	cmd, err := commands.NewRegisterUserCommand(principal(c),
		req.Username, req.Password, req.FirstName, req.LastName, req.Address, role)
	if err != nil {
		return err
	}
	id, err := s.handlers.RegisterUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, Created{Message: "User registered successfully", ID: id})
}

// Login handles POST /api/users/login.
func (s *Server) Login(c echo.Context) error {
	var req loginRequest
	if err := s.bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAuthenticateUserCommand(req.Username, req.Password)
	if err != nil {
		return err
	}
	token, err := s.handlers.AuthenticateUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, Token{Token: token})
}

// RefreshToken handles GET /api/users/refreshToken. The new token carries the
// role currently stored for the caller.
func (s *Server) RefreshToken(c echo.Context) error {
	cmd, err := commands.NewRefreshTokenCommand(principal(c))
	if err != nil {
		return err
	}
	token, err := s.handlers.RefreshToken.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, Token{Token: token})
}

// ListUsers handles GET /api/users.
func (s *Server) ListUsers(c echo.Context) error {
	users, err := s.handlers.ListUsers.Handle(c.Request().Context(), queries.NewListUsersQuery(principal(c)))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lo.Map(users, func(u queries.UserResponse, _ int) User { return toUser(u) }))
}

// GetUser handles GET /api/users/:id.
func (s *Server) GetUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	u, err := s.handlers.GetUser.Handle(c.Request().Context(), queries.NewGetUserQuery(principal(c), id))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUser(u))
}

// UpdateUser handles PUT /api/users/:id. Passwords change only through
// PATCH /api/users/password/:id.
func (s *Server) UpdateUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	body, err := s.bindPatch(c, userPatchKeys)
	if err != nil {
		return err
	}
	if _, ok := body["password"]; ok {
		return errs.NewValueIsInvalidErrorWithCause("password",
			errors.New("use PATCH /api/users/password/{id} to change it"))
	}
	update, err := userUpdate(body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateUserCommand(principal(c), id, update)
	if err != nil {
		return err
	}
	if err := s.handlers.UpdateUser.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, Message{Message: "User updated successfully"})
}

func userUpdate(body patchBody) (user.Update, error) {
	var (
		u         user.Update
		fieldErrs []error
		err       error
	)
	u.Username, err = field[string](body, "username")
	fieldErrs = append(fieldErrs, err)
	u.FirstName, err = field[string](body, "first_name")
	fieldErrs = append(fieldErrs, err)
	u.LastName, err = field[string](body, "last_name")
	fieldErrs = append(fieldErrs, err)
	u.Address, err = field[string](body, "address")
	fieldErrs = append(fieldErrs, err)

	roleName, err := field[string](body, "role")
	fieldErrs = append(fieldErrs, err)
	if roleName != nil {
		role, parseErr := access.ParseRole(*roleName)
		fieldErrs = append(fieldErrs, parseErr)
		if parseErr == nil {
			u.Role = &role
		}
	}

	return u, errors.Join(fieldErrs...)
}

// ChangePassword handles PATCH /api/users/password/:id.
func (s *Server) ChangePassword(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req changePasswordRequest
	if err := s.bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewChangePasswordCommand(principal(c), id, req.OldPassword, req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.handlers.ChangePassword.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, Message{Message: "Password reset successfully"})
}

// DeleteUser handles DELETE /api/users/:id. The account is flagged, not removed,
// so packages keep their sender and receiver.
func (s *Server) DeleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteUserCommand(principal(c), id)
	if err != nil {
		return err
	}
	if err := s.handlers.DeleteUser.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, Message{Message: "User deleted successfully"})
}
