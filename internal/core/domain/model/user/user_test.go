package user_test

import (
	"strings"
	"testing"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.RestoreUser(4, "jdoe", "$2a$hash", "John", "Doe", "1 Main St", access.RoleUser, false)
	require.NoError(t, err)
	return u
}

func TestNewUser(t *testing.T) {
	t.Run("should trim and keep fields", func(t *testing.T) {
		u, err := user.NewUser(" jdoe ", "hash", "John", "Doe", "1 Main St", access.RoleOperator)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Zero(t, u.ID())
		assert.Equal(t, "jdoe", u.Username())
		assert.Equal(t, "hash", u.PasswordHash())
		assert.Equal(t, "John Doe", u.DisplayName())
		assert.Equal(t, "1 Main St", u.Address())
		assert.Equal(t, access.RoleOperator, u.Role())
		assert.False(t, u.IsDeleted())
	})

	t.Run("should report every missing field", func(t *testing.T) {
		u, err := user.NewUser("", "", "", "", "", access.RoleUnknown)

		require.Error(t, err)
		assert.Nil(t, u)
		for _, name := range []string{"username", "password", "first_name", "last_name", "address", "role"} {
			assert.Contains(t, err.Error(), name)
		}
	})

	t.Run("should bound username length", func(t *testing.T) {
		_, err := user.NewUser(strings.Repeat("u", user.UsernameMaxLength+1), "h", "a", "b", "c", access.RoleUser)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestUser_Apply(t *testing.T) {
	t.Run("should change present fields only", func(t *testing.T) {
		u := newTestUser(t)
		first := "Jane"
		role := access.RoleOperator

		require.NoError(t, u.Apply(user.Update{FirstName: &first, Role: &role}))
		assert.Equal(t, "Jane Doe", u.DisplayName())
		assert.Equal(t, "jdoe", u.Username())
		assert.Equal(t, access.RoleOperator, u.Role())
	})

	t.Run("should reject empty update", func(t *testing.T) {
		require.ErrorIs(t, newTestUser(t).Apply(user.Update{}), errs.ErrValueIsRequired)
	})

	t.Run("should keep user unchanged on invalid field", func(t *testing.T) {
		u := newTestUser(t)
		first := "Jane"
		role := access.RoleUnknown

		require.Error(t, u.Apply(user.Update{FirstName: &first, Role: &role}))
		assert.Equal(t, "John", u.FirstName())
		assert.Equal(t, access.RoleUser, u.Role())
	})
}

func TestUser_MarkDeleted(t *testing.T) {
	u := newTestUser(t)
	assert.True(t, u.MarkDeleted())
	assert.False(t, u.MarkDeleted())
	assert.True(t, u.IsDeleted())
}
