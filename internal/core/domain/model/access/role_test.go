package access_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var knownRoles = []access.Role{access.RoleUser, access.RoleOperator, access.RoleAdmin}

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    access.Role
		wantErr bool
	}{
		{name: "user", input: "user", want: access.RoleUser},
		{name: "sorter", input: "sorter", want: access.RoleOperator},
		{name: "admin", input: "admin", want: access.RoleAdmin},
		{name: "mixed case and spaces", input: "  Admin ", want: access.RoleAdmin},
		{name: "unknown", input: "root", want: access.RoleUnknown, wantErr: true},
		{name: "empty", input: "", want: access.RoleUnknown, wantErr: true},
		{name: "unknown is not parseable", input: "unknown", want: access.RoleUnknown, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := access.ParseRole(tt.input)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRole_StringRoundTrip(t *testing.T) {
	for _, r := range knownRoles {
		parsed, err := access.ParseRole(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}
	assert.Equal(t, "unknown", access.Role(42).String())
}

func TestIsAtLeast(t *testing.T) {
	t.Run("every known role satisfies itself", func(t *testing.T) {
		for _, r := range knownRoles {
			assert.True(t, access.IsAtLeast(r, r), r.String())
		}
	})

	t.Run("order is user < sorter < admin", func(t *testing.T) {
		assert.True(t, access.IsAtLeast(access.RoleAdmin, access.RoleOperator))
		assert.True(t, access.IsAtLeast(access.RoleOperator, access.RoleUser))
		assert.False(t, access.IsAtLeast(access.RoleUser, access.RoleAdmin))
		assert.False(t, access.IsAtLeast(access.RoleUser, access.RoleOperator))
		assert.False(t, access.IsAtLeast(access.RoleOperator, access.RoleAdmin))
	})

	t.Run("unknown roles never satisfy a known requirement", func(t *testing.T) {
		for _, unknown := range []access.Role{access.RoleUnknown, access.Role(-1), access.Role(99)} {
			for _, r := range knownRoles {
				assert.False(t, access.IsAtLeast(unknown, r))
			}
		}
	})
}

func TestRole_Validate(t *testing.T) {
	for _, r := range knownRoles {
		require.NoError(t, r.Validate())
	}
	require.ErrorIs(t, access.RoleUnknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, access.Role(7).Validate(), errs.ErrValueIsInvalid)
}
