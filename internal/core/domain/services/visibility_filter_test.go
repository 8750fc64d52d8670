package services_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/errs"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func principal(t *testing.T, id int64, role access.Role) access.Principal {
	t.Helper()
	p, err := access.NewPrincipal(id, role)
	require.NoError(t, err)
	return p
}

func fixtureViews() []parcel.View {
	return []parcel.View{
		{TrackingNumber: "T1", SenderID: 1, SenderName: "Ann Lee", ReceiverID: 2, ReceiverName: "Bob Ray", TypeID: 10,
			Status: &parcel.CurrentStatus{StatusLabel: "In transit"}},
		{TrackingNumber: "T2", SenderID: 2, SenderName: "Bob Ray", ReceiverID: 3, ReceiverName: "Cat Moe", TypeID: 11},
		{TrackingNumber: "T3", SenderID: 3, SenderName: "Cat Moe", ReceiverID: 1, ReceiverName: "Ann Lee", TypeID: 10,
			Status: &parcel.CurrentStatus{StatusLabel: "Delivered"}},
		{TrackingNumber: "T4", SenderID: 1, SenderName: "Ann Lee", ReceiverID: 3, ReceiverName: "Cat Moe", TypeID: 10,
			IsDeleted: true},
	}
}

func trackingNumbers(views []parcel.View) []string {
	return lo.Map(views, func(v parcel.View, _ int) string { return v.TrackingNumber })
}

func TestVisibilityFilter_Listing(t *testing.T) {
	filter := services.NewVisibilityFilter()
	operator := principal(t, 50, access.RoleOperator)
	admin := principal(t, 51, access.RoleAdmin)
	typeLetter := int64(10)

	tests := []struct {
		name      string
		principal access.Principal
		criteria  services.Criteria
		want      []string
		wantErr   error
	}{
		{name: "operator sees non deleted", principal: operator, want: []string{"T1", "T2", "T3"}},
		{name: "admin sees non deleted by default", principal: admin, want: []string{"T1", "T2", "T3"}},
		{name: "admin includes deleted", principal: admin, criteria: services.Criteria{IncludeDeleted: true},
			want: []string{"T1", "T2", "T3", "T4"}},
		{name: "operator may not include deleted", principal: operator,
			criteria: services.Criteria{IncludeDeleted: true}, wantErr: errs.ErrAccessDenied},
		{name: "user may not list", principal: principal(t, 1, access.RoleUser), wantErr: errs.ErrAccessDenied},
		{name: "anonymous may not list", principal: access.Principal{}, wantErr: errs.ErrUnauthenticated},
		{name: "search by tracking number", principal: operator, criteria: services.Criteria{Search: "T2"},
			want: []string{"T2"}},
		{name: "search by sender or receiver name", principal: operator, criteria: services.Criteria{Search: "Ann Lee"},
			want: []string{"T1", "T3"}},
		{name: "search is exact not substring", principal: operator, criteria: services.Criteria{Search: "Ann"},
			want: []string{}},
		{name: "no match is empty not error", principal: operator, criteria: services.Criteria{Search: "T9"},
			want: []string{}},
		{name: "type filter", principal: operator, criteria: services.Criteria{TypeID: &typeLetter},
			want: []string{"T1", "T3"}},
		{name: "search and type combine with and", principal: operator,
			criteria: services.Criteria{Search: "Bob Ray", TypeID: &typeLetter}, want: []string{"T1"}},
		{name: "status label", principal: operator, criteria: services.Criteria{StatusLabel: "Delivered"},
			want: []string{"T3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := filter.Listing(tt.principal, fixtureViews(), tt.criteria)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, trackingNumbers(got))
		})
	}
}

func TestVisibilityFilter_Owned(t *testing.T) {
	filter := services.NewVisibilityFilter()
	ann := principal(t, 1, access.RoleUser)
	typeLetter := int64(10)
	typeParcel := int64(11)

	t.Run("only sent or received and never deleted", func(t *testing.T) {
		got, err := filter.Owned(ann, fixtureViews(), services.Criteria{IncludeDeleted: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"T1", "T3"}, trackingNumbers(got))
	})

	t.Run("status label filter", func(t *testing.T) {
		got, err := filter.Owned(ann, fixtureViews(), services.Criteria{StatusLabel: "In transit"})
		require.NoError(t, err)
		assert.Equal(t, []string{"T1"}, trackingNumbers(got))
	})

	t.Run("never leaks foreign packages for any criteria", func(t *testing.T) {
		criteria := []services.Criteria{
			{}, {Search: "T2"}, {Search: "Bob Ray"}, {Search: "Cat Moe"}, {TypeID: &typeParcel},
			{TypeID: &typeLetter}, {Search: "T4", IncludeDeleted: true}, {StatusLabel: "Delivered"},
		}
		for _, c := range criteria {
			got, err := filter.Owned(ann, fixtureViews(), c)
			require.NoError(t, err)
			for _, v := range got {
				assert.True(t, v.SenderID == 1 || v.ReceiverID == 1, v.TrackingNumber)
				assert.False(t, v.IsDeleted)
			}
		}
	})

	t.Run("anonymous is rejected", func(t *testing.T) {
		_, err := filter.Owned(access.Principal{}, fixtureViews(), services.Criteria{})
		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}

func TestVisibilityFilter_Inspect(t *testing.T) {
	filter := services.NewVisibilityFilter()
	views := fixtureViews()

	require.NoError(t, filter.Inspect(principal(t, 2, access.RoleUser), views[0]))
	require.NoError(t, filter.Inspect(principal(t, 9, access.RoleOperator), views[3]))
	require.ErrorIs(t, filter.Inspect(principal(t, 9, access.RoleUser), views[0]), errs.ErrAccessDenied)
	require.ErrorIs(t, filter.Inspect(access.Principal{}, views[0]), errs.ErrUnauthenticated)
}
