package queries_test

import (
	"context"

	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/errs"

	"github.com/samber/lo"
)

func trackingNumbers(views []parcel.View) []string {
	return lo.Map(views, func(v parcel.View, _ int) string { return v.TrackingNumber })
}

func (suite *QueriesIntegrationTestSuite) listPackages(p access.Principal, c services.Criteria) ([]parcel.View, error) {
	handler := queries.NewListPackagesQueryHandler(suite.database.DB)
	return handler.Handle(context.Background(), queries.NewListPackagesQuery(p, c))
}

func (suite *QueriesIntegrationTestSuite) TestListPackages_OperatorSeesLivePackagesNewestFirst() {
	views, err := suite.listPackages(suite.sorter(), services.Criteria{})

	suite.Require().NoError(err)
	suite.Equal([]string{"T4", "T2", "T1"}, trackingNumbers(views))

	t1 := views[2]
	suite.Equal("Ann Lee", t1.SenderName)
	suite.Equal("Bob Stone", t1.ReceiverName)
	suite.Equal("letter", t1.TypeLabel)
	suite.Equal("300", t1.Cost.String())
	suite.Require().NotNil(t1.Status)
	suite.Equal("delivered", t1.Status.StatusLabel, "equal timestamps are broken by the higher id")
	suite.Equal(suite.t1HistoryIDs[2], t1.Status.RecordID)
	suite.Equal("South Hub", t1.Status.FacilityName)

	suite.Nil(views[0].Status, "T4 has no history yet")
}

func (suite *QueriesIntegrationTestSuite) TestListPackages_AdminMayIncludeDeleted() {
	views, err := suite.listPackages(suite.admin(), services.Criteria{IncludeDeleted: true})

	suite.Require().NoError(err)
	suite.Equal([]string{"T4", "T3", "T2", "T1"}, trackingNumbers(views))
	suite.True(views[1].IsDeleted)
}

func (suite *QueriesIntegrationTestSuite) TestListPackages_Authorization() {
	tests := []struct {
		name      string
		principal access.Principal
		criteria  services.Criteria
		want      error
	}{
		{"anonymous", access.Principal{}, services.Criteria{}, errs.ErrUnauthenticated},
		{"plain user", suite.ann(), services.Criteria{}, errs.ErrAccessDenied},
		{"operator including deleted", suite.sorter(), services.Criteria{IncludeDeleted: true}, errs.ErrAccessDenied},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			views, err := suite.listPackages(tt.principal, tt.criteria)
			suite.Nil(views)
			suite.Require().ErrorIs(err, tt.want)
		})
	}
}

func (suite *QueriesIntegrationTestSuite) TestListPackages_Filters() {
	tests := []struct {
		name     string
		criteria services.Criteria
		want     []string
	}{
		{"search tracking number", services.Criteria{Search: "T1"}, []string{"T1"}},
		{"search sender name", services.Criteria{Search: "Ann Lee"}, []string{"T4", "T1"}},
		{"search receiver name", services.Criteria{Search: "Carl Moss"}, []string{"T4", "T2"}},
		{"search is not a substring match", services.Criteria{Search: "Ann"}, []string{}},
		{"no match is empty", services.Criteria{Search: "T9"}, []string{}},
		{"type", services.Criteria{TypeID: &suite.boxID}, []string{"T4", "T2"}},
		{"search and type", services.Criteria{Search: "Ann Lee", TypeID: &suite.boxID}, []string{"T4"}},
		{"status label", services.Criteria{StatusLabel: "accepted"}, []string{"T2"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			views, err := suite.listPackages(suite.sorter(), tt.criteria)
			suite.Require().NoError(err)
			suite.Equal(tt.want, trackingNumbers(views))
		})
	}
}

func (suite *QueriesIntegrationTestSuite) TestListPackages_InvalidQuery_ReturnsError() {
	handler := queries.NewListPackagesQueryHandler(suite.database.DB)

	views, err := handler.Handle(context.Background(), queries.ListPackagesQuery{})

	suite.Nil(views)
	suite.Require().ErrorIs(err, queries.ErrListPackagesQueryIsNotConstructed)
}

func (suite *QueriesIntegrationTestSuite) TestListPackages_ContextCancellation_ReturnsError() {
	handler := queries.NewListPackagesQueryHandler(suite.database.DB)

	views, err := handler.Handle(cancelledContext(), queries.NewListPackagesQuery(suite.sorter(), services.Criteria{}))

	suite.Nil(views)
	suite.Require().Error(err)
}

func (suite *QueriesIntegrationTestSuite) TestListMyPackages_OnlyOwnLivePackages() {
	handler := queries.NewListMyPackagesQueryHandler(suite.database.DB)
	tests := []struct {
		name      string
		principal access.Principal
		criteria  services.Criteria
		want      []string
	}{
		{"ann sends T1 and T4, T3 is deleted", suite.ann(), services.Criteria{}, []string{"T4", "T1"}},
		{"deleted stay hidden", suite.ann(), services.Criteria{IncludeDeleted: true}, []string{"T4", "T1"}},
		{"bob", suite.bob(), services.Criteria{}, []string{"T2", "T1"}},
		{"carl receives T2 and T4", suite.carl(), services.Criteria{}, []string{"T4", "T2"}},
		{"status filter", suite.ann(), services.Criteria{StatusLabel: "delivered"}, []string{"T1"}},
		{"search never widens", suite.carl(), services.Criteria{Search: "T1"}, []string{}},
		{"admin has no packages of their own", suite.admin(), services.Criteria{}, []string{}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			views, err := handler.Handle(context.Background(), queries.NewListMyPackagesQuery(tt.principal, tt.criteria))
			suite.Require().NoError(err)
			suite.Equal(tt.want, trackingNumbers(views))
		})
	}
}

func (suite *QueriesIntegrationTestSuite) TestListMyPackages_Anonymous_ReturnsUnauthenticated() {
	handler := queries.NewListMyPackagesQueryHandler(suite.database.DB)

	_, err := handler.Handle(context.Background(), queries.NewListMyPackagesQuery(access.Principal{}, services.Criteria{}))

	suite.Require().ErrorIs(err, errs.ErrUnauthenticated)
}

func (suite *QueriesIntegrationTestSuite) TestGetPackage() {
	handler := queries.NewGetPackageQueryHandler(suite.database.DB)
	get := func(p access.Principal, tn string) (parcel.View, error) {
		query, err := queries.NewGetPackageQuery(p, tn)
		suite.Require().NoError(err)
		return handler.Handle(context.Background(), query)
	}

	view, err := get(suite.bob(), "T1")
	suite.Require().NoError(err)
	suite.Equal("T1", view.TrackingNumber)
	suite.Equal("delivered", view.StatusLabel())

	view, err = get(suite.carl(), "T3")
	suite.Require().NoError(err)
	suite.True(view.IsDeleted, "owners still reach their soft-deleted packages")

	_, err = get(suite.sorter(), "T1")
	suite.Require().NoError(err)

	_, err = get(suite.carl(), "T1")
	suite.Require().ErrorIs(err, errs.ErrAccessDenied)

	_, err = get(suite.sorter(), "NOPE")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}
