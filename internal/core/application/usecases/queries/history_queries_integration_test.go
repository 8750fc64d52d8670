package queries_test

import (
	"context"
	"time"

	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/pkg/errs"

	"github.com/samber/lo"
)

func (suite *QueriesIntegrationTestSuite) packageHistory(
	p access.Principal, tn string,
) ([]queries.HistoryEntryResponse, error) {
	query, err := queries.NewGetPackageHistoryQuery(p, tn)
	suite.Require().NoError(err)
	return queries.NewGetPackageHistoryQueryHandler(suite.database.DB).Handle(context.Background(), query)
}

func (suite *QueriesIntegrationTestSuite) currentStatus(
	p access.Principal, tn string,
) (*queries.HistoryEntryResponse, error) {
	query, err := queries.NewGetCurrentStatusQuery(p, tn)
	suite.Require().NoError(err)
	return queries.NewGetCurrentStatusQueryHandler(suite.database.DB).Handle(context.Background(), query)
}

func (suite *QueriesIntegrationTestSuite) TestGetPackageHistory_ChronologicalWithIDTieBreak() {
	entries, err := suite.packageHistory(suite.ann(), "T1")

	suite.Require().NoError(err)
	suite.Equal(suite.t1HistoryIDs, lo.Map(entries, func(e queries.HistoryEntryResponse, _ int) int64 { return e.ID }))
	suite.Equal([]string{"accepted", "in transit", "delivered"},
		lo.Map(entries, func(e queries.HistoryEntryResponse, _ int) string { return e.StatusLabel }))
	for i := 1; i < len(entries); i++ {
		suite.False(entries[i].RecordedAt.Before(entries[i-1].RecordedAt))
	}
	suite.Equal("North Hub", entries[0].FacilityName)
	suite.Equal("1 North Rd", entries[0].FacilityAddress)
}

func (suite *QueriesIntegrationTestSuite) TestGetPackageHistory_Access() {
	_, err := suite.packageHistory(suite.bob(), "T1")
	suite.Require().NoError(err, "receiver")

	_, err = suite.packageHistory(suite.sorter(), "T1")
	suite.Require().NoError(err, "operator")

	_, err = suite.packageHistory(suite.carl(), "T1")
	suite.Require().ErrorIs(err, errs.ErrAccessDenied)

	_, err = suite.packageHistory(access.Principal{}, "T1")
	suite.Require().ErrorIs(err, errs.ErrUnauthenticated)
}

func (suite *QueriesIntegrationTestSuite) TestGetPackageHistory_SoftDeletedPackageKeepsHistory() {
	entries, err := suite.packageHistory(suite.admin(), "T3")

	suite.Require().NoError(err)
	suite.Len(entries, 1)
}

func (suite *QueriesIntegrationTestSuite) TestGetPackageHistory_NoRecords_ReturnsEmpty() {
	entries, err := suite.packageHistory(suite.ann(), "T4")

	suite.Require().NoError(err)
	suite.NotNil(entries)
	suite.Empty(entries)
}

func (suite *QueriesIntegrationTestSuite) TestGetPackageHistory_HardDeletedPackage_ReturnsNotFound() {
	suite.Require().NoError(suite.database.DB.Exec("DELETE FROM status_history WHERE tracking_number = 'T1'").Error)
	suite.Require().NoError(suite.database.DB.Exec("DELETE FROM packages WHERE tracking_number = 'T1'").Error)

	_, err := suite.packageHistory(suite.admin(), "T1")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.currentStatus(suite.admin(), "T1")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestGetCurrentStatus() {
	status, err := suite.currentStatus(suite.ann(), "T1")
	suite.Require().NoError(err)
	suite.Require().NotNil(status)
	suite.Equal(suite.t1HistoryIDs[2], status.ID)
	suite.Equal("delivered", status.StatusLabel)
	suite.Equal("South Hub", status.FacilityName)

	status, err = suite.currentStatus(suite.ann(), "T4")
	suite.Require().NoError(err)
	suite.Nil(status)

	_, err = suite.currentStatus(suite.carl(), "T1")
	suite.Require().ErrorIs(err, errs.ErrAccessDenied)

	_, err = suite.currentStatus(suite.ann(), "NOPE")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestGetCurrentStatus_FollowsLaterAppend() {
	_, err := suite.database.AddHistory("T2", suite.deliveredID, suite.southID, suite.t0.Add(5*time.Hour))
	suite.Require().NoError(err)

	status, err := suite.currentStatus(suite.bob(), "T2")

	suite.Require().NoError(err)
	suite.Require().NotNil(status)
	suite.Equal("delivered", status.StatusLabel)
}

func (suite *QueriesIntegrationTestSuite) TestListStatusHistory_ScopedByRole() {
	handler := queries.NewListStatusHistoryQueryHandler(suite.database.DB)
	list := func(p access.Principal) ([]string, error) {
		entries, err := handler.Handle(context.Background(), queries.NewListStatusHistoryQuery(p))
		return lo.Map(entries, func(e queries.HistoryEntryResponse, _ int) string { return e.TrackingNumber }), err
	}

	all, err := list(suite.sorter())
	suite.Require().NoError(err)
	suite.Equal([]string{"T1", "T1", "T1", "T2", "T3"}, all)

	annOnly, err := list(suite.ann())
	suite.Require().NoError(err)
	suite.Equal([]string{"T1", "T1", "T1", "T3"}, annOnly)

	carlOnly, err := list(suite.carl())
	suite.Require().NoError(err)
	suite.Equal([]string{"T2", "T3"}, carlOnly)

	_, err = list(access.Principal{})
	suite.Require().ErrorIs(err, errs.ErrUnauthenticated)
}

func (suite *QueriesIntegrationTestSuite) TestListStatusHistory_InvalidQuery_ReturnsError() {
	handler := queries.NewListStatusHistoryQueryHandler(suite.database.DB)

	_, err := handler.Handle(context.Background(), queries.ListStatusHistoryQuery{})

	suite.Require().ErrorIs(err, queries.ErrListStatusHistoryQueryIsNotConstructed)
}
