package queries_test

import (
	"context"
	"time"

	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/catalog"
	"parceltrack/internal/pkg/errs"

	"github.com/samber/lo"
)

func (suite *QueriesIntegrationTestSuite) listCatalog(
	p access.Principal, kind catalog.Kind,
) ([]queries.CatalogEntryResponse, error) {
	query, err := queries.NewListCatalogQuery(p, kind)
	suite.Require().NoError(err)
	return queries.NewListCatalogQueryHandler(suite.database.DB).Handle(context.Background(), query)
}

func (suite *QueriesIntegrationTestSuite) TestListCatalog_PublicKindsNeedNoPrincipal() {
	types, err := suite.listCatalog(access.Principal{}, catalog.KindPackageType)
	suite.Require().NoError(err)
	suite.Equal([]string{"letter", "box"},
		lo.Map(types, func(e queries.CatalogEntryResponse, _ int) string { return e.Name }))
	suite.Equal(catalog.KindPackageType, types[0].Kind)
	suite.Empty(types[0].Address)

	statuses, err := suite.listCatalog(access.Principal{}, catalog.KindPackageStatus)
	suite.Require().NoError(err)
	suite.Len(statuses, 3)
}

func (suite *QueriesIntegrationTestSuite) TestListCatalog_FacilitiesNeedOperator() {
	_, err := suite.listCatalog(access.Principal{}, catalog.KindFacility)
	suite.Require().ErrorIs(err, errs.ErrUnauthenticated)

	_, err = suite.listCatalog(suite.ann(), catalog.KindFacility)
	suite.Require().ErrorIs(err, errs.ErrAccessDenied)

	facilities, err := suite.listCatalog(suite.sorter(), catalog.KindFacility)
	suite.Require().NoError(err)
	suite.Require().Len(facilities, 2)
	suite.Equal("North Hub", facilities[0].Name)
	suite.Equal("1 North Rd", facilities[0].Address)
}

func (suite *QueriesIntegrationTestSuite) TestGetCatalogEntry() {
	handler := queries.NewGetCatalogEntryQueryHandler(suite.database.DB)
	get := func(p access.Principal, kind catalog.Kind, id int64) (queries.CatalogEntryResponse, error) {
		query, err := queries.NewGetCatalogEntryQuery(p, kind, id)
		suite.Require().NoError(err)
		return handler.Handle(context.Background(), query)
	}

	entry, err := get(access.Principal{}, catalog.KindPackageStatus, suite.deliveredID)
	suite.Require().NoError(err)
	suite.Equal("delivered", entry.Name)

	entry, err = get(suite.admin(), catalog.KindFacility, suite.southID)
	suite.Require().NoError(err)
	suite.Equal("2 South Rd", entry.Address)

	_, err = get(suite.bob(), catalog.KindFacility, suite.southID)
	suite.Require().ErrorIs(err, errs.ErrAccessDenied)

	_, err = get(access.Principal{}, catalog.KindPackageType, 999)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestListStalePackages() {
	handler := queries.NewListStalePackagesQueryHandler(suite.database.DB)
	now := suite.t0.Add(10 * time.Hour)

	query, err := queries.NewListStalePackagesQuery(now, time.Hour)
	suite.Require().NoError(err)
	stale, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(stale, 1, "only T4 is live and has no history")
	suite.Equal("T4", stale[0].TrackingNumber)
	suite.True(stale[0].CreatedAt.Equal(suite.t0.Add(3 * time.Hour)))

	query, err = queries.NewListStalePackagesQuery(now, 8*time.Hour)
	suite.Require().NoError(err)
	stale, err = handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(stale)
}
