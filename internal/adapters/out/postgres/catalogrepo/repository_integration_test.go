package catalogrepo_test

import (
	"context"
	"testing"
	"time"

	"parceltrack/internal/adapters/out/postgres/catalogrepo"
	"parceltrack/internal/adapters/out/postgres/pgtest"
	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/catalog"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(key string, aggregate any) {
	m.Called(key, aggregate)
}

type CatalogRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *catalogrepo.GormCatalogRepository
	tracker    *MockAggregateTracker
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = catalogrepo.NewGormCatalogRepository(suite.database.DB, suite.tracker)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestAdd_ThenGet_EachKind() {
	ctx := context.Background()
	tests := []struct {
		kind    catalog.Kind
		name    string
		address string
	}{
		{catalog.KindPackageType, "letter", ""},
		{catalog.KindPackageStatus, "sorted", ""},
		{catalog.KindFacility, "North Hub", "1 North Rd"},
	}

	for _, tt := range tests {
		suite.Run(tt.kind.String(), func() {
			entry, err := catalog.NewEntry(tt.kind, tt.name, tt.address)
			suite.Require().NoError(err)

			id, err := suite.repository.Add(ctx, entry)
			suite.Require().NoError(err)
			suite.Positive(id)

			stored, err := suite.repository.Get(ctx, tt.kind, id)
			suite.Require().NoError(err)
			suite.Equal(id, stored.ID())
			suite.Equal(tt.kind, stored.Kind())
			suite.Equal(tt.name, stored.Name())
			suite.Equal(tt.address, stored.Address())

			exists, err := suite.repository.Exists(ctx, tt.kind, id)
			suite.Require().NoError(err)
			suite.True(exists)
		})
	}
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestAdd_DuplicateName_ReturnsAlreadyExists() {
	ctx := context.Background()
	first, err := catalog.NewEntry(catalog.KindPackageStatus, "sorted", "")
	suite.Require().NoError(err)
	_, err = suite.repository.Add(ctx, first)
	suite.Require().NoError(err)

	second, err := catalog.NewEntry(catalog.KindPackageStatus, "sorted", "")
	suite.Require().NoError(err)
	_, err = suite.repository.Add(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestKindsDoNotShareIDs() {
	ctx := context.Background()
	typeID, err := suite.database.AddPackageType("letter")
	suite.Require().NoError(err)

	exists, err := suite.repository.Exists(ctx, catalog.KindPackageType, typeID)
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.Exists(ctx, catalog.KindFacility, typeID)
	suite.Require().NoError(err)
	suite.False(exists)

	_, err = suite.repository.Get(ctx, catalog.KindPackageStatus, typeID)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestUpdate_RenamesFacility() {
	ctx := context.Background()
	id, err := suite.database.AddFacility("North Hub", "1 North Rd")
	suite.Require().NoError(err)

	entry, err := suite.repository.Get(ctx, catalog.KindFacility, id)
	suite.Require().NoError(err)
	address := "9 New Rd"
	suite.Require().NoError(entry.Rename(nil, &address))
	suite.Require().NoError(suite.repository.Update(ctx, entry))

	stored, err := suite.repository.Get(ctx, catalog.KindFacility, id)
	suite.Require().NoError(err)
	suite.Equal("North Hub", stored.Name())
	suite.Equal("9 New Rd", stored.Address())
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestDelete_Unreferenced_Removes() {
	ctx := context.Background()
	id, err := suite.database.AddPackageType("letter")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Delete(ctx, catalog.KindPackageType, id))

	exists, err := suite.repository.Exists(ctx, catalog.KindPackageType, id)
	suite.Require().NoError(err)
	suite.False(exists)
	suite.Require().ErrorIs(suite.repository.Delete(ctx, catalog.KindPackageType, id), errs.ErrObjectNotFound)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestDelete_Referenced_ReturnsIsReferenced() {
	ctx := context.Background()
	userID, err := suite.database.AddUser("ann", "Ann", "Lee", access.RoleUser)
	suite.Require().NoError(err)
	typeID, err := suite.database.AddPackageType("letter")
	suite.Require().NoError(err)
	statusID, err := suite.database.AddPackageStatus("sorted")
	suite.Require().NoError(err)
	facilityID, err := suite.database.AddFacility("North Hub", "1 North Rd")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.database.AddPackage(pgtest.PackageRow{
		TrackingNumber: "T1", SenderID: userID, ReceiverID: userID, TypeID: typeID,
	}))
	_, err = suite.database.AddHistory("T1", statusID, facilityID, time.Now().UTC())
	suite.Require().NoError(err)

	tests := []struct {
		kind catalog.Kind
		id   int64
		by   string
	}{
		{catalog.KindPackageType, typeID, "packages"},
		{catalog.KindPackageStatus, statusID, "status_history"},
		{catalog.KindFacility, facilityID, "status_history"},
	}
	for _, tt := range tests {
		suite.Run(tt.kind.String(), func() {
			err := suite.repository.Delete(ctx, tt.kind, tt.id)
			suite.Require().ErrorIs(err, errs.ErrObjectIsReferenced)
			suite.Contains(err.Error(), tt.by)
		})
	}
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestUnknownKind_ReturnsInvalid() {
	_, err := suite.repository.Exists(context.Background(), catalog.KindUnknown, 1)

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func TestCatalogRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogRepositoryIntegrationTestSuite))
}
