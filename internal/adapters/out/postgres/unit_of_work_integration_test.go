package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/adapters/out/postgres/pgtest"
	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/history"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory

	userID     int64
	typeID     int64
	statusID   int64
	facilityID int64
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	var err error
	suite.userID, err = suite.database.AddUser("ann", "Ann", "Lee", access.RoleUser)
	suite.Require().NoError(err)
	suite.typeID, err = suite.database.AddPackageType("parcel")
	suite.Require().NoError(err)
	suite.statusID, err = suite.database.AddPackageStatus("accepted")
	suite.Require().NoError(err)
	suite.facilityID, err = suite.database.AddFacility("North Hub", "1 North Rd")
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMigrate_ForeignKeysExistAndRerunIsNoop() {
	suite.Require().NoError(postgres_adapter.Migrate(suite.database.DB))

	for _, name := range postgres_adapter.ForeignKeyNames() {
		var count int64
		suite.Require().NoError(suite.database.DB.Raw(
			"SELECT count(*) FROM information_schema.table_constraints WHERE constraint_name = ?", name,
		).Scan(&count).Error)
		suite.Equal(int64(1), count, name)
	}
}

// A history insert racing a hard delete of its package must fail once the delete
// has committed.
func (suite *UnitOfWorkIntegrationTestSuite) TestAppendAfterConcurrentHardDelete_ReturnsNotFound() {
	ctx := context.Background()
	suite.Require().NoError(suite.database.AddPackage(pgtest.PackageRow{
		TrackingNumber: "T1", SenderID: suite.userID, ReceiverID: suite.userID, TypeID: suite.typeID,
	}))

	appender := suite.factory.Create()
	suite.Require().NoError(appender.Begin(ctx))
	defer func() { _ = appender.Rollback(ctx) }()
	_, err := appender.PackageRepository().Get(ctx, kernel.MustTrackingNumber("T1"))
	suite.Require().NoError(err)

	deleter := suite.factory.Create()
	suite.Require().NoError(deleter.Begin(ctx))
	_, err = deleter.HistoryRepository().DeleteByTrackingNumber(ctx, kernel.MustTrackingNumber("T1"))
	suite.Require().NoError(err)
	suite.Require().NoError(deleter.PackageRepository().Delete(ctx, kernel.MustTrackingNumber("T1")))
	suite.Require().NoError(deleter.Commit(ctx))

	record, err := history.NewRecord(kernel.MustTrackingNumber("T1"), suite.statusID, suite.facilityID, time.Now().UTC())
	suite.Require().NoError(err)
	_, err = appender.HistoryRepository().Add(ctx, record)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesSeparateInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.PackageRepository())
	suite.NotNil(uow1.HistoryRepository())
	suite.NotNil(uow1.UserRepository())
	suite.NotNil(uow1.CatalogRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "second Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitAndRollbackWithoutBegin_ReturnInvalidTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsPackageAndHistoryTogether() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	pkg := suite.newPackage("T1")
	suite.Require().NoError(uow.PackageRepository().Add(ctx, pkg))
	record, err := history.NewRecord(pkg.TrackingNumber(), suite.statusID, suite.facilityID, time.Now().UTC())
	suite.Require().NoError(err)
	_, err = uow.HistoryRepository().Add(ctx, record)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.count("packages"))
	suite.Equal(int64(1), suite.count("status_history"))
	tracked, ok := uow.(*postgres_adapter.GormUnitOfWork)
	suite.Require().True(ok)
	suite.Equal([]string{"T1", "history:1"}, tracked.TrackedKeys())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PackageRepository().Add(ctx, suite.newPackage("T1")))

	suite.Require().NoError(uow.Rollback(ctx))

	suite.Zero(suite.count("packages"))
	tracked, ok := uow.(*postgres_adapter.GormUnitOfWork)
	suite.Require().True(ok)
	suite.Empty(tracked.TrackedKeys())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUncommittedWritesAreIsolated() {
	ctx := context.Background()
	writer := suite.factory.Create()
	suite.Require().NoError(writer.Begin(ctx))
	suite.Require().NoError(writer.PackageRepository().Add(ctx, suite.newPackage("T1")))

	reader := suite.factory.Create()
	_, err := reader.PackageRepository().Get(ctx, kernel.MustTrackingNumber("T1"))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(writer.Commit(ctx))
	_, err = reader.PackageRepository().Get(ctx, kernel.MustTrackingNumber("T1"))
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCascadeDelete_InOneTransaction() {
	ctx := context.Background()
	tn := kernel.MustTrackingNumber("T1")
	suite.Require().NoError(suite.database.AddPackage(pgtest.PackageRow{
		TrackingNumber: "T1", SenderID: suite.userID, ReceiverID: suite.userID, TypeID: suite.typeID,
	}))
	for range 2 {
		_, err := suite.database.AddHistory("T1", suite.statusID, suite.facilityID, time.Now().UTC())
		suite.Require().NoError(err)
	}

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	removed, err := uow.HistoryRepository().DeleteByTrackingNumber(ctx, tn)
	suite.Require().NoError(err)
	suite.Equal(int64(2), removed)
	suite.Require().NoError(uow.PackageRepository().Delete(ctx, tn))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Zero(suite.count("packages"))
	suite.Zero(suite.count("status_history"))
	suite.Equal(int64(1), suite.count("retired_tracking_numbers"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWithoutTransaction_UsesPool() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.PackageRepository().Add(ctx, suite.newPackage("T1")))

	suite.Equal(int64(1), suite.count("packages"))
}

func (suite *UnitOfWorkIntegrationTestSuite) newPackage(tn string) *parcel.Package {
	dims, err := kernel.NewDimensions(1, 2, 3)
	suite.Require().NoError(err)
	pkg, err := parcel.NewPackage(kernel.MustTrackingNumber(tn), suite.userID, suite.userID, suite.typeID,
		dims, decimal.NewFromInt(10), time.Now().UTC())
	suite.Require().NoError(err)
	return pkg
}

func (suite *UnitOfWorkIntegrationTestSuite) count(table string) int64 {
	var n int64
	suite.Require().NoError(suite.database.DB.Table(table).Count(&n).Error)
	return n
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
