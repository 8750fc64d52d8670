package cmd

import (
	"fmt"
	"log/slog"

	"parceltrack/internal/adapters/in/http"
	"parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/jobs"
	"parceltrack/internal/pkg/authtoken"
	"parceltrack/internal/pkg/password"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	issuer     *authtoken.Issuer
	hasher     password.BcryptHasher
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	issuer, err := authtoken.NewIssuer(configs.JWTSecret, configs.TokenTTL)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("create token issuer: %w", err)
	}

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		issuer:     issuer,
		hasher:     password.NewBcryptHasher(configs.BcryptCost),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) newUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) newUserUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) newCatalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

// Package and ledger commands

func (c *CompositionRoot) CreateCreatePackageCommandHandler() commands.CreatePackageCommandHandler {
	return commands.NewCreatePackageCommandHandler(c.newUoWFactory())
}

func (c *CompositionRoot) CreateUpdatePackageCommandHandler() commands.UpdatePackageCommandHandler {
	return commands.NewUpdatePackageCommandHandler(c.newUoWFactory())
}

func (c *CompositionRoot) CreateDeletePackageCommandHandler() commands.DeletePackageCommandHandler {
	return commands.NewDeletePackageCommandHandler(c.newUoWFactory())
}

func (c *CompositionRoot) CreateAppendStatusCommandHandler() commands.AppendStatusCommandHandler {
	return commands.NewAppendStatusCommandHandler(c.newUoWFactory())
}

func (c *CompositionRoot) CreateCorrectStatusRecordCommandHandler() commands.CorrectStatusRecordCommandHandler {
	return commands.NewCorrectStatusRecordCommandHandler(c.newUoWFactory())
}

func (c *CompositionRoot) CreateDeleteStatusRecordCommandHandler() commands.DeleteStatusRecordCommandHandler {
	return commands.NewDeleteStatusRecordCommandHandler(c.newUoWFactory())
}

// User commands

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.newUserUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateAuthenticateUserCommandHandler() commands.AuthenticateUserCommandHandler {
	return commands.NewAuthenticateUserCommandHandler(c.newUserUoWFactory(), c.hasher, c.issuer)
}

func (c *CompositionRoot) CreateRefreshTokenCommandHandler() commands.RefreshTokenCommandHandler {
	return commands.NewRefreshTokenCommandHandler(c.newUserUoWFactory(), c.issuer)
}

func (c *CompositionRoot) CreateUpdateUserCommandHandler() commands.UpdateUserCommandHandler {
	return commands.NewUpdateUserCommandHandler(c.newUserUoWFactory())
}

func (c *CompositionRoot) CreateChangePasswordCommandHandler() commands.ChangePasswordCommandHandler {
	return commands.NewChangePasswordCommandHandler(c.newUserUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	return commands.NewDeleteUserCommandHandler(c.newUserUoWFactory())
}

// Catalog commands

func (c *CompositionRoot) CreateCreateCatalogEntryCommandHandler() commands.CreateCatalogEntryCommandHandler {
	return commands.NewCreateCatalogEntryCommandHandler(c.newCatalogUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCatalogEntryCommandHandler() commands.UpdateCatalogEntryCommandHandler {
	return commands.NewUpdateCatalogEntryCommandHandler(c.newCatalogUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCatalogEntryCommandHandler() commands.DeleteCatalogEntryCommandHandler {
	return commands.NewDeleteCatalogEntryCommandHandler(c.newCatalogUoWFactory())
}

// HTTPHandlers wires every use case into the HTTP adapter. Command handlers have
// pointer receivers, so their addresses are handed over.
func (c *CompositionRoot) HTTPHandlers() http.Handlers {
	createPackage := c.CreateCreatePackageCommandHandler()
	updatePackage := c.CreateUpdatePackageCommandHandler()
	deletePackage := c.CreateDeletePackageCommandHandler()
	appendStatus := c.CreateAppendStatusCommandHandler()
	correctStatusRecord := c.CreateCorrectStatusRecordCommandHandler()
	deleteStatusRecord := c.CreateDeleteStatusRecordCommandHandler()
	registerUser := c.CreateRegisterUserCommandHandler()
	authenticateUser := c.CreateAuthenticateUserCommandHandler()
	refreshToken := c.CreateRefreshTokenCommandHandler()
	updateUser := c.CreateUpdateUserCommandHandler()
	changePassword := c.CreateChangePasswordCommandHandler()
	deleteUser := c.CreateDeleteUserCommandHandler()
	createCatalogEntry := c.CreateCreateCatalogEntryCommandHandler()
	updateCatalogEntry := c.CreateUpdateCatalogEntryCommandHandler()
	deleteCatalogEntry := c.CreateDeleteCatalogEntryCommandHandler()

	return http.Handlers{
		CreatePackage: &createPackage,
		UpdatePackage: &updatePackage,
		DeletePackage: &deletePackage,

		AppendStatus:        &appendStatus,
		CorrectStatusRecord: &correctStatusRecord,
		DeleteStatusRecord:  &deleteStatusRecord,

		RegisterUser:     &registerUser,
		AuthenticateUser: &authenticateUser,
		RefreshToken:     &refreshToken,
		UpdateUser:       &updateUser,
		ChangePassword:   &changePassword,
		DeleteUser:       &deleteUser,

		CreateCatalogEntry: &createCatalogEntry,
		UpdateCatalogEntry: &updateCatalogEntry,
		DeleteCatalogEntry: &deleteCatalogEntry,

		ListPackages:      queries.NewListPackagesQueryHandler(c.gormDB),
		ListMyPackages:    queries.NewListMyPackagesQueryHandler(c.gormDB),
		GetPackage:        queries.NewGetPackageQueryHandler(c.gormDB),
		GetPackageHistory: queries.NewGetPackageHistoryQueryHandler(c.gormDB),
		GetCurrentStatus:  queries.NewGetCurrentStatusQueryHandler(c.gormDB),
		ListStatusHistory: queries.NewListStatusHistoryQueryHandler(c.gormDB),
		ListUsers:         queries.NewListUsersQueryHandler(c.gormDB),
		GetUser:           queries.NewGetUserQueryHandler(c.gormDB),
		ListCatalog:       queries.NewListCatalogQueryHandler(c.gormDB),
		GetCatalogEntry:   queries.NewGetCatalogEntryQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(c.HTTPHandlers(), c.issuer, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	stale := jobs.NewStalePackageJob(
		queries.NewListStalePackagesQueryHandler(c.gormDB),
		c.configs.StalePackageCron,
		c.configs.StalePackageAfter,
		c.logger,
	)
	return jobs.NewJobManager(stale)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}
