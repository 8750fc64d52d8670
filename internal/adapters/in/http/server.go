package http

import (
	"context"
	"log/slog"
	"reflect"
	"strings"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

// CommandHandler runs a command that returns nothing but an error.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// ResultHandler runs a command or query that produces a result.
type ResultHandler[C, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

// Handlers groups every use case the HTTP adapter exposes. The composition root
// fills it; tests substitute mocks field by field.
type Handlers struct {
	// Package commands
	CreatePackage CommandHandler[commands.CreatePackageCommand]
	UpdatePackage CommandHandler[commands.UpdatePackageCommand]
	DeletePackage CommandHandler[commands.DeletePackageCommand]

	// Ledger commands
	AppendStatus        ResultHandler[commands.AppendStatusCommand, int64]
	CorrectStatusRecord CommandHandler[commands.CorrectStatusRecordCommand]
	DeleteStatusRecord  CommandHandler[commands.DeleteStatusRecordCommand]

	// User commands
	RegisterUser     ResultHandler[commands.RegisterUserCommand, int64]
	AuthenticateUser ResultHandler[commands.AuthenticateUserCommand, string]
	RefreshToken     ResultHandler[commands.RefreshTokenCommand, string]
	UpdateUser       CommandHandler[commands.UpdateUserCommand]
	ChangePassword   CommandHandler[commands.ChangePasswordCommand]
	DeleteUser       CommandHandler[commands.DeleteUserCommand]

	// Catalog commands
	CreateCatalogEntry ResultHandler[commands.CreateCatalogEntryCommand, int64]
	UpdateCatalogEntry CommandHandler[commands.UpdateCatalogEntryCommand]
	DeleteCatalogEntry CommandHandler[commands.DeleteCatalogEntryCommand]

	// Queries
	ListPackages      ResultHandler[queries.ListPackagesQuery, []parcel.View]
	ListMyPackages    ResultHandler[queries.ListMyPackagesQuery, []parcel.View]
	GetPackage        ResultHandler[queries.GetPackageQuery, parcel.View]
	GetPackageHistory ResultHandler[queries.GetPackageHistoryQuery, []queries.HistoryEntryResponse]
	GetCurrentStatus  ResultHandler[queries.GetCurrentStatusQuery, *queries.HistoryEntryResponse]
	ListStatusHistory ResultHandler[queries.ListStatusHistoryQuery, []queries.HistoryEntryResponse]
	ListUsers         ResultHandler[queries.ListUsersQuery, []queries.UserResponse]
	GetUser           ResultHandler[queries.GetUserQuery, queries.UserResponse]
	ListCatalog       ResultHandler[queries.ListCatalogQuery, []queries.CatalogEntryResponse]
	GetCatalogEntry   ResultHandler[queries.GetCatalogEntryQuery, queries.CatalogEntryResponse]
}

// Server translates HTTP requests into commands and queries. It holds no state of
// its own beyond its collaborators, so one instance serves all requests.
type Server struct {
	handlers Handlers
	tokens   ports.TokenIssuer
	validate *validator.Validate
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, tokens ports.TokenIssuer, logger *slog.Logger) *Server {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Server{
		handlers: handlers,
		tokens:   tokens,
		validate: validate,
		logger:   logger.With("component", "http"),
	}
}
