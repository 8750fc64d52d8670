package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/catalog"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
)

// CreatePackageCommandHandler registers new packages.
//
// Any authenticated principal may create a package. Users may only declare packages
// they send themselves; operators and admins may declare any sender. Sender,
// receiver and type must exist.
type CreatePackageCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreatePackageCommandHandler(uowFactory UoWFactory) CreatePackageCommandHandler {
	return CreatePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreatePackageCommandHandler) Handle(ctx context.Context, cmd CreatePackageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p := cmd.Principal()
	if err := p.Require(access.RoleUser, "create package"); err != nil {
		return err
	}
	if !p.IsAtLeast(access.RoleOperator) && cmd.SenderID() != p.ID() {
		return errs.NewAccessDeniedError("create package", "users may only send packages as themselves")
	}

	pkg, err := parcel.NewPackage(
		cmd.TrackingNumber(), cmd.SenderID(), cmd.ReceiverID(), cmd.TypeID(),
		cmd.Dimensions(), cmd.Cost(), time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	if err = ensureActiveUser(ctx, userRepo, "sender_id", cmd.SenderID()); err != nil {
		return err
	}
	if err = ensureActiveUser(ctx, userRepo, "receiver_id", cmd.ReceiverID()); err != nil {
		return err
	}
	if err = ensureCatalogEntry(ctx, uow.CatalogRepository(), catalog.KindPackageType, cmd.TypeID()); err != nil {
		return err
	}

	if err = uow.PackageRepository().Add(ctx, pkg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
