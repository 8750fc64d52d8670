package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var ErrUpdatePackageCommandIsNotConstructed = errors.New(
	"UpdatePackageCommand must be created via NewUpdatePackageCommand constructor",
)

// UpdatePackageCommand changes whitelisted fields of a package. An update with no
// fields is rejected here, before any storage call.
type UpdatePackageCommand struct { //nolint:recvcheck //using for validation
	principal      access.Principal
	trackingNumber kernel.TrackingNumber
	update         parcel.Update

	guard guard.ConstructorGuard
}

func NewUpdatePackageCommand(
	principal access.Principal, trackingNumber string, update parcel.Update,
) (UpdatePackageCommand, error) {
	tn, tnErr := kernel.NewTrackingNumber(trackingNumber)
	var updateErr error
	if update.IsEmpty() {
		updateErr = parcel.ErrEmptyUpdate
	}
	if err := errors.Join(tnErr, updateErr); err != nil {
		return UpdatePackageCommand{}, err
	}

	return UpdatePackageCommand{
		principal:      principal,
		trackingNumber: tn,
		update:         update,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c UpdatePackageCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePackageCommandIsNotConstructed)
}

func (c UpdatePackageCommand) Principal() access.Principal {
	return c.principal
}

func (c UpdatePackageCommand) TrackingNumber() kernel.TrackingNumber {
	return c.trackingNumber
}

func (c UpdatePackageCommand) Update() parcel.Update {
	return c.update
}
