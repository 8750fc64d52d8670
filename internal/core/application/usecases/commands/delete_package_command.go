package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrDeletePackageCommandIsNotConstructed = errors.New(
	"DeletePackageCommand must be created via NewDeletePackageCommand constructor",
)

// DeletePackageCommand removes a package. A soft delete only flags the package;
// a permanent delete removes the row with its history and retires the tracking number.
type DeletePackageCommand struct { //nolint:recvcheck //using for validation
	principal      access.Principal
	trackingNumber kernel.TrackingNumber
	permanent      bool

	guard guard.ConstructorGuard
}

func NewDeletePackageCommand(principal access.Principal, trackingNumber string, permanent bool) (DeletePackageCommand, error) {
	tn, err := kernel.NewTrackingNumber(trackingNumber)
	if err != nil {
		return DeletePackageCommand{}, err
	}

	return DeletePackageCommand{
		principal:      principal,
		trackingNumber: tn,
		permanent:      permanent,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c DeletePackageCommand) Validate() error {
	return c.guard.Validate(ErrDeletePackageCommandIsNotConstructed)
}

func (c DeletePackageCommand) Principal() access.Principal {
	return c.principal
}

func (c DeletePackageCommand) TrackingNumber() kernel.TrackingNumber {
	return c.trackingNumber
}

func (c DeletePackageCommand) Permanent() bool {
	return c.permanent
}
