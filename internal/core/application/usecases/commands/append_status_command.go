package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrAppendStatusCommandIsNotConstructed = errors.New(
	"AppendStatusCommand must be created via NewAppendStatusCommand constructor",
)

// AppendStatusCommand records that a package entered a status at a facility.
type AppendStatusCommand struct { //nolint:recvcheck //using for validation
	principal      access.Principal
	trackingNumber kernel.TrackingNumber
	statusID       int64
	facilityID     int64

	guard guard.ConstructorGuard
}

func NewAppendStatusCommand(
	principal access.Principal, trackingNumber string, statusID, facilityID int64,
) (AppendStatusCommand, error) {
	cmd := AppendStatusCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}

	tn, tnErr := kernel.NewTrackingNumber(trackingNumber)
	if err := errors.Join(
		tnErr,
		setID("status_id", &cmd.statusID, statusID),
		setID("facility_id", &cmd.facilityID, facilityID),
	); err != nil {
		return AppendStatusCommand{}, err
	}
	cmd.trackingNumber = tn

	return cmd, nil
}

func (c AppendStatusCommand) Validate() error {
	return c.guard.Validate(ErrAppendStatusCommandIsNotConstructed)
}

func (c AppendStatusCommand) Principal() access.Principal {
	return c.principal
}

func (c AppendStatusCommand) TrackingNumber() kernel.TrackingNumber {
	return c.trackingNumber
}

func (c AppendStatusCommand) StatusID() int64 {
	return c.statusID
}

func (c AppendStatusCommand) FacilityID() int64 {
	return c.facilityID
}
