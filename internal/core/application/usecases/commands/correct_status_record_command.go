package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrCorrectStatusRecordCommandIsNotConstructed = errors.New(
	"CorrectStatusRecordCommand must be created via NewCorrectStatusRecordCommand constructor",
)

// CorrectStatusRecordCommand is the administrative fix of a stored history record.
// It replaces package, status and facility; the record keeps its id and timestamp.
type CorrectStatusRecordCommand struct { //nolint:recvcheck //using for validation
	principal      access.Principal
	recordID       int64
	trackingNumber kernel.TrackingNumber
	statusID       int64
	facilityID     int64

	guard guard.ConstructorGuard
}

func NewCorrectStatusRecordCommand(
	principal access.Principal, recordID int64, trackingNumber string, statusID, facilityID int64,
) (CorrectStatusRecordCommand, error) {
	cmd := CorrectStatusRecordCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}

	tn, tnErr := kernel.NewTrackingNumber(trackingNumber)
	if err := errors.Join(
		setID("id", &cmd.recordID, recordID),
		tnErr,
		setID("status_id", &cmd.statusID, statusID),
		setID("facility_id", &cmd.facilityID, facilityID),
	); err != nil {
		return CorrectStatusRecordCommand{}, err
	}
	cmd.trackingNumber = tn

	return cmd, nil
}

func (c CorrectStatusRecordCommand) Validate() error {
	return c.guard.Validate(ErrCorrectStatusRecordCommandIsNotConstructed)
}

func (c CorrectStatusRecordCommand) Principal() access.Principal {
	return c.principal
}

func (c CorrectStatusRecordCommand) RecordID() int64 {
	return c.recordID
}

func (c CorrectStatusRecordCommand) TrackingNumber() kernel.TrackingNumber {
	return c.trackingNumber
}

func (c CorrectStatusRecordCommand) StatusID() int64 {
	return c.statusID
}

func (c CorrectStatusRecordCommand) FacilityID() int64 {
	return c.facilityID
}
