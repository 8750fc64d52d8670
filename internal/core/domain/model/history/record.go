package history

import (
	"errors"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

// Record is one status event of a package: the status it entered and the facility
// where that happened, at recordedAt.
//
// Records are append-only in the ordinary flow. Correct is reserved for administrative
// fixes and is the only method that changes a stored record.
type Record struct {
	id             int64
	trackingNumber kernel.TrackingNumber
	statusID       int64
	facilityID     int64
	recordedAt     time.Time

	isConstructed bool
}

// NewRecord creates a record that has not been stored yet. Its id is 0 until storage
// assigns one.
func NewRecord(trackingNumber kernel.TrackingNumber, statusID, facilityID int64, recordedAt time.Time) (*Record, error) {
	r := &Record{isConstructed: true}

	if err := errors.Join(
		r.setTrackingNumber(trackingNumber),
		setReference("status_id", &r.statusID, statusID),
		setReference("facility_id", &r.facilityID, facilityID),
		r.setRecordedAt(recordedAt),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRecord rebuilds a stored record.
func RestoreRecord(
	id int64, trackingNumber kernel.TrackingNumber, statusID, facilityID int64, recordedAt time.Time,
) (*Record, error) {
	r, err := NewRecord(trackingNumber, statusID, facilityID, recordedAt)
	if err != nil {
		return nil, err
	}
	if err := setReference("id", &r.id, id); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

func (r *Record) ID() int64 {
	return r.id
}

func (r *Record) TrackingNumber() kernel.TrackingNumber {
	return r.trackingNumber
}

func (r *Record) StatusID() int64 {
	return r.statusID
}

func (r *Record) FacilityID() int64 {
	return r.facilityID
}

func (r *Record) RecordedAt() time.Time {
	return r.recordedAt
}

// Correct replaces the status, facility and package of the record. recordedAt and id
// are kept. Nothing changes when any argument is invalid.
func (r *Record) Correct(trackingNumber kernel.TrackingNumber, statusID, facilityID int64) error {
	next := *r
	if err := errors.Join(
		next.setTrackingNumber(trackingNumber),
		setReference("status_id", &next.statusID, statusID),
		setReference("facility_id", &next.facilityID, facilityID),
	); err != nil {
		return err
	}
	*r = next
	return nil
}

// After reports whether r happened after other in ledger order: later recordedAt
// first, then the higher id for equal timestamps.
func (r *Record) After(other *Record) bool {
	if !r.recordedAt.Equal(other.recordedAt) {
		return r.recordedAt.After(other.recordedAt)
	}
	return r.id > other.id
}

func (r *Record) setTrackingNumber(tn kernel.TrackingNumber) error {
	if err := tn.Validate(); err != nil {
		return err
	}
	r.trackingNumber = tn
	return nil
}

func (r *Record) setRecordedAt(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("recorded_at")
	}
	r.recordedAt = t
	return nil
}

func setReference(name string, field *int64, id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is not greater than 0", id))
	}
	*field = id
	return nil
}
