package parcel

import (
	"errors"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrPackageIsNotConstructed is returned when a Package instance was not created
	// through NewPackage or RestorePackage.
	ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")
)

// Package is the aggregate root of the parcel lifecycle. Its identity is the
// tracking number; the numeric ids it carries only reference other records.
//
// Package follows these invariants:
//   - The tracking number is assigned once and never changes
//   - Sender, receiver and type reference positive ids
//   - Dimensions are positive and cost is not negative
//   - updatedAt never precedes createdAt
//
// Status is not part of the aggregate. The current status of a package is derived
// from its history records on every read.
type Package struct {
	trackingNumber kernel.TrackingNumber
	senderID       int64
	receiverID     int64
	typeID         int64
	dimensions     kernel.Dimensions
	cost           decimal.Decimal
	createdAt      time.Time
	updatedAt      time.Time
	deleted        bool

	isConstructed bool
}

// NewPackage creates a package that has never been stored. Both timestamps are set
// to now and the package starts out not deleted.
//
// Example:
//
//	tn, _ := kernel.NewTrackingNumber("T1")
//	dims, _ := kernel.NewDimensions(10, 20, 1.5)
//	pkg, err := parcel.NewPackage(tn, senderID, receiverID, typeID, dims, decimal.NewFromInt(300), time.Now())
func NewPackage(
	trackingNumber kernel.TrackingNumber,
	senderID, receiverID, typeID int64,
	dimensions kernel.Dimensions,
	cost decimal.Decimal,
	now time.Time,
) (*Package, error) {
	return RestorePackage(trackingNumber, senderID, receiverID, typeID, dimensions, cost, now, now, false)
}

// RestorePackage rebuilds a package from storage, keeping its stored timestamps and
// deleted flag.
func RestorePackage(
	trackingNumber kernel.TrackingNumber,
	senderID, receiverID, typeID int64,
	dimensions kernel.Dimensions,
	cost decimal.Decimal,
	createdAt, updatedAt time.Time,
	deleted bool,
) (*Package, error) {
	p := &Package{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		deleted:       deleted,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setTrackingNumber(trackingNumber),
		setReference("sender_id", &p.senderID, senderID),
		setReference("receiver_id", &p.receiverID, receiverID),
		setReference("type_id", &p.typeID, typeID),
		p.setDimensions(dimensions),
		p.setCost(cost),
		p.checkTimestamps(),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

// IsEqual compares packages by tracking number.
func (p *Package) IsEqual(other *Package) bool {
	return other != nil && p.trackingNumber.IsEqual(other.trackingNumber)
}

func (p *Package) TrackingNumber() kernel.TrackingNumber {
	return p.trackingNumber
}

func (p *Package) SenderID() int64 {
	return p.senderID
}

func (p *Package) ReceiverID() int64 {
	return p.receiverID
}

func (p *Package) TypeID() int64 {
	return p.typeID
}

func (p *Package) Dimensions() kernel.Dimensions {
	return p.dimensions
}

func (p *Package) Cost() decimal.Decimal {
	return p.cost
}

func (p *Package) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Package) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Package) IsDeleted() bool {
	return p.deleted
}

// OwnerIDs returns the sender and receiver ids used by ownership checks.
func (p *Package) OwnerIDs() (int64, int64) {
	return p.senderID, p.receiverID
}

// Apply changes the whitelisted fields present in u and refreshes updatedAt.
// Nothing is changed when any field is invalid.
func (p *Package) Apply(u Update, now time.Time) error {
	if u.IsEmpty() {
		return ErrEmptyUpdate
	}

	next := *p
	var dimErr error
	if u.Width != nil || u.Length != nil || u.Weight != nil {
		next.dimensions, dimErr = kernel.NewDimensions(
			valueOr(u.Width, p.dimensions.Width()),
			valueOr(u.Length, p.dimensions.Length()),
			valueOr(u.Weight, p.dimensions.Weight()),
		)
	}

	var errsList []error
	if u.SenderID != nil {
		errsList = append(errsList, setReference("sender_id", &next.senderID, *u.SenderID))
	}
	if u.ReceiverID != nil {
		errsList = append(errsList, setReference("receiver_id", &next.receiverID, *u.ReceiverID))
	}
	if u.TypeID != nil {
		errsList = append(errsList, setReference("type_id", &next.typeID, *u.TypeID))
	}
	if u.Cost != nil {
		errsList = append(errsList, next.setCost(*u.Cost))
	}
	errsList = append(errsList, dimErr)
	if err := errors.Join(errsList...); err != nil {
		return err
	}

	next.touch(now)
	*p = next
	return nil
}

// MarkDeleted soft-deletes the package. Deleting an already deleted package is a no-op
// and reports false.
func (p *Package) MarkDeleted(now time.Time) bool {
	if p.deleted {
		return false
	}
	p.deleted = true
	p.touch(now)
	return true
}

func (p *Package) touch(now time.Time) {
	if now.Before(p.createdAt) {
		now = p.createdAt
	}
	p.updatedAt = now
}

func (p *Package) setTrackingNumber(tn kernel.TrackingNumber) error {
	if err := tn.Validate(); err != nil {
		return err
	}
	p.trackingNumber = tn
	return nil
}

func (p *Package) setDimensions(d kernel.Dimensions) error {
	if err := d.Validate(); err != nil {
		return err
	}
	p.dimensions = d
	return nil
}

func (p *Package) setCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("cost", fmt.Errorf("%s is less than 0", cost))
	}
	p.cost = cost
	return nil
}

func (p *Package) checkTimestamps() error {
	if p.createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created_at")
	}
	if p.updatedAt.Before(p.createdAt) {
		return errs.NewValueIsInvalidErrorWithCause("updated_at", fmt.Errorf("%s is before created_at", p.updatedAt))
	}
	return nil
}

func setReference(name string, field *int64, id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is not greater than 0", id))
	}
	*field = id
	return nil
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
