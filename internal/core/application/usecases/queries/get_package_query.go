package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrGetPackageQueryIsNotConstructed = errors.New(
		"GetPackageQuery must be created via NewGetPackageQuery constructor",
	)
)

// GetPackageQuery looks up one package by tracking number. Soft-deleted packages are
// still found; unprivileged principals must be the sender or the receiver.
type GetPackageQuery struct {
	principal      access.Principal
	trackingNumber kernel.TrackingNumber

	guard guard.ConstructorGuard
}

func NewGetPackageQuery(principal access.Principal, trackingNumber string) (GetPackageQuery, error) {
	tn, err := kernel.NewTrackingNumber(trackingNumber)
	if err != nil {
		return GetPackageQuery{}, err
	}

	return GetPackageQuery{
		principal:      principal,
		trackingNumber: tn,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q GetPackageQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageQueryIsNotConstructed)
}

func (q GetPackageQuery) Principal() access.Principal {
	return q.principal
}

func (q GetPackageQuery) TrackingNumber() kernel.TrackingNumber {
	return q.trackingNumber
}
