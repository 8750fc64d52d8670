package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrGetCurrentStatusQueryIsNotConstructed = errors.New(
		"GetCurrentStatusQuery must be created via NewGetCurrentStatusQuery constructor",
	)
)

// GetCurrentStatusQuery derives the current status of a package from its ledger.
type GetCurrentStatusQuery struct {
	principal      access.Principal
	trackingNumber kernel.TrackingNumber

	guard guard.ConstructorGuard
}

func NewGetCurrentStatusQuery(principal access.Principal, trackingNumber string) (GetCurrentStatusQuery, error) {
	tn, err := kernel.NewTrackingNumber(trackingNumber)
	if err != nil {
		return GetCurrentStatusQuery{}, err
	}

	return GetCurrentStatusQuery{
		principal:      principal,
		trackingNumber: tn,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q GetCurrentStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentStatusQueryIsNotConstructed)
}

func (q GetCurrentStatusQuery) Principal() access.Principal {
	return q.principal
}

func (q GetCurrentStatusQuery) TrackingNumber() kernel.TrackingNumber {
	return q.trackingNumber
}
